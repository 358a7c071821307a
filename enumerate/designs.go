package enumerate

import (
	"slices"
	"strings"

	"github.com/katalvlaran/constellation/category"
)

// Designs expands paths into concrete part lists.
//
// Every atom is replaced by each member of its category entry (all roles,
// sorted); an atom without members stands for itself. Designs are produced
// path by path in order, members varying fastest at the end of the path,
// and duplicates are dropped. limit ≤ 0 means no limit.
func Designs(paths [][]string, cats category.Map, limit int) [][]string {
	var (
		out  [][]string
		seen = make(map[string]struct{})
	)
	full := func() bool { return limit > 0 && len(out) >= limit }

	for _, path := range paths {
		choices := make([][]string, len(path))
		for i, atom := range path {
			members := cats.Get(atom).AllMembers()
			if len(members) == 0 {
				members = []string{atom}
			}
			choices[i] = members
		}

		cur := make([]string, len(path))
		var expand func(pos int) bool
		expand = func(pos int) bool {
			if full() {
				return false
			}
			if pos == len(choices) {
				key := strings.Join(cur, "\x00")
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					out = append(out, slices.Clone(cur))
				}
				return true
			}
			for _, m := range choices[pos] {
				cur[pos] = m
				if !expand(pos + 1) {
					return false
				}
			}

			return true
		}
		if !expand(0) {
			break
		}
	}

	return out
}
