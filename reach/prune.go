package reach

import "github.com/katalvlaran/constellation/stategraph"

// Prune removes every state of g that is not reachable from a ROOT state or
// from which no ACCEPT state can be reached, along with incident edges.
// It returns the number of removed states.
//
// A graph without ROOT or without any ACCEPT reachable from it loses every
// state: the empty graph is how "no valid path" is reported.
//
// Complexity: O(V + E).
func Prune[K comparable](g *stategraph.Graph[K]) int {
	if g == nil || g.IsEmpty() {
		return 0
	}

	var roots []K
	for _, s := range g.States() {
		if s.Kind == stategraph.KindRoot {
			roots = append(roots, s.ID)
		}
	}
	accepts := g.Accepts()
	if len(roots) == 0 || len(accepts) == 0 {
		return g.Retain(func(K) bool { return false })
	}

	// Sources come from g itself, so neither walk can fail.
	fwd, _ := From(g, roots)
	bwd, _ := To(g, accepts)

	return g.Retain(func(id K) bool { return fwd.Reached(id) && bwd.Reached(id) })
}

// Live reports whether every state of g lies on some ROOT → ACCEPT path.
// An empty graph is trivially live.
func Live[K comparable](g *stategraph.Graph[K]) bool {
	probe := g.Clone()

	return Prune(probe) == 0
}
