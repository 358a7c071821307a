package combine

import "github.com/katalvlaran/constellation/category"

// AtomMatcher decides whether two atom edges can be taken jointly under AND.
// On success it returns the atom name of the product edge and the category
// entry recorded for it.
type AtomMatcher func(left, right string, lc, rc *category.Entry, tol Tolerance) (name string, entry *category.Entry, ok bool)

// MatchAtoms is the default AtomMatcher.
//
//	tol 0: same name and equal entries.
//	tol 1: same name and equal entries, or same name with overlapping
//	       entries; the overlap is kept.
//	tol 2: same name (entries united), or different names whose entries
//	       overlap; the left name and the overlap are kept.
func MatchAtoms(left, right string, lc, rc *category.Entry, tol Tolerance) (string, *category.Entry, bool) {
	same := left == right
	switch tol {
	case 0:
		if same && lc.Equal(rc) {
			return left, lc.Clone(), true
		}
	case 1:
		if !same {
			break
		}
		if lc.Equal(rc) {
			return left, lc.Clone(), true
		}
		if common := lc.Intersect(rc); !common.IsEmpty() {
			return left, common, true
		}
	default:
		if same {
			return left, lc.Union(rc), true
		}
		if common := lc.Intersect(rc); !common.IsEmpty() {
			return left, common, true
		}
	}

	return "", nil, false
}

// SlotResolver decides, for MERGE, whether an atom known to both operands
// may keep its right-hand occurrences, and which entry the result records.
// It is only consulted for atoms present in both category maps.
type SlotResolver func(atom string, lc, rc *category.Entry, tol Tolerance) (entry *category.Entry, ok bool)

// ResolveSlot is the default SlotResolver.
//
//	tol 0: entries must be equal.
//	tol 1: entries must share a role; the union is kept.
//	tol 2: always accepted; the union is kept.
func ResolveSlot(_ string, lc, rc *category.Entry, tol Tolerance) (*category.Entry, bool) {
	switch tol {
	case 0:
		if lc.Equal(rc) {
			return lc.Clone(), true
		}
	case 1:
		if lc.Equal(rc) || lc.SharesRole(rc) {
			return lc.Union(rc), true
		}
	default:
		return lc.Union(rc), true
	}

	return nil, false
}
