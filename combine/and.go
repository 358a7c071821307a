package combine

import (
	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/stategraph"
)

// AndStrategy keeps the behaviour both automata agree on.
//
// From a product state (x, y):
//   - every epsilon edge x → x' yields (x, y) → (x', y);
//   - every epsilon edge y → y' yields (x, y) → (x, y');
//   - every pair of atom edges x -a-> x', y -b-> y' accepted by Matcher
//     yields (x, y) -name-> (x', y').
//
// Epsilon moves are taken independently, so the operands need not align
// their silent structure.
type AndStrategy struct {
	// Matcher defaults to MatchAtoms.
	Matcher AtomMatcher
}

// Mode implements Strategy.
func (AndStrategy) Mode() Mode { return And }

// Prune implements Strategy.
func (AndStrategy) Prune(g *stategraph.StateGraph) int { return pruneDead(g) }

// Populate implements Strategy.
func (s AndStrategy) Populate(
	skel *stategraph.ProductGraph,
	left, right *stategraph.StateGraph,
	lc, rc, out category.Map,
	tol Tolerance,
) error {
	match := s.Matcher
	if match == nil {
		match = MatchAtoms
	}

	for _, id := range skel.IDs() {
		xs, err := left.Outgoing(id.Left)
		if err != nil {
			return err
		}
		ys, err := right.Outgoing(id.Right)
		if err != nil {
			return err
		}

		for _, e := range xs {
			if e.Kind == stategraph.EdgeEpsilon {
				if err = skel.AddEdge(stategraph.Epsilon(id, stategraph.Pair{Left: e.To, Right: id.Right})); err != nil {
					return err
				}
			}
		}
		for _, f := range ys {
			if f.Kind == stategraph.EdgeEpsilon {
				if err = skel.AddEdge(stategraph.Epsilon(id, stategraph.Pair{Left: id.Left, Right: f.To})); err != nil {
					return err
				}
			}
		}
		for _, e := range xs {
			if e.Kind != stategraph.EdgeAtom {
				continue
			}
			for _, f := range ys {
				if f.Kind != stategraph.EdgeAtom {
					continue
				}
				name, entry, ok := match(e.Text, f.Text, lc.Get(e.Text), rc.Get(f.Text), tol)
				if !ok {
					continue
				}
				to := stategraph.Pair{Left: e.To, Right: f.To}
				if err = skel.AddEdge(stategraph.Atom(id, to, name)); err != nil {
					return err
				}
				out.Merge(name, entry)
			}
		}
	}

	return nil
}
