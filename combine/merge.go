package combine

import (
	"errors"

	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/stategraph"
)

// MergeStrategy splices the right automaton after the left one.
//
// The product is walked along two rails:
//   - while the right side sits on its ROOT, every edge x → x' of the left
//     operand yields (x, rootB) → (x', rootB);
//   - once the left side sits on one of its ACCEPT states, every edge
//     y → y' of the right operand yields (acceptA, y) → (acceptA, y').
//
// Atoms known to both operands' categories are resolved by Resolver; when it
// rejects an atom, the right operand's edges carrying it are dropped.
type MergeStrategy struct {
	// Resolver defaults to ResolveSlot.
	Resolver SlotResolver
}

// Mode implements Strategy.
func (MergeStrategy) Mode() Mode { return Merge }

// Prune implements Strategy.
func (MergeStrategy) Prune(g *stategraph.StateGraph) int { return pruneDead(g) }

// Populate implements Strategy.
func (s MergeStrategy) Populate(
	skel *stategraph.ProductGraph,
	left, right *stategraph.StateGraph,
	lc, rc, out category.Map,
	tol Tolerance,
) error {
	resolve := s.Resolver
	if resolve == nil {
		resolve = ResolveSlot
	}

	rootB, err := right.Root()
	if err != nil {
		if errors.Is(err, stategraph.ErrNoRoot) {
			// Nothing to splice: the skeleton stays edgeless and prunes away.
			return nil
		}
		return err
	}
	accepting := make(map[string]struct{})
	for _, id := range left.Accepts() {
		accepting[id] = struct{}{}
	}

	shared := make(map[string]*category.Entry)
	rejected := make(map[string]struct{})
	for atom := range lc {
		if !rc.Has(atom) {
			continue
		}
		if entry, ok := resolve(atom, lc.Get(atom), rc.Get(atom), tol); ok {
			shared[atom] = entry
		} else {
			rejected[atom] = struct{}{}
		}
	}
	entryOf := func(atom string, own category.Map) *category.Entry {
		if entry, ok := shared[atom]; ok {
			return entry
		}

		return own.Get(atom)
	}

	for _, id := range skel.IDs() {
		if id.Right == rootB {
			xs, err := left.Outgoing(id.Left)
			if err != nil {
				return err
			}
			for _, e := range xs {
				to := stategraph.Pair{Left: e.To, Right: rootB}
				if err = skel.AddEdge(stategraph.Edge[stategraph.Pair]{From: id, To: to, Kind: e.Kind, Text: e.Text}); err != nil {
					return err
				}
				if e.Kind == stategraph.EdgeAtom {
					out.Merge(e.Text, entryOf(e.Text, lc))
				}
			}
		}

		if _, ok := accepting[id.Left]; !ok {
			continue
		}
		ys, err := right.Outgoing(id.Right)
		if err != nil {
			return err
		}
		for _, f := range ys {
			if f.Kind == stategraph.EdgeAtom {
				if _, drop := rejected[f.Text]; drop {
					continue
				}
			}
			to := stategraph.Pair{Left: id.Left, Right: f.To}
			if err = skel.AddEdge(stategraph.Edge[stategraph.Pair]{From: id, To: to, Kind: f.Kind, Text: f.Text}); err != nil {
				return err
			}
			if f.Kind == stategraph.EdgeAtom {
				out.Merge(f.Text, entryOf(f.Text, rc))
			}
		}
	}

	return nil
}
