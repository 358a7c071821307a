package combine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/constellation/stategraph"
)

// Cartesian builds the product skeleton of a and b: one state for every
// (left, right) pair, no edges.
//
// For the pair (x, y):
//   - Kind is ROOT iff both are ROOT, ACCEPT iff both are ACCEPT, else epsilon.
//   - Text follows the same rule over the texts "root" and "accept".
//   - Operators are empty if either side is ACCEPT, otherwise
//     CombineOperators(x.Operators, y.Operators).
//
// A nil operand behaves like an empty graph.
// States are inserted row by row: left insertion order outer, right inner.
// Rows are computed concurrently on all available processors.
//
// Complexity: O(|a| * |b|).
func Cartesian(a, b *stategraph.StateGraph) *stategraph.ProductGraph {
	return cartesian(a, b, 0)
}

// cartesian is Cartesian with an explicit row-worker limit (≤0 means GOMAXPROCS).
func cartesian(a, b *stategraph.StateGraph, workers int) *stategraph.ProductGraph {
	if a == nil || b == nil {
		return stategraph.NewGraph[stategraph.Pair](0)
	}
	left, right := a.States(), b.States()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([][]stategraph.State[stategraph.Pair], len(left))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range left {
		eg.Go(func() error {
			rows[i] = productRow(&left[i], right)
			return nil
		})
	}
	_ = eg.Wait() // rows never fail

	out := stategraph.NewGraph[stategraph.Pair](len(left) * len(right))
	for _, row := range rows {
		for _, s := range row {
			// Pairs of distinct identities are distinct.
			_ = out.AddState(s)
		}
	}

	return out
}

func productRow(x *stategraph.State[string], right []stategraph.State[string]) []stategraph.State[stategraph.Pair] {
	row := make([]stategraph.State[stategraph.Pair], len(right))
	for j := range right {
		row[j] = productState(x, &right[j])
	}

	return row
}

func productState(x, y *stategraph.State[string]) stategraph.State[stategraph.Pair] {
	s := stategraph.State[stategraph.Pair]{
		ID:        stategraph.Pair{Left: x.ID, Right: y.ID},
		Kind:      stategraph.KindEpsilon,
		Text:      stategraph.TextEpsilon,
		Operators: stategraph.Operators{},
	}
	switch {
	case x.Kind == stategraph.KindRoot && y.Kind == stategraph.KindRoot:
		s.Kind = stategraph.KindRoot
	case x.Kind == stategraph.KindAccept && y.Kind == stategraph.KindAccept:
		s.Kind = stategraph.KindAccept
	}
	switch {
	case x.Text == stategraph.TextRoot && y.Text == stategraph.TextRoot:
		s.Text = stategraph.TextRoot
	case x.Text == stategraph.TextAccept && y.Text == stategraph.TextAccept:
		s.Text = stategraph.TextAccept
	}
	if x.Kind != stategraph.KindAccept && y.Kind != stategraph.KindAccept {
		s.Operators = CombineOperators(x.Operators, y.Operators)
	}

	return s
}
