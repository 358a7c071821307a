package combine

import "github.com/katalvlaran/constellation/stategraph"

// CombineOperators computes the operator set of a product state from the
// operator sets of its left and right source states.
//
// Rules, applied in order:
//  1. Then on either side propagates.
//  2. If either side is empty, stop: only Then crosses an operator-less state.
//  3. Left OneOrMore, unless right has ZeroOrOne, adds OneOrMore in front.
//  4. Left ZeroOrMore adds ZeroOrOne if right has ZeroOrOne, else OneOrMore
//     in front if right has OneOrMore, else ZeroOrMore.
//  5. Left ZeroOrOne adds ZeroOrOne if right has ZeroOrMore or ZeroOrOne.
//  6. Duplicates are removed, keeping the first occurrence.
//
// The function is pure and not commutative.
func CombineOperators(left, right stategraph.Operators) stategraph.Operators {
	out := stategraph.Operators{}
	if left.Has(stategraph.Then) || right.Has(stategraph.Then) {
		out = append(out, stategraph.Then)
	}
	if len(left) == 0 || len(right) == 0 {
		return out
	}

	if left.Has(stategraph.OneOrMore) && !right.Has(stategraph.ZeroOrOne) {
		out = append(stategraph.Operators{stategraph.OneOrMore}, out...)
	}
	if left.Has(stategraph.ZeroOrMore) {
		switch {
		case right.Has(stategraph.ZeroOrOne):
			out = append(out, stategraph.ZeroOrOne)
		case right.Has(stategraph.OneOrMore):
			out = append(stategraph.Operators{stategraph.OneOrMore}, out...)
		default:
			out = append(out, stategraph.ZeroOrMore)
		}
	}
	if left.Has(stategraph.ZeroOrOne) && (right.Has(stategraph.ZeroOrMore) || right.Has(stategraph.ZeroOrOne)) {
		out = append(out, stategraph.ZeroOrOne)
	}

	return out.Dedup()
}
