package combine

import (
	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/reach"
	"github.com/katalvlaran/constellation/stategraph"
)

// Strategy supplies the mode-specific half of a combination step.
//
// Populate adds the jointly valid edges to the product skeleton and merges
// the category information of every atom it places on an edge into out.
// It must not modify left, right, lc or rc.
//
// Prune removes, in place, every state of the renamed graph that is not on a
// ROOT → ACCEPT path and returns the number of removed states.
type Strategy interface {
	Mode() Mode
	Populate(skel *stategraph.ProductGraph, left, right *stategraph.StateGraph, lc, rc, out category.Map, tol Tolerance) error
	Prune(g *stategraph.StateGraph) int
}

// defaultStrategies returns a fresh registry with the built-in strategies.
func defaultStrategies() map[Mode]Strategy {
	return map[Mode]Strategy{
		And:   AndStrategy{},
		Merge: MergeStrategy{},
	}
}

// pruneDead is the pruning shared by the built-in strategies.
func pruneDead(g *stategraph.StateGraph) int { return reach.Prune(g) }
