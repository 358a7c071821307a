package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/reach"
	"github.com/katalvlaran/constellation/stategraph"
)

// buildGraph creates states r(root), acc(accept) and the given internal ids,
// then adds epsilon edges for each [from,to] pair.
func buildGraph(t *testing.T, internal []string, edges [][2]string) *stategraph.StateGraph {
	t.Helper()
	g := stategraph.NewGraph[string](len(internal) + 2)
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "r", Kind: stategraph.KindRoot, Text: stategraph.TextRoot}))
	for _, id := range internal {
		require.NoError(t, g.AddState(stategraph.State[string]{ID: id, Text: stategraph.TextEpsilon}))
	}
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "acc", Kind: stategraph.KindAccept, Text: stategraph.TextAccept}))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(stategraph.Epsilon(e[0], e[1])))
	}

	return g
}

func TestFrom_Errors(t *testing.T) {
	_, err := reach.From[string](nil, []string{"r"})
	assert.ErrorIs(t, err, reach.ErrGraphNil)

	g := buildGraph(t, nil, nil)
	_, err = reach.From(g, []string{"nope"})
	assert.ErrorIs(t, err, reach.ErrStartNotFound)

	_, err = reach.From(g, []string{"r"}, reach.WithMaxDepth(-1))
	assert.ErrorIs(t, err, reach.ErrOptionViolation)

	_, err = reach.To[string](nil, []string{"acc"})
	assert.ErrorIs(t, err, reach.ErrGraphNil)
}

func TestFrom_OrderAndDepth(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c"}, [][2]string{
		{"r", "a"}, {"r", "b"}, {"a", "c"}, {"b", "c"}, {"c", "acc"}, {"c", "a"},
	})
	res, err := reach.From(g, []string{"r"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "b", "c", "acc"}, res.Order)
	assert.Equal(t, 2, res.Depth["c"])
	assert.Equal(t, 3, res.Depth["acc"])

	var depths []int
	limited, err := reach.From(g, []string{"r"}, reach.WithMaxDepth(1), reach.WithOnVisit(func(d int) {
		depths = append(depths, d)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "b"}, limited.Order)
	assert.Equal(t, []int{0, 1, 1}, depths)
	assert.False(t, limited.Reached("c"))
}

func TestTo_ReverseWalk(t *testing.T) {
	g := buildGraph(t, []string{"a", "dead"}, [][2]string{
		{"r", "a"}, {"a", "acc"}, {"r", "dead"},
	})
	res, err := reach.To(g, []string{"acc"})
	require.NoError(t, err)
	assert.True(t, res.Reached("a"))
	assert.True(t, res.Reached("r"))
	assert.False(t, res.Reached("dead"))
}

func TestPrune_RemovesDeadStates(t *testing.T) {
	g := buildGraph(t, []string{"a", "deadEnd", "orphan"}, [][2]string{
		{"r", "a"}, {"a", "acc"}, {"r", "deadEnd"}, {"orphan", "acc"},
	})
	assert.False(t, reach.Live(g))

	removed := reach.Prune(g)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"r", "a", "acc"}, g.IDs())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, reach.Live(g))
}

func TestPrune_NoAcceptingPathEmptiesGraph(t *testing.T) {
	g := buildGraph(t, []string{"a"}, [][2]string{{"r", "a"}})
	assert.Equal(t, 3, reach.Prune(g))
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, reach.Prune(g))
}

func TestPrune_NoRoot(t *testing.T) {
	g := stategraph.NewGraph[string](1)
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "acc", Kind: stategraph.KindAccept}))
	assert.Equal(t, 1, reach.Prune(g))
	assert.True(t, g.IsEmpty())
}
