package enumerate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/combine"
	"github.com/katalvlaran/constellation/enumerate"
	"github.com/katalvlaran/constellation/stategraph"
)

func mustBuild(t *testing.T, text string) *stategraph.StateGraph {
	t.Helper()
	g, err := builder.FromSource(text)
	require.NoError(t, err)

	return g
}

func TestPaths_Grammar(t *testing.T) {
	cases := []struct {
		text string
		opts []enumerate.Option
		want [][]string
	}{
		{"a . b", nil, [][]string{{"a", "b"}}},
		{"b or a", nil, [][]string{{"a"}, {"b"}}},
		{"one-or-more a", nil, [][]string{{"a"}}},
		{"one-or-more a", []enumerate.Option{enumerate.WithMaxCycles(1)}, [][]string{{"a"}, {"a", "a"}}},
		{"zero-or-more a", nil, [][]string{{}, {"a"}}},
		{"zero-or-one a . b", nil, [][]string{{"a", "b"}, {"b"}}},
		{"p . {x or y} . t", nil, [][]string{{"p", "x", "t"}, {"p", "y", "t"}}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			paths, err := enumerate.Paths(mustBuild(t, tc.text), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, paths)
		})
	}
}

func TestPaths_CombinedDesigns(t *testing.T) {
	gs := []*stategraph.StateGraph{mustBuild(t, "partA"), mustBuild(t, "partA")}

	and, err := combine.Combine(combine.And, gs, nil, 0)
	require.NoError(t, err)
	paths, err := enumerate.Paths(and.Graph)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"partA"}}, paths)

	merged, err := combine.Combine(combine.Merge, gs, nil, 0)
	require.NoError(t, err)
	paths, err = enumerate.Paths(merged.Graph)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"partA", "partA"}}, paths)

	disjoint, err := combine.Combine(combine.And,
		[]*stategraph.StateGraph{mustBuild(t, "a"), mustBuild(t, "b")}, nil, 0)
	require.NoError(t, err)
	paths, err = enumerate.Paths(disjoint.Graph)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestPaths_AndOfAlternatives(t *testing.T) {
	res, err := combine.Combine(combine.And, []*stategraph.StateGraph{
		mustBuild(t, "p . {x or y}"),
		mustBuild(t, "p . {y or z}"),
	}, nil, 0)
	require.NoError(t, err)

	paths, err := enumerate.Paths(res.Graph)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"p", "y"}}, paths)
}

func TestPaths_Limits(t *testing.T) {
	g := mustBuild(t, "a or b or c")
	paths, err := enumerate.Paths(g, enumerate.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enumerate.Paths(g, enumerate.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaths_Errors(t *testing.T) {
	_, err := enumerate.Paths(nil)
	assert.ErrorIs(t, err, enumerate.ErrGraphNil)

	g := mustBuild(t, "a")
	_, err = enumerate.Paths(g, enumerate.WithMaxCycles(-1))
	assert.ErrorIs(t, err, enumerate.ErrOptionViolation)
	_, err = enumerate.Paths(g, enumerate.WithMaxPaths(-1))
	assert.ErrorIs(t, err, enumerate.ErrOptionViolation)

	paths, err := enumerate.Paths(stategraph.NewGraph[string](0))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDesigns(t *testing.T) {
	cats := category.Map{
		"p": category.EntryOf(map[string][]string{"promoter": {"pLac", "pTet"}}),
		"c": category.EntryOf(map[string][]string{"cds": {"gfp"}}),
	}
	paths := [][]string{{"p", "c", "t"}, {"t"}}

	assert.Equal(t, [][]string{
		{"pLac", "gfp", "t"},
		{"pTet", "gfp", "t"},
		{"t"},
	}, enumerate.Designs(paths, cats, 0))

	assert.Equal(t, [][]string{{"pLac", "gfp", "t"}}, enumerate.Designs(paths, cats, 1))
	assert.Empty(t, enumerate.Designs(nil, cats, 0))
	assert.Equal(t, [][]string{{}}, enumerate.Designs([][]string{{}}, nil, 0))
}
