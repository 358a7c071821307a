package builder_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/grammar"
	"github.com/katalvlaran/constellation/reach"
	"github.com/katalvlaran/constellation/stategraph"
)

// edgeList renders every edge as "from>to:text" in state then edge order.
func edgeList(g *stategraph.StateGraph) []string {
	var out []string
	for _, s := range g.States() {
		for _, e := range s.Edges {
			out = append(out, e.From+">"+e.To+":"+e.Text)
		}
	}

	return out
}

func opsOf(t *testing.T, g *stategraph.StateGraph, id string) string {
	t.Helper()
	s, ok := g.State(id)
	require.True(t, ok, "state %s", id)

	return s.Operators.String()
}

func TestBuild_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		edges []string
		ops   map[string]string
	}{
		{
			name:  "atom",
			text:  "partA",
			edges: []string{"0>1:partA", "1>2:epsilon"},
		},
		{
			name:  "then",
			text:  "a . b",
			edges: []string{"0>1:a", "1>2:epsilon", "2>3:b", "3>4:epsilon"},
			ops:   map[string]string{"2": "[Then]"},
		},
		{
			name:  "or",
			text:  "a or b",
			edges: []string{"0>1:epsilon", "1>2:a", "1>3:b", "2>4:epsilon", "3>4:epsilon", "4>5:epsilon"},
			ops:   map[string]string{"1": "[Or]"},
		},
		{
			name:  "one-or-more",
			text:  "one-or-more a",
			edges: []string{"0>1:epsilon", "1>2:a", "2>3:epsilon", "2>1:epsilon", "3>4:epsilon"},
			ops:   map[string]string{"1": "[OneOrMore]"},
		},
		{
			name:  "zero-or-more",
			text:  "zero-or-more a",
			edges: []string{"0>1:epsilon", "1>2:a", "1>3:epsilon", "2>3:epsilon", "2>1:epsilon", "3>4:epsilon"},
			ops:   map[string]string{"1": "[ZeroOrMore]"},
		},
		{
			name:  "zero-or-one",
			text:  "zero-or-one a",
			edges: []string{"0>1:epsilon", "1>2:a", "1>3:epsilon", "2>3:epsilon", "3>4:epsilon"},
			ops:   map[string]string{"1": "[ZeroOrOne]"},
		},
		{
			name:  "group",
			text:  "{a . b}",
			edges: []string{"0>1:a", "1>2:epsilon", "2>3:b", "3>4:epsilon"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.FromSource(tc.text)
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			assert.True(t, reach.Live(g))

			root, err := g.Root()
			require.NoError(t, err)
			assert.Equal(t, "0", root)
			assert.Len(t, g.Accepts(), 1)

			assert.Equal(t, tc.edges, edgeList(g))
			for id, want := range tc.ops {
				assert.Equal(t, want, opsOf(t, g, id))
			}
		})
	}
}

func TestBuild_IDScheme(t *testing.T) {
	g, err := builder.FromSource("a . b", builder.WithSymbNumb("q"))
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1", "q2", "q3", "q4"}, g.IDs())

	g, err = builder.FromSource("a . b", builder.WithSymbNumb("q"), builder.WithDefaultIDs())
	require.NoError(t, err)
	assert.Equal(t, "0", g.IDs()[0])
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrNilSequence)

	_, err = builder.FromSource("a . ")
	assert.ErrorIs(t, err, grammar.ErrSyntax)

	_, err = builder.FromSource("a . b", builder.WithIDScheme(func(int) string { return "same" }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, stategraph.ErrStateExists)

	_, err = builder.FromSource("a", builder.WithIDScheme(func(int) string { return "" }))
	assert.True(t, errors.Is(err, stategraph.ErrEmptyID))

	hand := &grammar.Sequence{Blocks: []*grammar.Expression{{Alternatives: []*grammar.Term{{}}}}}
	_, err = builder.Build(hand)
	assert.ErrorIs(t, err, builder.ErrMalformedTerm)

	_, err = builder.Build(&grammar.Sequence{})
	assert.ErrorIs(t, err, builder.ErrMalformedTerm)
}

func TestBuild_ConcurrentBuildsAreIndependent(t *testing.T) {
	const text = "promoter . one-or-more {rbs . cds} . zero-or-one terminator"
	want, err := builder.FromSource(text)
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*stategraph.StateGraph, 16)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = builder.FromSource(text)
		}()
	}
	wg.Wait()
	for _, g := range got {
		assert.True(t, want.Equal(g))
	}
}
