package combine_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/combine"
	"github.com/katalvlaran/constellation/reach"
	"github.com/katalvlaran/constellation/stategraph"
)

func graphs(gs ...*stategraph.StateGraph) []*stategraph.StateGraph { return gs }

func cats(ms ...category.Map) []category.Map { return ms }

func TestCombine_AndSameAtom(t *testing.T) {
	res, err := combine.Combine(combine.And, graphs(single(t, "1", "partA"), single(t, "2", "partA")), nil, 0)
	require.NoError(t, err)
	require.False(t, res.Empty())

	assert.Equal(t, []string{"r1-r2", "a1-a2"}, res.Graph.IDs())
	edges, err := res.Graph.Outgoing("r1-r2")
	require.NoError(t, err)
	assert.Equal(t, []stategraph.Edge[string]{stategraph.Atom("r1-r2", "a1-a2", "partA")}, edges)
	assert.Equal(t, []string{"partA"}, res.Categories.Atoms())
	assert.True(t, reach.Live(res.Graph))
	assert.NoError(t, res.Graph.Validate())

	require.Len(t, res.Steps, 1)
	assert.Equal(t, combine.StepStats{
		Step: 1, LeftStates: 2, RightStates: 2, ProductStates: 4, Edges: 1, Pruned: 2, States: 2,
	}, res.Steps[0])
}

func TestCombine_AndDisjointIsEmpty(t *testing.T) {
	in := cats(
		category.Map{"a": category.EntryOf(map[string][]string{"cds": {"a"}})},
		category.Map{"b": category.EntryOf(map[string][]string{"cds": {"b"}})},
	)
	res, err := combine.Combine(combine.And, graphs(single(t, "1", "a"), single(t, "2", "b")), in, 0)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Categories)
}

func TestCombine_MergeSplices(t *testing.T) {
	res, err := combine.Combine(combine.Merge, graphs(single(t, "1", "partA"), single(t, "2", "partA")), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"r1-r2", "a1-r2", "a1-a2"}, res.Graph.IDs())
	mid, ok := res.Graph.State("a1-r2")
	require.True(t, ok)
	assert.Equal(t, stategraph.KindEpsilon, mid.Kind)
	assert.Equal(t, 2, res.Graph.EdgeCount())
	assert.Equal(t, []string{"partA"}, res.Categories.Atoms())
	assert.True(t, reach.Live(res.Graph))
}

func TestCombine_MergeDistinctAtoms(t *testing.T) {
	res, err := combine.Combine(combine.Merge, graphs(chain(t, "1", "p", "c"), single(t, "2", "t")), nil, 0)
	require.NoError(t, err)

	var labels []string
	id, err := res.Graph.Root()
	require.NoError(t, err)
	for !res.Graph.IsAccept(id) {
		edges, err := res.Graph.Outgoing(id)
		require.NoError(t, err)
		require.Len(t, edges, 1)
		labels = append(labels, edges[0].Text)
		id = edges[0].To
	}
	assert.Equal(t, []string{"p", "c", "t"}, labels)
}

func TestCombine_AndTolerance(t *testing.T) {
	left := category.Map{"p": category.EntryOf(map[string][]string{"promoter": {"x", "y"}})}
	right := category.Map{"p": category.EntryOf(map[string][]string{"promoter": {"y", "z"}})}
	gs := graphs(single(t, "1", "p"), single(t, "2", "p"))

	strict, err := combine.Combine(combine.And, gs, cats(left, right), 0)
	require.NoError(t, err)
	assert.True(t, strict.Empty())

	overlap, err := combine.Combine(combine.And, gs, cats(left, right), 1)
	require.NoError(t, err)
	require.False(t, overlap.Empty())
	assert.Equal(t, []string{"y"}, overlap.Categories.Get("p").Members("promoter"))

	loose, err := combine.Combine(combine.And, gs, cats(left, right), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, loose.Categories.Get("p").Members("promoter"))
}

func TestCombine_AndLooseMatchesDifferentNames(t *testing.T) {
	in := cats(
		category.Map{"p1": category.EntryOf(map[string][]string{"promoter": {"x", "y"}})},
		category.Map{"p2": category.EntryOf(map[string][]string{"promoter": {"y"}})},
	)
	gs := graphs(single(t, "1", "p1"), single(t, "2", "p2"))

	tight, err := combine.Combine(combine.And, gs, in, 1)
	require.NoError(t, err)
	assert.True(t, tight.Empty())

	res, err := combine.Combine(combine.And, gs, in, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, res.Graph.Atoms())
	assert.Equal(t, []string{"y"}, res.Categories.Get("p1").Members("promoter"))
}

func TestCombine_MergeSharedAtomTolerance(t *testing.T) {
	in := cats(
		category.Map{"g": category.EntryOf(map[string][]string{"cds": {"a"}})},
		category.Map{"g": category.EntryOf(map[string][]string{"cds": {"b"}})},
	)
	gs := graphs(single(t, "1", "g"), single(t, "2", "g"))

	strict, err := combine.Combine(combine.Merge, gs, in, 0)
	require.NoError(t, err)
	assert.True(t, strict.Empty())
	assert.Empty(t, strict.Categories)

	relaxed, err := combine.Combine(combine.Merge, gs, in, 1)
	require.NoError(t, err)
	require.False(t, relaxed.Empty())
	assert.Equal(t, []string{"a", "b"}, relaxed.Categories.Get("g").Members("cds"))
}

func TestCombine_LeftAssociative(t *testing.T) {
	g1, g2, g3 := chain(t, "1", "p", "c"), chain(t, "2", "p", "c"), chain(t, "3", "p", "c")
	for _, mode := range []combine.Mode{combine.And, combine.Merge} {
		t.Run(mode.String(), func(t *testing.T) {
			all, err := combine.Combine(mode, graphs(g1, g2, g3), nil, 0)
			require.NoError(t, err)

			first, err := combine.Combine(mode, graphs(g1, g2), nil, 0)
			require.NoError(t, err)
			stepwise, err := combine.Combine(mode, graphs(first.Graph, g3), cats(first.Categories, nil), 0)
			require.NoError(t, err)

			assert.True(t, all.Graph.Equal(stepwise.Graph))
			assert.True(t, all.Categories.Equal(stepwise.Categories))
			assert.Len(t, all.Steps, 2)
		})
	}
}

func TestCombine_OperandOrderMatters(t *testing.T) {
	quantified := single(t, "1", "p")
	s, _ := quantified.State("r1")
	s.Operators = stategraph.NewOperators(stategraph.ZeroOrMore)
	marked := single(t, "2", "p")
	s, _ = marked.State("r2")
	s.Operators = stategraph.NewOperators(stategraph.Then)

	ab, err := combine.Combine(combine.And, graphs(quantified, marked), nil, 0)
	require.NoError(t, err)
	ba, err := combine.Combine(combine.And, graphs(marked, quantified), nil, 0)
	require.NoError(t, err)

	root, _ := ab.Graph.State("r1-r2")
	assert.Equal(t, "[Then ZeroOrMore]", root.Operators.String())
	root, _ = ba.Graph.State("r2-r1")
	assert.Equal(t, "[Then]", root.Operators.String())
}

func TestCombine_InputsUntouched(t *testing.T) {
	g1, g2 := chain(t, "1", "p", "c"), chain(t, "2", "p", "c")
	c1 := category.Map{"p": category.EntryOf(map[string][]string{"promoter": {"x"}})}
	before1, before2, beforeC := g1.Clone(), g2.Clone(), c1.Clone()

	_, err := combine.Combine(combine.And, graphs(g1, g2), cats(c1, nil), 2)
	require.NoError(t, err)

	assert.True(t, before1.Equal(g1))
	assert.True(t, before2.Equal(g2))
	assert.True(t, beforeC.Equal(c1))
}

func TestCombine_EmptyRunningResultStaysEmpty(t *testing.T) {
	res, err := combine.Combine(combine.And,
		graphs(single(t, "1", "a"), single(t, "2", "b"), single(t, "3", "a")), nil, 0)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	require.Len(t, res.Steps, 2)
	assert.Zero(t, res.Steps[1].ProductStates)
}

func TestCombine_InputErrors(t *testing.T) {
	g := single(t, "1", "a")
	cases := []struct {
		name string
		mode combine.Mode
		gs   []*stategraph.StateGraph
		cs   []category.Map
		tol  combine.Tolerance
		want error
	}{
		{"zero mode", 0, graphs(g, g), nil, 0, combine.ErrInvalidMode},
		{"unknown mode", combine.Mode(9), graphs(g, g), nil, 0, combine.ErrInvalidMode},
		{"negative tolerance", combine.And, graphs(g, g), nil, -1, combine.ErrInvalidTolerance},
		{"tolerance too high", combine.And, graphs(g, g), nil, 3, combine.ErrInvalidTolerance},
		{"single graph", combine.And, graphs(g), nil, 0, combine.ErrTooFewGraphs},
		{"category mismatch", combine.Merge, graphs(g, g), cats(category.Map{}), 0, combine.ErrCategoryMismatch},
		{"nil graph", combine.And, graphs(g, nil), nil, 0, combine.ErrNilGraph},
		{"no root", combine.And, graphs(g, noRoot(t)), nil, 0, combine.ErrInvalidGraph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := combine.Combine(tc.mode, tc.gs, tc.cs, tc.tol)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func noRoot(t *testing.T) *stategraph.StateGraph {
	t.Helper()
	g := stategraph.NewGraph[string](1)
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "only", Kind: stategraph.KindAccept}))

	return g
}

func TestParseMode(t *testing.T) {
	m, err := combine.ParseMode(" and ")
	require.NoError(t, err)
	assert.Equal(t, combine.And, m)
	m, err = combine.ParseMode("Merge")
	require.NoError(t, err)
	assert.Equal(t, combine.Merge, m)

	_, err = combine.ParseMode("xor")
	assert.ErrorIs(t, err, combine.ErrInvalidMode)

	var decoded combine.Mode
	require.NoError(t, decoded.UnmarshalText([]byte("MERGE")))
	assert.Equal(t, combine.Merge, decoded)
	_, err = combine.Mode(0).MarshalText()
	assert.ErrorIs(t, err, combine.ErrInvalidMode)
}

func TestSession_Options(t *testing.T) {
	_, err := combine.NewSession(combine.WithParallelism(-1))
	assert.ErrorIs(t, err, combine.ErrOptionViolation)
	_, err = combine.NewSession(combine.WithStrategy(nil))
	assert.ErrorIs(t, err, combine.ErrOptionViolation)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := combine.NewSession(combine.WithLogger(logger), combine.WithParallelism(1))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())

	_, err = s.Combine(combine.And, graphs(single(t, "1", "a"), single(t, "2", "a")), nil, 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "combine step")
	assert.Contains(t, buf.String(), "session="+s.ID())
	assert.EqualValues(t, 1, s.StepsRun())
}

// rejectAll is an AND strategy whose matcher never accepts.
func rejectAll(string, string, *category.Entry, *category.Entry, combine.Tolerance) (string, *category.Entry, bool) {
	return "", nil, false
}

func TestSession_CustomStrategy(t *testing.T) {
	s, err := combine.NewSession(combine.WithStrategy(combine.AndStrategy{Matcher: rejectAll}))
	require.NoError(t, err)

	res, err := s.Combine(combine.And, graphs(single(t, "1", "a"), single(t, "2", "a")), nil, 2)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestSession_ConcurrentSessionsAgree(t *testing.T) {
	g1, g2 := chain(t, "1", "p", "c", "t"), chain(t, "2", "p", "c", "t")
	want, err := combine.Combine(combine.And, graphs(g1, g2), nil, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*combine.Result, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = combine.Combine(combine.And, graphs(g1, g2), nil, 0, combine.WithParallelism(i%3))
		}()
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, want.Graph.Equal(r.Graph))
	}
}
