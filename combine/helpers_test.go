package combine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/stategraph"
)

// single builds r<suffix> -atom-> a<suffix>.
func single(t *testing.T, suffix, atom string) *stategraph.StateGraph {
	t.Helper()

	return chain(t, suffix, atom)
}

// chain builds r<suffix> -a0-> s<suffix>_1 -a1-> ... -> a<suffix>.
func chain(t *testing.T, suffix string, atoms ...string) *stategraph.StateGraph {
	t.Helper()
	g := stategraph.NewGraph[string](len(atoms) + 1)
	ids := make([]string, 0, len(atoms)+1)
	ids = append(ids, "r"+suffix)
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "r" + suffix, Kind: stategraph.KindRoot, Text: stategraph.TextRoot}))
	for i := 1; i < len(atoms); i++ {
		id := "s" + suffix + "_" + string(rune('0'+i))
		require.NoError(t, g.AddState(stategraph.State[string]{ID: id, Text: stategraph.TextEpsilon}))
		ids = append(ids, id)
	}
	ids = append(ids, "a"+suffix)
	require.NoError(t, g.AddState(stategraph.State[string]{ID: "a" + suffix, Kind: stategraph.KindAccept, Text: stategraph.TextAccept}))
	for i, atom := range atoms {
		require.NoError(t, g.AddEdge(stategraph.Atom(ids[i], ids[i+1], atom)))
	}

	return g
}
