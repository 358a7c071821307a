package combine

import (
	"fmt"

	"github.com/katalvlaran/constellation/stategraph"
)

// Rename converts a product graph into a flat state graph by replacing every
// Pair identity (and every edge endpoint) with Pair.Flatten. Kind, text,
// operators and edge order are preserved.
//
// Two distinct pairs may flatten to the same token when source identities
// themselves contain the separator ("a-b"+"c" and "a"+"b-c"). That case
// returns ErrIdentityCollision instead of silently merging states.
func Rename(p *stategraph.ProductGraph) (*stategraph.StateGraph, error) {
	if p == nil {
		return nil, ErrNilGraph
	}

	states := p.States()
	out := stategraph.NewGraph[string](len(states))
	owner := make(map[string]stategraph.Pair, len(states))
	for _, s := range states {
		id := s.ID.Flatten()
		if prev, dup := owner[id]; dup {
			return nil, fmt.Errorf("%w: %s and %s both become %q", ErrIdentityCollision, prev, s.ID, id)
		}
		owner[id] = s.ID

		flat := stategraph.State[string]{
			ID:        id,
			Kind:      s.Kind,
			Text:      s.Text,
			Operators: s.Operators,
			Edges:     make([]stategraph.Edge[string], len(s.Edges)),
		}
		for i, e := range s.Edges {
			flat.Edges[i] = stategraph.Edge[string]{
				From: e.From.Flatten(),
				To:   e.To.Flatten(),
				Kind: e.Kind,
				Text: e.Text,
			}
		}
		if err := out.AddState(flat); err != nil {
			return nil, err
		}
	}

	return out, nil
}
