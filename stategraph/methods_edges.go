// File: methods_edges.go
// Role: Edge insertion and queries.
// Determinism:
//   - Outgoing edges keep insertion order per state.
//   - Atoms() is sorted ascending.
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package stategraph

import (
	"fmt"
	"sort"
)

// AddEdge appends e to the outgoing edges of e.From.
//
// Behavior highlights:
//   - Both endpoints must already exist (ErrStateNotFound).
//   - EdgeAtom requires non-empty Text (ErrEmptyAtom).
//   - EdgeEpsilon text is normalised to TextEpsilon.
//   - Parallel edges are kept; they encode alternative quantifier paths.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(e Edge[K]) error {
	switch e.Kind {
	case EdgeAtom:
		if e.Text == "" {
			return ErrEmptyAtom
		}
	case EdgeEpsilon:
		e.Text = TextEpsilon
	default:
		return fmt.Errorf("stategraph: unknown edge kind %v", e.Kind)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.states[e.From]
	if !ok {
		return fmt.Errorf("%w: edge source %v", ErrStateNotFound, e.From)
	}
	if _, ok = g.states[e.To]; !ok {
		return fmt.Errorf("%w: edge destination %v", ErrStateNotFound, e.To)
	}
	from.Edges = append(from.Edges, e)

	return nil
}

// Epsilon is shorthand for an epsilon edge from → to.
func Epsilon[K comparable](from, to K) Edge[K] {
	return Edge[K]{From: from, To: to, Kind: EdgeEpsilon, Text: TextEpsilon}
}

// Atom is shorthand for an atom edge from → to labelled text.
func Atom[K comparable](from, to K, text string) Edge[K] {
	return Edge[K]{From: from, To: to, Kind: EdgeAtom, Text: text}
}

// Outgoing returns a copy of the edges leaving id.
func (g *Graph[K]) Outgoing(id K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.states[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStateNotFound, id)
	}
	out := make([]Edge[K], len(s.Edges))
	copy(out, s.Edges)

	return out, nil
}

// Incoming builds the reverse adjacency: destination → sources, one entry
// per edge, in state insertion order.
// Complexity: O(V + E).
func (g *Graph[K]) Incoming() map[K][]K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rev := make(map[K][]K, len(g.order))
	for _, id := range g.order {
		for _, e := range g.states[id].Edges {
			rev[e.To] = append(rev[e.To], e.From)
		}
	}

	return rev
}

// EdgeCount returns the total number of edges.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, id := range g.order {
		n += len(g.states[id].Edges)
	}

	return n
}

// Atoms returns the distinct atom texts labelling edges, sorted.
func (g *Graph[K]) Atoms() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, id := range g.order {
		for _, e := range g.states[id].Edges {
			if e.Kind == EdgeAtom {
				seen[e.Text] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}
