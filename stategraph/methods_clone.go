// File: methods_clone.go
// Role: Deep copies, value equality and structural validation.
// Concurrency:
//   - Read locks on the source; Clone returns a fresh, independently owned graph.

package stategraph

import "fmt"

// Clone returns a deep copy: no state, operator set or edge slice is shared.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := NewGraph[K](len(g.order))
	for _, id := range g.order {
		out.states[id] = g.states[id].clone()
		out.order = append(out.order, id)
	}

	return out
}

// Equal reports value equality with other.
//
// Two graphs are equal when they hold the same identities and, for each
// identity, the same kind, text, operator set and edge sequence. Insertion
// order of states is ignored; the order of each state's edges is not.
//
// Complexity: O(V + E).
func (g *Graph[K]) Equal(other *Graph[K]) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return (g == nil || g.IsEmpty()) && (other == nil || other.IsEmpty())
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.order) != len(other.order) {
		return false
	}
	for _, id := range g.order {
		a := g.states[id]
		b, ok := other.states[id]
		if !ok {
			return false
		}
		if a.Kind != b.Kind || a.Text != b.Text || !a.Operators.Equal(b.Operators) {
			return false
		}
		if len(a.Edges) != len(b.Edges) {
			return false
		}
		for i := range a.Edges {
			if a.Edges[i] != b.Edges[i] {
				return false
			}
		}
	}

	return true
}

// Validate checks the well-formedness invariants of a non-empty graph:
// one ROOT, at least one ACCEPT, no operators on ACCEPT states, and every
// edge endpoint registered. An empty graph is valid: it is the degenerate
// "no combination exists" result.
func (g *Graph[K]) Validate() error {
	if g.IsEmpty() {
		return nil
	}
	if _, err := g.Root(); err != nil {
		return err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	accepts := 0
	for _, id := range g.order {
		s := g.states[id]
		if s.Kind == KindAccept {
			accepts++
			if len(s.Operators) > 0 {
				return fmt.Errorf("%w: %v has %v", ErrAcceptOperators, id, s.Operators)
			}
		}
		for _, e := range s.Edges {
			if e.From != id {
				return fmt.Errorf("%w: edge listed on %v starts at %v", ErrStateNotFound, id, e.From)
			}
			if _, ok := g.states[e.To]; !ok {
				return fmt.Errorf("%w: edge destination %v", ErrStateNotFound, e.To)
			}
		}
	}
	if accepts == 0 {
		return ErrNoAccept
	}

	return nil
}
