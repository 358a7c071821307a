// File: methods_states.go
// Role: State lifecycle & queries.
//
// Determinism:
//   - IDs(), States() and Accepts() follow insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//
// AI-Hints (file):
//   - State() hands out the live record; copy via States() when you need to keep it.
//   - Retain() is the bulk removal primitive used by pruning passes.
package stategraph

import "fmt"

// AddState registers a copy of s.
//
// Implementation:
//   - Stage 1: Reject the zero identity (ErrEmptyID).
//   - Stage 2: Under the write lock, reject duplicates (ErrStateExists).
//   - Stage 3: Store a deep copy and append the identity to the insertion order.
//
// Behavior highlights:
//   - The caller keeps ownership of s; later edits to s are not observed.
//   - Nil operator sets are normalised to an empty set.
//   - Edges carried by s are stored as given; endpoints are checked by Validate.
//
// Complexity:
//   - Time O(|s.Edges| + |s.Operators|), Space the same.
func (g *Graph[K]) AddState(s State[K]) error {
	var zero K
	if s.ID == zero {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.states == nil {
		g.states = make(map[K]*State[K])
	}
	if _, exists := g.states[s.ID]; exists {
		return fmt.Errorf("%w: %v", ErrStateExists, s.ID)
	}
	g.states[s.ID] = s.clone()
	g.order = append(g.order, s.ID)

	return nil
}

// State returns the live record for id.
// Complexity: O(1).
func (g *Graph[K]) State(id K) (*State[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.states[id]

	return s, ok
}

// HasState reports whether id is registered.
func (g *Graph[K]) HasState(id K) bool {
	_, ok := g.State(id)

	return ok
}

// RemoveState deletes id together with every edge that targets it.
//
// Complexity:
//   - Time O(V + E): one scan of all edge lists.
func (g *Graph[K]) RemoveState(id K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.states[id]; !exists {
		return fmt.Errorf("%w: %v", ErrStateNotFound, id)
	}
	g.removeLocked(map[K]struct{}{id: {}})

	return nil
}

// Retain keeps only the states for which keep returns true, dropping every
// edge incident to a removed state. It returns the number of removed states.
//
// Complexity:
//   - Time O(V + E), Space O(removed).
func (g *Graph[K]) Retain(keep func(id K) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	drop := make(map[K]struct{})
	for _, id := range g.order {
		if !keep(id) {
			drop[id] = struct{}{}
		}
	}
	if len(drop) > 0 {
		g.removeLocked(drop)
	}

	return len(drop)
}

// removeLocked deletes every identity in drop. Caller holds mu for writing.
func (g *Graph[K]) removeLocked(drop map[K]struct{}) {
	kept := g.order[:0]
	for _, id := range g.order {
		if _, gone := drop[id]; gone {
			delete(g.states, id)
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept

	for _, id := range g.order {
		s := g.states[id]
		edges := s.Edges[:0]
		for _, e := range s.Edges {
			if _, gone := drop[e.To]; gone {
				continue
			}
			edges = append(edges, e)
		}
		s.Edges = edges
	}
}

// IDs returns state identities in insertion order.
func (g *Graph[K]) IDs() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// States returns deep copies of all states in insertion order.
func (g *Graph[K]) States() []State[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]State[K], 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.states[id].clone())
	}

	return out
}

// Len returns the number of states.
func (g *Graph[K]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// IsEmpty reports whether the graph has no states.
func (g *Graph[K]) IsEmpty() bool { return g.Len() == 0 }

// Root returns the identity of the sole ROOT state.
//
// Errors:
//   - ErrNoRoot: no state has KindRoot.
//   - ErrMultipleRoots: more than one state has KindRoot.
func (g *Graph[K]) Root() (K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		root  K
		found bool
	)
	for _, id := range g.order {
		if g.states[id].Kind != KindRoot {
			continue
		}
		if found {
			return root, fmt.Errorf("%w: %v and %v", ErrMultipleRoots, root, id)
		}
		root, found = id, true
	}
	if !found {
		return root, ErrNoRoot
	}

	return root, nil
}

// Accepts returns the identities of all ACCEPT states in insertion order.
func (g *Graph[K]) Accepts() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []K
	for _, id := range g.order {
		if g.states[id].Kind == KindAccept {
			out = append(out, id)
		}
	}

	return out
}

// IsAccept reports whether id names an ACCEPT state.
func (g *Graph[K]) IsAccept(id K) bool {
	s, ok := g.State(id)

	return ok && s.Kind == KindAccept
}
