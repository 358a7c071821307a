// Package reach provides breadth-first reachability over a stategraph.Graph
// and the dead-path pruning pass every combination strategy runs before it
// hands a graph back.
//
// What
//
//   - From: states reachable from a set of sources along edge direction.
//   - To:   states from which a set of targets is reachable (reverse edges).
//   - Prune: drop every state that is not both reachable from ROOT and able
//     to reach some ACCEPT state, together with its incident edges.
//
// Visited bookkeeping lives in the returned Result, never on the states, so a
// graph can be walked concurrently by several readers.
//
// Determinism
//
//	Sources are seeded in the order given and neighbours are enqueued in
//	edge order (From) or in state insertion order (To), so Order is
//	reproducible.
//
// Complexity (V = states, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if a source or target is not in the graph.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
package reach
