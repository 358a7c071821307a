// Package combine is the automaton combination engine: it joins two or more
// state graphs into one automaton expressing their conjunction (AND) or
// their sequential splicing (MERGE).
//
// Pipeline of one combination step
//
//	left, right ─► Cartesian ─► Strategy.Populate ─► Rename ─► Strategy.Prune
//	               (+ CombineOperators per pair)
//
//   - Cartesian materialises every (left, right) state pair. Kinds, texts
//     and operator sets of the pairs follow fixed rules; no edges are added.
//   - CombineOperators decides which quantifiers a pair inherits. It is
//     deliberately order-sensitive: the left operand is the accumulated
//     structure.
//   - A Strategy (AndStrategy, MergeStrategy) adds the jointly valid edges,
//     records the surviving category information, and after renaming prunes
//     every state that does not lie on a ROOT → ACCEPT path.
//   - Rename flattens each Pair identity into "left-right" so that repeated
//     combination never nests identities.
//
// Reduction
//
//	Combine folds N ≥ 2 graphs left to right: graphs[0] with graphs[1], then
//	the running result with graphs[2], and so on. The running result is
//	always the left operand. Because CombineOperators is not associative,
//	the fold order is part of the contract.
//
// Degenerate results
//
//	When no jointly valid path exists the combined graph has no states and
//	the category mapping is reported empty. This is data, not an error.
//
// State
//
//	Every run is owned by a Session (identifier, logger, strategies). There
//	is no package-level mutable state; concurrent Sessions are independent.
//
// Errors
//
//	ErrInvalidMode        - mode is neither AND nor MERGE (fatal, no result).
//	ErrInvalidTolerance   - tolerance outside 0..2.
//	ErrTooFewGraphs       - fewer than two graphs supplied.
//	ErrCategoryMismatch   - category list length differs from graph list length.
//	ErrNilGraph           - a nil graph was supplied.
//	ErrInvalidGraph       - an input graph violates the state graph invariants.
//	ErrIdentityCollision  - two product identities flatten to the same token.
package combine
