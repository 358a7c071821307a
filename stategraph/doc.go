// Package stategraph defines the automaton representation shared by every
// stage of a constellation pipeline: states with a kind, a display text and
// a set of operators, connected by ordered outgoing edges labelled either by
// an atom or by epsilon.
//
// The Graph type is generic over its identity type K:
//
//   - StateGraph (Graph[string]) is what builders produce and what the
//     combination engine accepts and returns.
//   - ProductGraph (Graph[Pair]) exists only inside one combination step.
//     Its compound identities are flattened back to a StateGraph before the
//     result leaves the engine, so nesting depth never grows.
//
// Operators:
//
//	Then        sequencing marker delimiting sequential blocks
//	Or          choice point
//	OneOrMore   at least one occurrence
//	ZeroOrMore  any number of occurrences
//	ZeroOrOne   optional occurrence
//
// Operator is a closed enumeration, never a free-form string; an Operators
// value is an ordered, duplicate-free set of them.
//
// Well-formedness (see Validate):
//
//   - exactly one KindRoot state;
//   - at least one KindAccept state, none of which carries operators;
//   - every edge resolves to a state present in the graph.
//
// Determinism:
//
//	IDs(), States() and Accepts() follow insertion order; Atoms() is sorted.
//	Equal() ignores insertion order but compares each state's edge sequence
//	positionally.
//
// Concurrency:
//
//	Catalog reads and writes are guarded by a sync.RWMutex, so several
//	goroutines may read one graph while a product is being built from it.
//	States returned by State() are live records; treat them as read-only.
//
// Errors:
//
//	ErrEmptyID          - zero value identity supplied.
//	ErrStateExists      - AddState with an identity already present.
//	ErrStateNotFound    - lookup or edge endpoint references a missing state.
//	ErrEmptyAtom        - atom edge without text.
//	ErrNoRoot           - no ROOT state.
//	ErrMultipleRoots    - more than one ROOT state.
//	ErrNoAccept         - no ACCEPT state.
//	ErrAcceptOperators  - an ACCEPT state carries operators.
//	ErrUnknownOperator  - text does not name an Operator.
package stategraph
