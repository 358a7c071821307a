// Package builder turns a parsed design (grammar.Sequence) into a
// stategraph.StateGraph, the automaton consumed by the combination engine.
//
// Construction is Thompson-style. Every graph has exactly one ROOT state and
// one ACCEPT state; the body is threaded between them:
//
//	root ─► body ─► accept
//
//   - Atom a:          from ─a─► t
//   - THEN (a . b):    each block after the first starts at a fresh state
//     carrying the Then operator, entered by an epsilon edge.
//   - OR (a or b):     an Or state fans out to every alternative; each
//     alternative's exit joins a common exit state by epsilon.
//   - one-or-more t:   q[OneOrMore] ─► t ─► exit, plus loop t.exit ─► q.
//   - zero-or-more t:  q[ZeroOrMore] ─► t ─► exit, loop, plus skip q ─► exit.
//   - zero-or-one t:   q[ZeroOrOne] ─► t ─► exit, plus skip q ─► exit.
//
// The package offers the following key components:
//
//   - Build(seq, opts...): graph from a syntax tree.
//   - FromSource(text, opts...): Parse followed by Build.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("q0","q1",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//
// Guarantees:
//
//   - Deterministic: the same text and options always produce the same graph,
//     including state identities and edge order.
//   - No shared counters: the ID counter lives in a per-call value, so
//     concurrent builds are independent.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors wrap package sentinels with method context.
package builder
