// Package constellation combines genetic design specifications expressed as
// small regular languages over part names.
//
// A specification such as
//
//	promoter . one-or-more {rbs . cds} . terminator
//
// is parsed, built into a state graph (an automaton whose edges carry part
// names), and can then be combined with other specifications:
//
//   - AND keeps only the designs every specification accepts.
//   - MERGE splices the specifications one after another.
//
// Tolerance 0..2 loosens how strictly parts must agree, using the category
// (role → members) information attached to each atom.
//
// Everything is organized under these subpackages:
//
//	stategraph/  shared data model: State, Edge, Graph[K] and operator sets
//	category/    atom → role → members mappings
//	grammar/     participle parser for the specification language
//	builder/     syntax tree → StateGraph construction
//	combine/     cartesian product, operator algebra, strategies and the reducer
//	reach/       forward/backward reachability and dead-state pruning
//	enumerate/   accepted paths and concrete design expansion
//	design/      Compile/Combine facade used by the CLI
//	config/      YAML session files
//
// Quick example:
//
//	a, _ := design.Compile("a", "partA", nil)
//	b, _ := design.Compile("b", "partA", nil)
//	both, _ := design.Combine(combine.And, []*design.Design{a, b}, 0)
//	// both.Paths == [][]string{{"partA"}}
//
//	go install github.com/katalvlaran/constellation/cmd/constellation@latest
package constellation
