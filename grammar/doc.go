// Package grammar parses the constellation design language.
//
// A design is a sequence of blocks separated by "." (THEN). A block is one
// or more terms separated by "or". A term is an atom, a braced sub-sequence,
// or a quantifier applied to a term:
//
//	Sequence   := Expression ("." Expression)*
//	Expression := Term ("or" Term)*
//	Term       := ("one-or-more" | "zero-or-more" | "zero-or-one") Term
//	            | "{" Sequence "}"
//	            | Atom
//	Atom       := [A-Za-z0-9_-]+
//
// Example:
//
//	promoter . zero-or-more {rbs . cds} . terminator
//
// Parse returns the syntax tree; builder.Build turns it into a state graph.
package grammar
