// SPDX-License-Identifier: MIT
// Package: constellation/combine
//
// errors.go: sentinel errors for the combination engine.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Context is attached with %w at the call site.
//   - "No consistent combination" is never an error: it is an empty graph.

package combine

import "errors"

// ErrInvalidMode indicates a combination mode other than AND or MERGE.
var ErrInvalidMode = errors.New("combine: invalid combine method")

// ErrInvalidTolerance indicates a tolerance outside the closed range 0..2.
var ErrInvalidTolerance = errors.New("combine: tolerance out of range")

// ErrTooFewGraphs indicates that fewer than two graphs were supplied.
var ErrTooFewGraphs = errors.New("combine: at least two graphs are required")

// ErrCategoryMismatch indicates that graphs and category mappings are not parallel.
var ErrCategoryMismatch = errors.New("combine: categories do not match graphs")

// ErrNilGraph indicates a nil input graph.
var ErrNilGraph = errors.New("combine: graph is nil")

// ErrInvalidGraph indicates an input graph that violates the state graph invariants.
var ErrInvalidGraph = errors.New("combine: invalid input graph")

// ErrIdentityCollision indicates two product identities flattening to one token.
var ErrIdentityCollision = errors.New("combine: flattened identity collision")

// ErrOptionViolation indicates an invalid functional option.
var ErrOptionViolation = errors.New("combine: invalid option")
