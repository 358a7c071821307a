// SPDX-License-Identifier: MIT
// Package: constellation/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using builderErrorf (keeps %w).
//   • Algorithms do not panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNilSequence indicates that Build received no syntax tree.
var ErrNilSequence = errors.New("builder: sequence is nil")

// ErrMalformedTerm indicates a syntax tree node with none of its variants set,
// which Parse never produces but hand-built trees may.
var ErrMalformedTerm = errors.New("builder: malformed term")

// ErrConstructFailed indicates that the graph could not be assembled, for
// example because the ID scheme produced an empty or repeated identifier.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tokens used as error context.
const (
	MethodBuild      = "Build"
	MethodFromSource = "FromSource"
)

// builderErrorf prefixes err with the method context, keeping err in the
// chain: "<Method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
