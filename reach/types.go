// Package reach provides tunable options and error definitions
// for reachability walks over a stategraph.Graph.
package reach

import (
	"errors"
	"fmt"
)

// Sentinel errors for reachability walks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrStartNotFound is returned when a source or target is absent.
	ErrStartNotFound = errors.New("reach: start state not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures a walk via functional arguments.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called with the depth of every visited state, in visit order.
	OnVisit func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(int) {},
	}
}

// WithMaxDepth limits the walk to states at most d edges away from a source.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback invoked once per visited state.
func WithOnVisit(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one walk.
type Result[K comparable] struct {
	// Order lists visited states in visit sequence.
	Order []K
	// Depth maps each visited state to its distance from the nearest source.
	Depth map[K]int
}

// Reached reports whether id was visited.
func (r *Result[K]) Reached(id K) bool {
	_, ok := r.Depth[id]

	return ok
}
