package enumerate

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Paths.
	ErrGraphNil = errors.New("enumerate: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("enumerate: invalid option")
)

// Option configures Paths.
type Option func(*Options)

// Options holds the walk bounds.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxCycles bounds how often one edge may be re-traversed on a path.
	MaxCycles int

	// MaxPaths stops the walk after that many distinct paths; 0 means no limit.
	MaxPaths int

	err error
}

// DefaultOptions returns Background context, MaxCycles 0, no path limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCycles sets the per-edge reuse bound.
func WithMaxCycles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max cycles must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxCycles = n
	}
}

// WithMaxPaths caps the number of distinct paths returned.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max paths must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
