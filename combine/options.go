package combine

import (
	"fmt"
	"log/slog"
)

// Options configures a Session.
type Options struct {
	// Logger receives step-level diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger
	// Parallelism bounds the goroutines building cartesian rows
	// (0 means GOMAXPROCS).
	Parallelism int

	strategies []Strategy
	err        error
}

// Option is a functional option for NewSession.
type Option func(*Options)

// DefaultOptions returns the baseline: silent logger, GOMAXPROCS workers,
// built-in AND and MERGE strategies.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.DiscardHandler),
		Parallelism: 0,
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism sets the cartesian worker limit. n must be ≥ 0.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: parallelism must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithStrategy replaces the built-in strategy registered for s.Mode().
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s == nil || !s.Mode().Valid() {
			o.err = fmt.Errorf("%w: strategy must serve AND or MERGE", ErrOptionViolation)
			return
		}
		o.strategies = append(o.strategies, s)
	}
}
