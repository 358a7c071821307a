// SPDX-License-Identifier: MIT
// Package: constellation/builder
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import "log/slog"

// BuilderOption customizes Build by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	// State ID strategy: creation index -> ID.
	idFn func(int) string
	// Logger for construction diagnostics.
	logger *slog.Logger
}

// WithIDScheme sets the deterministic state ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLogger routes construction diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// newBuilderConfig returns the defaults (decimal IDs, silent logger) with
// opts applied in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
