// Package design ties the pipeline together: source text is parsed, built
// into a state graph, optionally combined with other designs, and enumerated
// into paths and concrete part lists.
package design

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/combine"
	"github.com/katalvlaran/constellation/enumerate"
	"github.com/katalvlaran/constellation/stategraph"
)

// ErrNoDesigns indicates that Combine received fewer than two designs.
var ErrNoDesigns = errors.New("design: at least two designs are required")

// Design is a compiled (or combined) automaton with its categories and the
// atom sequences it accepts.
type Design struct {
	Name       string                 `yaml:"name" json:"name"`
	Source     string                 `yaml:"source,omitempty" json:"source,omitempty"`
	Graph      *stategraph.StateGraph `yaml:"-" json:"-"`
	Categories category.Map           `yaml:"categories" json:"categories"`
	Paths      [][]string             `yaml:"paths" json:"paths"`
	Steps      []combine.StepStats    `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// Options configures Compile and Combine.
type Options struct {
	Logger      *slog.Logger
	MaxCycles   int
	MaxPaths    int
	Parallelism int
}

// Option is a functional option.
type Option func(*Options)

// WithLogger sets the logger for every stage. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCycles sets the loop unrolling bound used for path enumeration.
func WithMaxCycles(n int) Option { return func(o *Options) { o.MaxCycles = n } }

// WithMaxPaths caps the number of enumerated paths (0 = unlimited).
func WithMaxPaths(n int) Option { return func(o *Options) { o.MaxPaths = n } }

// WithParallelism bounds the combination workers (0 = GOMAXPROCS).
func WithParallelism(n int) Option { return func(o *Options) { o.Parallelism = n } }

func resolve(opts []Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compile parses and builds text and enumerates its paths. cats may be nil.
func Compile(name, text string, cats category.Map, opts ...Option) (*Design, error) {
	o := resolve(opts)
	g, err := builder.FromSource(text, builder.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("design %q: %w", name, err)
	}
	d := &Design{
		Name:       name,
		Source:     strings.TrimSpace(text),
		Graph:      g,
		Categories: cats.Clone(),
	}
	if d.Paths, err = enumerate.Paths(g, pathOptions(o)...); err != nil {
		return nil, fmt.Errorf("design %q: %w", name, err)
	}

	return d, nil
}

// Combine runs the combination engine over the designs' graphs, left to
// right, and enumerates the result. The combined design is named by joining
// the input names with the mode, e.g. "a AND b".
//
// An empty result is returned as a Design with no paths, not as an error.
func Combine(mode combine.Mode, designs []*Design, tol combine.Tolerance, opts ...Option) (*Design, error) {
	if len(designs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNoDesigns, len(designs))
	}
	o := resolve(opts)

	graphs := make([]*stategraph.StateGraph, len(designs))
	cats := make([]category.Map, len(designs))
	names := make([]string, len(designs))
	for i, d := range designs {
		if d == nil {
			return nil, fmt.Errorf("design %d: %w", i, combine.ErrNilGraph)
		}
		graphs[i], cats[i], names[i] = d.Graph, d.Categories, d.Name
	}

	res, err := combine.Combine(mode, graphs, cats, tol,
		combine.WithLogger(o.Logger),
		combine.WithParallelism(o.Parallelism),
	)
	if err != nil {
		return nil, err
	}

	out := &Design{
		Name:       strings.Join(names, " "+mode.String()+" "),
		Graph:      res.Graph,
		Categories: res.Categories,
		Steps:      res.Steps,
	}
	if out.Paths, err = enumerate.Paths(res.Graph, pathOptions(o)...); err != nil {
		return nil, err
	}

	return out, nil
}

// Designs expands the paths into at most limit concrete part lists.
func (d *Design) Designs(limit int) [][]string {
	return enumerate.Designs(d.Paths, d.Categories, limit)
}

// Empty reports whether the design accepts nothing.
func (d *Design) Empty() bool { return d.Graph == nil || d.Graph.IsEmpty() }

func pathOptions(o Options) []enumerate.Option {
	return []enumerate.Option{
		enumerate.WithMaxCycles(o.MaxCycles),
		enumerate.WithMaxPaths(o.MaxPaths),
	}
}
