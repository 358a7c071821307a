package combine

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/constellation/category"
	"github.com/katalvlaran/constellation/stategraph"
)

// StepStats describes one pairwise combination step.
type StepStats struct {
	Step          int `yaml:"step" json:"step"`
	LeftStates    int `yaml:"left_states" json:"left_states"`
	RightStates   int `yaml:"right_states" json:"right_states"`
	ProductStates int `yaml:"product_states" json:"product_states"`
	Edges         int `yaml:"edges" json:"edges"`
	Pruned        int `yaml:"pruned" json:"pruned"`
	States        int `yaml:"states" json:"states"`
}

// Result is the outcome of a combination.
// An empty Graph with empty Categories means no jointly valid path exists.
type Result struct {
	Graph      *stategraph.StateGraph
	Categories category.Map
	Steps      []StepStats
}

// Empty reports whether the combination is degenerate.
func (r *Result) Empty() bool { return r == nil || r.Graph == nil || r.Graph.IsEmpty() }

// Session owns everything a combination run needs: an identifier for log
// correlation, the logger and the strategy registry. Sessions share nothing,
// so independent combinations may run concurrently on separate Sessions.
// A single Session is also safe for concurrent Combine calls.
type Session struct {
	id         uuid.UUID
	log        *slog.Logger
	workers    int
	strategies map[Mode]Strategy
	steps      atomic.Int64
}

// NewSession builds a Session. Returns ErrOptionViolation on a bad option.
func NewSession(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Session{
		id:         uuid.New(),
		workers:    o.Parallelism,
		strategies: defaultStrategies(),
	}
	for _, st := range o.strategies {
		s.strategies[st.Mode()] = st
	}
	s.log = o.Logger.With("session", s.id.String())

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id.String() }

// StepsRun returns the number of pairwise steps this session has executed.
func (s *Session) StepsRun() int64 { return s.steps.Load() }

// Combine is shorthand for NewSession(opts...) followed by Session.Combine.
func Combine(mode Mode, graphs []*stategraph.StateGraph, cats []category.Map, tol Tolerance, opts ...Option) (*Result, error) {
	s, err := NewSession(opts...)
	if err != nil {
		return nil, err
	}

	return s.Combine(mode, graphs, cats, tol)
}

// Combine folds graphs left to right with the strategy registered for mode:
// ((g0 ⊕ g1) ⊕ g2) ⊕ ... The running result is always the left operand.
//
// cats, when non-nil, must be parallel to graphs; a nil cats means no
// category information for any graph. Inputs are never modified.
//
// Errors:
//   - ErrInvalidMode, ErrInvalidTolerance, ErrTooFewGraphs, ErrCategoryMismatch,
//     ErrNilGraph, ErrInvalidGraph: rejected input, no result.
//   - ErrIdentityCollision: identities clash when flattened.
//
// Finding no jointly valid path is not an error: the Result is Empty.
func (s *Session) Combine(mode Mode, graphs []*stategraph.StateGraph, cats []category.Map, tol Tolerance) (*Result, error) {
	strategy, ok := s.strategies[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if err := tol.Validate(); err != nil {
		return nil, err
	}
	if len(graphs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewGraphs, len(graphs))
	}
	if cats != nil && len(cats) != len(graphs) {
		return nil, fmt.Errorf("%w: %d graphs, %d category maps", ErrCategoryMismatch, len(graphs), len(cats))
	}
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilGraph, i)
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidGraph, i, err)
		}
	}
	catsAt := func(i int) category.Map {
		if cats == nil || cats[i] == nil {
			return category.Map{}
		}

		return cats[i]
	}

	log := s.log.With("mode", mode.String(), "tolerance", int(tol))
	log.Debug("combine started", "graphs", len(graphs))

	res := &Result{
		Graph:      graphs[0].Clone(),
		Categories: catsAt(0).Clone(),
		Steps:      make([]StepStats, 0, len(graphs)-1),
	}
	for i := 1; i < len(graphs); i++ {
		g, c, st, err := s.step(strategy, res.Graph, graphs[i], res.Categories, catsAt(i), tol)
		if err != nil {
			return nil, fmt.Errorf("combine: step %d: %w", i, err)
		}
		st.Step = i
		res.Graph, res.Categories = g, c
		res.Steps = append(res.Steps, st)
		log.Debug("combine step",
			"step", st.Step,
			"product_states", st.ProductStates,
			"edges", st.Edges,
			"pruned", st.Pruned,
			"states", st.States,
		)
	}

	if res.Empty() {
		log.Warn("combination has no valid path")
	} else {
		log.Debug("combine finished", "states", res.Graph.Len(), "atoms", len(res.Categories))
	}

	return res, nil
}

// step runs one pairwise combination: cartesian, populate, rename, prune,
// and restricts the categories to the atoms still on an edge.
func (s *Session) step(
	strategy Strategy,
	left, right *stategraph.StateGraph,
	lc, rc category.Map,
	tol Tolerance,
) (*stategraph.StateGraph, category.Map, StepStats, error) {
	s.steps.Add(1)
	st := StepStats{LeftStates: left.Len(), RightStates: right.Len()}

	skel := cartesian(left, right, s.workers)
	st.ProductStates = skel.Len()

	recorded := category.Map{}
	if err := strategy.Populate(skel, left, right, lc, rc, recorded, tol); err != nil {
		return nil, nil, st, err
	}
	st.Edges = skel.EdgeCount()

	flat, err := Rename(skel)
	if err != nil {
		return nil, nil, st, err
	}
	st.Pruned = strategy.Prune(flat)
	st.States = flat.Len()

	return flat, recorded.Restrict(flat.Atoms()), st, nil
}
