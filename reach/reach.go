package reach

import (
	"fmt"

	"github.com/katalvlaran/constellation/stategraph"
)

// queueItem pairs a state with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	opts  Options
	next  func(id K) []K
	queue []queueItem[K]
	res   *Result[K]
}

// From walks g along edge direction starting at every source.
// Returns ErrGraphNil, ErrStartNotFound or ErrOptionViolation on bad input.
func From[K comparable](g *stategraph.Graph[K], sources []K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	next := func(id K) []K {
		edges, _ := g.Outgoing(id)
		out := make([]K, len(edges))
		for i, e := range edges {
			out[i] = e.To
		}

		return out
	}

	return run(g, sources, next, opts)
}

// To walks g against edge direction starting at every target, so the result
// holds every state from which some target is reachable.
func To[K comparable](g *stategraph.Graph[K], targets []K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	rev := g.Incoming()
	next := func(id K) []K { return rev[id] }

	return run(g, targets, next, opts)
}

func run[K comparable](g *stategraph.Graph[K], sources []K, next func(K) []K, opts []Option) (*Result[K], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.HasState(s) {
			return nil, fmt.Errorf("%w: %v", ErrStartNotFound, s)
		}
	}

	n := g.Len()
	w := &walker[K]{
		opts:  o,
		next:  next,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Order: make([]K, 0, n),
			Depth: make(map[K]int, n),
		},
	}
	for _, s := range sources {
		w.enqueue(s, 0)
	}
	w.loop()

	return w.res, nil
}

// enqueue marks id seen at depth d unless it was already seen.
func (w *walker[K]) enqueue(id K, d int) {
	if _, seen := w.res.Depth[id]; seen {
		return
	}
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty.
func (w *walker[K]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.opts.OnVisit(item.depth)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.id) {
			w.enqueue(nbr, nextDepth)
		}
	}
}
