package enumerate

import (
	"errors"
	"slices"
	"strings"

	"github.com/katalvlaran/constellation/stategraph"
)

// errEnough stops the walk once MaxPaths paths were found.
var errEnough = errors.New("enumerate: path limit reached")

// edgeKey identifies the idx-th outgoing edge of a state.
type edgeKey struct {
	from string
	idx  int
}

// pathWalker encapsulates the DFS state of one Paths call.
type pathWalker struct {
	graph  *stategraph.StateGraph
	opts   Options
	uses   map[edgeKey]int
	labels []string
	seen   map[string]struct{}
	out    [][]string
}

// Paths returns the distinct atom sequences spelled by ROOT → ACCEPT walks
// of g, sorted lexicographically. An empty graph has no paths.
func Paths(g *stategraph.StateGraph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.IsEmpty() {
		return nil, nil
	}
	root, err := g.Root()
	if err != nil {
		return nil, err
	}

	w := &pathWalker{
		graph: g,
		opts:  o,
		uses:  make(map[edgeKey]int),
		seen:  make(map[string]struct{}),
	}
	if err = w.walk(root); err != nil && !errors.Is(err, errEnough) {
		return nil, err
	}
	slices.SortFunc(w.out, func(a, b []string) int { return slices.Compare(a, b) })

	return w.out, nil
}

func (w *pathWalker) walk(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.graph.IsAccept(id) {
		if err := w.record(); err != nil {
			return err
		}
	}

	edges, err := w.graph.Outgoing(id)
	if err != nil {
		return err
	}
	for i, e := range edges {
		k := edgeKey{from: id, idx: i}
		if w.uses[k] > w.opts.MaxCycles {
			continue
		}
		w.uses[k]++
		if e.Kind == stategraph.EdgeAtom {
			w.labels = append(w.labels, e.Text)
		}
		err = w.walk(e.To)
		if e.Kind == stategraph.EdgeAtom {
			w.labels = w.labels[:len(w.labels)-1]
		}
		w.uses[k]--
		if err != nil {
			return err
		}
	}

	return nil
}

// record stores the current labels unless an equal path was seen.
func (w *pathWalker) record() error {
	key := strings.Join(w.labels, "\x00")
	if _, dup := w.seen[key]; dup {
		return nil
	}
	w.seen[key] = struct{}{}
	w.out = append(w.out, append([]string{}, w.labels...))
	if w.opts.MaxPaths > 0 && len(w.out) >= w.opts.MaxPaths {
		return errEnough
	}

	return nil
}
