package builder

import (
	"fmt"

	"github.com/katalvlaran/constellation/grammar"
	"github.com/katalvlaran/constellation/stategraph"
)

// quantifiers maps grammar keywords to state operators.
var quantifiers = map[string]stategraph.Operator{
	grammar.KeywordOneOrMore:  stategraph.OneOrMore,
	grammar.KeywordZeroOrMore: stategraph.ZeroOrMore,
	grammar.KeywordZeroOrOne:  stategraph.ZeroOrOne,
}

// graphBuilder owns the graph under construction and its ID counter.
type graphBuilder struct {
	cfg  builderConfig
	g    *stategraph.StateGraph
	next int
}

// Build constructs the state graph of seq.
//
// Errors:
//   - ErrNilSequence: seq is nil.
//   - ErrMalformedTerm: a node of seq has none of its variants set.
//   - ErrConstructFailed: the ID scheme produced an empty or repeated ID
//     (the underlying stategraph error is kept in the chain).
//
// Complexity: O(n) states and edges for a design of n syntax nodes.
func Build(seq *grammar.Sequence, opts ...BuilderOption) (*stategraph.StateGraph, error) {
	if seq == nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, ErrNilSequence)
	}
	b := &graphBuilder{
		cfg: newBuilderConfig(opts...),
		g:   stategraph.NewGraph[string](0),
	}

	root, err := b.state(stategraph.KindRoot, stategraph.TextRoot)
	if err != nil {
		return nil, err
	}
	end, err := b.sequence(seq, root)
	if err != nil {
		return nil, err
	}
	accept, err := b.state(stategraph.KindAccept, stategraph.TextAccept)
	if err != nil {
		return nil, err
	}
	if err = b.epsilon(end, accept); err != nil {
		return nil, err
	}

	b.cfg.logger.Debug("design built",
		"design", seq.String(),
		"states", b.g.Len(),
		"edges", b.g.EdgeCount(),
	)

	return b.g, nil
}

// FromSource parses text and builds its graph. Syntax errors wrap grammar.ErrSyntax.
func FromSource(text string, opts ...BuilderOption) (*stategraph.StateGraph, error) {
	seq, err := grammar.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFromSource, err)
	}

	return Build(seq, opts...)
}

// state adds a fresh state and returns its identity.
func (b *graphBuilder) state(kind stategraph.Kind, text string, ops ...stategraph.Operator) (string, error) {
	idx := b.next
	b.next++
	id := b.cfg.idFn(idx)
	err := b.g.AddState(stategraph.State[string]{
		ID:        id,
		Kind:      kind,
		Text:      text,
		Operators: stategraph.NewOperators(ops...),
	})
	if err != nil {
		return "", builderErrorf(MethodBuild, fmt.Errorf("%w: %w", ErrConstructFailed, err), "state #%d", idx)
	}

	return id, nil
}

func (b *graphBuilder) epsilon(from, to string) error {
	return b.g.AddEdge(stategraph.Epsilon(from, to))
}

// sequence threads the blocks of seq starting at from and returns the exit.
func (b *graphBuilder) sequence(seq *grammar.Sequence, from string) (string, error) {
	if len(seq.Blocks) == 0 {
		return "", builderErrorf(MethodBuild, ErrMalformedTerm, "empty sequence at %s", seq.Pos)
	}
	cur := from
	for i, blk := range seq.Blocks {
		if i > 0 {
			start, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon, stategraph.Then)
			if err != nil {
				return "", err
			}
			if err = b.epsilon(cur, start); err != nil {
				return "", err
			}
			cur = start
		}
		var err error
		if cur, err = b.expression(blk, cur); err != nil {
			return "", err
		}
	}

	return cur, nil
}

// expression builds a single term directly, or an OR fan-out/fan-in.
func (b *graphBuilder) expression(e *grammar.Expression, from string) (string, error) {
	switch len(e.Alternatives) {
	case 0:
		return "", builderErrorf(MethodBuild, ErrMalformedTerm, "empty expression at %s", e.Pos)
	case 1:
		return b.term(e.Alternatives[0], from)
	}

	or, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon, stategraph.Or)
	if err != nil {
		return "", err
	}
	if err = b.epsilon(from, or); err != nil {
		return "", err
	}
	ends := make([]string, 0, len(e.Alternatives))
	for _, alt := range e.Alternatives {
		end, err := b.term(alt, or)
		if err != nil {
			return "", err
		}
		ends = append(ends, end)
	}
	exit, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon)
	if err != nil {
		return "", err
	}
	for _, end := range ends {
		if err = b.epsilon(end, exit); err != nil {
			return "", err
		}
	}

	return exit, nil
}

func (b *graphBuilder) term(t *grammar.Term, from string) (string, error) {
	switch {
	case t == nil:
		return "", builderErrorf(MethodBuild, ErrMalformedTerm, "nil term")
	case t.Quantified != nil:
		return b.quantified(t.Quantified, from)
	case t.Group != nil:
		return b.sequence(t.Group, from)
	case t.Atom != "":
		to, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon)
		if err != nil {
			return "", err
		}

		return to, b.g.AddEdge(stategraph.Atom(from, to, t.Atom))
	default:
		return "", builderErrorf(MethodBuild, ErrMalformedTerm, "term at %s", t.Pos)
	}
}

// quantified wraps the inner term between a quantifier state and an exit,
// adding the loop and skip edges the quantifier allows.
func (b *graphBuilder) quantified(q *grammar.Quantified, from string) (string, error) {
	op, ok := quantifiers[q.Quantifier]
	if !ok || q.Term == nil {
		return "", builderErrorf(MethodBuild, ErrMalformedTerm, "quantifier %q at %s", q.Quantifier, q.Pos)
	}

	head, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon, op)
	if err != nil {
		return "", err
	}
	if err = b.epsilon(from, head); err != nil {
		return "", err
	}
	end, err := b.term(q.Term, head)
	if err != nil {
		return "", err
	}
	exit, err := b.state(stategraph.KindEpsilon, stategraph.TextEpsilon)
	if err != nil {
		return "", err
	}
	if err = b.epsilon(end, exit); err != nil {
		return "", err
	}
	if op == stategraph.OneOrMore || op == stategraph.ZeroOrMore {
		if err = b.epsilon(end, head); err != nil {
			return "", err
		}
	}
	if op == stategraph.ZeroOrMore || op == stategraph.ZeroOrOne {
		if err = b.epsilon(head, exit); err != nil {
			return "", err
		}
	}

	return exit, nil
}
