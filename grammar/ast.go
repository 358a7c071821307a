package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sequence is a THEN-chain of expressions.
type Sequence struct {
	Pos lexer.Position

	Blocks []*Expression `@@ ( "." @@ )*`
}

// Expression is an OR-list of terms. A single term is not an OR.
type Expression struct {
	Pos lexer.Position

	Alternatives []*Term `@@ ( "or" @@ )*`
}

// Term is exactly one of: quantified term, braced group, atom.
type Term struct {
	Pos lexer.Position

	Quantified *Quantified `  @@`
	Group      *Sequence   `| "{" @@ "}"`
	Atom       string      `| @Word`
}

// Quantified applies one quantifier keyword to a term.
type Quantified struct {
	Pos lexer.Position

	Quantifier string `@( "one-or-more" | "zero-or-more" | "zero-or-one" )`
	Term       *Term  `@@`
}

// IsOr reports whether the expression branches.
func (e *Expression) IsOr() bool { return len(e.Alternatives) > 1 }

// String renders the sequence in canonical form, e.g. "a . {b or c}".
func (s *Sequence) String() string {
	parts := make([]string, len(s.Blocks))
	for i, b := range s.Blocks {
		parts[i] = b.String()
	}

	return strings.Join(parts, " . ")
}

func (e *Expression) String() string {
	parts := make([]string, len(e.Alternatives))
	for i, t := range e.Alternatives {
		parts[i] = t.String()
	}

	return strings.Join(parts, " or ")
}

func (t *Term) String() string {
	switch {
	case t.Quantified != nil:
		return t.Quantified.Quantifier + " " + t.Quantified.Term.String()
	case t.Group != nil:
		return "{" + t.Group.String() + "}"
	default:
		return t.Atom
	}
}

// Atoms returns the distinct atom names in order of first appearance.
func (s *Sequence) Atoms() []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	var walkSeq func(*Sequence)
	var walkTerm func(*Term)
	walkTerm = func(t *Term) {
		switch {
		case t.Quantified != nil:
			walkTerm(t.Quantified.Term)
		case t.Group != nil:
			walkSeq(t.Group)
		default:
			if _, dup := seen[t.Atom]; !dup {
				seen[t.Atom] = struct{}{}
				out = append(out, t.Atom)
			}
		}
	}
	walkSeq = func(s *Sequence) {
		for _, b := range s.Blocks {
			for _, t := range b.Alternatives {
				walkTerm(t)
			}
		}
	}
	walkSeq(s)

	return out
}
