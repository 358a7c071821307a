package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrSyntax wraps every parse failure.
var ErrSyntax = errors.New("grammar: syntax error")

// Keywords of the language. An atom may not be spelled like one of them.
const (
	KeywordThen       = "."
	KeywordOr         = "or"
	KeywordOneOrMore  = "one-or-more"
	KeywordZeroOrMore = "zero-or-more"
	KeywordZeroOrOne  = "zero-or-one"
)

var designLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z0-9_-]+`},
	{Name: "Punct", Pattern: `[.{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var designParser = participle.MustBuild[Sequence](
	participle.Lexer(designLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses text into a Sequence. Errors wrap ErrSyntax.
func Parse(text string) (*Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty design", ErrSyntax)
	}
	seq, err := designParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if err = checkAtoms(seq); err != nil {
		return nil, err
	}

	return seq, nil
}

// checkAtoms rejects keywords used in atom position, e.g. "a or or".
func checkAtoms(seq *Sequence) error {
	for _, atom := range seq.Atoms() {
		switch atom {
		case KeywordOr, KeywordOneOrMore, KeywordZeroOrMore, KeywordZeroOrOne:
			return fmt.Errorf("%w: keyword %q used as atom", ErrSyntax, atom)
		}
	}

	return nil
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(text string) *Sequence {
	seq, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return seq
}
