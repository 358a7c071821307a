// File: operators.go
// Role: Closed Operator enumeration and the ordered Operators set.
// Determinism:
//   - Operators keeps insertion order; Dedup keeps the first occurrence.
//   - Equal compares as sets (order-insensitive).

package stategraph

import (
	"fmt"
	"strings"
)

// Operator is a quantifier or sequencing marker carried by a state.
// The zero value is not a valid Operator.
type Operator uint8

const (
	// Then delimits sequential blocks for later traversal.
	Then Operator = iota + 1
	// Or marks a choice point.
	Or
	// OneOrMore marks a block that repeats at least once.
	OneOrMore
	// ZeroOrMore marks a block that may repeat any number of times.
	ZeroOrMore
	// ZeroOrOne marks an optional block.
	ZeroOrOne
)

// AllOperators lists every Operator in declaration order.
var AllOperators = []Operator{Then, Or, OneOrMore, ZeroOrMore, ZeroOrOne}

// String returns the canonical operator name.
func (op Operator) String() string {
	switch op {
	case Then:
		return "Then"
	case Or:
		return "Or"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrMore:
		return "ZeroOrMore"
	case ZeroOrOne:
		return "ZeroOrOne"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
}

// Valid reports whether op is one of the declared operators.
func (op Operator) Valid() bool {
	switch op {
	case Then, Or, OneOrMore, ZeroOrMore, ZeroOrOne:
		return true
	default:
		return false
	}
}

// IsQuantifier reports whether op is one of the three repetition operators.
func (op Operator) IsQuantifier() bool {
	switch op {
	case OneOrMore, ZeroOrMore, ZeroOrOne:
		return true
	case Then, Or:
		return false
	default:
		return false
	}
}

// ParseOperator maps a canonical name (case-insensitive) back to its Operator.
func ParseOperator(s string) (Operator, error) {
	for _, op := range AllOperators {
		if strings.EqualFold(op.String(), s) {
			return op, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// MarshalText implements encoding.TextMarshaler.
func (op Operator) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, uint8(op))
	}

	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operator) UnmarshalText(text []byte) error {
	parsed, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*op = parsed

	return nil
}

// Operators is an ordered set of operators attached to one state.
// Methods never mutate the receiver; they return a new slice.
type Operators []Operator

// NewOperators returns a duplicate-free set holding ops in the given order.
func NewOperators(ops ...Operator) Operators {
	return Operators(ops).Dedup()
}

// Has reports whether op is a member.
func (s Operators) Has(op Operator) bool {
	for _, o := range s {
		if o == op {
			return true
		}
	}

	return false
}

// Add appends op when it is not already present.
func (s Operators) Add(op Operator) Operators {
	if s.Has(op) {
		return s.Clone()
	}
	out := make(Operators, 0, len(s)+1)
	out = append(out, s...)

	return append(out, op)
}

// Prepend places op in front of the existing members, removing any later
// occurrence of it.
func (s Operators) Prepend(op Operator) Operators {
	out := make(Operators, 0, len(s)+1)
	out = append(out, op)
	for _, o := range s {
		if o != op {
			out = append(out, o)
		}
	}

	return out
}

// Dedup keeps the first occurrence of each operator.
func (s Operators) Dedup() Operators {
	if s == nil {
		return Operators{}
	}
	seen := make(map[Operator]struct{}, len(s))
	out := make(Operators, 0, len(s))
	for _, o := range s {
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}

	return out
}

// Equal reports set equality, ignoring order.
func (s Operators) Equal(other Operators) bool {
	a, b := s.Dedup(), other.Dedup()
	if len(a) != len(b) {
		return false
	}
	for _, o := range a {
		if !b.Has(o) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy (never nil).
func (s Operators) Clone() Operators {
	out := make(Operators, len(s))
	copy(out, s)

	return out
}

// String renders the set as "[Then OneOrMore]".
func (s Operators) String() string {
	parts := make([]string, len(s))
	for i, o := range s {
		parts[i] = o.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
