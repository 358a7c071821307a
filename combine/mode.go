package combine

import (
	"fmt"
	"strings"
)

// Mode selects the combination strategy.
// The zero value is not a valid Mode.
type Mode uint8

const (
	// And requires joint satisfaction of both automata.
	And Mode = iota + 1
	// Merge splices the automata sequentially.
	Merge
)

// String returns the canonical upper-case token.
func (m Mode) String() string {
	switch m {
	case And:
		return "AND"
	case Merge:
		return "MERGE"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m names a strategy.
func (m Mode) Valid() bool { return m == And || m == Merge }

// ParseMode maps "and"/"merge" (any case, surrounding space ignored) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AND":
		return And, nil
	case "MERGE":
		return Merge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Tolerance controls how strictly strategies require atoms to match:
// 0 is strictest, 2 is loosest.
type Tolerance int

// Tolerance bounds.
const (
	MinTolerance Tolerance = 0
	MaxTolerance Tolerance = 2
)

// Validate returns ErrInvalidTolerance when t is outside MinTolerance..MaxTolerance.
func (t Tolerance) Validate() error {
	if t < MinTolerance || t > MaxTolerance {
		return fmt.Errorf("%w: %d", ErrInvalidTolerance, int(t))
	}

	return nil
}
