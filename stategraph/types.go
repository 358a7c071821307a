// SPDX-License-Identifier: MIT
// types.go declares State, Edge, Pair and the generic Graph catalog,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyID         - the zero identity was supplied.
//	ErrStateExists     - a state with this identity is already registered.
//	ErrStateNotFound   - the requested state does not exist.
//	ErrEmptyAtom       - an atom edge was added without text.
//	ErrNoRoot          - the graph has no ROOT state.
//	ErrMultipleRoots   - the graph has more than one ROOT state.
//	ErrNoAccept        - the graph has no ACCEPT state.
//	ErrAcceptOperators - an ACCEPT state carries operators.
//	ErrUnknownOperator - text does not name a known Operator.

package stategraph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for state graph operations.
var (
	// ErrEmptyID indicates that the zero value was used as a state identity.
	ErrEmptyID = errors.New("stategraph: state ID is empty")

	// ErrStateExists indicates AddState was called with a duplicate identity.
	ErrStateExists = errors.New("stategraph: state already exists")

	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("stategraph: state not found")

	// ErrEmptyAtom indicates an atom edge without atom text.
	ErrEmptyAtom = errors.New("stategraph: atom edge has empty text")

	// ErrNoRoot indicates a graph without a ROOT state.
	ErrNoRoot = errors.New("stategraph: no root state")

	// ErrMultipleRoots indicates a graph with more than one ROOT state.
	ErrMultipleRoots = errors.New("stategraph: multiple root states")

	// ErrNoAccept indicates a graph without an ACCEPT state.
	ErrNoAccept = errors.New("stategraph: no accept state")

	// ErrAcceptOperators indicates an ACCEPT state that carries operators.
	ErrAcceptOperators = errors.New("stategraph: accept state carries operators")

	// ErrUnknownOperator indicates an unrecognised operator name or value.
	ErrUnknownOperator = errors.New("stategraph: unknown operator")
)

// Display texts used by builders and by the cartesian product.
const (
	TextRoot    = "root"
	TextAccept  = "accept"
	TextEpsilon = "epsilon"
)

// Kind classifies a state.
type Kind uint8

const (
	// KindEpsilon is an internal pass-through state.
	KindEpsilon Kind = iota
	// KindRoot is the sole entry state.
	KindRoot
	// KindAccept is a terminal state.
	KindAccept
	// KindAtom is an atom-labelled state.
	KindAtom
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "epsilon"
	case KindRoot:
		return "root"
	case KindAccept:
		return "accept"
	case KindAtom:
		return "atom"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// EdgeKind classifies an edge.
type EdgeKind uint8

const (
	// EdgeEpsilon consumes no atom.
	EdgeEpsilon EdgeKind = iota
	// EdgeAtom consumes the atom named by Edge.Text.
	EdgeAtom
)

// String returns the lower-case edge kind name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeEpsilon:
		return "epsilon"
	case EdgeAtom:
		return "atom"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EdgeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Edge is a directed transition between two states of the same graph.
// Several edges may connect the same ordered pair.
type Edge[K comparable] struct {
	From K        `yaml:"from" json:"from"`
	To   K        `yaml:"to" json:"to"`
	Kind EdgeKind `yaml:"kind" json:"kind"`
	// Text is the atom name for EdgeAtom and TextEpsilon otherwise.
	Text string `yaml:"text" json:"text"`
}

// State is one vertex of the automaton.
type State[K comparable] struct {
	ID        K         `yaml:"id" json:"id"`
	Kind      Kind      `yaml:"kind" json:"kind"`
	Text      string    `yaml:"text" json:"text"`
	Operators Operators `yaml:"operators,flow" json:"operators"`
	Edges     []Edge[K] `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// clone deep-copies the state so that no slice is shared with the receiver.
func (s *State[K]) clone() *State[K] {
	out := &State[K]{
		ID:        s.ID,
		Kind:      s.Kind,
		Text:      s.Text,
		Operators: s.Operators.Clone(),
	}
	if len(s.Edges) > 0 {
		out.Edges = make([]Edge[K], len(s.Edges))
		copy(out.Edges, s.Edges)
	}

	return out
}

// Separator joins the two halves of a Pair when it is flattened.
const Separator = "-"

// Pair is the compound identity of a cartesian product state:
// Left comes from the left operand, Right from the right operand.
type Pair struct {
	Left  string
	Right string
}

// Flatten joins the pair into a single scalar identity, left first.
func (p Pair) Flatten() string { return p.Left + Separator + p.Right }

// String implements fmt.Stringer.
func (p Pair) String() string { return "(" + p.Left + ", " + p.Right + ")" }

// Graph is an insertion-ordered catalog of states keyed by identity.
//
// The zero value is ready to use. mu guards order and states.
type Graph[K comparable] struct {
	mu     sync.RWMutex
	order  []K
	states map[K]*State[K]
}

// StateGraph is the scalar-identity graph produced by builders and returned
// by the combination engine.
type StateGraph = Graph[string]

// ProductGraph is the skeleton of one combination step.
type ProductGraph = Graph[Pair]

// NewGraph creates an empty graph with room for sizeHint states.
// Complexity: O(1) plus the map allocation.
func NewGraph[K comparable](sizeHint int) *Graph[K] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Graph[K]{
		order:  make([]K, 0, sizeHint),
		states: make(map[K]*State[K], sizeHint),
	}
}
