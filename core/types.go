// Package core: sign type and sentinel errors for signed-network primitives.
package core

import "errors"

// Sentinel errors for SignedMatrix construction and access.
// Callers branch on semantics with errors.Is; implementations may attach
// context via fmt.Errorf("...: %w", ErrX) at the call site.
var (
	// ErrNonSquare indicates the input table is not n×n.
	ErrNonSquare = errors.New("core: sign table must be square")
	// ErrBadSign indicates an off-diagonal entry that is neither +1 nor -1.
	ErrBadSign = errors.New("core: edge sign must be +1 or -1")
	// ErrAsymmetric indicates sign(i,j) != sign(j,i) for some pair.
	ErrAsymmetric = errors.New("core: sign table is not symmetric")
	// ErrLabelCount indicates the label count differs from the node count.
	ErrLabelCount = errors.New("core: label count does not match node count")
	// ErrOutOfRange indicates a node index outside [0, n).
	ErrOutOfRange = errors.New("core: node index out of range")
	// ErrSelfLoop indicates a diagonal query; the diagonal is not an edge.
	ErrSelfLoop = errors.New("core: self-loop is not a valid edge")
	// ErrNilMatrix indicates a nil *SignedMatrix argument.
	ErrNilMatrix = errors.New("core: matrix is nil")
)

// Sign encodes a pairwise relationship in a signed network.
// The zero value is deliberately invalid: a complete signed graph has no
// "absent edge" state, and construction rejects anything but ±1.
type Sign int8

const (
	// Positive marks a friendly (+1) relationship.
	Positive Sign = 1
	// Negative marks a hostile (-1) relationship.
	Negative Sign = -1
)

// Valid reports whether s is one of the two admissible edge signs.
func (s Sign) Valid() bool {
	return s == Positive || s == Negative
}

// String returns "+" for Positive, "-" for Negative, and "?" otherwise.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return "?"
	}
}
