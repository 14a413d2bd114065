package path

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongPhase is returned when an operation is called in a phase
	// that does not allow it.
	ErrWrongPhase = errors.New("path: operation not allowed in this phase")

	// ErrSelfTouch rejects a segment on the current point's own side that
	// touches the current point's ordinal.
	ErrSelfTouch = errors.New("path: segment touches the current point on its own side")

	// ErrCrossing rejects an edge that would cross an existing edge.
	ErrCrossing = errors.New("path: edge crosses an existing edge")

	// ErrClassMismatch rejects closing when the current point and the first
	// point lie in different identification classes.
	ErrClassMismatch = errors.New("path: current and first point are in different classes")

	// ErrNotAdjacent rejects closing when the current and first ordinals
	// are not neighbours.
	ErrNotAdjacent = errors.New("path: current and first point are not adjacent")
)

// Reason classifies a rejected operation.
type Reason uint8

const (
	// ReasonNone marks an accepted operation.
	ReasonNone Reason = iota
	ReasonWrongPhase
	ReasonSelfTouch
	ReasonCrossing
	ReasonClassMismatch
	ReasonNotAdjacent
)

var reasonNames = [...]string{
	ReasonNone:          "ok",
	ReasonWrongPhase:    "wrong-phase",
	ReasonSelfTouch:     "self-touch",
	ReasonCrossing:      "crossing",
	ReasonClassMismatch: "class-mismatch",
	ReasonNotAdjacent:   "not-adjacent",
}

// String returns a short kebab-case label.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("reason(%d)", uint8(r))
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonWrongPhase:
		return ErrWrongPhase
	case ReasonSelfTouch:
		return ErrSelfTouch
	case ReasonCrossing:
		return ErrCrossing
	case ReasonClassMismatch:
		return ErrClassMismatch
	case ReasonNotAdjacent:
		return ErrNotAdjacent
	default:
		return nil
	}
}

// Validation is the outcome of a dry-run check. The zero value is an
// accepted move. EdgeIndex names the offending edge for ReasonCrossing and
// is -1 otherwise.
type Validation struct {
	Reason    Reason
	EdgeIndex int
}

func accepted() Validation { return Validation{Reason: ReasonNone, EdgeIndex: -1} }

func rejected(r Reason) Validation { return Validation{Reason: r, EdgeIndex: -1} }

// OK reports whether the move is legal.
func (v Validation) OK() bool { return v.Reason == ReasonNone }

// Err returns nil for an accepted move and a *ValidationError otherwise.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}

	return &ValidationError{Reason: v.Reason, EdgeIndex: v.EdgeIndex}
}

// ValidationError reports why a PathState transition was refused.
type ValidationError struct {
	Reason    Reason
	EdgeIndex int
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Reason == ReasonCrossing && e.EdgeIndex >= 0 {
		return fmt.Sprintf("%v (edge %d)", e.Reason.sentinel(), e.EdgeIndex)
	}
	if err := e.Reason.sentinel(); err != nil {
		return err.Error()
	}

	return "path: " + e.Reason.String()
}

// Unwrap returns the sentinel matching Reason.
func (e *ValidationError) Unwrap() error { return e.Reason.sentinel() }
