package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrPointNotFound is returned by Import when an edge does not start
	// within Tolerance of the current point.
	ErrPointNotFound = errors.New("exchange: point not found within tolerance")

	// ErrMalformed is returned by Import for edge lists that do not
	// describe one path, such as an edge joining a point to itself.
	ErrMalformed = errors.New("exchange: malformed edge list")
)

// ValidationError reports a document field that failed validation.
type ValidationError struct {
	// Field is the path of the offending field, e.g. "edges[2].from.t".
	Field string

	// Reason is a short, human-readable explanation.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error formats as "exchange: invalid Document.{Field}: {Reason}".
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "exchange: invalid Document: " + e.Reason
	}

	return fmt.Sprintf("exchange: invalid Document.%s: %s", e.Field, e.Reason)
}
