package orbifold

import (
	"errors"
	"strconv"
)

// ErrUnknownType is returned by Lookup for a Type outside {P2, P3, P4}.
var ErrUnknownType = errors.New("orbifold: unknown orbifold type")

// ParseError is returned when text does not name a known Type or Side.
//
// Kind is the logical name of the value being parsed ("Type" or "Side") and
// Value is the rejected input, kept verbatim for diagnostics.
type ParseError struct {
	Kind  string
	Value string
}

// Error formats as "orbifold: invalid {Kind} value: {Value}".
func (e *ParseError) Error() string {
	return "orbifold: invalid " + e.Kind + " value: " + strconv.Quote(e.Value)
}

// MarshalError is returned when an invalid Type or Side would be encoded.
type MarshalError struct {
	Kind  string
	Value int
}

// Error formats as "orbifold: cannot marshal invalid {Kind} value: {Value}".
func (e *MarshalError) Error() string {
	return "orbifold: cannot marshal invalid " + e.Kind + " value: " + strconv.Itoa(e.Value)
}
