package path

import (
	"strings"

	"github.com/katalvlaran/orbiloops/boundary"
)

// Aliases so callers of this package rarely need to import boundary.
type (
	Endpoint = boundary.Endpoint
	Edge     = boundary.Edge
	Segment  = boundary.Segment
)

// Phase is the lifecycle stage of a State.
type Phase uint8

const (
	Empty Phase = iota
	Open
	Closed
)

// String returns "empty", "open" or "closed".
func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// FirstOrder fixes the relative order of the two points of a first edge
// whose ends lie in the same class.
type FirstOrder uint8

const (
	// ToAfterFrom places the end ordinal right after the start ordinal.
	ToAfterFrom FirstOrder = iota
	// ToBeforeFrom places the end ordinal right before the start ordinal.
	ToBeforeFrom
)

// String returns "after-start" or "before-start".
func (o FirstOrder) String() string {
	if o == ToBeforeFrom {
		return "before-start"
	}

	return "after-start"
}

// ParseFirstOrder accepts "after-start"/"after" and "before-start"/"before".
func ParseFirstOrder(s string) (FirstOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after-start", "after", "":
		return ToAfterFrom, true
	case "before-start", "before":
		return ToBeforeFrom, true
	default:
		return ToAfterFrom, false
	}
}
