package orbifold

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Type selects the wallpaper group whose orbifold is being drawn on.
// The zero value is invalid so that an unset field is caught by Valid.
type Type uint8

const (
	// P2 has four 180° rotation centres; its square domain is cut into
	// eight half-side zones.
	P2 Type = iota + 1
	// P3 has 120° rotation centres; its domain is a 60°/120° rhombus.
	P3
	// P4 has 90° rotation centres; its domain is a square.
	P4
)

// String constants used for text, YAML and JSON encodings of Type.
const (
	P2Str = "p2"
	P3Str = "p3"
	P4Str = "p4"
)

// Types lists every valid Type in declaration order.
func Types() []Type { return []Type{P2, P3, P4} }

// ParseType converts "p2", "p3" or "p4" (any case, surrounding spaces
// ignored) into a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case P2Str:
		return P2, nil
	case P3Str:
		return P3, nil
	case P4Str:
		return P4, nil
	default:
		return 0, &ParseError{Kind: "Type", Value: s}
	}
}

// String returns the lowercase name of t, or "unknown".
func (t Type) String() string {
	switch t {
	case P2:
		return P2Str
	case P3:
		return P3Str
	case P4:
		return P4Str
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of P2, P3, P4.
func (t Type) Valid() bool { return t >= P2 && t <= P4 }

// MarshalText implements encoding.TextMarshaler; JSON uses it too.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &MarshalError{Kind: "Type", Value: int(t)}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Type) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &MarshalError{Kind: "Type", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &ParseError{Kind: "Type", Value: value.Tag}
	}
	return t.UnmarshalText([]byte(value.Value))
}

// Side names one atomic boundary arc of a fundamental domain. p3 and p4 use
// whole sides; p2 uses half-side zones. Every table in this package is an
// array indexed by Side.
type Side uint8

const (
	North Side = iota
	East
	South
	West
	North1
	North2
	East1
	East2
	South1
	South2
	West1
	West2

	sideCount
)

var sideNames = [sideCount]struct{ long, short string }{
	North:  {"north", "N"},
	East:   {"east", "E"},
	South:  {"south", "S"},
	West:   {"west", "W"},
	North1: {"north-1", "N1"},
	North2: {"north-2", "N2"},
	East1:  {"east-1", "E1"},
	East2:  {"east-2", "E2"},
	South1: {"south-1", "S1"},
	South2: {"south-2", "S2"},
	West1:  {"west-1", "W1"},
	West2:  {"west-2", "W2"},
}

// ParseSide accepts long names ("north", "north-1"), short names ("n",
// "N1") and the compact form "north1", case-insensitively.
func ParseSide(s string) (Side, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sideNames {
		long := n.long
		short := strings.ToLower(n.short)
		if in == long || in == short || in == strings.ReplaceAll(long, "-", "") {
			return Side(i), nil
		}
	}
	return 0, &ParseError{Kind: "Side", Value: s}
}

// String returns the long lowercase name ("north", "east-2"), or "unknown".
func (s Side) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sideNames[s].long
}

// Short returns the compact label ("N", "E2") used in loop signatures.
func (s Side) Short() string {
	if !s.Valid() {
		return "?"
	}
	return sideNames[s].short
}

// Valid reports whether s is a declared Side.
func (s Side) Valid() bool { return s < sideCount }

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &MarshalError{Kind: "Side", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	v, err := ParseSide(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Side) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &MarshalError{Kind: "Side", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (s *Side) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &ParseError{Kind: "Side", Value: value.Tag}
	}
	return s.UnmarshalText([]byte(value.Value))
}

// NumSides is the number of declared Side values. Tables indexed by Side
// are sized [NumSides].
const NumSides = int(sideCount)

// ClassID indexes an identification class inside one Presentation.
type ClassID int
