package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orbiloops/crossing"
)

// ErrInvariant is wrapped by every CheckInvariants failure.
var ErrInvariant = errors.New("path: invariant violated")

// CheckInvariants audits s from scratch: dense positions, endpoint ranges,
// point count, chaining, closing edge shape and pairwise non-crossing.
// States built only through this package's transitions always pass.
func (s *State) CheckInvariants() error {
	// 1) Points
	if err := s.index.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	// 2) Phase and counts
	open := s.OpenEdges()
	switch s.phase {
	case Empty:
		if len(s.edges) != 0 || s.index.Total() != 0 {
			return fmt.Errorf("%w: empty state holds %d edges, %d points", ErrInvariant, len(s.edges), s.index.Total())
		}
		return nil
	case Open, Closed:
		if len(open) == 0 {
			return fmt.Errorf("%w: %s state without edges", ErrInvariant, s.phase)
		}
		if s.index.Total() != len(open)+1 {
			return fmt.Errorf("%w: %d points for %d point-creating edges", ErrInvariant, s.index.Total(), len(open))
		}
	default:
		return fmt.Errorf("%w: unknown phase %d", ErrInvariant, s.phase)
	}

	// 3) Endpoint ranges
	for i, e := range s.edges {
		if !s.index.Has(e.From.Side, e.From.Pos) || !s.index.Has(e.To.Side, e.To.Pos) {
			return fmt.Errorf("%w: edge %d %s references a missing point", ErrInvariant, i, e)
		}
	}

	// 4) Chaining through partner translation
	for i := 1; i < len(open); i++ {
		if want := s.partnerOf(open[i-1].To); open[i].From != want {
			return fmt.Errorf("%w: edge %d starts at %s, want %s", ErrInvariant, i, open[i].From, want)
		}
	}

	// 5) Closing edge shape
	if closing, ok := s.ClosingEdge(); ok {
		first := open[0].From
		last := open[len(open)-1].To
		want := Edge{From: Endpoint{Side: first.Side, Pos: last.Pos}, To: first}
		if closing != want {
			return fmt.Errorf("%w: closing edge %s, want %s", ErrInvariant, closing, want)
		}
	}

	// 6) Global non-crossing
	if i, j, found := crossing.FindCrossingPair(s.Perimeter(), s.edges); found {
		return fmt.Errorf("%w: edges %d and %d cross", ErrInvariant, i, j)
	}

	return nil
}
