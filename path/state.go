package path

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/crossing"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// State is one immutable snapshot of a path under construction.
// Never modify a State in place: every method either reads it or returns a
// fresh State sharing untouched storage.
type State struct {
	index boundary.Index
	edges []Edge
	phase Phase
}

// New returns the Empty state on presentation p.
func New(p *orbifold.Presentation) *State {
	return &State{index: boundary.NewIndex(p), phase: Empty}
}

// NewOf is New for a Type.
func NewOf(t orbifold.Type) (*State, error) {
	p, err := orbifold.Lookup(t)
	if err != nil {
		return nil, fmt.Errorf("path: NewOf: %w", err)
	}

	return New(p), nil
}

// Presentation returns the orbifold tables of s.
func (s *State) Presentation() *orbifold.Presentation { return s.index.Presentation() }

// Type returns the orbifold type of s.
func (s *State) Type() orbifold.Type { return s.index.Presentation().Type() }

// Phase returns the lifecycle stage.
func (s *State) Phase() Phase { return s.phase }

// Index returns the boundary points.
func (s *State) Index() boundary.Index { return s.index }

// NumEdges returns the number of edges, closing edge included.
func (s *State) NumEdges() int { return len(s.edges) }

// Edges returns a copy of the edge list.
func (s *State) Edges() []Edge { return append([]Edge(nil), s.edges...) }

// Edge returns edge i.
func (s *State) Edge(i int) Edge { return s.edges[i] }

// Segments returns the gaps of side on the current index.
func (s *State) Segments(side orbifold.Side) []Segment { return s.index.Segments(side) }

// Segment returns gap g on side.
func (s *State) Segment(side orbifold.Side, g int) Segment { return s.index.Seg(side, g) }

// First returns the start of the first edge; ok is false when Empty.
func (s *State) First() (Endpoint, bool) {
	if len(s.edges) == 0 {
		return Endpoint{}, false
	}

	return s.edges[0].From, true
}

// Current returns the point the next edge starts from: the last end with
// its side swapped for the class partner. ok is false unless Open.
func (s *State) Current() (Endpoint, bool) {
	if s.phase != Open {
		return Endpoint{}, false
	}

	return s.partnerOf(s.edges[len(s.edges)-1].To), true
}

// Param returns the glued parameter of e on the current index.
func (s *State) Param(e Endpoint) float64 {
	return boundary.Param(e.Pos, s.index.SizeOf(e.Side))
}

// DisplayParam returns the perimeter-walk parameter of e.
func (s *State) DisplayParam(e Endpoint) float64 {
	return boundary.DisplayParam(s.Presentation(), e.Side, e.Pos, s.index.SizeOf(e.Side))
}

// Perimeter returns the crossing keys of the current index.
func (s *State) Perimeter() crossing.Perimeter { return crossing.NewPerimeter(s.index) }

// String renders the phase and edge list, e.g. "open[N:0→W:0 S:0→N:1]".
func (s *State) String() string {
	parts := make([]string, len(s.edges))
	for i, e := range s.edges {
		parts[i] = e.String()
	}

	return s.phase.String() + "[" + strings.Join(parts, " ") + "]"
}

// Equal reports whether a and b hold the same phase, points and edges.
func Equal(a, b *State) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.phase != b.phase || len(a.edges) != len(b.edges) || !a.index.Equal(b.index) {
		return false
	}
	for i := range a.edges {
		if a.edges[i] != b.edges[i] {
			return false
		}
	}

	return true
}

func (s *State) partnerOf(e Endpoint) Endpoint {
	return Endpoint{Side: s.Presentation().Partner(e.Side), Pos: e.Pos}
}

// checkSegment panics when seg does not address a gap of the current index.
func (s *State) checkSegment(seg Segment) {
	p := s.Presentation()
	if !p.Has(seg.Side) {
		panic(fmt.Sprintf("path: side %s is not part of the %s presentation", seg.Side, p.Type()))
	}
	if n := s.index.SizeOf(seg.Side); seg.Gap < 0 || seg.Gap > n {
		panic(fmt.Sprintf("path: gap %d out of range [0,%d] on %s", seg.Gap, n, seg.Side))
	}
}

// shift moves every endpoint of class c at ordinal ≥ from by delta.
func shift(p *orbifold.Presentation, e Endpoint, c orbifold.ClassID, from, delta int) Endpoint {
	if p.ClassOf(e.Side) == c && e.Pos >= from {
		e.Pos += delta
	}

	return e
}

func shiftEdges(p *orbifold.Presentation, edges []Edge, c orbifold.ClassID, from, delta int) []Edge {
	out := make([]Edge, len(edges), len(edges)+1)
	for i, e := range edges {
		out[i] = Edge{From: shift(p, e.From, c, from, delta), To: shift(p, e.To, c, from, delta)}
	}

	return out
}
