package path

import (
	"github.com/katalvlaran/orbiloops/crossing"
)

// CanClose reports whether the loop can be closed and returns the closing
// edge. The edge runs on the first point's own side, from the current
// ordinal to the first ordinal, so it spans one elementary gap.
func (s *State) CanClose() (Edge, Validation) {
	if s.phase != Open || len(s.edges) < 2 {
		return Edge{}, rejected(ReasonWrongPhase)
	}
	p := s.Presentation()
	first := s.edges[0].From
	cur, _ := s.Current()

	// 1) Same identification class
	if p.ClassOf(first.Side) != p.ClassOf(cur.Side) {
		return Edge{}, rejected(ReasonClassMismatch)
	}

	// 2) Adjacent ordinals
	if d := first.Pos - cur.Pos; d != 1 && d != -1 {
		return Edge{}, rejected(ReasonNotAdjacent)
	}

	// 3) Closing edge on the first point's side must not cross
	closing := Edge{From: Endpoint{Side: first.Side, Pos: cur.Pos}, To: first}
	if i := crossing.FirstCrossing(s.Perimeter(), s.edges, closing); i >= 0 {
		return Edge{}, Validation{Reason: ReasonCrossing, EdgeIndex: i}
	}

	return closing, accepted()
}

// CloseLoop appends the closing edge and moves to Closed. No point is
// created.
func (s *State) CloseLoop() (*State, error) {
	closing, v := s.CanClose()
	if !v.OK() {
		return nil, v.Err()
	}
	edges := make([]Edge, len(s.edges), len(s.edges)+1)
	copy(edges, s.edges)

	return &State{index: s.index, edges: append(edges, closing), phase: Closed}, nil
}

// ClosingEdge returns the closing edge of a Closed state.
func (s *State) ClosingEdge() (Edge, bool) {
	if s.phase != Closed {
		return Edge{}, false
	}

	return s.edges[len(s.edges)-1], true
}

// OpenEdges returns the edges that created points: all edges except the
// closing one.
func (s *State) OpenEdges() []Edge {
	n := len(s.edges)
	if s.phase == Closed {
		n--
	}

	return append([]Edge(nil), s.edges[:n]...)
}
