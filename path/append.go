package path

import (
	"github.com/katalvlaran/orbiloops/crossing"
)

// AppendFirst creates the first edge from a segment to a segment. s must be
// Empty. When both segments lie in the same class, order decides whether
// the end ordinal follows or precedes the start ordinal; otherwise each
// class receives its single point at ordinal 0 and order is ignored.
func (s *State) AppendFirst(from, to Segment, order FirstOrder) (*State, error) {
	if s.phase != Empty {
		return nil, rejected(ReasonWrongPhase).Err()
	}
	s.checkSegment(from)
	s.checkSegment(to)

	// 1) Place the start point
	p := s.Presentation()
	idx := s.index.Insert(from.Side, 0)
	fromEp := Endpoint{Side: from.Side, Pos: 0}
	toEp := Endpoint{Side: to.Side, Pos: 0}

	// 2) Place the end point relative to it
	if p.ClassOf(from.Side) == p.ClassOf(to.Side) {
		if order == ToBeforeFrom {
			idx = idx.Insert(to.Side, 0)
			fromEp.Pos = 1
		} else {
			idx = idx.Insert(to.Side, 1)
			toEp.Pos = 1
		}
	} else {
		idx = idx.Insert(to.Side, 0)
	}

	return &State{index: idx, edges: []Edge{{From: fromEp, To: toEp}}, phase: Open}, nil
}

// Append adds an edge from the current point to a new point inserted into
// target. s must be Open.
func (s *State) Append(target Segment) (*State, error) {
	next, v := s.tryAppend(target)
	if !v.OK() {
		return nil, v.Err()
	}

	return next, nil
}

// ValidateAppend reports whether Append(target) would succeed, and why not.
func (s *State) ValidateAppend(target Segment) Validation {
	_, v := s.tryAppend(target)
	return v
}

// ValidSegments returns every segment Append accepts, by walk order of
// side and then gap. It is nil unless s is Open.
func (s *State) ValidSegments() []Segment {
	if s.phase != Open {
		return nil
	}
	var out []Segment
	for _, side := range s.Presentation().Sides() {
		for _, seg := range s.index.Segments(side) {
			if _, v := s.tryAppend(seg); v.OK() {
				out = append(out, seg)
			}
		}
	}

	return out
}

func (s *State) tryAppend(target Segment) (*State, Validation) {
	if s.phase != Open {
		return nil, rejected(ReasonWrongPhase)
	}
	s.checkSegment(target)

	// 1) Same physical side, touching the current ordinal
	cur, _ := s.Current()
	g := target.Gap
	if target.Side == cur.Side && (g-1 == cur.Pos || g == cur.Pos) {
		return nil, rejected(ReasonSelfTouch)
	}

	// 2) Hypothetical insertion; keys are recomputed on the new index
	p := s.Presentation()
	c := p.ClassOf(target.Side)
	idx := s.index.Insert(target.Side, g)
	edges := shiftEdges(p, s.edges, c, g, 1)
	cand := Edge{From: shift(p, cur, c, g, 1), To: Endpoint{Side: target.Side, Pos: g}}

	// 3) Crossing against every existing edge
	if i := crossing.FirstCrossing(crossing.NewPerimeter(idx), edges, cand); i >= 0 {
		return nil, Validation{Reason: ReasonCrossing, EdgeIndex: i}
	}

	return &State{index: idx, edges: append(edges, cand), phase: Open}, accepted()
}

// RemoveLast undoes the last transition. Open(1) returns the Empty state,
// Open(n) deletes the point created by the last edge, and Closed drops the
// closing edge.
func (s *State) RemoveLast() (*State, error) {
	switch {
	case s.phase == Empty:
		return nil, rejected(ReasonWrongPhase).Err()
	case s.phase == Closed:
		return &State{index: s.index, edges: s.Edges()[:len(s.edges)-1], phase: Open}, nil
	case len(s.edges) == 1:
		return New(s.Presentation()), nil
	}

	// 1) Drop the point the last edge created
	p := s.Presentation()
	removed := s.edges[len(s.edges)-1].To
	c := p.ClassOf(removed.Side)
	idx := s.index.Remove(c, removed.Pos)

	// 2) Renumber the surviving endpoints of that class
	edges := shiftEdges(p, s.edges[:len(s.edges)-1], c, removed.Pos, -1)

	return &State{index: idx, edges: edges, phase: Open}, nil
}
