package wallpaper

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// Transition records one boundary crossing during a replay.
type Transition struct {
	Edge  int           `json:"edge" yaml:"edge"`
	Side  orbifold.Side `json:"side" yaml:"side"`
	Index Index         `json:"index" yaml:"index"`
}

// IsDegenerate reports whether e crosses no boundary: both ends on one
// physical side, or on partner sides at the same ordinal.
func IsDegenerate(p *orbifold.Presentation, e boundary.Edge) bool {
	if e.From.Side == e.To.Side {
		return true
	}

	return p.Partner(e.From.Side) == e.To.Side && e.From.Pos == e.To.Pos
}

// Trace replays edges from identity and returns one Transition per
// non-degenerate edge. Crossing an edge's end side moves the loop into
// the neighbouring copy, where it continues from the partner side.
func (g *Group) Trace(edges []boundary.Edge) []Transition {
	out := make([]Transition, 0, len(edges))
	idx := Identity()
	for i, e := range edges {
		if IsDegenerate(g.pres, e) {
			continue
		}
		idx = g.Apply(idx, e.To.Side)
		out = append(out, Transition{Edge: i, Side: e.To.Side, Index: idx})
	}

	return out
}

// PathIndex returns the index reached after replaying edges.
func (g *Group) PathIndex(edges []boundary.Edge) Index {
	idx := Identity()
	for _, e := range edges {
		if !IsDegenerate(g.pres, e) {
			idx = g.Apply(idx, e.To.Side)
		}
	}

	return idx
}

// ComputePathIndex replays edges on the tables of t.
func ComputePathIndex(t orbifold.Type, edges []boundary.Edge) (Index, error) {
	g, err := GroupOf(t)
	if err != nil {
		return Index{}, fmt.Errorf("ComputePathIndex: %w", err)
	}

	return g.PathIndex(edges), nil
}
