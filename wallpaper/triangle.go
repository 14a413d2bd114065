package wallpaper

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// TriangleSlots is the number of slots of the p4 triangle presentation.
const TriangleSlots = 8

// TriangleSlot folds a p4 rotation slot and a half (0 for the north-east
// triangle, 1 for the south-west one) into [0, 8).
func TriangleSlot(idx Index, half int) int {
	return mod(idx.Rot, 4) + 4*mod(half, 2)
}

// halfAfter returns the triangle the loop continues in after crossing s:
// crossing north or east re-enters through the partner on the north-east
// triangle, crossing south or west through the south-west one.
func halfAfter(s orbifold.Side) int {
	switch s {
	case orbifold.North, orbifold.East:
		return 0
	default:
		return 1
	}
}

// TriangleFrame returns the affine frame of slot on the p4 triangle
// presentation, translated by idx.Tx, idx.Ty. idx.Rot is ignored in
// favour of slot. It panics unless g is p4.
//
// Slots 0-3 are the square frames of rotation slot%4. Slots 4-7 compose
// that frame with a half-turn about the square centre (0.5, 0.5), which
// carries the north-east triangle onto the south-west one. The half-turn
// is a proper rotation: no slot mirrors the domain, so every frame keeps
// orientation (determinant +1).
func (g *Group) TriangleFrame(idx Index, slot int) gg.Matrix {
	g.mustP4()
	slot = mod(slot, TriangleSlots)
	m := g.Frame(Index{Tx: idx.Tx, Ty: idx.Ty, Rot: slot % 4})
	if slot >= 4 {
		m = m.Multiply(rotateAbout(gg.Pt(0.5, 0.5), math.Pi))
	}

	return m
}

// TrianglePathSlot replays edges on the p4 tables and returns the final
// index together with its triangle slot. A loop with no crossing sits in
// slot 0.
func (g *Group) TrianglePathSlot(edges []boundary.Edge) (Index, int) {
	g.mustP4()
	tr := g.Trace(edges)
	if len(tr) == 0 {
		return Identity(), 0
	}
	last := tr[len(tr)-1]

	return last.Index, TriangleSlot(last.Index, halfAfter(last.Side))
}

func (g *Group) mustP4() {
	if g.Type() != orbifold.P4 {
		panic(fmt.Sprintf("wallpaper: triangle slots need p4, got %s", g.Type()))
	}
}
