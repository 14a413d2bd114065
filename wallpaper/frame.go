package wallpaper

import (
	"github.com/gogpu/gg"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// rotateAbout returns the rotation by angle about c.
func rotateAbout(c gg.Point, angle float64) gg.Matrix {
	return gg.Translate(c.X, c.Y).Multiply(gg.Rotate(angle)).Multiply(gg.Translate(-c.X, -c.Y))
}

// Frame returns the affine map placing the reference domain at idx:
// the lattice translation after the slot rotation about the centre.
func (g *Group) Frame(idx Index) gg.Matrix {
	t := g.Lattice(idx.Tx, idx.Ty)
	rot := rotateAbout(g.center, float64(mod(idx.Rot, g.r))*g.theta)

	return gg.Translate(t.X, t.Y).Multiply(rot)
}

// SideTransform returns the continuous rotation about the fixed point of
// side s that maps its partner onto s at equal parameter.
func (g *Group) SideTransform(s orbifold.Side) gg.Matrix {
	return rotateAbout(g.pres.Pivot(s), float64(g.Step(s).Turn)*g.theta)
}

// MatrixDistance returns the largest absolute coefficient difference.
func MatrixDistance(x, y gg.Matrix) float64 {
	d := 0.0
	for _, v := range [...]float64{x.A - y.A, x.B - y.B, x.C - y.C, x.D - y.D, x.E - y.E, x.F - y.F} {
		if v < 0 {
			v = -v
		}
		if v > d {
			d = v
		}
	}

	return d
}
