package wallpaper

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// ErrUnknownType is returned by GroupOf for a type without tables.
var ErrUnknownType = fmt.Errorf("wallpaper: %w", orbifold.ErrUnknownType)

// Step is the table entry of one side: g_side = T(V) ∘ Rot(centre, Turn·θ).
type Step struct {
	V    [2]int
	Turn int
}

// Group holds the transition tables and reference geometry of one
// wallpaper group.
type Group struct {
	pres   *orbifold.Presentation
	r      int
	theta  float64
	a, b   gg.Point
	center gg.Point
	m      [2][2]int // rotation by θ on lattice coordinates
	steps  [orbifold.NumSides]Step
}

var groups = map[orbifold.Type]*Group{
	orbifold.P2: mustComplete(newP2()),
	orbifold.P3: mustComplete(newP3()),
	orbifold.P4: mustComplete(newP4()),
}

// mustComplete panics unless every side of the presentation has a step.
// A step never has Turn 0, so the zero entry marks a missing side.
func mustComplete(g *Group) *Group {
	for _, s := range g.pres.Sides() {
		if g.steps[s].Turn == 0 {
			panic(fmt.Sprintf("wallpaper: %s table has no step for side %s", g.pres.Type(), s))
		}
	}

	return g
}

// GroupOf returns the shared tables of t.
func GroupOf(t orbifold.Type) (*Group, error) {
	g, ok := groups[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}

	return g, nil
}

// MustGroup is GroupOf that panics on an unknown type.
func MustGroup(t orbifold.Type) *Group {
	g, err := GroupOf(t)
	if err != nil {
		panic(err)
	}

	return g
}

func newP3() *Group {
	h := math.Sqrt(3) / 2
	return &Group{
		pres:   orbifold.MustLookup(orbifold.P3),
		r:      3,
		theta:  2 * math.Pi / 3,
		a:      gg.Pt(1, 0),
		b:      gg.Pt(-0.5, h),
		center: gg.Pt(0, 0),
		m:      [2][2]int{{0, -1}, {1, -1}},
		steps: [orbifold.NumSides]Step{
			orbifold.North: {V: [2]int{1, 2}, Turn: -1},
			orbifold.East:  {V: [2]int{2, 1}, Turn: +1},
			orbifold.South: {V: [2]int{0, 0}, Turn: -1},
			orbifold.West:  {V: [2]int{0, 0}, Turn: +1},
		},
	}
}

func newP4() *Group {
	return &Group{
		pres:   orbifold.MustLookup(orbifold.P4),
		r:      4,
		theta:  math.Pi / 2,
		a:      gg.Pt(1, 0),
		b:      gg.Pt(0, 1),
		center: gg.Pt(0, 0),
		m:      [2][2]int{{0, -1}, {1, 0}},
		steps: [orbifold.NumSides]Step{
			orbifold.North: {V: [2]int{0, 2}, Turn: -1},
			orbifold.East:  {V: [2]int{2, 0}, Turn: +1},
			orbifold.South: {V: [2]int{0, 0}, Turn: -1},
			orbifold.West:  {V: [2]int{0, 0}, Turn: +1},
		},
	}
}

func newP2() *Group {
	north := Step{V: [2]int{0, 1}, Turn: 1}
	east := Step{V: [2]int{1, 0}, Turn: 1}
	south := Step{V: [2]int{0, -1}, Turn: 1}
	west := Step{V: [2]int{-1, 0}, Turn: 1}
	return &Group{
		pres:   orbifold.MustLookup(orbifold.P2),
		r:      2,
		theta:  math.Pi,
		a:      gg.Pt(1, 0),
		b:      gg.Pt(0, 1),
		center: gg.Pt(0.5, 0.5),
		m:      [2][2]int{{-1, 0}, {0, -1}},
		steps: [orbifold.NumSides]Step{
			orbifold.North1: north, orbifold.North2: north,
			orbifold.East1: east, orbifold.East2: east,
			orbifold.South1: south, orbifold.South2: south,
			orbifold.West1: west, orbifold.West2: west,
		},
	}
}

// Type returns the orbifold type of g.
func (g *Group) Type() orbifold.Type { return g.pres.Type() }

// Presentation returns the side tables g is built on.
func (g *Group) Presentation() *orbifold.Presentation { return g.pres }

// Modulus returns R, the number of rotation slots.
func (g *Group) Modulus() int { return g.r }

// Angle returns θ = 2π/R.
func (g *Group) Angle() float64 { return g.theta }

// Basis returns the lattice vectors a and b.
func (g *Group) Basis() (gg.Point, gg.Point) { return g.a, g.b }

// Center returns the rotation centre the slots turn about.
func (g *Group) Center() gg.Point { return g.center }

// Step returns the table entry of side s; it panics for a side outside the
// presentation.
func (g *Group) Step(s orbifold.Side) Step {
	if !g.pres.Has(s) {
		panic(fmt.Sprintf("wallpaper: no %s step for side %s", g.Type(), s))
	}

	return g.steps[s]
}

// Apply returns the index reached from idx by crossing side s.
func (g *Group) Apply(idx Index, s orbifold.Side) Index {
	st := g.Step(s)
	v := g.rotate(st.V, mod(idx.Rot, g.r))

	return Index{
		Tx:  idx.Tx + v[0],
		Ty:  idx.Ty + v[1],
		Rot: mod(idx.Rot+st.Turn, g.r),
	}
}

// Compose returns the index of x followed by y: x·y.
func (g *Group) Compose(x, y Index) Index {
	v := g.rotate([2]int{y.Tx, y.Ty}, mod(x.Rot, g.r))

	return Index{Tx: x.Tx + v[0], Ty: x.Ty + v[1], Rot: mod(x.Rot+y.Rot, g.r)}
}

// rotate applies M^k to lattice vector v.
func (g *Group) rotate(v [2]int, k int) [2]int {
	for ; k > 0; k-- {
		v = [2]int{
			g.m[0][0]*v[0] + g.m[0][1]*v[1],
			g.m[1][0]*v[0] + g.m[1][1]*v[1],
		}
	}

	return v
}

// Lattice returns tx·a + ty·b.
func (g *Group) Lattice(tx, ty int) gg.Point {
	return g.a.Mul(float64(tx)).Add(g.b.Mul(float64(ty)))
}
