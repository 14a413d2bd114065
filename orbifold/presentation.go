package orbifold

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// WalkStep is one side visited by the perimeter walk. Reversed is true when
// the walk traverses the side against its directed (glued) parameter.
type WalkStep struct {
	Side     Side
	Reversed bool
}

// arc is the reference geometry of one side: the directed parameter runs
// from start (t=0) to end (t=1); pivot is the point kept fixed by the
// rotation that glues the side to its partner.
type arc struct {
	start, end, pivot gg.Point
}

// Presentation is the immutable table set for one orbifold Type.
// Obtain it with Lookup; never construct it directly.
type Presentation struct {
	typ      Type
	walk     []WalkStep
	classes  [][]Side
	classOf  [sideCount]ClassID
	partner  [sideCount]Side
	reversed [sideCount]bool
	member   [sideCount]bool
	arcs     [sideCount]arc
	corners  [4]gg.Point // SW, SE, NE, NW
}

var presentations = map[Type]*Presentation{
	P2: newP2(),
	P3: newSquareLike(P3, rhombusCorners()),
	P4: newSquareLike(P4, squareCorners()),
}

// Lookup returns the shared Presentation of t.
func Lookup(t Type) (*Presentation, error) {
	p, ok := presentations[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	return p, nil
}

// MustLookup is Lookup for package-level tables and tests; it panics on an
// unknown Type.
func MustLookup(t Type) *Presentation {
	p, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return p
}

// Modulus returns the rotation order R of the wallpaper group: 2, 3 or 4.
func (t Type) Modulus() int {
	switch t {
	case P2:
		return 2
	case P3:
		return 3
	case P4:
		return 4
	default:
		return 0
	}
}

// squareCorners returns the unit square SW, SE, NE, NW.
func squareCorners() [4]gg.Point {
	return [4]gg.Point{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(1, 1), gg.Pt(0, 1)}
}

// rhombusCorners returns the p3 rhombus with 120° angles at SW and NE:
// SW is the origin, SE = a = (1,0), NW = b = (-1/2, √3/2), NE = a+b.
func rhombusCorners() [4]gg.Point {
	h := math.Sqrt(3) / 2
	return [4]gg.Point{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(0.5, h), gg.Pt(-0.5, h)}
}

// newSquareLike builds the four-sided presentation shared by p3 and p4:
// north ≡ east about the NE corner, south ≡ west about the SW corner.
func newSquareLike(t Type, c [4]gg.Point) *Presentation {
	sw, se, ne, nw := c[0], c[1], c[2], c[3]
	arcs := map[Side]arc{
		North: {start: nw, end: ne, pivot: ne},
		East:  {start: se, end: ne, pivot: ne},
		South: {start: se, end: sw, pivot: sw},
		West:  {start: nw, end: sw, pivot: sw},
	}
	walk := []WalkStep{
		{North, false},
		{East, true},
		{South, false},
		{West, true},
	}
	pairs := [][2]Side{{North, East}, {South, West}}
	return build(t, walk, pairs, arcs, c)
}

// newP2 builds the eight-zone p2 presentation. Each side of the unit square
// is cut at its midpoint; the two halves are glued by the 180° rotation
// about that midpoint.
func newP2() *Presentation {
	c := squareCorners()
	sw, se, ne, nw := c[0], c[1], c[2], c[3]
	mn, me, ms, mw := nw.Lerp(ne, 0.5), se.Lerp(ne, 0.5), sw.Lerp(se, 0.5), sw.Lerp(nw, 0.5)
	arcs := map[Side]arc{
		North1: {start: nw, end: mn, pivot: mn},
		North2: {start: ne, end: mn, pivot: mn},
		East1:  {start: ne, end: me, pivot: me},
		East2:  {start: se, end: me, pivot: me},
		South1: {start: se, end: ms, pivot: ms},
		South2: {start: sw, end: ms, pivot: ms},
		West1:  {start: sw, end: mw, pivot: mw},
		West2:  {start: nw, end: mw, pivot: mw},
	}
	walk := []WalkStep{
		{North1, false}, {North2, true},
		{East1, false}, {East2, true},
		{South1, false}, {South2, true},
		{West1, false}, {West2, true},
	}
	pairs := [][2]Side{{North1, North2}, {East1, East2}, {South1, South2}, {West1, West2}}
	return build(P2, walk, pairs, arcs, c)
}

// build assembles the lookup arrays. Class IDs follow the walk order of
// their first side.
func build(t Type, walk []WalkStep, pairs [][2]Side, arcs map[Side]arc, corners [4]gg.Point) *Presentation {
	p := &Presentation{typ: t, walk: walk, corners: corners}
	pairOf := make(map[Side][2]Side, 2*len(pairs))
	for _, pr := range pairs {
		pairOf[pr[0]] = pr
		pairOf[pr[1]] = pr
	}
	seen := make(map[[2]Side]ClassID, len(pairs))
	for _, st := range walk {
		pr, ok := pairOf[st.Side]
		if !ok {
			panic(fmt.Sprintf("orbifold: %s side %s has no identification partner", t, st.Side))
		}
		id, ok := seen[pr]
		if !ok {
			id = ClassID(len(p.classes))
			seen[pr] = id
			p.classes = append(p.classes, nil)
		}
		p.classes[id] = append(p.classes[id], st.Side)
		p.classOf[st.Side] = id
		p.member[st.Side] = true
		p.reversed[st.Side] = st.Reversed
		p.arcs[st.Side] = arcs[st.Side]
		if pr[0] == st.Side {
			p.partner[st.Side] = pr[1]
		} else {
			p.partner[st.Side] = pr[0]
		}
	}
	return p
}

func (p *Presentation) mustHave(s Side) {
	if !s.Valid() || !p.member[s] {
		panic(fmt.Sprintf("orbifold: side %s is not part of the %s presentation", s, p.typ))
	}
}

// Type returns the orbifold type this presentation describes.
func (p *Presentation) Type() Type { return p.typ }

// Walk returns a copy of the perimeter walk.
func (p *Presentation) Walk() []WalkStep {
	return append([]WalkStep(nil), p.walk...)
}

// Sides returns the sides in walk order.
func (p *Presentation) Sides() []Side {
	out := make([]Side, len(p.walk))
	for i, st := range p.walk {
		out[i] = st.Side
	}
	return out
}

// Has reports whether s belongs to this presentation.
func (p *Presentation) Has(s Side) bool { return s.Valid() && p.member[s] }

// NumClasses returns the number of identification classes.
func (p *Presentation) NumClasses() int { return len(p.classes) }

// ClassOf returns the identification class of s.
func (p *Presentation) ClassOf(s Side) ClassID {
	p.mustHave(s)
	return p.classOf[s]
}

// ClassSides returns the sides of class c in walk order.
func (p *Presentation) ClassSides(c ClassID) []Side {
	if c < 0 || int(c) >= len(p.classes) {
		panic(fmt.Sprintf("orbifold: class %d out of range for %s", c, p.typ))
	}
	return append([]Side(nil), p.classes[c]...)
}

// Partner returns the side glued to s.
func (p *Presentation) Partner(s Side) Side {
	p.mustHave(s)
	return p.partner[s]
}

// Reversed reports whether the perimeter walk runs against the directed
// parameter of s.
func (p *Presentation) Reversed(s Side) bool {
	p.mustHave(s)
	return p.reversed[s]
}

// PointAt returns the reference-geometry location of directed parameter t
// on side s. Glued sides agree: the side transform of s maps
// PointAt(Partner(s), t) onto PointAt(s, t).
func (p *Presentation) PointAt(s Side, t float64) gg.Point {
	p.mustHave(s)
	a := p.arcs[s]
	return a.start.Lerp(a.end, t)
}

// Pivot returns the fixed point of the rotation gluing s to its partner:
// a corner for p3/p4, the side midpoint for p2.
func (p *Presentation) Pivot(s Side) gg.Point {
	p.mustHave(s)
	return p.arcs[s].pivot
}

// Corners returns the domain corners in SW, SE, NE, NW order.
func (p *Presentation) Corners() [4]gg.Point { return p.corners }
