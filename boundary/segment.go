package boundary

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// Segment addresses one gap on a side. Gap g of a class holding n points
// lies between ordinals g-1 and g; Start is nil for the gap before the
// first point and End is nil for the gap after the last.
type Segment struct {
	Side  orbifold.Side
	Gap   int
	Start *int
	End   *int
}

// String renders the segment as "N[1,2)", "E[-,0)" or "S[3,-)".
func (s Segment) String() string {
	bound := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprint(*p)
	}

	return fmt.Sprintf("%s[%s,%s)", s.Side.Short(), bound(s.Start), bound(s.End))
}

// Seg builds the segment for gap g on side s in an Index, filling the
// bounds. It panics when g is outside [0, n].
func (x Index) Seg(s orbifold.Side, g int) Segment {
	n := x.SizeOf(s)
	if g < 0 || g > n {
		panic(fmt.Sprintf("boundary: gap %d out of range [0,%d] on %s", g, n, s))
	}
	seg := Segment{Side: s, Gap: g}
	if g > 0 {
		lo := g - 1
		seg.Start = &lo
	}
	if g < n {
		hi := g
		seg.End = &hi
	}

	return seg
}

// Segments returns the n+1 gaps of side s in ascending order. The integer
// bounds depend only on the class, so partner sides get the same values.
func (x Index) Segments(s orbifold.Side) []Segment {
	n := x.SizeOf(s)
	out := make([]Segment, 0, n+1)
	for g := 0; g <= n; g++ {
		out = append(out, x.Seg(s, g))
	}

	return out
}

// Touches reports whether the gap is bounded by ordinal pos.
func (s Segment) Touches(pos int) bool {
	return (s.Start != nil && *s.Start == pos) || (s.End != nil && *s.End == pos)
}
