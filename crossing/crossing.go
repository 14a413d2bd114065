package crossing

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// Perimeter assigns perimeter keys for one boundary.Index snapshot.
type Perimeter struct {
	index  boundary.Index
	offset map[orbifold.Side]int
	total  int
}

// NewPerimeter lays the sides of x end to end in walk order.
func NewPerimeter(x boundary.Index) Perimeter {
	p := x.Presentation()
	walk := p.Walk()
	per := Perimeter{index: x, offset: make(map[orbifold.Side]int, len(walk))}
	for _, st := range walk {
		per.offset[st.Side] = per.total
		per.total += x.SizeOf(st.Side)
	}

	return per
}

// Len returns P, the number of keys on the perimeter.
func (per Perimeter) Len() int { return per.total }

// Index returns the snapshot the keys were computed from.
func (per Perimeter) Index() boundary.Index { return per.index }

// Key returns the perimeter key of e. It panics when e.Pos does not exist
// in the class of e.Side.
func (per Perimeter) Key(e boundary.Endpoint) int {
	n := per.index.SizeOf(e.Side)
	if e.Pos < 0 || e.Pos >= n {
		panic(fmt.Sprintf("crossing: endpoint %s outside class of size %d", e, n))
	}
	if per.index.Presentation().Reversed(e.Side) {
		return per.offset[e.Side] + n - 1 - e.Pos
	}

	return per.offset[e.Side] + e.Pos
}

// Keys returns the perimeter keys of both ends of e.
func (per Perimeter) Keys(e boundary.Edge) (int, int) {
	return per.Key(e.From), per.Key(e.To)
}

// Cross reports whether chord (a,b) crosses chord (c,d) on a circle of P
// keys.
func Cross(a, b, c, d, P int) bool {
	// 1) Too few points to interleave, or a shared key
	if P < 4 {
		return false
	}
	if a == c || a == d || b == c || b == d {
		return false
	}

	// 2) Exactly one of c, d strictly inside the CCW arc a→b
	span := mod(b-a, P)
	inside := func(x int) bool {
		r := mod(x-a, P)
		return r > 0 && r < span
	}

	return inside(c) != inside(d)
}

// EdgesCross reports whether e1 and e2 cross under per.
func EdgesCross(per Perimeter, e1, e2 boundary.Edge) bool {
	a, b := per.Keys(e1)
	c, d := per.Keys(e2)

	return Cross(a, b, c, d, per.total)
}

// FirstCrossing returns the index of the first edge in edges crossed by
// candidate, or -1.
func FirstCrossing(per Perimeter, edges []boundary.Edge, candidate boundary.Edge) int {
	a, b := per.Keys(candidate)
	for i, e := range edges {
		c, d := per.Keys(e)
		if Cross(a, b, c, d, per.total) {
			return i
		}
	}

	return -1
}

// FindCrossingPair returns the first pair i < j of crossing edges, and
// false when edges are pairwise non-crossing.
func FindCrossingPair(per Perimeter, edges []boundary.Edge) (int, int, bool) {
	for j := 1; j < len(edges); j++ {
		if i := FirstCrossing(per, edges[:j], edges[j]); i >= 0 {
			return i, j, true
		}
	}

	return -1, -1, false
}

func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}
