package crossing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/crossing"
	"github.com/katalvlaran/orbiloops/orbifold"
)

func ep(s orbifold.Side, pos int) boundary.Endpoint { return boundary.Endpoint{Side: s, Pos: pos} }

func edge(a, b boundary.Endpoint) boundary.Edge { return boundary.Edge{From: a, To: b} }

// twoByTwo returns a p3 index holding two points in each class.
func twoByTwo() boundary.Index {
	return boundary.NewIndex(orbifold.MustLookup(orbifold.P3)).
		Insert(orbifold.North, 0).Insert(orbifold.East, 1).
		Insert(orbifold.South, 0).Insert(orbifold.West, 1)
}

func TestCross_Table(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d int
		P          int
		want       bool
	}{
		{"interleaved", 0, 4, 2, 6, 8, true},
		{"interleaved reversed chord", 4, 0, 2, 6, 8, true},
		{"disjoint", 0, 1, 2, 3, 8, false},
		{"nested", 0, 5, 1, 3, 8, false},
		{"wrapping arc", 6, 2, 7, 4, 8, true},
		{"shared key", 0, 4, 4, 6, 8, false},
		{"too few keys", 0, 2, 1, 3, 3, false},
		{"minimum circle", 0, 2, 1, 3, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, crossing.Cross(tt.a, tt.b, tt.c, tt.d, tt.P))
			assert.Equal(t, tt.want, crossing.Cross(tt.c, tt.d, tt.a, tt.b, tt.P), "symmetric")
		})
	}
}

func TestPerimeter_Keys(t *testing.T) {
	per := crossing.NewPerimeter(twoByTwo())
	require.Equal(t, 8, per.Len())

	want := map[boundary.Endpoint]int{
		ep(orbifold.North, 0): 0, ep(orbifold.North, 1): 1,
		ep(orbifold.East, 1): 2, ep(orbifold.East, 0): 3,
		ep(orbifold.South, 0): 4, ep(orbifold.South, 1): 5,
		ep(orbifold.West, 1): 6, ep(orbifold.West, 0): 7,
	}
	for e, k := range want {
		assert.Equal(t, k, per.Key(e), e.String())
	}
	assert.Panics(t, func() { per.Key(ep(orbifold.North, 2)) })
}

// The chord from north to south crosses the east–west chord through the
// middle of the domain.
func TestEdgesCross_Diagonals(t *testing.T) {
	per := crossing.NewPerimeter(twoByTwo())
	e1 := edge(ep(orbifold.North, 0), ep(orbifold.South, 0))
	e2 := edge(ep(orbifold.East, 1), ep(orbifold.West, 1))
	assert.True(t, crossing.EdgesCross(per, e1, e2))
	assert.True(t, crossing.EdgesCross(per, e2.Reverse(), e1))
}

func TestEdgesCross_NonCrossing(t *testing.T) {
	per := crossing.NewPerimeter(twoByTwo())
	parallel := edge(ep(orbifold.North, 0), ep(orbifold.North, 1))
	other := edge(ep(orbifold.South, 0), ep(orbifold.South, 1))
	assert.False(t, crossing.EdgesCross(per, parallel, other))

	shared := edge(ep(orbifold.North, 0), ep(orbifold.South, 1))
	fromShared := edge(ep(orbifold.South, 1), ep(orbifold.East, 0))
	assert.False(t, crossing.EdgesCross(per, shared, fromShared))
}

// Glued partner endpoints are distinct perimeter keys and are not exempt.
func TestEdgesCross_PartnerEndpointsAreDistinct(t *testing.T) {
	per := crossing.NewPerimeter(twoByTwo())
	// N:1 and E:1 are the same glued point but sit at keys 1 and 2.
	e1 := edge(ep(orbifold.North, 1), ep(orbifold.South, 0))
	e2 := edge(ep(orbifold.East, 1), ep(orbifold.North, 0))
	assert.NotEqual(t, per.Key(e1.From), per.Key(e2.From))
	assert.True(t, crossing.EdgesCross(per, e1, e2))
}

func TestFirstCrossing(t *testing.T) {
	per := crossing.NewPerimeter(twoByTwo())
	edges := []boundary.Edge{
		edge(ep(orbifold.North, 0), ep(orbifold.North, 1)),
		edge(ep(orbifold.North, 0), ep(orbifold.South, 0)),
	}
	cand := edge(ep(orbifold.East, 1), ep(orbifold.West, 1))
	assert.Equal(t, 1, crossing.FirstCrossing(per, edges, cand))
	assert.Equal(t, -1, crossing.FirstCrossing(per, edges[:1], cand))

	i, j, ok := crossing.FindCrossingPair(per, append(edges, cand))
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, [2]int{i, j})

	_, _, ok = crossing.FindCrossingPair(per, edges)
	assert.False(t, ok)
}

// Keys follow the index they were built from.
func TestPerimeter_RecomputedAfterInsert(t *testing.T) {
	x := twoByTwo()
	before := crossing.NewPerimeter(x)
	after := crossing.NewPerimeter(x.Insert(orbifold.North, 0))
	assert.Equal(t, 10, after.Len())
	assert.Equal(t, 4, before.Key(ep(orbifold.South, 0)))
	assert.Equal(t, 6, after.Key(ep(orbifold.South, 0)))
}
