package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbiloops/boundary"
	"github.com/katalvlaran/orbiloops/orbifold"
)

func positions(l []boundary.BoundaryPoint) []int {
	out := make([]int, len(l))
	for i, p := range l {
		out[i] = p.Position
	}
	return out
}

func TestInsertPoint_ShiftsFollowing(t *testing.T) {
	var l []boundary.BoundaryPoint
	l = boundary.InsertPoint(l, 0, orbifold.North)
	l = boundary.InsertPoint(l, 1, orbifold.East)
	l = boundary.InsertPoint(l, 0, orbifold.East)
	require.Len(t, l, 3)
	assert.Equal(t, []int{0, 1, 2}, positions(l))
	assert.Equal(t, []orbifold.Side{orbifold.East, orbifold.North, orbifold.East},
		[]orbifold.Side{l[0].Origin, l[1].Origin, l[2].Origin})
}

func TestInsertPoint_DoesNotAlias(t *testing.T) {
	base := boundary.InsertPoint(nil, 0, orbifold.North)
	base = boundary.InsertPoint(base, 1, orbifold.North)
	a := boundary.InsertPoint(base, 1, orbifold.East)
	b := boundary.InsertPoint(base, 1, orbifold.North)
	assert.Equal(t, orbifold.East, a[1].Origin)
	assert.Equal(t, orbifold.North, b[1].Origin)
	assert.Equal(t, []int{0, 1}, positions(base))
}

func TestRemovePoint_InverseOfInsert(t *testing.T) {
	var l []boundary.BoundaryPoint
	for i := 0; i < 4; i++ {
		l = boundary.InsertPoint(l, i, orbifold.South)
	}
	for idx := 0; idx <= len(l); idx++ {
		ins := boundary.InsertPoint(l, idx, orbifold.West)
		assert.Equal(t, l, boundary.RemovePoint(ins, idx), "index %d", idx)
	}
}

func TestInsertRemove_PanicOutOfRange(t *testing.T) {
	assert.Panics(t, func() { boundary.InsertPoint(nil, 1, orbifold.North) })
	assert.Panics(t, func() { boundary.InsertPoint(nil, -1, orbifold.North) })
	assert.Panics(t, func() { boundary.RemovePoint(nil, 0) })
}

func TestIndex_CopyOnWrite(t *testing.T) {
	p := orbifold.MustLookup(orbifold.P3)
	x0 := boundary.NewIndex(p)
	x1 := x0.Insert(orbifold.North, 0)
	x2 := x1.Insert(orbifold.East, 0)
	x3 := x2.Insert(orbifold.South, 0)

	assert.Equal(t, 0, x0.Total())
	assert.Equal(t, 1, x1.Total())
	assert.Equal(t, 2, x2.SizeOf(orbifold.North))
	assert.Equal(t, 2, x2.SizeOf(orbifold.East))
	assert.Equal(t, 1, x3.SizeOf(orbifold.West))
	assert.Equal(t, 0, x2.SizeOf(orbifold.West))

	assert.Equal(t, orbifold.East, x2.Point(p.ClassOf(orbifold.North), 0).Origin)
	assert.Equal(t, orbifold.North, x2.Point(p.ClassOf(orbifold.North), 1).Origin)
	assert.Equal(t, orbifold.North, x1.Point(p.ClassOf(orbifold.North), 0).Origin)

	back := x3.Remove(p.ClassOf(orbifold.South), 0)
	assert.True(t, back.Equal(x2))
	assert.False(t, back.Equal(x1))
	require.NoError(t, x3.Validate())
}

func TestIndex_PointPanics(t *testing.T) {
	x := boundary.NewIndex(orbifold.MustLookup(orbifold.P4))
	assert.Panics(t, func() { x.Point(0, 0) })
	assert.Panics(t, func() { x.Size(7) })
	assert.Panics(t, func() { x.Insert(orbifold.North1, 0) })
	assert.False(t, x.Has(orbifold.North, 0))
}

func TestSegments_SharedBounds(t *testing.T) {
	p := orbifold.MustLookup(orbifold.P3)
	x := boundary.NewIndex(p).Insert(orbifold.North, 0).Insert(orbifold.East, 1)

	north := x.Segments(orbifold.North)
	east := x.Segments(orbifold.East)
	require.Len(t, north, 3)
	require.Len(t, east, 3)

	assert.Nil(t, north[0].Start)
	require.NotNil(t, north[0].End)
	assert.Equal(t, 0, *north[0].End)
	assert.Equal(t, 0, *north[1].Start)
	assert.Equal(t, 1, *north[1].End)
	assert.Nil(t, north[2].End)
	assert.Equal(t, "N[1,-)", north[2].String())

	for g := range north {
		assert.Equal(t, north[g].Start, east[g].Start)
		assert.Equal(t, north[g].End, east[g].End)
		assert.Equal(t, orbifold.East, east[g].Side)
	}

	assert.True(t, north[1].Touches(0))
	assert.True(t, north[1].Touches(1))
	assert.False(t, north[0].Touches(1))

	empty := x.Segments(orbifold.South)
	require.Len(t, empty, 1)
	assert.Equal(t, "S[-,-)", empty[0].String())
}

func TestParam(t *testing.T) {
	p := orbifold.MustLookup(orbifold.P3)
	assert.InDelta(t, 0.25, boundary.Param(0, 2), 1e-12)
	assert.InDelta(t, 0.75, boundary.Param(1, 2), 1e-12)
	assert.InDelta(t, 0.25, boundary.DisplayParam(p, orbifold.North, 0, 2), 1e-12)
	assert.InDelta(t, 0.75, boundary.DisplayParam(p, orbifold.East, 0, 2), 1e-12)
	assert.Panics(t, func() { boundary.Param(2, 2) })
	assert.Panics(t, func() { boundary.Param(0, 0) })
}
