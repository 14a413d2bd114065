package boundary

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// BoundaryPoint is one ordinal in an identification class. Position equals
// the point's index in its class list; Origin is the side it was placed on.
type BoundaryPoint struct {
	Position int
	Origin   orbifold.Side
}

// InsertPoint returns a new list with a point from origin inserted at index.
// Points previously at index or later move up by one.
// Panics if index is outside [0, len(list)].
func InsertPoint(list []BoundaryPoint, index int, origin orbifold.Side) []BoundaryPoint {
	if index < 0 || index > len(list) {
		panic(fmt.Sprintf("boundary: insert index %d out of range [0,%d]", index, len(list)))
	}
	out := make([]BoundaryPoint, 0, len(list)+1)
	out = append(out, list[:index]...)
	out = append(out, BoundaryPoint{Position: index, Origin: origin})
	for _, p := range list[index:] {
		out = append(out, BoundaryPoint{Position: p.Position + 1, Origin: p.Origin})
	}

	return out
}

// RemovePoint returns a new list without the point at index; later points
// move down by one. Panics if index is outside [0, len(list)).
func RemovePoint(list []BoundaryPoint, index int) []BoundaryPoint {
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("boundary: remove index %d out of range [0,%d)", index, len(list)))
	}
	out := make([]BoundaryPoint, 0, len(list)-1)
	out = append(out, list[:index]...)
	for _, p := range list[index+1:] {
		out = append(out, BoundaryPoint{Position: p.Position - 1, Origin: p.Origin})
	}

	return out
}
