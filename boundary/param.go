package boundary

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// Param maps ordinal pos of a class holding n points to its glued
// parameter (pos+0.5)/n in (0,1). Both sides of the class share it.
func Param(pos, n int) float64 {
	if n <= 0 || pos < 0 || pos >= n {
		panic(fmt.Sprintf("boundary: position %d out of range for size %d", pos, n))
	}

	return (float64(pos) + 0.5) / float64(n)
}

// DisplayParam is Param measured along the perimeter walk of side s:
// unchanged on forward sides, 1-Param on reversed ones.
func DisplayParam(p *orbifold.Presentation, s orbifold.Side, pos, n int) float64 {
	t := Param(pos, n)
	if p.Reversed(s) {
		return 1 - t
	}

	return t
}
