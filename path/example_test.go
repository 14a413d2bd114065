package path_test

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
)

// ExampleState_CloseLoop builds the smallest p3 loop through the west side.
func ExampleState_CloseLoop() {
	s := path.New(orbifold.MustLookup(orbifold.P3))

	// North to west, then back up to the north side after the first point.
	s, _ = s.AppendFirst(s.Segment(orbifold.North, 0), s.Segment(orbifold.West, 0), path.ToAfterFrom)
	s, _ = s.Append(s.Segment(orbifold.North, 1))
	fmt.Println(s)

	closing, v := s.CanClose()
	fmt.Println(v.OK(), closing)

	s, _ = s.CloseLoop()
	fmt.Println(s)

	// Output:
	// open[N:0→W:0 S:0→N:1]
	// true N:1→N:0
	// closed[N:0→W:0 S:0→N:1 N:1→N:0]
}
