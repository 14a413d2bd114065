package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/enumerate"
	"github.com/katalvlaran/orbiloops/orbifold"
)

// ExampleEnumerator_Take lists the first p3 loops with three edges.
func ExampleEnumerator_Take() {
	e, err := enumerate.New(orbifold.P3, enumerate.WithMaxEdges(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, l := range e.Take(3) {
		fmt.Println(l.Signature, l.State)
	}

	// Output:
	// E01>N00,N00>N01 closed[N:1→N:2 E:2→N:0 N:0→N:1]
	// E00>E01,N01>N00 closed[N:1→N:2 E:2→E:0 N:0→N:1]
	// E00>N01,N01>N00 closed[N:1→N:0 E:0→N:2 N:2→N:1]
}
