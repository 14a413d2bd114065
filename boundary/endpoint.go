package boundary

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// Endpoint names ordinal Pos of the class of Side, seen on that physical
// side. Two endpoints with partner sides and equal Pos are the same glued
// point but distinct perimeter positions.
type Endpoint struct {
	Side orbifold.Side
	Pos  int
}

// String renders the endpoint as "N:0" or "E2:1".
func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Side.Short(), e.Pos)
}

// Edge is a combinatorial chord between two boundary endpoints.
type Edge struct {
	From Endpoint
	To   Endpoint
}

// String renders the edge as "N:0→S:1".
func (e Edge) String() string {
	return e.From.String() + "→" + e.To.String()
}

// Reverse returns the edge walked in the other direction.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }
