package exchange

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/orbiloops/path"
)

// Export writes s as a Document with a fresh random ID.
func Export(s *path.State) Document {
	d := Document{
		ID:     uuid.NewString(),
		Type:   s.Type(),
		Closed: s.Phase() == path.Closed,
		Edges:  make([]ParamEdge, 0, s.NumEdges()),
	}
	point := func(e path.Endpoint) ParamPoint {
		return ParamPoint{Side: e.Side, T: s.Param(e)}
	}
	for _, e := range s.Edges() {
		d.Edges = append(d.Edges, ParamEdge{From: point(e.From), To: point(e.To)})
	}

	return d
}
