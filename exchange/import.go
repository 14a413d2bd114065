package exchange

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
)

// importer carries the replay state: the path so far and, per class, the
// parameters of its points in ordinal order.
type importer struct {
	opts   Options
	pres   *orbifold.Presentation
	state  *path.State
	params [][]float64
}

// Import replays d through the path state machine and returns the final
// state. Rejected moves come back wrapped with the edge index, so
// errors.Is(err, path.ErrCrossing) and friends still work.
func Import(d Document, opts ...Option) (*path.State, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := orbifold.MustLookup(d.Type)
	im := &importer{opts: o, pres: p, state: path.New(p), params: make([][]float64, p.NumClasses())}

	if len(d.Edges) > 0 {
		if err := im.first(d.Edges[0]); err != nil {
			return nil, err
		}
	}
	for i := 1; i < len(d.Edges); i++ {
		if im.state.Phase() == path.Closed {
			return nil, fmt.Errorf("%w: edge %d follows the closing edge", ErrMalformed, i)
		}
		if err := im.next(i, d.Edges[i]); err != nil {
			return nil, err
		}
	}
	if d.Closed != (im.state.Phase() == path.Closed) {
		return nil, fmt.Errorf("%w: document closed=%t but edges leave the path %s", ErrMalformed, d.Closed, im.state.Phase())
	}

	return im.state, nil
}

func (im *importer) first(e ParamEdge) error {
	cf, ct := im.pres.ClassOf(e.From.Side), im.pres.ClassOf(e.To.Side)
	order := path.ToAfterFrom
	if cf == ct {
		if math.Abs(e.To.T-e.From.T) < im.opts.Tolerance {
			return fmt.Errorf("%w: edge 0 joins a point to itself", ErrMalformed)
		}
		if e.To.T < e.From.T {
			order = path.ToBeforeFrom
		}
		im.params[cf] = []float64{min(e.From.T, e.To.T), max(e.From.T, e.To.T)}
	} else {
		im.params[cf] = []float64{e.From.T}
		im.params[ct] = []float64{e.To.T}
	}

	s := im.state
	next, err := s.AppendFirst(s.Segment(e.From.Side, 0), s.Segment(e.To.Side, 0), order)
	if err != nil {
		return fmt.Errorf("exchange: edge 0: %w", err)
	}
	im.state = next

	return nil
}

func (im *importer) next(i int, e ParamEdge) error {
	s := im.state
	cur, _ := s.Current()
	first, _ := s.First()
	ct := im.pres.ClassOf(e.To.Side)

	// 1) Ending on a known point closes the loop
	if j := im.match(ct, e.To.T); j >= 0 {
		im.opts.Logger.Debug("exchange: matched point", "edge", i, "side", e.To.Side.String(), "t", e.To.T, "pos", j)
		if want := (path.Endpoint{Side: e.To.Side, Pos: j}); want != first {
			return fmt.Errorf("%w: edge %d ends on %s, only the first point %s may be revisited", ErrMalformed, i, want, first)
		}
		if err := im.checkStart(i, e.From, path.Endpoint{Side: first.Side, Pos: cur.Pos}); err != nil {
			return err
		}
		closed, err := s.CloseLoop()
		if err != nil {
			return fmt.Errorf("exchange: edge %d: %w", i, err)
		}
		im.state = closed
		return nil
	}

	// 2) Otherwise the edge starts at the current point and adds one
	if err := im.checkStart(i, e.From, cur); err != nil {
		return err
	}
	g, _ := slices.BinarySearch(im.params[ct], e.To.T)
	next, err := s.Append(s.Segment(e.To.Side, g))
	if err != nil {
		return fmt.Errorf("exchange: edge %d: %w", i, err)
	}
	im.params[ct] = slices.Insert(im.params[ct], g, e.To.T)
	im.state = next

	return nil
}

// checkStart requires pt to be want, within tolerance.
func (im *importer) checkStart(i int, pt ParamPoint, want path.Endpoint) error {
	c := im.pres.ClassOf(want.Side)
	t := im.params[c][want.Pos]
	if pt.Side != want.Side || math.Abs(pt.T-t) >= im.opts.Tolerance {
		return fmt.Errorf("%w: edge %d starts at %s(%.4f), current point is %s(%.4f)",
			ErrPointNotFound, i, pt.Side, pt.T, want.Side, t)
	}

	return nil
}

// match returns the ordinal of the point of class c within tolerance of t,
// or -1.
func (im *importer) match(c orbifold.ClassID, t float64) int {
	for j, x := range im.params[c] {
		if math.Abs(x-t) < im.opts.Tolerance {
			return j
		}
	}

	return -1
}
