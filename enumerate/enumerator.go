package enumerate

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
	"github.com/katalvlaran/orbiloops/wallpaper"
)

// firstMove is one way to start a loop.
type firstMove struct {
	from, to orbifold.Side
	order    path.FirstOrder
}

// frame is one level of the explicit search stack.
type frame struct {
	state *path.State
	moves []path.Segment
	next  int
}

// Enumerator walks the loop search space of one orbifold type. It is not
// safe for concurrent use.
type Enumerator struct {
	pres  *orbifold.Presentation
	group *wallpaper.Group
	opts  Options
	log   *slog.Logger

	firsts   []firstMove
	depth    int // total edge count D being searched
	firstIdx int
	stack    []frame

	seen     map[string]struct{}
	found    []Loop
	expanded int
}

// New returns an Enumerator for t. No search happens until results are
// requested.
func New(t orbifold.Type, opts ...Option) (*Enumerator, error) {
	p, err := orbifold.Lookup(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownType, err)
	}
	g, err := wallpaper.GroupOf(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownType, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxEdges < MinEdges {
		return nil, fmt.Errorf("%w: got %d", ErrMaxEdges, o.MaxEdges)
	}

	firsts := firstMoves(p)

	// Depth MinEdges-1 counts as exhausted, so the first Next opens D = 3.
	return &Enumerator{
		pres:     p,
		group:    g,
		opts:     o,
		log:      o.Logger.With("type", t.String()),
		firsts:   firsts,
		depth:    MinEdges - 1,
		firstIdx: len(firsts),
		seen:     make(map[string]struct{}),
	}, nil
}

// firstMoves lists start moves: start side, then end side, in walk order;
// same-class pairs come in both orders.
func firstMoves(p *orbifold.Presentation) []firstMove {
	sides := p.Sides()
	out := make([]firstMove, 0, 2*len(sides)*len(sides))
	for _, from := range sides {
		for _, to := range sides {
			out = append(out, firstMove{from: from, to: to, order: path.ToAfterFrom})
			if p.ClassOf(from) == p.ClassOf(to) {
				out = append(out, firstMove{from: from, to: to, order: path.ToBeforeFrom})
			}
		}
	}

	return out
}

// MaxEdges returns the current L.
func (e *Enumerator) MaxEdges() int { return e.opts.MaxEdges }

// SetMaxEdges changes L. Raising it lets an exhausted search continue with
// longer loops; lowering it below the depth in progress pauses the search
// until L is raised again. Found loops are kept either way.
func (e *Enumerator) SetMaxEdges(limit int) error {
	if limit < MinEdges {
		return fmt.Errorf("%w: got %d", ErrMaxEdges, limit)
	}
	e.opts.MaxEdges = limit

	return nil
}

// Found returns a copy of the loops found so far, in output order.
func (e *Enumerator) Found() []Loop { return append([]Loop(nil), e.found...) }

// Expanded returns the number of search states visited so far.
func (e *Enumerator) Expanded() int { return e.expanded }

// Next returns the next new loop, or false when every loop with at most
// MaxEdges edges has been produced.
func (e *Enumerator) Next() (Loop, bool) {
	for {
		if e.depth > e.opts.MaxEdges {
			return Loop{}, false
		}

		// 1) Stack empty: next first move, or the next depth
		if len(e.stack) == 0 {
			if e.firstIdx < len(e.firsts) {
				m := e.firsts[e.firstIdx]
				e.firstIdx++
				s := path.New(e.pres)
				s, err := s.AppendFirst(s.Segment(m.from, 0), s.Segment(m.to, 0), m.order)
				if err != nil {
					panic(fmt.Sprintf("enumerate: first move %s→%s: %v", m.from, m.to, err))
				}
				if l, ok := e.visit(s); ok {
					return l, true
				}
				continue
			}
			if e.depth+1 > e.opts.MaxEdges {
				return Loop{}, false
			}
			e.depth++
			e.firstIdx = 0
			e.log.Debug("enumerate: depth", "edges", e.depth, "found", len(e.found))
			continue
		}

		// 2) Advance the top frame
		top := &e.stack[len(e.stack)-1]
		if top.next >= len(top.moves) {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		seg := top.moves[top.next]
		top.next++
		s, err := top.state.Append(seg)
		if err != nil {
			panic(fmt.Sprintf("enumerate: valid segment %s rejected: %v", seg, err))
		}
		if l, ok := e.visit(s); ok {
			return l, true
		}
	}
}

// visit either tries to close s (one edge short of the depth) or pushes it
// for expansion. It returns a loop when s closes into a new signature.
func (e *Enumerator) visit(s *path.State) (Loop, bool) {
	e.expanded++
	m := s.NumEdges()

	// 1) Leaf: close or drop
	if m == e.depth-1 {
		closed, err := s.CloseLoop()
		if err != nil {
			return Loop{}, false
		}
		return e.record(closed)
	}

	// 2) Inner node; on the last append only gaps next to the first point
	moves := s.ValidSegments()
	if m == e.depth-2 {
		moves = closable(s, moves)
	}
	if len(moves) > 0 {
		e.stack = append(e.stack, frame{state: s, moves: moves})
	}

	return Loop{}, false
}

// closable keeps the segments of the first point's class whose new point
// would be adjacent to it.
func closable(s *path.State, moves []path.Segment) []path.Segment {
	first, _ := s.First()
	p := s.Presentation()
	c := p.ClassOf(first.Side)
	var out []path.Segment
	for _, seg := range moves {
		if p.ClassOf(seg.Side) == c && (seg.Gap == first.Pos || seg.Gap == first.Pos+1) {
			out = append(out, seg)
		}
	}

	return out
}

func (e *Enumerator) record(closed *path.State) (Loop, bool) {
	sig, err := Signature(closed)
	if err != nil {
		panic(fmt.Sprintf("enumerate: %v", err))
	}
	if _, dup := e.seen[sig]; dup {
		return Loop{}, false
	}
	e.seen[sig] = struct{}{}
	l := Loop{Signature: sig, State: closed, Index: e.group.PathIndex(closed.Edges())}
	e.found = append(e.found, l)
	e.log.Debug("enumerate: loop", "n", len(e.found), "edges", closed.NumEdges(), "signature", sig, "index", l.Index.String())
	if e.opts.OnLoop != nil {
		e.opts.OnLoop(l)
	}

	return l, true
}

// Take returns the first k loops, searching only as far as needed. Fewer
// are returned when the search space under MaxEdges is exhausted; k <= 0
// returns none.
func (e *Enumerator) Take(k int) []Loop {
	k = max(k, 0)
	for len(e.found) < k {
		if _, ok := e.Next(); !ok {
			break
		}
	}

	return append([]Loop(nil), e.found[:min(k, len(e.found))]...)
}

// All yields every loop from the first, replaying cached results before
// continuing the search.
func (e *Enumerator) All() iter.Seq[Loop] {
	return func(yield func(Loop) bool) {
		for i := 0; ; i++ {
			if i >= len(e.found) {
				if _, ok := e.Next(); !ok {
					return
				}
			}
			if !yield(e.found[i]) {
				return
			}
		}
	}
}
