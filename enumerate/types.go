package enumerate

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/orbiloops"
	"github.com/katalvlaran/orbiloops/orbifold"
	"github.com/katalvlaran/orbiloops/path"
	"github.com/katalvlaran/orbiloops/wallpaper"
)

// MinEdges is the shortest loop: two point-creating edges and the closing
// edge.
const MinEdges = 3

var (
	// ErrUnknownType is returned by New for a type without tables.
	ErrUnknownType = errors.New("enumerate: unknown orbifold type")

	// ErrMaxEdges indicates a maximum edge count below MinEdges.
	ErrMaxEdges = errors.New("enumerate: max edges must be at least 3")

	// ErrNotClosed is returned by Signature for a state that is not Closed.
	ErrNotClosed = errors.New("enumerate: state is not closed")
)

// Loop is one enumerated closed loop.
type Loop struct {
	// Signature is the canonical form shared by all rotations and mirrors.
	Signature string
	// State is the Closed path as first found.
	State *path.State
	// Index is the wallpaper copy reached by replaying the loop.
	Index wallpaper.Index
}

// Edges returns the number of edges, closing edge included.
func (l Loop) Edges() int { return l.State.NumEdges() }

// Type returns the orbifold type of the loop.
func (l Loop) Type() orbifold.Type { return l.State.Type() }

// Option configures an Enumerator.
type Option func(*Options)

// Options holds Enumerator settings.
type Options struct {
	// MaxEdges is L, the largest total edge count searched. Default 6.
	MaxEdges int

	// Logger receives debug records for depth changes and found loops.
	// Defaults to orbiloops.Logger() at construction time.
	Logger *slog.Logger

	// OnLoop, if non-nil, is called for every new loop before Next returns it.
	OnLoop func(Loop)
}

// DefaultOptions returns MaxEdges 6, the package logger and no hook.
func DefaultOptions() Options {
	return Options{
		MaxEdges: 6,
		Logger:   orbiloops.Logger(),
		OnLoop:   nil,
	}
}

// WithMaxEdges sets L.
func WithMaxEdges(limit int) Option {
	return func(o *Options) {
		o.MaxEdges = limit
	}
}

// WithLogger replaces the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLoop installs a hook called for every new loop.
func WithOnLoop(fn func(Loop)) Option {
	return func(o *Options) {
		o.OnLoop = fn
	}
}
