package exchange

import (
	"log/slog"

	"github.com/katalvlaran/orbiloops"
)

// Tolerance is the default distance under which two parameters on one
// class name the same point.
const Tolerance = 1e-3

// Option configures Import.
type Option func(*Options)

// Options holds Import settings.
type Options struct {
	// Tolerance for matching parameters. Default 1e-3.
	Tolerance float64

	// Logger receives debug records for matched points.
	Logger *slog.Logger
}

// DefaultOptions returns Tolerance 1e-3 and the package logger.
func DefaultOptions() Options {
	return Options{Tolerance: Tolerance, Logger: orbiloops.Logger()}
}

// WithTolerance overrides the matching tolerance; non-positive values are
// ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
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
