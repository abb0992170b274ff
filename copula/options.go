// SPDX-License-Identifier: MIT

package copula

import (
	"io"
	"log/slog"
)

// Estimator defaults.
const (
	// DefaultFitIter caps golden-section reductions (one parameter) and
	// Nelder-Mead major iterations (several parameters).
	DefaultFitIter = 200

	// DefaultFitTolerance is the relative bracket width that stops a
	// one-parameter search.
	DefaultFitTolerance = 1e-8
)

// Options configures the Estimator.
//
//	MaxIter  : iteration cap of the underlying optimizer.
//	Tolerance: relative stopping tolerance of the scalar search.
//	Logger   : receives WARN records for non-converged fits; never nil after DefaultOptions.
type Options struct {
	MaxIter   int
	Tolerance float64
	Logger    *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the estimator defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxIter:   DefaultFitIter,
		Tolerance: DefaultFitTolerance,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxIter sets the optimizer iteration cap. Values <= 0 are ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithTolerance sets the scalar search tolerance. Values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithLogger injects a logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
