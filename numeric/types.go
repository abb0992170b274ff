// SPDX-License-Identifier: MIT
// Package numeric: constants and functional options shared by the kernels.

package numeric

const (
	// DefaultNodes is the default number of Simpson subintervals.
	// Adequate to 1e-6 for the smooth integrands used by the copula families.
	DefaultNodes = 1000

	// DefaultBisectIter caps the number of halvings performed by Bisect.
	DefaultBisectIter = 50

	// DefaultMaximizeIter caps the number of golden-section reductions.
	DefaultMaximizeIter = 200

	// DefaultTolerance is the absolute tolerance on residuals and bracket widths.
	DefaultTolerance = 1e-12

	// BoundaryEps keeps copula coordinates away from {0, 1}.
	BoundaryEps = 1e-4
)

// Options configures Bisect and Maximize.
//
// Fields:
//
//	MaxIter  : hard cap on iterations; values <= 0 fall back to the kernel default.
//	Tolerance: absolute stopping tolerance; values <= 0 fall back to DefaultTolerance.
type Options struct {
	MaxIter   int
	Tolerance float64
}

// Option configures Options.
type Option func(*Options)

// WithMaxIter sets the iteration cap.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithTolerance sets the absolute stopping tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// resolve applies opts over a zero Options and fills the defaults for maxIter.
func resolve(maxIter int, opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxIter <= 0 {
		o.MaxIter = maxIter
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}

	return o
}

// Result reports the outcome of an iterative kernel.
//
// X is the best estimate, F the function value at X (Maximize only; Bisect
// stores the residual f(X)-target), Iterations the number of iterations used,
// and Converged whether a tolerance criterion stopped the loop before the cap.
type Result struct {
	X          float64
	F          float64
	Iterations int
	Converged  bool
}
