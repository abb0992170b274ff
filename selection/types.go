// SPDX-License-Identifier: MIT

package selection

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/numeric"
)

// ErrNoCandidates is returned when the candidate list is empty or every
// candidate was skipped as unsupported.
var ErrNoCandidates = errors.New("selection: no usable candidate")

// DefaultBootstrap is the default number of bootstrap iterations B.
const DefaultBootstrap = 100

// Options configures Select and GoodnessOfFit.
//
//	Logger   : DEBUG per-candidate scores, WARN for skipped candidates.
//	Workers  : errgroup limit; <= 0 means runtime.GOMAXPROCS(0).
//	Bootstrap: iterations per candidate (GoodnessOfFit only).
//	Seed     : root of the bootstrap streams; 0 means numeric.DefaultSeed.
//	Estimator: the maximum-likelihood fitter shared by all tasks.
type Options struct {
	Logger    *slog.Logger
	Workers   int
	Bootstrap int
	Seed      int64
	Estimator *copula.Estimator
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults: discarding logger, GOMAXPROCS workers,
// DefaultBootstrap iterations, numeric.DefaultSeed and a default estimator.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:   runtime.GOMAXPROCS(0),
		Bootstrap: DefaultBootstrap,
		Seed:      numeric.DefaultSeed,
		Estimator: copula.NewEstimator(),
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

// WithWorkers bounds the number of concurrent tasks.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithBootstrap sets the number of bootstrap iterations. Values <= 0 are ignored.
func WithBootstrap(b int) Option {
	return func(o *Options) {
		if b > 0 {
			o.Bootstrap = b
		}
	}
}

// WithSeed sets the bootstrap seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = numeric.DefaultSeed
		}
		o.Seed = seed
	}
}

// WithEstimator replaces the estimator. nil is ignored.
func WithEstimator(e *copula.Estimator) Option {
	return func(o *Options) {
		if e != nil {
			o.Estimator = e
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Choice is the outcome of a selection.
//
// Family is the chosen candidate (the caller's instance, fitted), Index its
// position in the candidate list and Score its log-likelihood (Select) or
// p-value (GoodnessOfFit). Scores holds the score of every candidate in input
// order, NaN for skipped ones.
type Choice struct {
	Family copula.Family
	Index  int
	Score  float64
	Scores []float64
}
