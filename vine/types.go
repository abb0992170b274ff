// SPDX-License-Identifier: MIT

package vine

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/numeric"
	"github.com/katalvlaran/rvine/selection"
)

// Sentinel errors for graph construction, spanning trees and vine building.
var (
	// ErrEmptyGraph indicates a nil graph or a graph without nodes.
	ErrEmptyGraph = errors.New("vine: graph is empty")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("vine: graph is disconnected")

	// ErrNodeNotFound indicates an edge endpoint that is not part of the graph.
	ErrNodeNotFound = errors.New("vine: node not found")

	// ErrDuplicateNode indicates a node ID already present in the graph.
	ErrDuplicateNode = errors.New("vine: duplicate node ID")

	// ErrLoop indicates an edge from a node to itself.
	ErrLoop = errors.New("vine: self-loop not allowed")

	// ErrTooFewVariables indicates fewer than two input variables.
	ErrTooFewVariables = errors.New("vine: at least two variables required")

	// ErrLengthMismatch indicates variables with different sample sizes.
	ErrLengthMismatch = errors.New("vine: sample length mismatch")

	// ErrMissingSample indicates that a node carries no sample for a variable
	// its edge needs, i.e. the level graph violates the proximity condition.
	ErrMissingSample = errors.New("vine: node has no sample for variable")
)

// Method selects the spanning-tree algorithm.
type Method int

const (
	// MethodPrim grows the tree from a seeded random start node.
	MethodPrim Method = iota
	// MethodKruskal merges components in descending absolute weight.
	MethodKruskal
)

// String returns "prim" or "kruskal".
func (m Method) String() string {
	if m == MethodKruskal {
		return "kruskal"
	}
	return "prim"
}

// Options configures Build.
//
// Fields:
//
//	Families     : copula.Library selection vector; nil selects every family.
//	GoodnessOfFit: rank candidates by bootstrap p-value instead of log-likelihood.
//	Seed         : root of every random stream (start nodes, bootstraps).
//	Logger       : DEBUG per level and per edge; passed down to selection and fitting.
//	Workers      : concurrent fits / bootstrap iterations per edge.
//	Bootstrap    : bootstrap iterations B when GoodnessOfFit is set.
//	MaxLevels    : truncation level; <= 0 builds all d-1 trees.
//	Normalize    : rank-normalize every input column first.
//	Method       : spanning-tree algorithm.
type Options struct {
	Families      []bool
	GoodnessOfFit bool
	Seed          int64
	Logger        *slog.Logger
	Workers       int
	Bootstrap     int
	MaxLevels     int
	Normalize     bool
	Method        Method
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults: every family, log-likelihood selection,
// numeric.DefaultSeed, a discarding logger, GOMAXPROCS workers, B = 100,
// no truncation, rank normalization on, Prim.
func DefaultOptions() Options {
	return Options{
		Families:  copula.AllFamilies(),
		Seed:      numeric.DefaultSeed,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:   runtime.GOMAXPROCS(0),
		Bootstrap: selection.DefaultBootstrap,
		Normalize: true,
		Method:    MethodPrim,
	}
}

// WithFamilies sets the candidate selection vector.
func WithFamilies(sel []bool) Option {
	return func(o *Options) {
		o.Families = append([]bool(nil), sel...)
	}
}

// WithGoodnessOfFit switches edge selection to the bootstrap test.
func WithGoodnessOfFit(on bool) Option {
	return func(o *Options) {
		o.GoodnessOfFit = on
	}
}

// WithSeed sets the root seed; 0 means numeric.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = numeric.DefaultSeed
		}
		o.Seed = seed
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

// WithWorkers bounds per-edge concurrency; <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithBootstrap sets B for goodness-of-fit selection. Values <= 0 are ignored.
func WithBootstrap(b int) Option {
	return func(o *Options) {
		if b > 0 {
			o.Bootstrap = b
		}
	}
}

// WithMaxLevels truncates the vine after n trees.
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		o.MaxLevels = n
	}
}

// WithNormalize toggles rank normalization of the input columns.
func WithNormalize(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

// WithMethod selects the spanning-tree algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}
