// SPDX-License-Identifier: MIT

package vine

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/numeric"
	"github.com/katalvlaran/rvine/rank"
	"github.com/katalvlaran/rvine/selection"
)

// PairCopula is the fitted family on one tree edge.
type PairCopula struct {
	Edge   *Edge
	Family copula.Family
	// Score is the log-likelihood, or the p-value under goodness-of-fit selection.
	Score float64
}

// Tree is one vine level: the spanning tree and its pair-copulas, in tree edge order.
type Tree struct {
	Level int
	Graph *Graph
	Pairs []PairCopula
}

// Vine is a fitted R-Vine structure.
type Vine struct {
	// Trees holds levels 0..len(Trees)-1.
	Trees []*Tree

	// Dependence is the Kendall's tau matrix of the (normalized) input.
	Dependence *mat.SymDense
}

// Dim returns the number of variables.
func (v *Vine) Dim() int {
	r, _ := v.Dependence.Dims()
	return r
}

// Pairs returns every pair-copula, level by level.
func (v *Vine) Pairs() []PairCopula {
	var out []PairCopula
	for _, t := range v.Trees {
		out = append(out, t.Pairs...)
	}

	return out
}

// Build selects an R-Vine for the columns of data, one column per variable.
//
// Steps:
//  1. Validate: at least two columns of equal length ≥ 2.
//  2. Rank-normalize each column (WithNormalize, default on).
//  3. Level 0: complete graph over the variables, weighted by Kendall's tau.
//  4. Per level: spanning tree; for every tree edge with conditioned pair
//     (x, y), a = F(x|D), b = F(y|D):
//     a. select the family over copula.Library(Families) on (a, b);
//     b. derive F(x|y,D) = H1(a, b) and F(y|x,D) = H2(a, b);
//     c. the edge becomes a node of the next level carrying both samples.
//  5. Next-level edges join two nodes whose tree edges share an endpoint, and
//     are weighted by Kendall's tau of their conditioned pair.
//  6. Stop after d-1 levels, or MaxLevels.
//
// ctx is checked before every edge selection.
func Build(ctx context.Context, data [][]float64, opts ...Option) (*Vine, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	d := len(data)
	if d < 2 {
		return nil, ErrTooFewVariables
	}
	cols := make([][]float64, d)
	for i, c := range data {
		if len(c) != len(data[0]) {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrLengthMismatch, i, len(c), len(data[0]))
		}
		if o.Normalize {
			cols[i] = rank.Normalize(c)
		} else {
			cols[i] = append([]float64(nil), c...)
		}
	}

	tau, err := rank.TauMatrix(cols)
	if err != nil {
		return nil, err
	}

	g := NewGraph()
	for i, c := range cols {
		if err := g.AddNode(NewNode(strconv.Itoa(i), []int{i}, map[int][]float64{i: c})); err != nil {
			return nil, err
		}
	}
	nodes := g.Nodes()
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if _, err := g.AddEdge(nodes[i], nodes[j], tau.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	levels := d - 1
	if o.MaxLevels > 0 && o.MaxLevels < levels {
		levels = o.MaxLevels
	}

	v := &Vine{Dependence: tau}
	rng := numeric.NewRand(o.Seed)
	for level := 0; level < levels; level++ {
		tree, err := SpanningTree(g, o.Method, rng)
		if err != nil {
			return nil, fmt.Errorf("vine: level %d: %w", level, err)
		}
		t, next, err := buildLevel(ctx, level, tree, o)
		if err != nil {
			return nil, err
		}
		v.Trees = append(v.Trees, t)
		o.Logger.Debug("vine: level built", "level", level, "edges", tree.Size(), "method", o.Method.String())
		g = next
	}

	return v, nil
}

// buildLevel fits every edge of tree and returns the level plus the graph of
// the next level.
func buildLevel(ctx context.Context, level int, tree *Graph, o Options) (*Tree, *Graph, error) {
	t := &Tree{Level: level, Graph: tree}
	next := NewGraph()

	for i, e := range tree.edges {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		x, y, a, b, err := conditionedPair(e)
		if err != nil {
			return nil, nil, err
		}

		seed := numeric.DeriveSeed(o.Seed, uint64(level)<<32|uint64(i))
		choice, err := selectEdge(ctx, a, b, seed, o)
		if err != nil {
			return nil, nil, fmt.Errorf("vine: edge %s: %w", e.Label(), err)
		}
		f := choice.Family
		t.Pairs = append(t.Pairs, PairCopula{Edge: e, Family: f, Score: choice.Score})
		o.Logger.Debug("vine: edge fitted",
			"level", level, "edge", e.Label(), "family", f.Name(), "params", f.Params(), "score", choice.Score)

		hx := make([]float64, len(a))
		hy := make([]float64, len(a))
		for k := range a {
			hx[k] = f.H1(a[k], b[k])
			hy[k] = f.H2(a[k], b[k])
		}
		node := NewNode(e.Label(), union(e.From.Set, e.To.Set), map[int][]float64{x: hx, y: hy})
		node.origin = e
		if err := next.AddNode(node); err != nil {
			return nil, nil, err
		}
	}

	// Proximity: two next-level nodes are adjacent iff their edges share a node.
	nodes := next.nodes
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			ei, ej := nodes[i].origin, nodes[j].origin
			if ei.Other(ej.From) == nil && ei.Other(ej.To) == nil {
				continue
			}
			e := newEdge(nodes[i], nodes[j], 0)
			_, _, a, b, err := conditionedPair(e)
			if err != nil {
				return nil, nil, err
			}
			e.Weight = rank.KendallTau(a, b)
			if math.IsNaN(e.Weight) {
				o.Logger.Warn("vine: undefined tau, weight set to 0", "level", level+1, "edge", e.Label())
				e.Weight = 0
			}
			next.link(e)
		}
	}

	return t, next, nil
}

// conditionedPair returns the conditioned indices x ∈ From\To, y ∈ To\From and
// their samples on the respective endpoints.
func conditionedPair(e *Edge) (x, y int, a, b []float64, err error) {
	dx := difference(e.From.Set, e.To.Set)
	dy := difference(e.To.Set, e.From.Set)
	if len(dx) != 1 || len(dy) != 1 {
		return 0, 0, nil, nil, fmt.Errorf("%w: edge %s conditions on %d+%d variables",
			ErrMissingSample, e.Label(), len(dx), len(dy))
	}
	x, y = dx[0], dy[0]
	if a, err = e.From.Sample(x); err != nil {
		return 0, 0, nil, nil, err
	}
	if b, err = e.To.Sample(y); err != nil {
		return 0, 0, nil, nil, err
	}

	return x, y, a, b, nil
}

// selectEdge runs the configured selector over a fresh candidate library.
func selectEdge(ctx context.Context, a, b []float64, seed int64, o Options) (selection.Choice, error) {
	cands, err := copula.Library(o.Families)
	if err != nil {
		return selection.Choice{}, err
	}
	est := copula.NewEstimator(copula.WithLogger(o.Logger))
	sopts := []selection.Option{
		selection.WithLogger(o.Logger),
		selection.WithWorkers(o.Workers),
		selection.WithEstimator(est),
	}
	if o.GoodnessOfFit {
		sopts = append(sopts, selection.WithBootstrap(o.Bootstrap), selection.WithSeed(seed))
		return selection.GoodnessOfFit(ctx, cands, a, b, sopts...)
	}

	return selection.Select(ctx, cands, a, b, sopts...)
}
