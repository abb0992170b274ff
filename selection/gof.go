// SPDX-License-Identifier: MIT

package selection

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/numeric"
	"github.com/katalvlaran/rvine/rank"
)

// GoodnessOfFit ranks the candidates by a parametric-bootstrap p-value and
// returns the candidate with the greatest one; the first wins ties.
//
// Steps:
//  1. Fit every candidate to (a, b) and compute Sₙ = CramerVonMises(f, a, b).
//  2. For k = 1..B, per candidate and in parallel:
//     draw n pairs from the fitted model (u ~ U(0,1), v = H2Inverse(u, w),
//     w ~ U(0,1)), rank-normalize both coordinates, refit a Clone of the
//     candidate and recompute the statistic S*ₖ.
//  3. p = #{k : S*ₖ > Sₙ} / B.
//
// The returned Family keeps the fit on the observed data; bootstrap refits
// never touch it. Choice.Score is the winning p-value.
func GoodnessOfFit(ctx context.Context, candidates []copula.Family, a, b []float64, opts ...Option) (Choice, error) {
	o := resolve(opts)
	lls, err := fitAll(ctx, candidates, a, b, o)
	if err != nil {
		return Choice{}, err
	}

	stats := make([]float64, len(candidates))
	for i, f := range candidates {
		if math.IsNaN(lls[i]) {
			stats[i] = math.NaN()
			continue
		}
		stats[i] = CramerVonMises(f, a, b)
	}

	exceed := make([][]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, f := range candidates {
		if math.IsNaN(stats[i]) {
			continue
		}
		exceed[i] = make([]bool, o.Bootstrap)
		cand := numeric.DeriveSeed(o.Seed, uint64(i))
		for k := 0; k < o.Bootstrap; k++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := bootstrapStat(f, len(a), numeric.DeriveSeed(cand, uint64(k)), o.Estimator)
				if err != nil {
					return err
				}
				exceed[i][k] = s > stats[i]
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Choice{}, err
	}

	pvals := make([]float64, len(candidates))
	for i := range candidates {
		if exceed[i] == nil {
			pvals[i] = math.NaN()
			continue
		}
		var c int
		for _, hit := range exceed[i] {
			if hit {
				c++
			}
		}
		pvals[i] = float64(c) / float64(o.Bootstrap)
		o.Logger.Debug("selection: goodness of fit",
			"family", candidates[i].Name(), "stat", stats[i], "p", pvals[i])
	}

	return argmax(candidates, pvals)
}

// bootstrapStat simulates one synthetic sample of size n from fitted, refits
// a clone and returns its Cramér-von Mises statistic. fitted is only read.
func bootstrapStat(fitted copula.Family, n int, seed int64, est *copula.Estimator) (float64, error) {
	rng := numeric.NewRand(seed)
	u := make([]float64, n)
	v := make([]float64, n)
	for j := 0; j < n; j++ {
		u[j] = rng.Float64()
		v[j] = fitted.H2Inverse(u[j], rng.Float64())
	}
	u, v = rank.Normalize(u), rank.Normalize(v)

	refit := fitted.Clone()
	if _, err := est.Fit(refit, u, v); err != nil && !errors.Is(err, copula.ErrUnsupported) {
		return 0, err
	}

	return CramerVonMises(refit, u, v), nil
}
