// SPDX-License-Identifier: MIT

package selection

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rvine/copula"
)

// Select fits every candidate to the pairs (aᵢ, bᵢ) and returns the one with
// the strictly greatest log-likelihood; the first candidate wins ties.
//
// Returns ErrNoCandidates, copula.ErrLengthMismatch, copula.ErrEmptySample,
// or the context error if ctx is cancelled before every fit has started.
func Select(ctx context.Context, candidates []copula.Family, a, b []float64, opts ...Option) (Choice, error) {
	o := resolve(opts)
	scores, err := fitAll(ctx, candidates, a, b, o)
	if err != nil {
		return Choice{}, err
	}

	return argmax(candidates, scores)
}

// fitAll fits the candidates concurrently and returns their log-likelihoods,
// NaN for unsupported candidates.
func fitAll(ctx context.Context, candidates []copula.Family, a, b []float64, o Options) ([]float64, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(a) != len(b) {
		return nil, copula.ErrLengthMismatch
	}
	if len(a) == 0 {
		return nil, copula.ErrEmptySample
	}

	scores := make([]float64, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, f := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ll, err := o.Estimator.Fit(f, a, b)
			if errors.Is(err, copula.ErrUnsupported) {
				o.Logger.Warn("selection: candidate skipped", "family", f.Name(), "err", err)
				scores[i] = math.NaN()
				return nil
			}
			if err != nil {
				return err
			}
			scores[i] = ll
			o.Logger.Debug("selection: candidate fitted", "family", f.Name(), "params", f.Params(), "loglik", ll)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// argmax picks the first candidate with the strictly greatest non-NaN score.
func argmax(candidates []copula.Family, scores []float64) (Choice, error) {
	best := -1
	for i, s := range scores {
		if math.IsNaN(s) {
			continue
		}
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	if best < 0 {
		return Choice{}, ErrNoCandidates
	}

	return Choice{
		Family: candidates[best],
		Index:  best,
		Score:  scores[best],
		Scores: scores,
	}, nil
}
