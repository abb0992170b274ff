// SPDX-License-Identifier: MIT

package copula

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/rvine/numeric"
)

// minDensity floors densities before the logarithm.
const minDensity = 1e-300

// penalty replaces an invalid objective value inside Nelder-Mead.
const penalty = 1e100

// Estimator fits family parameters by maximum likelihood.
// An Estimator holds only configuration and is safe for concurrent use on
// distinct families.
type Estimator struct {
	opts Options
}

// NewEstimator returns an Estimator configured by opts.
func NewEstimator(opts ...Option) *Estimator {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Estimator{opts: o}
}

// Fit is shorthand for NewEstimator(opts...).Fit(f, a, b).
func Fit(f Family, a, b []float64, opts ...Option) (float64, error) {
	return NewEstimator(opts...).Fit(f, a, b)
}

// LogLikelihood returns Σ log c(aᵢ, bᵢ) at the current parameters.
// Densities below 1e-300 are floored. A density that is NaN, infinite or
// negative marks the parameters as invalid and yields -Inf.
func LogLikelihood(f Family, a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := f.Density(a[i], b[i])
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return math.Inf(-1)
		}
		sum += math.Log(math.Max(d, minDensity))
	}

	return sum
}

// Fit maximizes the log-likelihood of f on the pairs (aᵢ, bᵢ) over the
// family's admissible box, writes the optimum into f and returns the achieved
// log-likelihood.
//
// Steps:
//  1. Validate the sample: equal lengths, non-empty.
//  2. No parameters: return the log-likelihood (0 for Independence).
//  3. One parameter: bounded golden-section search over [Lower, Upper]; the
//     declared Start is kept if it scores higher than the search result.
//  4. Several parameters: Nelder-Mead from Start in logit coordinates, so
//     every iterate maps strictly inside the box.
//  5. Write the optimum back with SetParams.
//
// A fit stopped by the iteration cap is logged at WARN and still returned.
func (e *Estimator) Fit(f Family, a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	if len(a) == 0 {
		return 0, ErrEmptySample
	}

	bounds := f.Bounds()
	switch bounds.Dim() {
	case 0:
		return LogLikelihood(f, a, b), nil
	case 1:
		return e.fitScalar(f, bounds, a, b)
	default:
		return e.fitSimplex(f, bounds, a, b)
	}
}

func (e *Estimator) fitScalar(f Family, bounds Bounds, a, b []float64) (float64, error) {
	work := f.Clone()
	objective := func(theta float64) float64 {
		if err := work.SetParams([]float64{theta}); err != nil {
			return math.Inf(-1)
		}
		return LogLikelihood(work, a, b)
	}

	res := numeric.Maximize(objective, bounds.Lower[0], bounds.Upper[0],
		numeric.WithMaxIter(e.opts.MaxIter), numeric.WithTolerance(e.opts.Tolerance))
	if !res.Converged {
		e.opts.Logger.Warn("copula: fit stopped at iteration cap",
			"family", f.Name(), "iterations", res.Iterations, "theta", res.X)
	}
	best, ll := res.X, res.F
	if len(bounds.Start) == 1 {
		if s := objective(bounds.Start[0]); s > ll {
			best, ll = bounds.Start[0], s
		}
	}

	if err := f.SetParams([]float64{best}); err != nil {
		return 0, err
	}

	return ll, nil
}

func (e *Estimator) fitSimplex(f Family, bounds Bounds, a, b []float64) (float64, error) {
	dim := bounds.Dim()
	work := f.Clone()
	start := bounds.Start
	if len(start) != dim {
		start = f.Params()
	}

	toBox := func(z []float64) []float64 {
		p := make([]float64, dim)
		for i, v := range z {
			p[i] = bounds.Lower[i] + (bounds.Upper[i]-bounds.Lower[i])/(1+math.Exp(-v))
		}
		return p
	}
	z0 := make([]float64, dim)
	for i, s := range start {
		t := (s - bounds.Lower[i]) / (bounds.Upper[i] - bounds.Lower[i])
		t = math.Min(math.Max(t, 1e-6), 1-1e-6)
		z0[i] = math.Log(t / (1 - t))
	}

	problem := optimize.Problem{
		Func: func(z []float64) float64 {
			if err := work.SetParams(toBox(z)); err != nil {
				return penalty
			}
			ll := LogLikelihood(work, a, b)
			if math.IsInf(ll, 0) || math.IsNaN(ll) {
				return penalty
			}
			return -ll
		},
	}
	settings := &optimize.Settings{
		MajorIterations: e.opts.MaxIter,
		FuncEvaluations: 20 * e.opts.MaxIter,
	}

	res, err := optimize.Minimize(problem, z0, settings, &optimize.NelderMead{})
	if res == nil {
		return 0, err
	}
	if err != nil || res.Status == optimize.IterationLimit || res.Status == optimize.FunctionEvaluationLimit {
		e.opts.Logger.Warn("copula: fit stopped before convergence",
			"family", f.Name(), "status", res.Status.String(), "err", err)
	}

	best, ll := toBox(res.X), -res.F
	// Rounding in toBox can touch a bound; clip back into the box.
	for i := range best {
		best[i] = math.Min(math.Max(best[i], bounds.Lower[i]), bounds.Upper[i])
	}
	if err := f.SetParams(best); err != nil {
		return 0, err
	}

	return ll, nil
}
