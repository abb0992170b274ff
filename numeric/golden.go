// SPDX-License-Identifier: MIT

package numeric

import "math"

// invPhi is 1/φ, the golden-section reduction factor.
var invPhi = (math.Sqrt(5) - 1) / 2

// Maximize searches [lo, hi] for the maximum of f by golden-section reduction.
//
// The search assumes f is unimodal on the bracket, which holds for the
// one-parameter copula log-likelihoods. Both bracket ends are compared with
// the interior optimum at the end, so a maximum sitting on a bound (e.g. the
// Gumbel independence boundary θ=1) is returned exactly.
//
// NaN values of f are treated as -Inf. Result.Converged is false if the
// iteration cap stopped the reduction.
//
// Complexity: MaxIter+4 evaluations of f at most.
func Maximize(f func(float64) float64, lo, hi float64, opts ...Option) Result {
	o := resolve(DefaultMaximizeIter, opts)
	eval := func(x float64) float64 {
		v := f(x)
		if math.IsNaN(v) {
			return math.Inf(-1)
		}
		return v
	}

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := eval(c), eval(d)

	var (
		it        int
		converged bool
	)
	for it = 0; it < o.MaxIter; it++ {
		if math.Abs(b-a) <= o.Tolerance*(1+math.Abs(a)+math.Abs(b)) {
			converged = true
			break
		}
		if fc >= fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = eval(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = eval(d)
		}
	}

	best := Result{X: c, F: fc, Iterations: it, Converged: converged}
	if fd > best.F {
		best.X, best.F = d, fd
	}
	// Boundary optima: the interior iterates only approach a bound asymptotically.
	if fl := eval(lo); fl > best.F {
		best.X, best.F = lo, fl
	}
	if fh := eval(hi); fh > best.F {
		best.X, best.F = hi, fh
	}

	return best
}
