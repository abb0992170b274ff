// SPDX-License-Identifier: MIT

package numeric

import "math"

// Bisect returns x in [lo, hi] such that f(x) ≈ target, for f monotone on the
// bracket (increasing or decreasing).
//
// Steps:
//  1. Evaluate both bracket ends; an exact hit returns immediately.
//  2. Halve the bracket, keeping the half whose ends straddle target.
//  3. Stop when |f(mid)-target| <= Tolerance, when the bracket is narrower
//     than Tolerance, or after MaxIter halvings.
//
// A target outside [f(lo), f(hi)] converges to the nearer bracket end.
// Result.Converged is false only when the iteration cap stopped the loop.
func Bisect(f func(float64) float64, target, lo, hi float64, opts ...Option) Result {
	o := resolve(DefaultBisectIter, opts)

	fl := f(lo) - target
	if math.Abs(fl) <= o.Tolerance {
		return Result{X: lo, F: fl, Converged: true}
	}
	fh := f(hi) - target
	if math.Abs(fh) <= o.Tolerance {
		return Result{X: hi, F: fh, Converged: true}
	}
	increasing := fl <= fh

	var (
		x0, x1 = lo, hi
		mid    float64
		val    float64
		it     int
	)
	for it = 1; it <= o.MaxIter; it++ {
		mid = (x0 + x1) / 2.0
		val = f(mid) - target
		if math.Abs(val) <= o.Tolerance || math.Abs(x1-x0) <= o.Tolerance {
			return Result{X: mid, F: val, Iterations: it, Converged: true}
		}
		if (val > 0) == increasing {
			x1 = mid
		} else {
			x0 = mid
		}
	}

	return Result{X: mid, F: val, Iterations: o.MaxIter, Converged: false}
}
