// SPDX-License-Identifier: MIT

package numeric

// Simpson integrates f over [lo, hi] with the composite Simpson rule on n
// equal subintervals. If n <= 0, DefaultNodes is used.
//
// Reversed bounds (hi < lo) yield the negated integral, which the Frank
// Debye integral relies on for negative parameters.
//
// Complexity: 2n+1 evaluations of f, O(1) memory.
func Simpson(f func(float64) float64, n int, lo, hi float64) float64 {
	if n <= 0 {
		n = DefaultNodes
	}
	h := (hi - lo) / float64(n)
	sum := f(lo) + f(hi)

	var i int
	for i = 1; i < n; i++ {
		sum += 2 * f(lo+h*float64(i))
	}
	for i = 1; i <= n; i++ {
		sum += 4 * f(lo+h*(float64(i)-0.5))
	}

	return sum * h / 6.0
}
