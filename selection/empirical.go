// SPDX-License-Identifier: MIT

package selection

import "github.com/katalvlaran/rvine/copula"

// Empirical returns the empirical copula evaluated at every observation,
//
//	Cₙ(aᵢ, bᵢ) = (1/n)·#{j : aⱼ ≤ aᵢ, bⱼ ≤ bᵢ}.
//
// Complexity: O(n²) time, O(n) memory.
func Empirical(a, b []float64) []float64 {
	n := len(a)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var c int
		for j := 0; j < n; j++ {
			if a[j] <= a[i] && b[j] <= b[i] {
				c++
			}
		}
		out[i] = float64(c) / float64(n)
	}

	return out
}

// CramerVonMises returns Σᵢ (Cₙ(aᵢ, bᵢ) - C(aᵢ, bᵢ))² for the fitted family f.
// The inputs must have equal length.
func CramerVonMises(f copula.Family, a, b []float64) float64 {
	emp := Empirical(a, b)

	var s float64
	for i, e := range emp {
		d := e - f.CDF(a[i], b[i])
		s += d * d
	}

	return s
}
