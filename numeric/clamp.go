// SPDX-License-Identifier: MIT

package numeric

// Clamp restricts x to [BoundaryEps, 1-BoundaryEps] so that logarithms,
// quantiles and negative powers of copula coordinates stay finite.
// NaN passes through unchanged.
func Clamp(x float64) float64 {
	if x < BoundaryEps {
		return BoundaryEps
	}
	if x > 1-BoundaryEps {
		return 1 - BoundaryEps
	}

	return x
}
