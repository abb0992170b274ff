// Package copula implements the bivariate pair-copula families used on R-Vine
// edges, the rotation decorator, the family library and the maximum-likelihood
// estimator.
//
// What:
//
//   - Family: the capability contract. CDF, Density, the two conditional
//     distribution functions (h-functions) and their inverses, Kendall's tau,
//     plus Name/Params/SetParams/Bounds/Clone.
//   - Families: Independence "I", Gauss "G", Student-t "T", Clayton "C",
//     Frank "F", Gumbel "Gu", FGM "FGM", Galambos "Ga".
//   - Rotate(f, angle): 90°, 180° and 270° rotations of Clayton and Gumbel,
//     implemented once as coordinate reflections over the base family.
//   - Library(selection): instantiates the selected families (four rotations
//     each for Clayton and Gumbel) with their default parameters.
//   - Estimator / Fit: bounded maximization of the log-likelihood over the
//     family's admissible interval; the fitted parameters are written back.
//
// Conventions:
//
//	H1(x, y) = P(U ≤ x | V = y)   conditional on the second coordinate
//	H2(x, y) = P(V ≤ y | U = x)   conditional on the first coordinate
//	H1Inverse(H1(x, y), y) ≈ x
//	H2Inverse(x, H2(x, y)) ≈ y
//
//	For exchangeable families H2(x, y) = H1(y, x) and only one closed form is written.
//
// Boundary policy:
//
//	Every coordinate entering family math passes through numeric.Clamp, so no
//	formula is ever evaluated at exactly 0 or 1. Parameters at a degenerate
//	bound (ρ = 0, d = 0, FGM a = 0) are special-cased with their limiting form.
//
// Concurrency:
//
//	Family values are not safe for concurrent mutation. Fitting writes the
//	parameter vector in place; use Clone to fit the same family concurrently.
package copula
