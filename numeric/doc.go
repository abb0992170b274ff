// Package numeric provides the small numerical kernels shared by the copula
// families that lack closed forms.
//
// What:
//
//   - Simpson(f, n, lo, hi): composite Simpson quadrature over n subintervals.
//     Endpoints weight 1, subinterval midpoints weight 4, interior partition
//     points weight 2, all scaled by h/6. Deterministic, no recursion.
//   - Bisect(f, target, lo, hi, opts...): inverts a monotone function on a
//     bracket by repeated halving. Terminates when the residual or the bracket
//     width meets the tolerance, or after MaxIter halvings (50 by default).
//   - Maximize(f, lo, hi, opts...): bounded golden-section search for the
//     maximum of a unimodal function. Never leaves [lo, hi].
//   - Clamp(x): restricts a coordinate to [BoundaryEps, 1-BoundaryEps].
//   - NewRand / DeriveSeed / DeriveRand: deterministic random streams.
//
// Non-convergence:
//
//	Bisect and Maximize never fail. On cap exhaustion they return their best
//	current estimate with Converged == false, so the caller can log the
//	degraded-precision outcome.
//
// Complexity:
//
//   - Simpson:  O(n) evaluations of f.
//   - Bisect:   O(MaxIter) evaluations of f.
//   - Maximize: O(MaxIter) evaluations of f.
package numeric
