// Package rank converts raw samples into pseudo-observations and measures
// rank dependence between them.
//
// What:
//
//   - Normalize(data): tie-corrected normalized ranks in (0, 1]. Values are
//     stable-sorted, ranked 1..n, tied groups receive the mean of the ranks
//     they span, and every rank is divided by the maximum assigned rank so the
//     largest input maps to exactly 1.
//   - KendallTau(a, b): empirical Kendall's tau-b over all unordered pairs,
//     corrected for ties in either coordinate. Pairs tied in both coordinates
//     are excluded from every count.
//   - TauMatrix(columns): the symmetric matrix of pairwise KendallTau values,
//     returned as a gonum *mat.SymDense with a unit diagonal.
//
// Errors:
//
//	KendallTau does not return an error: unequal lengths (and inputs with no
//	comparable pairs) yield NaN so callers can propagate or skip.
//	TauMatrix returns ErrTooFewSamples / ErrLengthMismatch.
//
// Complexity:
//
//   - Normalize:  O(n log n) time, O(n) memory.
//   - KendallTau: O(n²) time, O(1) memory. Vine edges are fitted on modest n;
//     callers with very large samples should subsample first.
//   - TauMatrix:  O(k²·n²) for k columns of length n.
package rank
