// SPDX-License-Identifier: MIT

package rank

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// KendallTau returns the tie-corrected Kendall's tau-b of the paired samples a, b.
//
// Every unordered pair (i<j) is classified as
//
//	concordant P  : both coordinates strictly move in the same direction,
//	discordant Q  : they strictly move in opposite directions,
//	tie in a   T  : a_i == a_j and b_i != b_j,
//	tie in b   U  : a_i != a_j and b_i == b_j,
//
// and pairs tied in both are skipped. The result is
//
//	(P - Q) / sqrt((P+Q+T)·(P+Q+U)).
//
// Returns NaN when len(a) != len(b), and NaN (0/0) when no pair is comparable.
// The measure is symmetric in its arguments.
func KendallTau(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}

	var (
		p, q, t, u int
		da, db     float64
	)
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			da = a[j] - a[i]
			db = b[j] - b[i]
			switch {
			case da == 0 && db == 0:
				// tied in both: excluded
			case da == 0:
				t++
			case db == 0:
				u++
			case (da > 0) == (db > 0):
				p++
			default:
				q++
			}
		}
	}

	num := float64(p - q)
	den := math.Sqrt(float64(p+q+t) * float64(p+q+u))

	return num / den
}

// TauMatrix computes the symmetric Kendall's tau matrix of columns.
// Entry (i, j) is KendallTau(columns[i], columns[j]); the diagonal is 1.
//
// Errors:
//   - ErrTooFewSamples  if fewer than two columns or any column has fewer than two values.
//   - ErrLengthMismatch if the columns differ in length.
func TauMatrix(columns [][]float64) (*mat.SymDense, error) {
	k := len(columns)
	if k < 2 {
		return nil, ErrTooFewSamples
	}
	n := len(columns[0])
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	for _, c := range columns[1:] {
		if len(c) != n {
			return nil, ErrLengthMismatch
		}
	}

	m := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		m.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			m.SetSym(i, j, KendallTau(columns[i], columns[j]))
		}
	}

	return m, nil
}
