// SPDX-License-Identifier: MIT

package rank

import "sort"

// Normalize returns the tie-corrected normalized ranks of data.
//
// Steps:
//  1. Stable-sort the indices of data by value.
//  2. Walk runs of equal values; a run spanning sorted positions i..j
//     (1-based) assigns every member the rank (i+j)/2.
//  3. Divide each rank by the rank of the last run (the maximum).
//
// The output has the input's length and order; distinct inputs keep their
// order, tied inputs share a value, and the maximum maps to 1.
// NaN inputs are not supported. An empty input returns an empty slice.
func Normalize(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return data[idx[i]] < data[idx[j]] })

	var (
		start   int
		end     int
		avgRank float64
	)
	for start = 0; start < n; start = end {
		end = start + 1
		for end < n && data[idx[end]] == data[idx[start]] {
			end++
		}
		// sorted positions start+1 .. end share their mean rank
		avgRank = float64(start+1+end) / 2.0
		for k := start; k < end; k++ {
			out[idx[k]] = avgRank
		}
	}

	maxRank := avgRank
	for i := range out {
		out[i] /= maxRank
	}

	return out
}
