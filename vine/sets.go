// SPDX-License-Identifier: MIT

package vine

import (
	"sort"
	"strconv"
	"strings"
)

// normalizeSet returns a sorted copy of s without duplicates.
func normalizeSet(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}

	return out[:w]
}

// merge walks two sorted sets once and keeps the elements selected by keep,
// which receives membership in a and in b.
func merge(a, b []int, keep func(inA, inB bool) bool) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			if keep(true, false) {
				out = append(out, a[i])
			}
			i++
		case i == len(a) || b[j] < a[i]:
			if keep(false, true) {
				out = append(out, b[j])
			}
			j++
		default:
			if keep(true, true) {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}

	return out
}

func union(a, b []int) []int {
	return merge(a, b, func(inA, inB bool) bool { return true })
}

func intersection(a, b []int) []int {
	return merge(a, b, func(inA, inB bool) bool { return inA && inB })
}

func symmetricDifference(a, b []int) []int {
	return merge(a, b, func(inA, inB bool) bool { return inA != inB })
}

// difference returns a \ b.
func difference(a, b []int) []int {
	return merge(a, b, func(inA, inB bool) bool { return inA && !inB })
}

func joinInts(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
