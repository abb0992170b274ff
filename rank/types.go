// SPDX-License-Identifier: MIT

package rank

import "errors"

var (
	// ErrLengthMismatch indicates columns of different lengths.
	ErrLengthMismatch = errors.New("rank: sample length mismatch")

	// ErrTooFewSamples indicates fewer than two columns or fewer than two observations.
	ErrTooFewSamples = errors.New("rank: too few samples")
)
