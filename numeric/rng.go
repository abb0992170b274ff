// SPDX-License-Identifier: MIT

package numeric

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// NewRand returns a math/rand source seeded with seed, or DefaultSeed when
// seed is 0. The returned generator must not be shared between goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of sub-stream id under parent. Bootstrap
// iterations and vine edges each draw from their own sub-stream, so results
// do not depend on the order in which goroutines run.
func DeriveSeed(parent int64, id uint64) int64 {
	const golden = 0x9e3779b97f4a7c15

	return int64(mix64((uint64(parent) ^ (id + golden)) + golden))
}

// mix64 is the SplitMix64 output function.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// DeriveRand draws one value from base and uses it as the parent of
// sub-stream id. A nil base falls back to DefaultSeed.
func DeriveRand(base *rand.Rand, id uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return NewRand(DeriveSeed(parent, id))
}
