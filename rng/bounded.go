// SPDX-License-Identifier: MIT

package rng

import "math/bits"

// Bound64 maps x into [0, bound) by the high half of x·bound. bound <= 0
// yields 0.
func Bound64(x uint64, bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	hi, _ := bits.Mul64(x, uint64(bound))
	return int64(hi)
}

// Bound32 maps x into [0, bound) by the high half of x·bound. bound <= 0
// yields 0.
func Bound32(x uint32, bound int32) int32 {
	if bound <= 0 {
		return 0
	}
	return int32(uint64(x) * uint64(bound) >> 32)
}

// NextBounded64 returns a value in [0, bound) from the next output of g.
// g is not advanced when bound <= 0; the result is then 0.
func NextBounded64(g Generator[uint64], bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	return Bound64(g.Next(), bound)
}

// NextBounded32 returns a value in [0, bound) from the next output of g.
// g is not advanced when bound <= 0; the result is then 0.
func NextBounded32(g Generator[uint32], bound int32) int32 {
	if bound <= 0 {
		return 0
	}
	return Bound32(g.Next(), bound)
}

// NextFloat64 returns a float64 in [0, 1) built from the top 53 bits of the
// next output of g.
func NextFloat64(g Generator[uint64]) float64 {
	return float64(g.Next()>>11) * 0x1p-53
}
