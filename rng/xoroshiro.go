// SPDX-License-Identifier: MIT

package rng

import (
	"math/bits"

	"github.com/katalvlaran/lvrng/mix"
)

// Fixed state for an all-zero Xoroshiro128, the one state its linear step
// never leaves.
const (
	xoroZero0 uint64 = 0x9E3779B97F4A7C15
	xoroZero1 uint64 = 0x6A09E667F3BCC909
)

// Xoroshiro128 is Blackman and Vigna's xoroshiro128++ with period 2^128-1.
// Peek and Skip use precomputed powers of the transition matrix, so any
// signed jump costs at most 64 matrix-vector products.
type Xoroshiro128 struct {
	s [2]uint64
}

var _ Generator[uint64] = (*Xoroshiro128)(nil)

// NewXoroshiro128 expands a 64-bit seed into a full state with two rounds of
// the SplitMix64 finalizer.
func NewXoroshiro128(seed uint64) *Xoroshiro128 {
	m := seed ^ xoroZero1
	n := m + xoroZero0
	return NewXoroshiro128FromState(mix.SplitMix64(m), mix.SplitMix64(n))
}

// NewXoroshiro128FromState starts from raw words, replacing the all-zero state.
func NewXoroshiro128FromState(s0, s1 uint64) *Xoroshiro128 {
	x := new(Xoroshiro128)
	x.SetState(s0, s1)
	return x
}

// scramble is the ++ output function.
func scramble(s [2]uint64) uint64 {
	return bits.RotateLeft64(s[0]+s[1], 17) + s[0]
}

func xoroStep(s [2]uint64) [2]uint64 {
	t := s[1] ^ s[0]
	return [2]uint64{bits.RotateLeft64(s[0], 49) ^ t ^ t<<21, bits.RotateLeft64(t, 28)}
}

func xoroUnstep(s [2]uint64) [2]uint64 {
	t := bits.RotateLeft64(s[1], -28)
	s0 := bits.RotateLeft64(s[0]^t^t<<21, -49)
	return [2]uint64{s0, t ^ s0}
}

// Next returns the output of the current state and steps past it.
func (x *Xoroshiro128) Next() uint64 {
	out := scramble(x.s)
	x.s = xoroStep(x.s)
	return out
}

// Peek returns the output steps calls of Next away.
//
// Complexity: O(1), at most 64 products with 128×128 bit matrices.
func (x *Xoroshiro128) Peek(steps int64) uint64 {
	return scramble(xoroUnstep(xoroJump(x.s, steps)))
}

// Skip moves the state by steps and returns the output there.
//
// Complexity: as Peek.
func (x *Xoroshiro128) Skip(steps int64) uint64 {
	x.s = xoroJump(x.s, steps)
	return scramble(xoroUnstep(x.s))
}

// State returns both state words.
func (x *Xoroshiro128) State() []uint64 { return []uint64{x.s[0], x.s[1]} }

// SetState sets both words; the all-zero state is replaced by a fixed one.
func (x *Xoroshiro128) SetState(words ...uint64) {
	x.s = [2]uint64{word(words, 0), word(words, 1)}
	if x.s == [2]uint64{} {
		x.s = [2]uint64{xoroZero0, xoroZero1}
	}
}

// Duplicate returns an independent copy.
func (x *Xoroshiro128) Duplicate() Generator[uint64] {
	d := *x
	return &d
}

// String reports both state words.
func (x *Xoroshiro128) String() string { return formatState("Xoroshiro128", x.s[0], x.s[1]) }
