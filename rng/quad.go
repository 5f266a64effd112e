// SPDX-License-Identifier: MIT

package rng

import (
	"math/bits"

	"github.com/katalvlaran/lvrng/mix"
)

// quadIncrement is the 256-bit Weyl step, little-endian words. Word 0 is odd,
// so the counter has period 2^256.
var quadIncrement = [4]uint64{
	0xD1B54A32D192ED03,
	0xABC98388FB8FAC03,
	0x8CB92BA72F3D8DD7,
	0xDB4F0B9175AE2165,
}

// Quad64 is a 256-bit counter over four words with a four-word output mix.
// A jump of any length is one 256×64-bit multiply and one add.
type Quad64 struct {
	s [4]uint64
}

var _ Generator[uint64] = (*Quad64)(nil)

// NewQuad64 fills the four words with the first SplitMix64 outputs for seed.
func NewQuad64(seed uint64) *Quad64 {
	q := new(Quad64)
	c := NewCounter(SplitMix64, seed)
	for i := range q.s {
		q.s[i] = c.Next()
	}
	return q
}

// quadOutput folds the four counter words into one and mixes it.
func quadOutput(s [4]uint64) uint64 {
	return mix.Moremur((s[0] ^ bits.RotateLeft64(s[1], 23)) + (s[2] ^ bits.RotateLeft64(s[3], 41)))
}

// add256 returns a + b mod 2^256.
func add256(a, b [4]uint64) [4]uint64 {
	var r [4]uint64
	var carry uint64
	for i := range r {
		r[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return r
}

// mul256 returns a·k mod 2^256.
func mul256(a [4]uint64, k uint64) [4]uint64 {
	var r [4]uint64
	var carry uint64
	for i := range r {
		hi, lo := bits.Mul64(a[i], k)
		var c uint64
		r[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	return r
}

// neg256 returns -a mod 2^256.
func neg256(a [4]uint64) [4]uint64 {
	for i := range a {
		a[i] = ^a[i]
	}
	return add256(a, [4]uint64{1})
}

func quadJump(s [4]uint64, steps int64) [4]uint64 {
	d := mul256(quadIncrement, magnitude(steps))
	if steps < 0 {
		d = neg256(d)
	}
	return add256(s, d)
}

// Next advances the counter and returns its mixed value.
func (q *Quad64) Next() uint64 {
	q.s = add256(q.s, quadIncrement)
	return quadOutput(q.s)
}

// Peek returns the output steps calls of Next away.
//
// Complexity: O(1).
func (q *Quad64) Peek(steps int64) uint64 {
	return quadOutput(quadJump(q.s, steps))
}

// Skip moves the counter by steps and returns the output there.
//
// Complexity: O(1).
func (q *Quad64) Skip(steps int64) uint64 {
	q.s = quadJump(q.s, steps)
	return quadOutput(q.s)
}

// State returns the four counter words, least significant first.
func (q *Quad64) State() []uint64 {
	s := q.s
	return s[:]
}

// SetState sets the counter words, least significant first. Every value,
// zero included, lies on the single full-period cycle.
func (q *Quad64) SetState(words ...uint64) {
	for i := range q.s {
		q.s[i] = word(words, i)
	}
}

// Duplicate returns an independent copy.
func (q *Quad64) Duplicate() Generator[uint64] {
	d := *q
	return &d
}

// String reports the counter words, least significant first.
func (q *Quad64) String() string { return formatState("Quad64", q.s[:]...) }
