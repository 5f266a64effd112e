// SPDX-License-Identifier: MIT
// Package: mix
//
// Purpose:
//   - Data form of a mixing function: an ordered list of bijective steps.
//   - Validation of the bijection rules and a reference interpreter.
//
// Contract:
//   - Apply never validates; it runs any step list, including the inverse step
//     lists built by package unmix whose amounts may reach or exceed the width.

package mix

import (
	"fmt"
	"math/bits"
)

// Op identifies the kind of a single mixing step.
type Op uint8

const (
	// OpMul multiplies the word by Step.K modulo 2^width.
	OpMul Op = iota + 1

	// OpXorShift computes x ^= x >> Step.A.
	OpXorShift

	// OpXorShift2 computes x ^= x >> Step.A ^ x >> Step.B.
	OpXorShift2

	// OpRotXor computes x ^= rotl(x, Step.A) ^ rotl(x, Step.B).
	OpRotXor
)

// String returns the short mnemonic used in recipe listings.
func (o Op) String() string {
	switch o {
	case OpMul:
		return "mul"
	case OpXorShift:
		return "xsr"
	case OpXorShift2:
		return "xsr2"
	case OpRotXor:
		return "rotxor"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Step is one declared operation of a Recipe.
type Step struct {
	Op Op     // kind of step
	K  uint64 // multiplier, OpMul only
	A  uint   // first shift or rotation amount
	B  uint   // second amount, pair ops only
}

// Mul declares x *= k.
func Mul(k uint64) Step { return Step{Op: OpMul, K: k} }

// XorShift declares x ^= x >> a.
func XorShift(a uint) Step { return Step{Op: OpXorShift, A: a} }

// XorShift2 declares x ^= x >> a ^ x >> b.
func XorShift2(a, b uint) Step { return Step{Op: OpXorShift2, A: a, B: b} }

// RotXor declares x ^= rotl(x, a) ^ rotl(x, b).
func RotXor(a, b uint) Step { return Step{Op: OpRotXor, A: a, B: b} }

// String renders the step, e.g. "mul 0xBF58476D1CE4E5B9" or "xsr2 43,31".
func (s Step) String() string {
	switch s.Op {
	case OpMul:
		return fmt.Sprintf("%s 0x%X", s.Op, s.K)
	case OpXorShift:
		return fmt.Sprintf("%s %d", s.Op, s.A)
	default:
		return fmt.Sprintf("%s %d,%d", s.Op, s.A, s.B)
	}
}

// Recipe is a mixing function declared as data.
type Recipe struct {
	Name  string // human-readable algorithm name
	Width uint   // word width in bits: 32 or 64
	Steps []Step // applied in order
}

// Validate reports whether every step is a bijection on Width bits.
// The first violation is returned, wrapped with the recipe name and step index.
//
// Complexity: O(len(Steps)).
func (r Recipe) Validate() error {
	if r.Width != 32 && r.Width != 64 {
		return fmt.Errorf("%s: width %d: %w", r.Name, r.Width, ErrBadWidth)
	}
	w := r.Width
	for i, s := range r.Steps {
		var err error
		switch s.Op {
		case OpMul:
			if w == 32 && s.K>>32 != 0 {
				err = ErrBadWidth
			} else if s.K&1 == 0 {
				err = ErrEvenMultiplier
			}
		case OpXorShift:
			if s.A == 0 || s.A >= w {
				err = ErrBadShift
			}
		case OpXorShift2:
			if s.A == 0 || s.A >= w || s.B == 0 || s.B >= w || s.A == s.B {
				err = ErrBadShift
			}
		case OpRotXor:
			a, b := s.A%w, s.B%w
			if a == 0 || b == 0 || a == b {
				err = ErrBadRotation
			}
		default:
			err = ErrUnknownOp
		}
		if err != nil {
			return fmt.Errorf("%s: step %d (%s): %w", r.Name, i, s, err)
		}
	}
	return nil
}

// Apply runs the recipe on x. For 32-bit recipes only the low 32 bits of x are
// used and the result fits in 32 bits.
//
// Apply is the slow reference interpreter; package rng uses the hand-written
// functions instead.
func (r Recipe) Apply(x uint64) uint64 {
	if r.Width == 32 {
		return uint64(r.apply32(uint32(x)))
	}
	return r.apply64(x)
}

func (r Recipe) apply64(x uint64) uint64 {
	for _, s := range r.Steps {
		switch s.Op {
		case OpMul:
			x *= s.K
		case OpXorShift:
			x ^= x >> s.A
		case OpXorShift2:
			x ^= x>>s.A ^ x>>s.B
		case OpRotXor:
			x ^= bits.RotateLeft64(x, int(s.A%64)) ^ bits.RotateLeft64(x, int(s.B%64))
		}
	}
	return x
}

func (r Recipe) apply32(x uint32) uint32 {
	for _, s := range r.Steps {
		switch s.Op {
		case OpMul:
			x *= uint32(s.K)
		case OpXorShift:
			x ^= x >> s.A
		case OpXorShift2:
			x ^= x>>s.A ^ x>>s.B
		case OpRotXor:
			x ^= bits.RotateLeft32(x, int(s.A%32)) ^ bits.RotateLeft32(x, int(s.B%32))
		}
	}
	return x
}
