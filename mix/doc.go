// SPDX-License-Identifier: MIT
// Package mix is the bit-mixer library of lvrng: stateless, pure functions that
// turn a cheaply advanced counter word into a statistically strong output word.
//
// Overview:
//
//   - Every mixer is a fixed, declared sequence of bijective steps on a 32- or
//     64-bit word:
//     • Mul(K)          x *= K                      (K odd)
//     • XorShift(A)     x ^= x >> A                 (0 < A < width)
//     • XorShift2(A, B) x ^= x >> A ^ x >> B        (A ≠ B, both in (0, width))
//     • RotXor(A, B)    x ^= rotl(x, A) ^ rotl(x, B) (A ≠ B, neither ≡ 0 mod width)
//   - Because each step is a bijection, every mixer is a permutation of the word
//     domain and can be undone step by step (see package unmix).
//
// Two renditions of every mixer:
//
//   - A hand-written fast function (SplitMix64, Moremur, MX3, Rotor64, Lowbias32,
//     Triple32) used on hot paths by package rng.
//   - A declared Recipe (SplitMix64Recipe, ...) that lists the same steps as data.
//     Recipe.Validate checks the bijection rules above; Recipe.Apply interprets
//     the steps. Tests pin the fast functions to their recipes bit-for-bit.
//
// Constants:
//
//	Multipliers, shift and rotation amounts are exact, opaque values chosen
//	empirically for avalanche. Changing any of them requires re-validating the
//	output against an external statistical test battery.
//
// Error handling (sentinel errors, returned by Recipe.Validate):
//
//   - ErrBadWidth:       recipe width is neither 32 nor 64, or a constant is wider than the word.
//   - ErrEvenMultiplier: a Mul step uses an even constant (not invertible mod 2^w).
//   - ErrBadShift:       a xor-shift amount is zero, ≥ width, or a pair repeats an amount.
//   - ErrBadRotation:    a rotation amount is ≡ 0 mod width, or a pair repeats an amount.
//   - ErrUnknownOp:      a step carries an Op this package does not define.
//
// Thread safety:
//
//	All functions are pure. Recipes are plain values; do not mutate a Recipe's
//	Steps slice while another goroutine applies it.
package mix
