// SPDX-License-Identifier: MIT

package mix

import "math/bits"

// RotXor64 returns x ^ rotl(x, a) ^ rotl(x, b).
//
// With a ≠ b and neither a multiple of 64 this is a bijection: an odd number of
// rotations xored together is invertible over GF(2)[y]/(y^64+1).
func RotXor64(x uint64, a, b int) uint64 {
	return x ^ bits.RotateLeft64(x, a) ^ bits.RotateLeft64(x, b)
}

// SplitMix64 is Stafford's Mix13 finalizer.
func SplitMix64(x uint64) uint64 {
	x = (x ^ x>>30) * 0xBF58476D1CE4E5B9
	x = (x ^ x>>27) * 0x94D049BB133111EB
	return x ^ x>>31
}

// Moremur is Pelle Evensen's improvement on the Murmur3 64-bit finalizer.
func Moremur(x uint64) uint64 {
	x = (x ^ x>>27) * 0x3C79AC492BA7B653
	x = (x ^ x>>33) * 0x1C69B3F74AC4AE35
	return x ^ x>>27
}

// MX3 is Pelle Evensen's mx3 mixer.
func MX3(x uint64) uint64 {
	const c = 0xBEA225F9EB34556D
	x = (x ^ x>>32) * c
	x = (x ^ x>>29) * c
	x = (x ^ x>>32) * c
	return x ^ x>>29
}

// Rotor64 spreads low bits upward with RotXor64(x, 25, 47), then runs two
// multiply / double-xor-shift rounds.
func Rotor64(x uint64) uint64 {
	x = RotXor64(x, 25, 47) * 0xF1357AEA2E62A9C5
	x = (x ^ x>>43 ^ x>>31) * 0xD1342543DE82EF95
	return x ^ x>>29 ^ x>>39
}
