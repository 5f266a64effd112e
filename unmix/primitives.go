// SPDX-License-Identifier: MIT

package unmix

import "math/bits"

// XorShift64 inverts y = x ^ x>>a for 0 < a < 64.
func XorShift64(y uint64, a uint) uint64 {
	if a == 0 {
		return y
	}
	for s := a; s < 64; s <<= 1 {
		y ^= y >> s
	}
	return y
}

// XorShift32 inverts y = x ^ x>>a for 0 < a < 32.
func XorShift32(y uint32, a uint) uint32 {
	if a == 0 {
		return y
	}
	for s := a; s < 32; s <<= 1 {
		y ^= y >> s
	}
	return y
}

// XorShiftPair64 inverts y = x ^ x>>a ^ x>>b for distinct non-zero a, b.
func XorShiftPair64(y uint64, a, b uint) uint64 {
	if a == 0 || b == 0 {
		return y
	}
	for a < 64 || b < 64 {
		y ^= y>>a ^ y>>b
		a <<= 1
		b <<= 1
	}
	return y
}

// XorShiftPair32 inverts y = x ^ x>>a ^ x>>b for distinct non-zero a, b.
func XorShiftPair32(y uint32, a, b uint) uint32 {
	if a == 0 || b == 0 {
		return y
	}
	for a < 32 || b < 32 {
		y ^= y>>a ^ y>>b
		a <<= 1
		b <<= 1
	}
	return y
}

// RotXor64 inverts y = x ^ rotl(x, a) ^ rotl(x, b).
func RotXor64(y uint64, a, b uint) uint64 {
	for k := uint(0); k < 6; k++ {
		y ^= bits.RotateLeft64(y, int((a<<k)%64)) ^ bits.RotateLeft64(y, int((b<<k)%64))
	}
	return y
}

// RotXor32 inverts y = x ^ rotl(x, a) ^ rotl(x, b).
func RotXor32(y uint32, a, b uint) uint32 {
	for k := uint(0); k < 5; k++ {
		y ^= bits.RotateLeft32(y, int((a<<k)%32)) ^ bits.RotateLeft32(y, int((b<<k)%32))
	}
	return y
}

// MulInverse64 returns k⁻¹ mod 2^64. k must be odd.
//
// Newton's iteration doubles the number of correct low bits each round;
// k is its own inverse modulo 8, so five rounds cover 64 bits.
func MulInverse64(k uint64) uint64 {
	inv := k
	for i := 0; i < 5; i++ {
		inv *= 2 - k*inv
	}
	return inv
}

// MulInverse32 returns k⁻¹ mod 2^32. k must be odd.
func MulInverse32(k uint32) uint32 {
	inv := k
	for i := 0; i < 4; i++ {
		inv *= 2 - k*inv
	}
	return inv
}

