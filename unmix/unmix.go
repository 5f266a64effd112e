// SPDX-License-Identifier: MIT

package unmix

import "github.com/katalvlaran/lvrng/mix"

// SplitMix64 inverts mix.SplitMix64.
func SplitMix64(x uint64) uint64 {
	x ^= x >> 31
	x ^= x >> 62
	x *= 0x319642B2D24D8EC3
	x ^= x >> 27
	x ^= x >> 54
	x *= 0x96DE1B173F119089
	x ^= x >> 30
	x ^= x >> 60
	return x
}

// Moremur inverts mix.Moremur.
func Moremur(x uint64) uint64 {
	x ^= x >> 27
	x ^= x >> 54
	x *= 0xC47C8F6B6BAFB41D
	x ^= x >> 33
	x *= 0xC09C5FE5BD6DFDDB
	x ^= x >> 27
	x ^= x >> 54
	return x
}

// MX3 inverts mix.MX3.
func MX3(x uint64) uint64 {
	const ci = 0xDD01F46A7E6FFC65
	x ^= x >> 29
	x ^= x >> 58
	x *= ci
	x ^= x >> 32
	x *= ci
	x ^= x >> 29
	x ^= x >> 58
	x *= ci
	x ^= x >> 32
	return x
}

// Rotor64 inverts mix.Rotor64.
//
// The trailing pair (29, 39) doubles to (58, 78): only the 58 term survives.
// The leading pair (43, 31) doubles to (86, 62): only 62 survives. The rotation
// pair (25, 47) runs through (50, 30), (36, 60), (8, 56), (16, 48); the sixth
// doubling lands both amounts on 32, which cancels to the identity.
func Rotor64(x uint64) uint64 {
	x ^= x>>29 ^ x>>39
	x ^= x >> 58
	x *= 0x572B5EE77A54E3BD
	x ^= x>>43 ^ x>>31
	x ^= x >> 62
	x *= 0x781494A55DAAED0D
	x = mix.RotXor64(x, 25, 47)
	x = mix.RotXor64(x, 50, 30)
	x = mix.RotXor64(x, 36, 60)
	x = mix.RotXor64(x, 8, 56)
	return mix.RotXor64(x, 16, 48)
}

// Lowbias32 inverts mix.Lowbias32.
func Lowbias32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x43021123
	x ^= x >> 15
	x ^= x >> 30
	x *= 0x1D69E2A5
	x ^= x >> 16
	return x
}

// Triple32 inverts mix.Triple32.
func Triple32(x uint32) uint32 {
	x ^= x >> 14
	x ^= x >> 28
	x *= 0x32B21703
	x ^= x >> 15
	x ^= x >> 30
	x *= 0x469E0DB1
	x ^= x >> 11
	x ^= x >> 22
	x *= 0x79A85073
	x ^= x >> 17
	return x
}
