// SPDX-License-Identifier: MIT

package mix

import "math/bits"

// RotXor32 returns x ^ rotl(x, a) ^ rotl(x, b), the 32-bit RotXor64.
func RotXor32(x uint32, a, b int) uint32 {
	return x ^ bits.RotateLeft32(x, a) ^ bits.RotateLeft32(x, b)
}

// Lowbias32 is Chris Wellons' lowbias32 hash.
func Lowbias32(x uint32) uint32 {
	x = (x ^ x>>16) * 0x7FEB352D
	x = (x ^ x>>15) * 0x846CA68B
	return x ^ x>>16
}

// Triple32 is Chris Wellons' triple32 hash, one extra round over Lowbias32.
func Triple32(x uint32) uint32 {
	x = (x ^ x>>17) * 0xED5AD4BB
	x = (x ^ x>>11) * 0xAC4C1B51
	x = (x ^ x>>15) * 0x31848BAB
	return x ^ x>>14
}
