// SPDX-License-Identifier: MIT

package rng

import (
	"math/bits"
	"sync"
)

// gf2Matrix is a linear map on 128-bit vectors over GF(2), stored by column:
// m[j] is the image of bit j, where bits 0..63 live in word 0.
type gf2Matrix [128][2]uint64

// matrixOf tabulates a linear function on [2]uint64.
func matrixOf(f func([2]uint64) [2]uint64) *gf2Matrix {
	m := new(gf2Matrix)
	for j := range m {
		var e [2]uint64
		e[j/64] = 1 << (j % 64)
		m[j] = f(e)
	}
	return m
}

// apply returns m·v.
func (m *gf2Matrix) apply(v [2]uint64) [2]uint64 {
	var r [2]uint64
	for w, x := range v {
		for x != 0 {
			col := &m[w*64+bits.TrailingZeros64(x)]
			r[0] ^= col[0]
			r[1] ^= col[1]
			x &= x - 1
		}
	}
	return r
}

// square returns m·m.
func (m *gf2Matrix) square() *gf2Matrix {
	sq := new(gf2Matrix)
	for j := range m {
		sq[j] = m.apply(m[j])
	}
	return sq
}

// powers returns T^(2^i) for i < 64.
func powers(step func([2]uint64) [2]uint64) [64]*gf2Matrix {
	var p [64]*gf2Matrix
	p[0] = matrixOf(step)
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1].square()
	}
	return p
}

// directJump is the largest |steps| stepped one by one.
const directJump = 64

var (
	xoroPowersOnce    sync.Once
	xoroFwd, xoroBack [64]*gf2Matrix
)

// xoroJump moves s by steps: forward through xoroStep, backward through
// xoroUnstep. Powers of the transition commute, so the order in which the
// set bits of |steps| are applied does not matter.
func xoroJump(s [2]uint64, steps int64) [2]uint64 {
	n := magnitude(steps)
	if n <= directJump {
		step := xoroStep
		if steps < 0 {
			step = xoroUnstep
		}
		for ; n > 0; n-- {
			s = step(s)
		}
		return s
	}

	xoroPowersOnce.Do(func() {
		xoroFwd = powers(xoroStep)
		xoroBack = powers(xoroUnstep)
	})
	p := &xoroFwd
	if steps < 0 {
		p = &xoroBack
	}
	for i := 0; n != 0; i, n = i+1, n>>1 {
		if n&1 != 0 {
			s = p[i].apply(s)
		}
	}
	return s
}
