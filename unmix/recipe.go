// SPDX-License-Identifier: MIT

package unmix

import (
	"fmt"

	"github.com/katalvlaran/lvrng/mix"
)

// Recipe returns the inverse of r as another recipe: r's steps in reverse order,
// each replaced by the steps that undo it. The result satisfies
//
//	inv.Apply(r.Apply(x)) == x
//
// for every word x. The inverse may carry amounts that mix.Recipe.Validate
// would reject (shifts past the width, rotations by zero); Apply handles them.
//
// Complexity: O(len(r.Steps) · log2 r.Width).
func Recipe(r mix.Recipe) (mix.Recipe, error) {
	if err := r.Validate(); err != nil {
		return mix.Recipe{}, fmt.Errorf("%w: %w", ErrNotBijective, err)
	}

	w := r.Width
	inv := mix.Recipe{Name: r.Name + "^-1", Width: w}
	for i := len(r.Steps) - 1; i >= 0; i-- {
		s := r.Steps[i]
		switch s.Op {
		case mix.OpMul:
			if w == 32 {
				inv.Steps = append(inv.Steps, mix.Mul(uint64(MulInverse32(uint32(s.K)))))
			} else {
				inv.Steps = append(inv.Steps, mix.Mul(MulInverse64(s.K)))
			}
		case mix.OpXorShift:
			for a := s.A; a < w; a <<= 1 {
				inv.Steps = append(inv.Steps, mix.XorShift(a))
			}
		case mix.OpXorShift2:
			for a, b := s.A, s.B; a < w || b < w; a, b = a<<1, b<<1 {
				inv.Steps = append(inv.Steps, mix.XorShift2(a, b))
			}
		case mix.OpRotXor:
			for k := uint(0); w>>k > 1; k++ {
				inv.Steps = append(inv.Steps, mix.RotXor((s.A<<k)%w, (s.B<<k)%w))
			}
		}
	}
	return inv, nil
}
