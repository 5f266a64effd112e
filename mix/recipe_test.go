// SPDX-License-Identifier: MIT
// Package mix_test contains unit tests for recipe validation and interpretation.
package mix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvrng/mix"
	"github.com/stretchr/testify/require"
)

// TestRecipe_ValidatePredefined ensures every shipped recipe is a bijection.
func TestRecipe_ValidatePredefined(t *testing.T) {
	t.Parallel()

	for _, r := range mix.Recipes() {
		r := r
		t.Run(r.Name, func(t *testing.T) {
			require.NoError(t, r.Validate())
		})
	}
}

// TestRecipe_ValidateRejects covers every rule enforced by Validate.
func TestRecipe_ValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width uint
		step  mix.Step
		want  error
	}{
		{"width 16", 16, mix.XorShift(3), mix.ErrBadWidth},
		{"even multiplier", 64, mix.Mul(0x9E3779B97F4A7C14), mix.ErrEvenMultiplier},
		{"wide multiplier on 32 bits", 32, mix.Mul(0x1_0000_0001), mix.ErrBadWidth},
		{"zero shift", 64, mix.XorShift(0), mix.ErrBadShift},
		{"shift equals width", 32, mix.XorShift(32), mix.ErrBadShift},
		{"pair repeats amount", 64, mix.XorShift2(17, 17), mix.ErrBadShift},
		{"pair zero amount", 64, mix.XorShift2(0, 9), mix.ErrBadShift},
		{"rotation by width", 64, mix.RotXor(64, 5), mix.ErrBadRotation},
		{"rotation by zero", 32, mix.RotXor(3, 0), mix.ErrBadRotation},
		{"rotations coincide mod width", 32, mix.RotXor(7, 39), mix.ErrBadRotation},
		{"unknown op", 64, mix.Step{Op: 99}, mix.ErrUnknownOp},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := mix.Recipe{Name: tc.name, Width: tc.width, Steps: []mix.Step{mix.Mul(3), tc.step}}
			if tc.width == 16 {
				r.Steps = []mix.Step{tc.step}
			}
			err := r.Validate()
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestRecipe_ValidateAccepts checks boundary amounts that are still bijective.
func TestRecipe_ValidateAccepts(t *testing.T) {
	t.Parallel()

	r := mix.Recipe{
		Name:  "edges",
		Width: 32,
		Steps: []mix.Step{
			mix.XorShift(31),
			mix.XorShift2(1, 31),
			mix.RotXor(1, 31),
			mix.RotXor(33, 2), // 33 ≡ 1 mod 32, still distinct from 2
			mix.Mul(0xFFFFFFFF),
		},
	}
	require.NoError(t, r.Validate())
}

// TestRecipe_ApplyByHand pins the interpreter to hand-computed single steps.
func TestRecipe_ApplyByHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width uint
		steps []mix.Step
		in    uint64
		want  uint64
	}{
		{"mul wraps", 64, []mix.Step{mix.Mul(3)}, 0x8000000000000001, 0x8000000000000003},
		{"xsr", 64, []mix.Step{mix.XorShift(4)}, 0xF0, 0xFF},
		{"xsr2", 32, []mix.Step{mix.XorShift2(1, 2)}, 0x8, 0xE},
		{"rotxor wraps top bit", 64, []mix.Step{mix.RotXor(1, 2)}, 1 << 63, 1<<63 | 1 | 2},
		{"32-bit ignores high input", 32, []mix.Step{mix.Mul(1)}, 0xDEADBEEF_00000005, 5},
		{"32-bit mul wraps", 32, []mix.Step{mix.Mul(0xFFFFFFFF)}, 1, 0xFFFFFFFF},
		{"shift past width is zero", 64, []mix.Step{mix.XorShift(64)}, 0xABCD, 0xABCD},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := mix.Recipe{Name: tc.name, Width: tc.width, Steps: tc.steps}
			require.Equal(t, tc.want, r.Apply(tc.in))
		})
	}
}

// TestStep_String fixes the listing format used by the table generator logs.
func TestStep_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mul 0xBF58476D1CE4E5B9", mix.Mul(0xBF58476D1CE4E5B9).String())
	require.Equal(t, "xsr 30", mix.XorShift(30).String())
	require.Equal(t, "xsr2 43,31", mix.XorShift2(43, 31).String())
	require.Equal(t, "rotxor 25,47", mix.RotXor(25, 47).String())
	require.Equal(t, "op(99)", mix.Op(99).String())
}
