// SPDX-License-Identifier: MIT
package rng_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrng/mix"
	"github.com/katalvlaran/lvrng/rng"
	"github.com/stretchr/testify/require"
)

// TestCounter_Golden pins the first two outputs from seed 0 of every algorithm.
func TestCounter_Golden(t *testing.T) {
	t.Parallel()

	tests64 := []struct {
		alg           *rng.Algorithm[uint64]
		first, second uint64
	}{
		{rng.SplitMix64, 0xE220A8397B1DCDAF, 0x6E789E6AA1B965F4},
		{rng.Distinct64, 0xB70FB2CC55AF013F, 0x48351DBE177366F6},
		{rng.MX3, 0xD66F0F541BE4E401, 0xCB58CE1F47F665FB},
		{rng.Rotor64, 0xC44CB8A45E9B550A, 0x585803C1A1C58FDA},
	}
	for _, tc := range tests64 {
		g := rng.NewCounter(tc.alg, 0)
		require.Equal(t, tc.first, g.Next(), tc.alg.Name)
		require.Equal(t, tc.second, g.Next(), tc.alg.Name)
		require.Equal(t, tc.first, tc.alg.Determine(0), tc.alg.Name)
	}

	tests32 := []struct {
		alg           *rng.Algorithm[uint32]
		first, second uint32
	}{
		{rng.Lowbias32, 0x01FCE552, 0x04F8D29E},
		{rng.Triple32, 0xFD42F46A, 0xC87EEE8A},
	}
	for _, tc := range tests32 {
		g := rng.NewCounter(tc.alg, 0)
		require.Equal(t, tc.first, g.Next(), tc.alg.Name)
		require.Equal(t, tc.second, g.Next(), tc.alg.Name)
		require.Equal(t, tc.first, tc.alg.Determine(0), tc.alg.Name)
	}
}

// TestCounter_InvertRecoversState runs Invert(Next()) from 10,000 random states.
func TestCounter_InvertRecoversState(t *testing.T) {
	t.Parallel()

	for _, alg := range rng.Algorithms64() {
		alg := alg
		t.Run(alg.Name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(11))
			g := rng.NewCounter(alg, 0)
			for i := 0; i < 10000; i++ {
				s := r.Uint64()
				g.SetState(s)
				require.Equal(t, s, g.Invert(g.Next()), "state %#x", s)
			}
		})
	}
	for _, alg := range rng.Algorithms32() {
		alg := alg
		t.Run(alg.Name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(12))
			g := rng.NewCounter(alg, 0)
			for i := 0; i < 10000; i++ {
				s := r.Uint32()
				g.SetState(s)
				require.Equal(t, s, g.Invert(g.Next()), "state %#x", s)
			}
		})
	}
}

// TestAlgorithm_Consistent ties each strategy's mixer to its recipe and its
// inverse, and Jump to repeated increments.
func TestAlgorithm_Consistent(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(13))
	for _, alg := range rng.Algorithms64() {
		require.NoError(t, alg.Recipe.Validate())
		require.Equal(t, uint64(1), alg.Increment&1, alg.Name)
		for i := 0; i < 1000; i++ {
			x := r.Uint64()
			require.Equal(t, alg.Recipe.Apply(x), alg.Mix(x), alg.Name)
			require.Equal(t, x, alg.Unmix(alg.Mix(x)), alg.Name)
		}
		require.Equal(t, uint64(5)*alg.Increment, alg.Jump(0, 5))
		require.Equal(t, -alg.Increment, alg.Jump(0, -1))
	}
	for _, alg := range rng.Algorithms32() {
		require.NoError(t, alg.Recipe.Validate())
		for i := 0; i < 1000; i++ {
			x := r.Uint32()
			require.Equal(t, uint32(alg.Recipe.Apply(uint64(x))), alg.Mix(x), alg.Name)
			require.Equal(t, x, alg.Unmix(alg.Mix(x)), alg.Name)
		}
	}
}

// TestCounter_CustomAlgorithm runs a caller-defined strategy through the core.
func TestCounter_CustomAlgorithm(t *testing.T) {
	t.Parallel()

	alg := &rng.Algorithm[uint64]{
		Name:      "Identity",
		Increment: 3,
		Mix:       func(x uint64) uint64 { return x },
		Unmix:     func(x uint64) uint64 { return x },
		Recipe:    mix.Recipe{Name: "identity", Width: 64},
	}
	g := rng.NewCounter(alg, 10)
	require.Equal(t, uint64(13), g.Next())
	require.Equal(t, uint64(43), g.Peek(10))
	require.Equal(t, uint64(4), g.Peek(-3))
	require.Equal(t, uint64(10), g.Invert(13))
	require.Same(t, alg, g.Algorithm())
}

// TestCounter_String fixes the diagnostic form.
func TestCounter_String(t *testing.T) {
	t.Parallel()

	g := rng.NewCounter(rng.SplitMix64, 0)
	require.Equal(t, "SplitMix64 with state 0x0000000000000000", g.String())
	g.Next()
	require.Equal(t, "SplitMix64 with state 0x9E3779B97F4A7C15", g.String())

	h := rng.NewCounter(rng.Lowbias32, 0xBEEF)
	require.Equal(t, "Lowbias32 with state 0x0000BEEF", h.String())
}
