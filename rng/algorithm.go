// SPDX-License-Identifier: MIT

package rng

import (
	"github.com/katalvlaran/lvrng/mix"
	"github.com/katalvlaran/lvrng/unmix"
)

// Golden-ratio Weyl increments, ⌊2^w/φ⌉ forced odd.
const (
	golden64 uint64 = 0x9E3779B97F4A7C15
	golden32 uint32 = 0x9E3779B9
)

// Algorithm is the strategy value behind a Counter: what is added per step
// and how the counter is turned into output.
type Algorithm[W Word] struct {
	Name      string     // type name used by String
	Increment W          // odd, so the counter has full period 2^w
	Mix       func(W) W  // bijective output mixer
	Unmix     func(W) W  // inverse of Mix
	Recipe    mix.Recipe // declared steps of Mix
}

// Determine returns the output Next produces from state without any instance:
// the mixed value of state + Increment.
func (a *Algorithm[W]) Determine(state W) W {
	return a.Mix(state + a.Increment)
}

// Jump returns state moved by steps counter increments, in either direction.
//
// Complexity: O(1).
func (a *Algorithm[W]) Jump(state W, steps int64) W {
	return state + W(steps)*a.Increment
}

// Predefined counter algorithms. Their constants are exact; the first outputs
// from seed 0 are pinned by tests.
var (
	// SplitMix64 is Steele, Lea and Flood's SplitMix64.
	SplitMix64 = &Algorithm[uint64]{
		Name:      "SplitMix64",
		Increment: golden64,
		Mix:       mix.SplitMix64,
		Unmix:     unmix.SplitMix64,
		Recipe:    mix.SplitMix64Recipe,
	}

	// Distinct64 runs the golden counter through Moremur.
	Distinct64 = &Algorithm[uint64]{
		Name:      "Distinct64",
		Increment: golden64,
		Mix:       mix.Moremur,
		Unmix:     unmix.Moremur,
		Recipe:    mix.MoremurRecipe,
	}

	// MX3 runs the golden counter through Evensen's mx3.
	MX3 = &Algorithm[uint64]{
		Name:      "MX3",
		Increment: golden64,
		Mix:       mix.MX3,
		Unmix:     unmix.MX3,
		Recipe:    mix.MX3Recipe,
	}

	// Rotor64 runs the golden counter through mix.Rotor64.
	Rotor64 = &Algorithm[uint64]{
		Name:      "Rotor64",
		Increment: golden64,
		Mix:       mix.Rotor64,
		Unmix:     unmix.Rotor64,
		Recipe:    mix.Rotor64Recipe,
	}

	// Lowbias32 runs a 32-bit golden counter through Wellons' lowbias32.
	Lowbias32 = &Algorithm[uint32]{
		Name:      "Lowbias32",
		Increment: golden32,
		Mix:       mix.Lowbias32,
		Unmix:     unmix.Lowbias32,
		Recipe:    mix.Lowbias32Recipe,
	}

	// Triple32 runs a 32-bit golden counter through Wellons' triple32.
	Triple32 = &Algorithm[uint32]{
		Name:      "Triple32",
		Increment: golden32,
		Mix:       mix.Triple32,
		Unmix:     unmix.Triple32,
		Recipe:    mix.Triple32Recipe,
	}
)

// Algorithms64 returns the predefined 64-bit algorithms.
func Algorithms64() []*Algorithm[uint64] {
	return []*Algorithm[uint64]{SplitMix64, Distinct64, MX3, Rotor64}
}

// Algorithms32 returns the predefined 32-bit algorithms.
func Algorithms32() []*Algorithm[uint32] {
	return []*Algorithm[uint32]{Lowbias32, Triple32}
}
