// SPDX-License-Identifier: MIT
// Package mix_test provides runnable examples for the bit-mixer library.
package mix_test

import (
	"fmt"

	"github.com/katalvlaran/lvrng/mix"
)

// ExampleSplitMix64 mixes the first SplitMix64 counter value.
func ExampleSplitMix64() {
	fmt.Printf("%#016x\n", mix.SplitMix64(0x9E3779B97F4A7C15))
	// Output: 0xe220a8397b1dcdaf
}

// ExampleRecipe_Validate declares a custom mixer and checks it before use.
func ExampleRecipe_Validate() {
	r := mix.Recipe{
		Name:  "custom",
		Width: 64,
		Steps: []mix.Step{mix.RotXor(13, 37), mix.Mul(0xD1342543DE82EF94)},
	}
	fmt.Println(r.Validate())
	// Output: custom: step 1 (mul 0xD1342543DE82EF94): mix: multiplier must be odd
}
