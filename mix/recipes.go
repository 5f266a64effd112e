// SPDX-License-Identifier: MIT

package mix

// Declared recipes of the predefined mixers. Each one lists exactly the steps of
// the fast function with the same name; see mix64.go and mix32.go.
var (
	// SplitMix64Recipe is Stafford's "Mix13" finalizer, as used by SplitMix64.
	SplitMix64Recipe = Recipe{
		Name:  "SplitMix64",
		Width: 64,
		Steps: []Step{
			XorShift(30),
			Mul(0xBF58476D1CE4E5B9),
			XorShift(27),
			Mul(0x94D049BB133111EB),
			XorShift(31),
		},
	}

	// MoremurRecipe is Pelle Evensen's Moremur variant of the Murmur3 finalizer.
	MoremurRecipe = Recipe{
		Name:  "Moremur",
		Width: 64,
		Steps: []Step{
			XorShift(27),
			Mul(0x3C79AC492BA7B653),
			XorShift(33),
			Mul(0x1C69B3F74AC4AE35),
			XorShift(27),
		},
	}

	// MX3Recipe is Pelle Evensen's mx3 mixer: four xor-shifts, three multiplies
	// by one constant.
	MX3Recipe = Recipe{
		Name:  "MX3",
		Width: 64,
		Steps: []Step{
			XorShift(32),
			Mul(0xBEA225F9EB34556D),
			XorShift(29),
			Mul(0xBEA225F9EB34556D),
			XorShift(32),
			Mul(0xBEA225F9EB34556D),
			XorShift(29),
		},
	}

	// Rotor64Recipe opens with a xor of two rotations so low counter bits reach
	// the top of the word before the first multiply.
	Rotor64Recipe = Recipe{
		Name:  "Rotor64",
		Width: 64,
		Steps: []Step{
			RotXor(25, 47),
			Mul(0xF1357AEA2E62A9C5),
			XorShift2(43, 31),
			Mul(0xD1342543DE82EF95),
			XorShift2(29, 39),
		},
	}

	// Lowbias32Recipe is Chris Wellons' lowbias32 integer hash.
	Lowbias32Recipe = Recipe{
		Name:  "Lowbias32",
		Width: 32,
		Steps: []Step{
			XorShift(16),
			Mul(0x7FEB352D),
			XorShift(15),
			Mul(0x846CA68B),
			XorShift(16),
		},
	}

	// Triple32Recipe is Chris Wellons' triple32 integer hash.
	Triple32Recipe = Recipe{
		Name:  "Triple32",
		Width: 32,
		Steps: []Step{
			XorShift(17),
			Mul(0xED5AD4BB),
			XorShift(11),
			Mul(0xAC4C1B51),
			XorShift(15),
			Mul(0x31848BAB),
			XorShift(14),
		},
	}
)

// Recipes returns every predefined recipe, 64-bit ones first.
func Recipes() []Recipe {
	return []Recipe{
		SplitMix64Recipe,
		MoremurRecipe,
		MX3Recipe,
		Rotor64Recipe,
		Lowbias32Recipe,
		Triple32Recipe,
	}
}
