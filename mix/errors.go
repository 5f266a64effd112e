// SPDX-License-Identifier: MIT

package mix

import "errors"

// Sentinel errors returned by Recipe.Validate. Callers match them with errors.Is;
// Validate wraps them with the recipe name and step index.
var (
	// ErrBadWidth indicates a recipe width other than 32 or 64, or a Mul constant
	// that does not fit the recipe width.
	ErrBadWidth = errors.New("mix: word width must be 32 or 64")

	// ErrEvenMultiplier indicates a Mul step with an even constant, which has no
	// inverse modulo 2^width.
	ErrEvenMultiplier = errors.New("mix: multiplier must be odd")

	// ErrBadShift indicates a xor-shift amount of zero, an amount not below the
	// width, or a pair step with two equal amounts.
	ErrBadShift = errors.New("mix: invalid xor-shift amount")

	// ErrBadRotation indicates a rotation amount that is a multiple of the width,
	// or a pair step whose two amounts coincide modulo the width.
	ErrBadRotation = errors.New("mix: invalid rotation amount")

	// ErrUnknownOp indicates a step whose Op is not defined by this package.
	ErrUnknownOp = errors.New("mix: unknown step op")
)
