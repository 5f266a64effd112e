// SPDX-License-Identifier: MIT

package rng

import (
	"fmt"

	"github.com/katalvlaran/lvrng/subcycle"
)

// Word is the unsigned state and output type of a generator.
type Word = subcycle.Word

// Generator is the contract shared by every core in this package.
type Generator[W Word] interface {
	fmt.Stringer

	// Next advances the state by one step and returns the new output.
	Next() W

	// Peek returns what the steps-th following call to Next would return,
	// without changing the state. Peek(1) is the next output, Peek(0) the
	// output of the current state and negative steps look back.
	Peek(steps int64) W

	// Skip moves the state by steps and returns the output there, so
	// Skip(1) is equivalent to Next.
	Skip(steps int64) W

	// State returns a copy of the raw state words.
	State() []W

	// SetState replaces the raw state. Missing words read as zero, extra words
	// are ignored and degenerate zero states are replaced.
	SetState(words ...W)

	// Duplicate returns an independent copy positioned at the same state.
	Duplicate() Generator[W]
}

// Inverter is implemented by generators whose output determines their state.
type Inverter[W Word] interface {
	// Invert returns the state from which Next produced output.
	Invert(output W) W
}

// word returns words[i], or zero past the end.
func word[W Word](words []W, i int) W {
	if i < len(words) {
		return words[i]
	}
	return 0
}

// magnitude returns |steps| as uint64; math.MinInt64 maps to 1<<63.
func magnitude(steps int64) uint64 {
	if steps < 0 {
		return uint64(-steps)
	}
	return uint64(steps)
}
