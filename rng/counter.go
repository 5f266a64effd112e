// SPDX-License-Identifier: MIT

package rng

// Counter is a Weyl counter finished by the mixer of its Algorithm. The state
// is the counter value behind the most recent output.
type Counter[W Word] struct {
	alg   *Algorithm[W]
	state W
}

var (
	_ Generator[uint64] = (*Counter[uint64])(nil)
	_ Inverter[uint64]  = (*Counter[uint64])(nil)
	_ Generator[uint32] = (*Counter[uint32])(nil)
)

// NewCounter returns a generator running alg from state seed. Any seed is
// valid, zero included: the first output is alg.Determine(seed).
func NewCounter[W Word](alg *Algorithm[W], seed W) *Counter[W] {
	return &Counter[W]{alg: alg, state: seed}
}

// Algorithm returns the strategy the counter runs.
func (c *Counter[W]) Algorithm() *Algorithm[W] { return c.alg }

// Next advances the counter and returns its mixed value.
func (c *Counter[W]) Next() W {
	c.state += c.alg.Increment
	return c.alg.Mix(c.state)
}

// Peek returns the output steps calls of Next away.
//
// Complexity: O(1).
func (c *Counter[W]) Peek(steps int64) W {
	return c.alg.Mix(c.alg.Jump(c.state, steps))
}

// Skip moves the counter by steps and returns the output there.
//
// Complexity: O(1).
func (c *Counter[W]) Skip(steps int64) W {
	c.state = c.alg.Jump(c.state, steps)
	return c.alg.Mix(c.state)
}

// Invert returns the state Next was called on to produce output.
func (c *Counter[W]) Invert(output W) W {
	return c.alg.Unmix(output) - c.alg.Increment
}

// State returns the counter value.
func (c *Counter[W]) State() []W { return []W{c.state} }

// SetState sets the counter value. A zero counter needs no fixup: the
// increment moves it off zero before anything is mixed.
func (c *Counter[W]) SetState(words ...W) { c.state = word(words, 0) }

// Duplicate returns an independent copy.
func (c *Counter[W]) Duplicate() Generator[W] {
	d := *c
	return &d
}

// String reports the algorithm name and counter value.
func (c *Counter[W]) String() string { return formatState(c.alg.Name, c.state) }
