// SPDX-License-Identifier: MIT
// Package: subcycle
//
// Purpose:
//   - Measure a cycle (Period) and record its Entries evenly spaced checkpoints (Build).
//
// Contract:
//   - next must be a bijection for Period to terminate on its own; limit bounds it otherwise.
//   - Build walks Period steps in total (plus nothing extra without WithVerify).

package subcycle

import "fmt"

// Period walks next from start until start recurs and returns the number of
// steps taken. It gives up with ErrNoCycle after limit steps.
//
// Complexity: O(period) time, O(1) space.
func Period[W Word](next func(W) W, start W, limit uint64) (uint64, error) {
	if next == nil {
		return 0, ErrNilNext
	}
	s := start
	for n := uint64(1); n <= limit; n++ {
		s = next(s)
		if s == start {
			return n, nil
		}
	}
	return 0, fmt.Errorf("period from %#x after %d steps: %w", uint64(start), limit, ErrNoCycle)
}

// Build records the state after i·BlockSize steps from c.Start for every
// i in [0, Entries). BlockSize is c.Period / Entries, rounded down; the
// remainder stays in the last block.
//
// Complexity: O(c.Period) time, O(Entries) space.
func Build[W Word](c Component[W], opts ...Option) (*Table[W], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(c); err != nil {
		return nil, err
	}

	t := &Table[W]{comp: c, block: c.Period / Entries}
	s := c.Start
	for i := 0; i < Entries; i++ {
		t.entries[i] = s
		if o.Progress != nil {
			o.Progress(i)
		}
		for j := uint64(0); j < t.block; j++ {
			s = c.Next(s)
			// The start may only recur on step Period, which is the final
			// step here when Period is a multiple of Entries.
			if steps := uint64(i)*t.block + j + 1; o.Verify && s == c.Start && steps < c.Period {
				return nil, fmt.Errorf("%s: start recurred after %d steps: %w",
					c.Name, steps, ErrPeriodMismatch)
			}
		}
	}

	if o.Verify {
		// s sits at Entries·block; walk the remainder and expect the start.
		tail := c.Period - Entries*t.block
		for j := uint64(0); j < tail; j++ {
			if s == c.Start {
				return nil, fmt.Errorf("%s: start recurred after %d steps: %w",
					c.Name, Entries*t.block+j, ErrPeriodMismatch)
			}
			s = c.Next(s)
		}
		if s != c.Start {
			return nil, fmt.Errorf("%s: start absent after %d steps: %w", c.Name, c.Period, ErrPeriodMismatch)
		}
	}
	return t, nil
}

// FromEntries wraps precomputed checkpoints, typically generated literals, in a
// Table. Only cheap structural checks run: entries[0] must be c.Start.
func FromEntries[W Word](c Component[W], entries [Entries]W) (*Table[W], error) {
	if err := validate(c); err != nil {
		return nil, err
	}
	if entries[0] != c.Start {
		return nil, fmt.Errorf("%s: entry 0 is %#x, start is %#x: %w",
			c.Name, uint64(entries[0]), uint64(c.Start), ErrPeriodMismatch)
	}
	return &Table[W]{comp: c, entries: entries, block: c.Period / Entries}, nil
}

func validate[W Word](c Component[W]) error {
	if c.Next == nil {
		return fmt.Errorf("%s: %w", c.Name, ErrNilNext)
	}
	if c.Period < Entries {
		return fmt.Errorf("%s: period %d: %w", c.Name, c.Period, ErrShortPeriod)
	}
	return nil
}
