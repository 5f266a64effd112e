// SPDX-License-Identifier: MIT

package subcycle

// Table holds Entries checkpoints along one cycle of a Component.
// A Table is immutable; share it freely.
type Table[W Word] struct {
	comp    Component[W]
	entries [Entries]W
	block   uint64
}

// Component returns the component the table was built for.
func (t *Table[W]) Component() Component[W] { return t.comp }

// Period returns the length of the tabulated cycle.
func (t *Table[W]) Period() uint64 { return t.comp.Period }

// BlockSize returns the number of steps between consecutive checkpoints.
func (t *Table[W]) BlockSize() uint64 { return t.block }

// Entry returns checkpoint i, the state i·BlockSize steps past the start.
// i is taken modulo Entries.
func (t *Table[W]) Entry(i int) W { return t.entries[i&(Entries-1)] }

// Entries returns a copy of all checkpoints.
func (t *Table[W]) Entries() [Entries]W { return t.entries }

// Position returns the absolute cycle position that Place(index, offset) lands on.
func (t *Table[W]) Position(index uint8, offset uint16) uint64 {
	return uint64(index&(Entries-1))*t.block + uint64(offset&MaxOffset)
}

// Place returns checkpoint index advanced by offset steps. index keeps its low
// IndexBits bits and offset its low OffsetBits bits, so every input is a valid
// placement.
//
// Complexity: O(offset) ≤ 511 steps.
func (t *Table[W]) Place(index uint8, offset uint16) W {
	return Walk(t.comp.Next, t.entries[index&(Entries-1)], uint64(offset&MaxOffset))
}

// At returns the state at absolute position pos (taken modulo Period).
// It starts from the nearest checkpoint and walks forward, or backward through
// Prev when that is shorter and Prev is set.
//
// Complexity: O(BlockSize/2) with Prev, O(BlockSize + Period mod Entries) without.
func (t *Table[W]) At(pos uint64) W {
	i, ahead, behind := t.locate(pos)
	if t.comp.Prev != nil && behind < ahead {
		return Walk(t.comp.Prev, t.entries[(i+1)%Entries], behind)
	}
	return Walk(t.comp.Next, t.entries[i], ahead)
}

// Steps returns how many single steps At(pos) walks, so callers can choose
// between a table jump and a direct walk.
func (t *Table[W]) Steps(pos uint64) uint64 {
	_, ahead, behind := t.locate(pos)
	if t.comp.Prev != nil && behind < ahead {
		return behind
	}
	return ahead
}

// Find returns the position of s on the tabulated cycle. It walks forward from
// s until it meets a checkpoint; ok is false when none turns up within the
// longest gap between checkpoints, which means s lies off the cycle.
//
// Complexity: O(BlockSize + Period mod Entries) steps.
func (t *Table[W]) Find(s W) (pos uint64, ok bool) {
	index := make(map[W]uint64, Entries)
	for i, e := range t.entries {
		index[e] = uint64(i)
	}
	gap := t.comp.Period - (Entries-1)*t.block
	for d := uint64(0); d < gap; d++ {
		if i, hit := index[s]; hit {
			at := i * t.block
			if d <= at {
				return at - d, true
			}
			return t.comp.Period - (d - at), true
		}
		s = t.comp.Next(s)
	}
	return 0, false
}

// locate returns the checkpoint at or below pos and the distances from it and
// back from the following checkpoint; entry 0 closes the cycle after entry 127.
func (t *Table[W]) locate(pos uint64) (i, ahead, behind uint64) {
	pos %= t.comp.Period
	i = pos / t.block
	if i >= Entries {
		i = Entries - 1
	}
	nextAt := (i + 1) * t.block
	if i == Entries-1 {
		nextAt = t.comp.Period
	}
	return i, pos - i*t.block, nextAt - pos
}

// Walk applies step to s exactly n times.
func Walk[W Word](step func(W) W, s W, n uint64) W {
	for ; n > 0; n-- {
		s = step(s)
	}
	return s
}

// Split decodes a 16-bit seed slice into a checkpoint index (low IndexBits bits)
// and an offset (high OffsetBits bits).
func Split(slice uint16) (index uint8, offset uint16) {
	return uint8(slice & (Entries - 1)), slice >> IndexBits
}
