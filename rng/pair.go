// SPDX-License-Identifier: MIT

package rng

import "github.com/katalvlaran/lvrng/subcycle"

// rawWalk is the longest jump an unplaced component walks one state at a time
// before it recovers its cycle position through the table.
const rawWalk = 1 << 16

// Pair32 xors a CMR32 and a CERS32 component. Their periods are coprime, so
// the combined stream repeats only after CMRPeriod·CERSPeriod steps.
//
// A seeded Pair32 knows where each component sits on its cycle, which makes
// Peek and Skip table lookups plus a walk of at most half a block. After a raw
// SetState the positions are unknown; the first jump longer than rawWalk steps
// recovers them with subcycle.Table.Find, and later jumps go through the tables.
//
// SetState accepts any word, including words on the shorter cycles of either
// step function. Such a component has no table position, and every jump on it
// walks one state at a time.
type Pair32 struct {
	cmr, cers track
}

// track is one component word and, once known, its cycle position.
type track struct {
	s     uint32
	pos   uint64
	where placement
}

type placement uint8

const (
	unplaced placement = iota // position not recovered yet
	placed                    // pos is the position of s on the long cycle
	offCycle                  // s is not on the long cycle
)

var _ Generator[uint32] = (*Pair32)(nil)

// NewPair32 places both components from seed. The seed is folded to 32 bits;
// the low half selects the CMR32 checkpoint and offset, the high half the
// CERS32 ones (see subcycle.Split).
//
// Complexity: O(MaxOffset) steps per component.
func NewPair32(seed uint64) *Pair32 {
	folded := uint32(seed ^ seed>>32)
	return &Pair32{
		cmr:  place(subcycle.CMRTable(), uint16(folded)),
		cers: place(subcycle.CERSTable(), uint16(folded>>16)),
	}
}

func place(t *subcycle.Table[uint32], slice uint16) track {
	index, offset := subcycle.Split(slice)
	return track{s: t.Place(index, offset), pos: t.Position(index, offset), where: placed}
}

// Next steps both components and returns their xor.
func (p *Pair32) Next() uint32 {
	p.cmr.s = subcycle.CMRNext(p.cmr.s)
	p.cers.s = subcycle.CERSNext(p.cers.s)
	if p.cmr.where == placed {
		p.cmr.pos = advance(p.cmr.pos, 1, subcycle.CMRPeriod)
	}
	if p.cers.where == placed {
		p.cers.pos = advance(p.cers.pos, 1, subcycle.CERSPeriod)
	}
	return p.cmr.s ^ p.cers.s
}

// Peek returns the output steps calls of Next away. A jump longer than rawWalk
// from a raw state recovers the positions on p first, so the search runs once.
//
// Complexity: a placed component walks at most half a block from the nearest
// checkpoint, up to about 10.8M CMR32 and 13.7M CERS32 steps; shorter jumps
// walk directly. Recovering a position walks up to one block plus the table
// remainder. Off-cycle components walk |steps| states.
func (p *Pair32) Peek(steps int64) uint32 {
	p.resolve(magnitude(steps))
	q := *p
	return q.Skip(steps)
}

// Skip moves both components by steps and returns the output there.
//
// Complexity: as Peek.
func (p *Pair32) Skip(steps int64) uint32 {
	p.resolve(magnitude(steps))
	p.cmr.jump(subcycle.CMRTable(), steps)
	p.cers.jump(subcycle.CERSTable(), steps)
	return p.cmr.s ^ p.cers.s
}

// resolve looks up the positions of unplaced components before a jump of n steps.
func (p *Pair32) resolve(n uint64) {
	if n <= rawWalk {
		return
	}
	p.cmr.locate(subcycle.CMRTable())
	p.cers.locate(subcycle.CERSTable())
}

func (k *track) locate(t *subcycle.Table[uint32]) {
	if k.where != unplaced {
		return
	}
	pos, ok := t.Find(k.s)
	if !ok {
		k.where = offCycle
		return
	}
	k.pos, k.where = pos, placed
}

// jump moves the component by steps. A placed component walks directly when
// that is no longer than the walk t.At would take from a checkpoint.
func (k *track) jump(t *subcycle.Table[uint32], steps int64) {
	c := t.Component()
	n := magnitude(steps)
	if k.where == placed {
		target := advance(k.pos, steps, c.Period)
		k.pos = target
		if n > t.Steps(target) {
			k.s = t.At(target)
			return
		}
	}
	if steps < 0 {
		k.s = subcycle.Walk(c.Prev, k.s, n)
		return
	}
	k.s = subcycle.Walk(c.Next, k.s, n)
}

// advance returns (pos + steps) mod period for pos < period.
func advance(pos uint64, steps int64, period uint64) uint64 {
	d := magnitude(steps) % period
	if steps < 0 {
		d = period - d
	}
	return (pos + d) % period
}

// Positions reports each component's position on its cycle. ok is false while
// either position is unknown: after SetState until a long jump recovers them,
// or for good when a word lies off its long cycle.
func (p *Pair32) Positions() (cmr, cers uint64, ok bool) {
	return p.cmr.pos, p.cers.pos, p.cmr.where == placed && p.cers.where == placed
}

// State returns the CMR32 and CERS32 words.
func (p *Pair32) State() []uint32 { return []uint32{p.cmr.s, p.cers.s} }

// SetState sets the CMR32 and CERS32 words. Zero is the fixed point of CMRNext,
// so a zero CMR32 word is replaced by the start of its long cycle, 1.
func (p *Pair32) SetState(words ...uint32) {
	*p = Pair32{cmr: track{s: word(words, 0)}, cers: track{s: word(words, 1)}}
	if p.cmr.s == 0 {
		p.cmr.s = subcycle.CMR32.Start
	}
}

// Duplicate returns an independent copy.
func (p *Pair32) Duplicate() Generator[uint32] {
	d := *p
	return &d
}

// String reports both component words.
func (p *Pair32) String() string { return formatState("Pair32", p.cmr.s, p.cers.s) }
