// SPDX-License-Identifier: MIT
// Package subcycle builds and serves subcycle tables: 128 evenly spaced
// checkpoints along one long cycle of a component generator, so a compact seed
// can place the component anywhere on that cycle in O(1) plus a short walk.
//
// Overview:
//
//   - A Component is a deterministic bijective next-state function together with
//     a canonical start state and the length (Period) of the cycle through it.
//     Bijective state functions partition the word domain into disjoint cycles;
//     the start is chosen on a long one, which avoids short, low-quality cycles.
//   - Build walks the cycle once and records the state every Period/128 steps.
//   - Table.Place(index, offset) returns Entry(index) advanced by offset steps.
//     index is 7 bits (0..127) and offset 9 bits (0..511): the offset walk is the
//     only O(n) loop, bounded to stay cheap. Split decodes a 16-bit seed slice.
//   - Table.At(pos) returns the state at any absolute cycle position by jumping to
//     the nearest checkpoint and walking at most half a block in either direction.
//
// Components shipped with the package (32-bit, start 1):
//
//	CMR32   multiply-then-rotate   s → rotl32(s·0xAC564B05, 11)   period 2758738598
//	CERS32  constant-minus-rotate  s → 0x2C1B3C6D − rotl32(s, 13) period 3505372737
//
// The two periods are coprime, so a generator that xors one CMR32 and one
// CERS32 output per step (rng.Pair32) has period 2758738598 · 3505372737 ≈ 2^63.
// Zero is a fixed point of CMR32 and never lies on its long cycle.
//
// Generated data:
//
//	The checkpoint literals live in tables_gen.go, written by cmd/tablegen from
//	Build. Run `go generate ./subcycle` after changing a component; the long-mode
//	tests rebuild both tables and compare them with the literals.
//
// Error handling (sentinel errors):
//
//   - ErrNilNext:        a Component without a Next function.
//   - ErrShortPeriod:    Period below 128, too short to split into blocks.
//   - ErrNoCycle:        Period gave up before the start state recurred.
//   - ErrPeriodMismatch: WithVerify saw the start recur before or after Period steps.
//
// Thread safety:
//
//	Tables are immutable after construction and safe to share across goroutines.
//	CMRTable and CERSTable are built once, on first use.
package subcycle

//go:generate go run ../cmd/tablegen
