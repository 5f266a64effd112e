// SPDX-License-Identifier: MIT

package subcycle

import (
	"math/bits"
	"sync"
)

// Component constants. The periods were measured with Period and are verified
// by the long-mode tests; they are exact and coprime.
const (
	CMRMultiplier = 0xAC564B05
	CMRRotation   = 11
	CMRPeriod     = 2758738598

	CERSConstant = 0x2C1B3C6D
	CERSRotation = 13
	CERSPeriod   = 3505372737

	// cmrInverse is CMRMultiplier⁻¹ mod 2^32.
	cmrInverse = 0xDC33C9CD
)

// CMRNext is the multiply-then-rotate step.
func CMRNext(s uint32) uint32 {
	return bits.RotateLeft32(s*CMRMultiplier, CMRRotation)
}

// CMRPrev undoes CMRNext.
func CMRPrev(s uint32) uint32 {
	return bits.RotateLeft32(s, -CMRRotation) * cmrInverse
}

// CERSNext is the constant-minus-rotate step.
func CERSNext(s uint32) uint32 {
	return CERSConstant - bits.RotateLeft32(s, CERSRotation)
}

// CERSPrev undoes CERSNext.
func CERSPrev(s uint32) uint32 {
	return bits.RotateLeft32(CERSConstant-s, -CERSRotation)
}

// CMR32 is the long multiply-then-rotate cycle through 1.
var CMR32 = Component[uint32]{
	Name:   "CMR32",
	Next:   CMRNext,
	Prev:   CMRPrev,
	Start:  1,
	Period: CMRPeriod,
}

// CERS32 is the long constant-minus-rotate cycle through 1.
var CERS32 = Component[uint32]{
	Name:   "CERS32",
	Next:   CERSNext,
	Prev:   CERSPrev,
	Start:  1,
	Period: CERSPeriod,
}

var (
	cmrOnce, cersOnce   sync.Once
	cmrTable, cersTable *Table[uint32]
)

// CMRTable returns the shared CMR32 table, built from the generated literals.
func CMRTable() *Table[uint32] {
	cmrOnce.Do(func() {
		cmrTable = mustTable(CMR32, cmrEntries)
	})
	return cmrTable
}

// CERSTable returns the shared CERS32 table, built from the generated literals.
func CERSTable() *Table[uint32] {
	cersOnce.Do(func() {
		cersTable = mustTable(CERS32, cersEntries)
	})
	return cersTable
}

// mustTable panics on malformed generated data, a build defect rather than a
// runtime condition.
func mustTable(c Component[uint32], entries [Entries]uint32) *Table[uint32] {
	t, err := FromEntries(c, entries)
	if err != nil {
		panic(err)
	}
	return t
}
