// SPDX-License-Identifier: MIT
// Package subcycle_test provides runnable examples for subcycle tables.
package subcycle_test

import (
	"fmt"

	"github.com/katalvlaran/lvrng/subcycle"
)

// ExampleBuild tabulates a toy full-period LCG modulo 4096.
func ExampleBuild() {
	c := subcycle.Component[uint32]{
		Name:   "toy",
		Next:   func(s uint32) uint32 { return (5*s + 3) & 0xFFF },
		Start:  0,
		Period: 4096,
	}
	tab, err := subcycle.Build(c, subcycle.WithVerify())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tab.BlockSize(), tab.Entry(1), tab.Place(1, 1))
	// Output: 32 928 547
}

// ExampleSplit places the CMR32 component from a 16-bit seed slice.
func ExampleSplit() {
	index, offset := subcycle.Split(0x0281)
	tab := subcycle.CMRTable()
	fmt.Println(index, offset, tab.Position(index, offset))
	// Output: 1 5 21552650
}
