// SPDX-License-Identifier: MIT

package rng

import (
	"fmt"
	"math/bits"
	"strings"
)

// formatState renders "<name> with state 0x<hex>[, 0x<hex>...]" with every word
// zero-padded to its full width. The text is informational only.
func formatState[W Word](name string, words ...W) string {
	digits := bits.Len64(uint64(^W(0))) / 4

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" with state ")
	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%0*X", digits, uint64(w))
	}
	return b.String()
}
