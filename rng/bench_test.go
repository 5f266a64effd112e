// SPDX-License-Identifier: MIT
// Package rng_test provides benchmarks for stepping and jumping every core.
package rng_test

import (
	"testing"

	"github.com/katalvlaran/lvrng/rng"
)

// sinks to defeat dead-code elimination
var (
	sink64 uint64
	sink32 uint32
)

func BenchmarkNext64(b *testing.B) {
	for _, g := range generators64(1) {
		g := g
		b.Run(g.String(), func(b *testing.B) {
			var v uint64
			for i := 0; i < b.N; i++ {
				v ^= g.Next()
			}
			sink64 = v
		})
	}
}

func BenchmarkNext32(b *testing.B) {
	g := rng.NewPair32(1)
	var v uint32
	for i := 0; i < b.N; i++ {
		v ^= g.Next()
	}
	sink32 = v
}

func BenchmarkPeekFar64(b *testing.B) {
	for _, g := range generators64(1) {
		g := g
		b.Run(g.String(), func(b *testing.B) {
			var v uint64
			for i := 0; i < b.N; i++ {
				v ^= g.Peek(int64(i)<<32 | 1)
			}
			sink64 = v
		})
	}
}

// BenchmarkPair32PeekFar pays one table lookup and a partial block walk per call.
func BenchmarkPair32PeekFar(b *testing.B) {
	g := rng.NewPair32(1)
	var v uint32
	for i := 0; i < b.N; i++ {
		v ^= g.Peek(int64(i) * 1_000_003)
	}
	sink32 = v
}
