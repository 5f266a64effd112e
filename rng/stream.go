// SPDX-License-Identifier: MIT

package rng

import (
	"math/rand"

	"github.com/katalvlaran/lvrng/mix"
)

// StreamSeed mixes a parent seed and a stream identifier into a new seed.
// Use it to seed one generator per worker from a single configured seed:
// neighbouring stream numbers yield unrelated seeds.
//
// Complexity: O(1).
func StreamSeed(parent, stream uint64) uint64 {
	return mix.SplitMix64(parent ^ (stream + golden64) + golden64)
}

// Source adapts a 64-bit generator to math/rand.
//
// Seed rebuilds the generator through the constructor given to NewSource, so
// rand.Rand.Seed behaves as with the standard sources.
type Source struct {
	newGen func(seed uint64) Generator[uint64]
	g      Generator[uint64]
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a math/rand source running newGen(seed).
func NewSource(newGen func(seed uint64) Generator[uint64], seed int64) *Source {
	return &Source{newGen: newGen, g: newGen(uint64(seed))}
}

// Generator returns the generator behind the source.
func (s *Source) Generator() Generator[uint64] { return s.g }

// Uint64 returns the next output.
func (s *Source) Uint64() uint64 { return s.g.Next() }

// Int63 returns the top 63 bits of the next output.
func (s *Source) Int63() int64 { return int64(s.g.Next() >> 1) }

// Seed replaces the generator with newGen(seed).
func (s *Source) Seed(seed int64) { s.g = s.newGen(uint64(seed)) }
