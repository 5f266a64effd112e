// SPDX-License-Identifier: MIT

// Package rng provides skippable pseudorandom generator cores.
//
// Every generator implements Generator: Next advances and returns the mixed
// output, Peek(k) returns the output of the k-th future Next without moving,
// and Skip(k) moves by k and returns that output. Jumps are computed directly,
// never by looping over k:
//
//   - Counter[W]: a Weyl counter (state += Increment) finished by a bijective
//     mixer. The mixer and increment come from an Algorithm strategy value;
//     SplitMix64, Distinct64, MX3, Rotor64, Lowbias32 and Triple32 are
//     predefined. Counters also implement Inverter: Invert(output) recovers the
//     state that produced it.
//   - Pair32: the CMR32 and CERS32 subcycle components xored together. A seed
//     places each component on its long cycle through the subcycle tables, and
//     jumps reuse the same tables.
//   - Xoroshiro128: xoroshiro128++ with arbitrary signed jumps through
//     precomputed powers of its GF(2) transition matrix.
//   - Quad64: a 256-bit Weyl counter with a four-word output mix.
//
// Determinism:
//
//	Construction from the same seed yields the same stream on every platform.
//	All state arithmetic is unsigned and wraps.
//
// Concurrency:
//
//	Generators are plain values without locks. Do not share one across
//	goroutines; call Duplicate, or seed one instance per worker with
//	StreamSeed. The subcycle tables and jump matrices behind them are
//	immutable and shared. Source adapts any 64-bit core to math/rand.
//
// Bounded values:
//
//	NextBounded64 and NextBounded32 map an output into [0, bound) by taking the
//	high half of output·bound. There is no modulo bias, only the slight
//	unevenness of bounds that do not divide 2^w. Bounds <= 0 yield 0.
package rng
