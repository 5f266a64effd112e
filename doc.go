// Package lvrng is a toolkit of skippable pseudorandom generator cores for
// 64-bit and 32-bit words: fixed-width output, deterministic streams, and
// jumps of any signed length without iterating.
//
// 🚀 What is lvrng?
//
//	A small, pure-Go library built from four layers:
//		• Bit mixers: bijective multiply / xor-shift / rotate-xor finalizers
//		• Inverse mixers: every predefined mixer undone step by step
//		• Subcycle tables: 128 checkpoints per long component cycle
//		• Generator cores: counters, a CMR⊕CERS pair, xoroshiro128++, a 256-bit counter
//
// ✨ Why choose lvrng?
//
//   - Jump anywhere – Peek and Skip take any int64, negative included
//   - Recover state – counter outputs invert back to the state that produced them
//   - Declared mixers – every fast mixer has a recipe that is validated and tested
//   - Pure Go – no cgo; only the table generator has dependencies
//
// Packages:
//
//	mix/          — bit-mixing functions and declared recipes
//	unmix/        — inverse primitives, recipe inversion, fast inverse mixers
//	subcycle/     — table builder, CMR32 and CERS32 components, generated tables
//	rng/          — Generator contract, Counter, Pair32, Xoroshiro128, Quad64
//	cmd/tablegen/ — regenerates subcycle/tables_gen.go
//
// Quick example:
//
//	g := rng.NewCounter(rng.SplitMix64, 0)
//	g.Next()      // 0xE220A8397B1DCDAF
//	g.Peek(1000)  // the 1001st output, without moving
//	g.Skip(-1)    // back to the seed state
//
// Not a CSPRNG: outputs are statistically strong, but the state behind them
// is easy to recover, and the counters expose Invert for exactly that.
//
//	go get github.com/katalvlaran/lvrng
package lvrng
