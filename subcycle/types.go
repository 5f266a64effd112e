// SPDX-License-Identifier: MIT

package subcycle

import "errors"

// Word is the unsigned state type a component walks over.
type Word interface {
	~uint32 | ~uint64
}

const (
	// Entries is the number of checkpoints in every table.
	Entries = 128

	// IndexBits is the width of the seed field that selects a checkpoint.
	IndexBits = 7

	// OffsetBits is the width of the seed field that walks past a checkpoint.
	OffsetBits = 9

	// MaxOffset is the largest offset Place will walk.
	MaxOffset = 1<<OffsetBits - 1
)

// Sentinel errors returned by Period and Build.
var (
	// ErrNilNext indicates a Component without a next-state function.
	ErrNilNext = errors.New("subcycle: component has no next-state function")

	// ErrShortPeriod indicates a Period too short to split into Entries blocks.
	ErrShortPeriod = errors.New("subcycle: period shorter than table size")

	// ErrNoCycle indicates that the start state did not recur within the limit.
	ErrNoCycle = errors.New("subcycle: start state did not recur within limit")

	// ErrPeriodMismatch indicates that the walk returned to the start state
	// before, or not exactly at, the declared Period.
	ErrPeriodMismatch = errors.New("subcycle: cycle length differs from declared period")
)

// Component describes one cycle of a bijective state function.
type Component[W Word] struct {
	Name   string    // used in diagnostics and generated code
	Next   func(W) W // canonical next-state function
	Prev   func(W) W // inverse of Next; optional, enables backward walks
	Start  W         // canonical start state, Entry(0) of the table
	Period uint64    // length of the cycle through Start
}

// Options configures Build.
type Options struct {
	Progress func(entry int) // called after each checkpoint is recorded
	Verify   bool            // walk the tail and check the declared Period
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithProgress installs a hook called with the index of every recorded
// checkpoint, in order 0..Entries-1. Build runs for billions of steps on 32-bit
// components; the hook is the only way to observe it.
func WithProgress(fn func(entry int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithVerify makes Build finish the cycle after the last checkpoint and fail with
// ErrPeriodMismatch unless the start recurs exactly after Period steps.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// DefaultOptions returns the Build defaults: no progress hook, no verification.
func DefaultOptions() Options {
	return Options{}
}
