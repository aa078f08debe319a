// Package xorshift contains fast predictable pseudorandom number
// generators of the xorshift family: splitmix64, xorshift128+,
// xoroshiro128+ and xorshift1024*, together with their jump polynomials
// for deriving non-overlapping parallel output streams.
// Generated numbers are statistically strong, but predictable, so none
// of these generators is usable for security sensitive tasks.
// See https://prng.di.unimi.it .
package xorshift

import "errors"

// ErrInsufficientSeed returned if a provided seed contains fewer
// 64-bit words than the generator's state requires.
var ErrInsufficientSeed = errors.New("insufficient seed length")

// Source is the common contract of every generator in this package.
// A Source is a plain value: copying a dereferenced generator snapshots
// its stream position and the copy advances independently.
// Instances are not safe for concurrent use, hand out one per goroutine
// (see the stream package).
type Source interface {
	// Next64 advances the state by one step and returns the
	// next pseudorandom 64-bit word.
	Next64() uint64
	// Next32 advances the state by one step and returns the low
	// 32 bits of the word Next64 would have produced.
	Next32() uint32
	// Reseed replaces the state in place with the first words of seed,
	// ignoring any extra words.
	// Returns ErrInsufficientSeed if seed is too short.
	Reseed(seed []uint64) error
}

// Jumper is a Source which can advance its state by a fixed, large
// power-of-two number of steps without producing the intermediate
// outputs. Jumping k times from a common state yields the stream
// a caller would reach after k jump distances of Next64 calls, which
// makes jump offsets usable as non-overlapping stream identifiers.
type Jumper interface {
	Source
	// Jump advances the state by count jump distances.
	// Jump(0) is a no-op.
	Jump(count uint64)
}

// seedFrom fills dst with consecutive outputs of src.
// This is the expansion protocol: a single small seed fed to a
// splitmix64 (or any other Source) deterministically produces full-width
// state for a wider generator without risking the all-zero fixed point.
func seedFrom(src Source, dst []uint64) {
	for i := range dst {
		dst[i] = src.Next64()
	}
}
