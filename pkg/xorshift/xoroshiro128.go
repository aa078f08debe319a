package xorshift

import "math/bits"

// jumpRo128 is the xoroshiro128+ jump polynomial, scanned the same way
// as jump128.
var jumpRo128 = [2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922}

// Xoroshiro128 is the xoroshiro128+ generator, the successor of
// xorshift128+: same 128-bit footprint and period 2^128-1, but the
// shift/rotate transition gives better statistical quality at the same
// speed. See https://prng.di.unimi.it/xoroshiro128plus.c .
//
// As with Xorshift128, the all-zero state is a degenerate fixed point
// and avoiding it is the caller's obligation.
type Xoroshiro128 struct {
	s [2]uint64
}

// NewXoroshiro128 creates a generator from the first two words of seed.
// Returns ErrInsufficientSeed if seed contains fewer than two words.
func NewXoroshiro128(seed []uint64) (*Xoroshiro128, error) {
	x := new(Xoroshiro128)
	if err := x.Reseed(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// NewXoroshiro128From creates a generator seeded with the next
// two outputs of src.
func NewXoroshiro128From(src Source) *Xoroshiro128 {
	x := new(Xoroshiro128)
	seedFrom(src, x.s[:])
	return x
}

// Next64 returns the next pseudorandom word.
func (x *Xoroshiro128) Next64() uint64 {
	s0, s1 := x.s[0], x.s[1]
	r := s0 + s1
	s1 ^= s0
	x.s[0] = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	x.s[1] = bits.RotateLeft64(s1, 36)
	return r
}

// Next32 returns the low 32 bits of the next pseudorandom word.
func (x *Xoroshiro128) Next32() uint32 {
	return uint32(x.Next64())
}

// Reseed replaces the state with the first two words of seed.
func (x *Xoroshiro128) Reseed(seed []uint64) error {
	if len(seed) < len(x.s) {
		return ErrInsufficientSeed
	}
	copy(x.s[:], seed)
	return nil
}

// Jump advances the state by count jump distances of 2^64 Next64 calls
// each, producing no outputs.
func (x *Xoroshiro128) Jump(count uint64) {
	for ; count > 0; count-- {
		var s0, s1 uint64
		for _, w := range jumpRo128 {
			for b := 0; b < 64; b++ {
				if w&(1<<b) != 0 {
					s0 ^= x.s[0]
					s1 ^= x.s[1]
				}
				x.Next64()
			}
		}
		x.s[0], x.s[1] = s0, s1
	}
}
