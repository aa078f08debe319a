package xorshift

// jump128 is the xorshift128+ jump polynomial.
// Scanned word by word, lowest bit first; one set bit folds the current
// state into the accumulator, and the transition function runs once per
// bit either way.
var jump128 = [2]uint64{0x8a5cd789635d2dff, 0x121fd2155c472f96}

// Xorshift128 is the xorshift128+ generator: 128 bits of state, period
// 2^128-1, one 64-bit addition and a handful of shifts per step.
// See https://prng.di.unimi.it/xorshift128plus.c .
//
// State must not be everywhere zero: the all-zero state is a fixed
// point producing zeroes forever. The constructors accept such a seed
// without complaint, avoiding it is the caller's obligation; when in
// doubt, expand the seed through SplitMix64 (NewXorshift128From).
type Xorshift128 struct {
	s [2]uint64
}

// NewXorshift128 creates a generator from the first two words of seed.
// Returns ErrInsufficientSeed if seed contains fewer than two words.
func NewXorshift128(seed []uint64) (*Xorshift128, error) {
	x := new(Xorshift128)
	if err := x.Reseed(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// NewXorshift128From creates a generator seeded with the next
// two outputs of src.
func NewXorshift128From(src Source) *Xorshift128 {
	x := new(Xorshift128)
	seedFrom(src, x.s[:])
	return x
}

// Next64 returns the next pseudorandom word.
func (x *Xorshift128) Next64() uint64 {
	s1, s0 := x.s[0], x.s[1]
	r := s0 + s1
	x.s[0] = s0
	s1 ^= s1 << 23
	x.s[1] = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return r
}

// Next32 returns the low 32 bits of the next pseudorandom word.
func (x *Xorshift128) Next32() uint32 {
	return uint32(x.Next64())
}

// Reseed replaces the state with the first two words of seed.
func (x *Xorshift128) Reseed(seed []uint64) error {
	if len(seed) < len(x.s) {
		return ErrInsufficientSeed
	}
	copy(x.s[:], seed)
	return nil
}

// Jump advances the state by count jump distances of 2^64 Next64 calls
// each, producing no outputs. Streams separated by at least one jump
// never overlap within 2^64 draws.
func (x *Xorshift128) Jump(count uint64) {
	for ; count > 0; count-- {
		var s0, s1 uint64
		for _, w := range jump128 {
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
