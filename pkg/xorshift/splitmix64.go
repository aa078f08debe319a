package xorshift

// splitmix64 mixing constants, see https://prng.di.unimi.it/splitmix64.c .
const (
	splitMixGamma = 0x9E3779B97F4A7C15
	splitMixMulA  = 0xBF58476D1CE4E5B9
	splitMixMulB  = 0x94D049BB133111EB
)

// SplitMix64 is a 64-bit state generator with a fixed additive state
// increment and a three-round avalanche output function.
// Its period is only 2^64, so it is not meant as a general purpose
// generator: its job is to expand one seed word into an arbitrarily
// long word sequence for seeding the wider generators (see
// NewXorshift128From and friends). Unlike the other generators,
// all-zero state is perfectly valid here.
type SplitMix64 struct {
	s uint64
}

// NewSplitMix64 creates a generator with state set to seed as is.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{s: seed}
}

// Next64 returns the next pseudorandom word.
func (s *SplitMix64) Next64() uint64 {
	s.s += splitMixGamma
	z := s.s
	z = (z ^ (z >> 30)) * splitMixMulA
	z = (z ^ (z >> 27)) * splitMixMulB
	return z ^ (z >> 31)
}

// Next32 returns the low 32 bits of the next pseudorandom word.
func (s *SplitMix64) Next32() uint32 {
	return uint32(s.Next64())
}

// Reseed replaces the state with the first word of seed.
func (s *SplitMix64) Reseed(seed []uint64) error {
	if len(seed) < 1 {
		return ErrInsufficientSeed
	}
	s.s = seed[0]
	return nil
}
