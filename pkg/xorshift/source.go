package xorshift

import "math/rand"

// randSource adapts a Source to math/rand.
type randSource struct {
	Source
}

// NewRandSource wraps src into a math/rand Source64, so any generator
// from this package can back a rand.Rand:
//
//	r := rand.New(xorshift.NewRandSource(g))
//
// Seed expands the scalar through a splitmix64 into enough words for
// any state width. The returned source is exactly as goroutine-safe as
// src itself, that is not at all.
func NewRandSource(src Source) rand.Source64 {
	return randSource{src}
}

func (r randSource) Uint64() uint64 {
	return r.Next64()
}

func (r randSource) Int63() int64 {
	return int64(r.Next64() >> 1)
}

func (r randSource) Seed(seed int64) {
	sm := NewSplitMix64(uint64(seed))
	var words [16]uint64
	seedFrom(sm, words[:])
	// 16 words satisfy every generator, extras are ignored
	_ = r.Reseed(words[:])
}
