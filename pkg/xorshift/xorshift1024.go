package xorshift

// xorshift1024Mul is the output scrambler multiplier.
const xorshift1024Mul = 1181783497276652981

// jump1024 is the xorshift1024* jump polynomial, scanned the same way
// as jump128 (word by word, lowest bit first).
var jump1024 = [16]uint64{
	0x84242f96eca9c41d, 0xa3c65b8776f96855, 0x5b34a39f070b5837, 0x4489affce4f31a1e,
	0x2ffeeb0a48316f40, 0xdc2d9891fe68c022, 0x3659132bb12fea70, 0xaac17d8efa43cab8,
	0xc4cb815590989b13, 0x5ee975283d71c93b, 0x691548c86c1bd540, 0x7910c41d10a1e6a5,
	0x0b5fc64563b3e2a8, 0x047f7684e9fc949d, 0xb99181f2d8f685ca, 0x284600e3f30e38c3,
}

// Xorshift1024 is the xorshift1024* generator: 1024 bits of state in a
// 16-word ring addressed by a rotating index, period 2^1024-1.
// Meant for massively parallel workloads where the 128-bit generators'
// period per stream is too tight.
// See https://prng.di.unimi.it/xorshift1024star.c .
//
// The all-zero state caveat of the 128-bit generators applies here too.
type Xorshift1024 struct {
	s [16]uint64
	p int
}

// NewXorshift1024 creates a generator from the first 16 words of seed.
// Returns ErrInsufficientSeed if seed contains fewer than 16 words.
func NewXorshift1024(seed []uint64) (*Xorshift1024, error) {
	x := new(Xorshift1024)
	if err := x.Reseed(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// NewXorshift1024From creates a generator seeded with the next
// 16 outputs of src.
func NewXorshift1024From(src Source) *Xorshift1024 {
	x := new(Xorshift1024)
	seedFrom(src, x.s[:])
	return x
}

// Next64 returns the next pseudorandom word.
func (x *Xorshift1024) Next64() uint64 {
	s0 := x.s[x.p]
	x.p = (x.p + 1) & 15
	s1 := x.s[x.p]
	s1 ^= s1 << 31
	x.s[x.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)
	return x.s[x.p] * xorshift1024Mul
}

// Next32 returns the low 32 bits of the next pseudorandom word.
func (x *Xorshift1024) Next32() uint32 {
	return uint32(x.Next64())
}

// Reseed replaces the state with the first 16 words of seed and resets
// the ring index to the first slot.
func (x *Xorshift1024) Reseed(seed []uint64) error {
	if len(seed) < len(x.s) {
		return ErrInsufficientSeed
	}
	copy(x.s[:], seed)
	x.p = 0
	return nil
}

// Jump advances the state by count jump distances of 2^512 Next64 calls
// each, producing no outputs.
//
// The accumulator is read and written through the ring offset captured
// from the live index, so the jumped state stays in the same rotating
// frame; the index itself is left where the internal transitions put it
// (1024 steps per jump distance, a whole number of ring revolutions).
func (x *Xorshift1024) Jump(count uint64) {
	for ; count > 0; count-- {
		var t [16]uint64
		for _, w := range jump1024 {
			for b := 0; b < 64; b++ {
				if w&(1<<b) != 0 {
					for j := range t {
						t[j] ^= x.s[(j+x.p)&15]
					}
				}
				x.Next64()
			}
		}
		for j := range t {
			x.s[(j+x.p)&15] = t[j]
		}
	}
}
