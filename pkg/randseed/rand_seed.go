// Package randseed reads one-off generator seeds from the system
// entropy source.
package randseed

import (
	cr "crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const wordSize = 8

// Words reads n 64-bit words from the crypto random source.
// Returns an error if the source is unavailable; there is no fallback,
// a caller which needs unpredictable seeds can not proceed without it.
func Words(n int) ([]uint64, error) {
	b := make([]byte, n*wordSize)
	if _, err := cr.Read(b); err != nil {
		return nil, err
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(b[i*wordSize:])
	}
	return words, nil
}

// Word reads a single 64-bit word from the crypto random source.
func Word() (uint64, error) {
	words, err := Words(1)
	if err != nil {
		return 0, err
	}
	return words[0], nil
}

// FromString derives a deterministic 64-bit seed from an arbitrary
// string, e.g. a run label from a config file. Same string always
// produces same seed.
func FromString(s string) uint64 {
	return xxhash.Sum64String(s)
}
