// Package stream hands out generators with pairwise non-overlapping
// output streams. The process seeds itself exactly once from the
// system entropy source; every issued generator starts from that seed
// jumped ahead by a unique offset, so streams given to concurrent
// callers never intersect.
package stream

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sot-tech/xorjump/pkg/log"
	"github.com/sot-tech/xorjump/pkg/randseed"
	"github.com/sot-tech/xorjump/pkg/xorshift"
)

func init() {
	prometheus.MustRegister(PromStreamsIssued)
}

// PromStreamsIssued is a counter of generator streams issued by this
// package, labelled with the generator kind.
var PromStreamsIssued = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "xorjump_streams_issued_total",
	Help: "The number of independent generator streams issued",
}, []string{"generator"})

// seedWords is the widest supported state, so one cached seed serves
// every generator kind.
const seedWords = 16

var (
	logger   = log.NewLogger("stream")
	seedOnce sync.Once
	seed     [seedWords]uint64
	offset   atomic.Uint64
)

// nextOffset initializes the process seed on first use and reserves a
// unique jump offset. The fetch-and-add is sequentially consistent, so
// no two callers can observe the same offset no matter the contention.
//
// Entropy failure is fatal: proceeding without a seed would silently
// hand out all-zero-seeded generators, which produce a degenerate
// stream forever.
func nextOffset() uint64 {
	seedOnce.Do(func() {
		words, err := randseed.Words(seedWords)
		if err != nil {
			logger.Fatal().Err(err).Msg("unable to read system entropy source")
		}
		copy(seed[:], words)
	})
	return offset.Add(1) - 1
}

// NewXorshift128 returns a xorshift128+ generator owned by the caller,
// jumped a unique number of 2^64-step distances ahead of the process
// seed.
func NewXorshift128() *xorshift.Xorshift128 {
	n := nextOffset()
	g, _ := xorshift.NewXorshift128(seed[:])
	g.Jump(n)
	PromStreamsIssued.WithLabelValues("xorshift128").Inc()
	return g
}

// NewXoroshiro128 returns a xoroshiro128+ generator owned by the
// caller, jumped a unique number of 2^64-step distances ahead of the
// process seed.
func NewXoroshiro128() *xorshift.Xoroshiro128 {
	n := nextOffset()
	g, _ := xorshift.NewXoroshiro128(seed[:])
	g.Jump(n)
	PromStreamsIssued.WithLabelValues("xoroshiro128").Inc()
	return g
}

// NewXorshift1024 returns a xorshift1024* generator owned by the
// caller, jumped a unique number of 2^512-step distances ahead of the
// process seed.
func NewXorshift1024() *xorshift.Xorshift1024 {
	n := nextOffset()
	g, _ := xorshift.NewXorshift1024(seed[:])
	g.Jump(n)
	PromStreamsIssued.WithLabelValues("xorshift1024").Inc()
	return g
}
