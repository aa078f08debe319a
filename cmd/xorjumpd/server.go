package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"

	"github.com/sot-tech/xorjump/pkg/log"
	"github.com/sot-tech/xorjump/pkg/metrics"
	"github.com/sot-tech/xorjump/pkg/stream"
	"github.com/sot-tech/xorjump/pkg/xorshift"
)

var logger = log.NewLogger("server")

func init() {
	prometheus.MustRegister(promWordsServed)
}

// promWordsServed is a counter of pseudorandom words written to
// clients, labelled with the generator kind.
var promWordsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "xorjump_words_served_total",
	Help: "The number of pseudorandom words written to clients",
}, []string{"generator"})

const (
	defaultAddr         = "127.0.0.1:6869"
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultMaxCount     = 1 << 16
)

// frontendConfig represents all configurable options for the word
// dispensing frontend
type frontendConfig struct {
	Addr         string        `cfg:"addr"`
	ReadTimeout  time.Duration `cfg:"read_timeout"`
	WriteTimeout time.Duration `cfg:"write_timeout"`
	MaxCount     int           `cfg:"max_count"`
}

// Validate sanity checks values set in a config and returns a new
// config with default values replacing anything that is invalid.
func (cfg frontendConfig) Validate() (validCfg frontendConfig) {
	validCfg = cfg
	if len(cfg.Addr) == 0 {
		validCfg.Addr = defaultAddr
		logger.Warn().
			Str("name", "Addr").
			Str("provided", cfg.Addr).
			Str("default", validCfg.Addr).
			Msg("falling back to default configuration")
	}
	if cfg.ReadTimeout <= 0 {
		validCfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		validCfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.MaxCount <= 0 {
		validCfg.MaxCount = defaultMaxCount
		logger.Warn().
			Str("name", "MaxCount").
			Int("provided", cfg.MaxCount).
			Int("default", validCfg.MaxCount).
			Msg("falling back to default configuration")
	}
	return
}

// newSource issues a fresh independent stream for a single request.
// Every response is served from its own generator, so concurrent
// requests never share mutable state.
func newSource(name string) (xorshift.Source, bool) {
	switch name {
	case "xorshift128":
		return stream.NewXorshift128(), true
	case "xoroshiro128":
		return stream.NewXoroshiro128(), true
	case "xorshift1024":
		return stream.NewXorshift1024(), true
	}
	return nil, false
}

// Server represents the state of a running instance.
type Server struct {
	srv      *fasthttp.Server
	metrics  *metrics.Server
	maxCount int
}

// Run starts frontend and metrics servers with provided configuration.
func (s *Server) Run(cfg *Config) error {
	if len(cfg.MetricsAddr) > 0 {
		log.Info().Str("address", cfg.MetricsAddr).Msg("starting metrics server")
		s.metrics = metrics.NewServer(cfg.MetricsAddr)
	} else {
		log.Info().Msg("metrics disabled because of empty address")
	}

	var fc frontendConfig
	if cfg.Frontend != nil {
		if err := cfg.Frontend.Unmarshal(&fc); err != nil {
			return fmt.Errorf("failed to read frontend config: %w", err)
		}
	}
	fc = fc.Validate()
	s.maxCount = fc.MaxCount

	r := router.New()
	r.GET("/{generator}/u64", s.words64)
	r.GET("/{generator}/u32", s.words32)

	s.srv = &fasthttp.Server{
		Handler:      r.Handler,
		Name:         "xorjumpd",
		ReadTimeout:  fc.ReadTimeout,
		WriteTimeout: fc.WriteTimeout,
	}

	go func() {
		if err := s.srv.ListenAndServe(fc.Addr); err != nil {
			logger.Fatal().Err(err).Msg("failed while serving frontend")
		}
	}()
	logger.Info().Str("address", fc.Addr).Msg("started frontend")
	return nil
}

func (s *Server) words64(ctx *fasthttp.RequestCtx) {
	s.words(ctx, false)
}

func (s *Server) words32(ctx *fasthttp.RequestCtx) {
	s.words(ctx, true)
}

// words writes requested amount of pseudorandom words into response,
// one decimal number per line.
func (s *Server) words(ctx *fasthttp.RequestCtx, narrow bool) {
	name, _ := ctx.UserValue("generator").(string)
	src, ok := newSource(name)
	if !ok {
		ctx.Error("unknown generator", fasthttp.StatusNotFound)
		return
	}
	count := 1
	if args := ctx.QueryArgs(); args.Has("count") {
		v, err := args.GetUint("count")
		if err != nil || v <= 0 {
			ctx.Error("invalid count", fasthttp.StatusBadRequest)
			return
		}
		count = v
	}
	if count > s.maxCount {
		count = s.maxCount
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	buf := make([]byte, 0, 21)
	for i := 0; i < count; i++ {
		if narrow {
			buf = strconv.AppendUint(buf[:0], uint64(src.Next32()), 10)
		} else {
			buf = strconv.AppendUint(buf[:0], src.Next64(), 10)
		}
		buf = append(buf, '\n')
		_, _ = ctx.Write(buf)
	}
	promWordsServed.WithLabelValues(name).Add(float64(count))
}

// Shutdown gracefully stops frontend and metrics servers.
func (s *Server) Shutdown() {
	log.Debug().Msg("stopping frontend and metrics server")
	if s.srv != nil {
		if err := s.srv.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error occurred while shutting down frontend")
		}
	}
	if s.metrics != nil {
		if err := s.metrics.Stop(); err != nil {
			log.Error().Err(err).Msg("error occurred while shutting down metrics server")
		}
	}
	log.Close()
}
