// SPDX-License-Identifier: MIT

package search

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/katalvlaran/isdsec/isd"
)

// ---------- Defaults ----------

const (
	// DefaultLower and DefaultUpper form the initial length bracket.
	DefaultLower = 2
	DefaultUpper = 1000

	// DefaultMaxLength caps the doubling phase.
	DefaultMaxLength = 1 << 22

	// DefaultCacheSize is the LRU capacity in evaluations.
	DefaultCacheSize = 4096

	// DefaultWorkers bounds FindAll parallelism.
	DefaultWorkers = 4
)

// ---------- Panic messages ----------

const (
	panicProbeNegative  = "search: WithMonotoneProbe: k must be non-negative"
	panicMaxLengthSmall = "search: WithMaxLength: bound must be at least DefaultUpper"
	panicCacheSizeBad   = "search: WithCacheSize: size must be positive"
	panicWorkersBad     = "search: WithWorkers: n must be positive"
	panicVariantUnknown = "search: WithVariant: unknown variant"
)

// ---------- Option type ----------

// Option mutates session configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*config)

type config struct {
	variant   isd.Variant
	solver    isd.Options
	strict    bool
	probe     int
	maxLength int
	cacheSize int
	workers   int
	memo      Memo
	logger    log.Logger
}

func defaultConfig() config {
	return config{
		variant:   isd.Classical,
		solver:    isd.DefaultOptions(),
		maxLength: DefaultMaxLength,
		cacheSize: DefaultCacheSize,
		workers:   DefaultWorkers,
	}
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = log.New("pkg", "search")
	}

	return cfg
}

// ---------- Constructors ----------

// WithVariant selects the decoding model (default isd.Classical).
func WithVariant(v isd.Variant) Option {
	if v != isd.Classical && v != isd.Quantum {
		panic(panicVariantUnknown)
	}
	return func(c *config) { c.variant = v }
}

// WithSolver replaces the isd options used for every evaluation.
func WithSolver(o isd.Options) Option {
	return func(c *config) { c.solver = o }
}

// WithStrict makes a non-converged estimate fail the search with
// ErrDidNotConverge instead of being accepted.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithMonotoneProbe re-evaluates the predicate at n+1..n+k after the
// search; any failure yields ErrNonMonotone. k = 0 disables the probe.
func WithMonotoneProbe(k int) Option {
	if k < 0 {
		panic(panicProbeNegative)
	}
	return func(c *config) { c.probe = k }
}

// WithMaxLength caps the doubling phase; lengths beyond it yield
// ErrNoFeasibleLength.
func WithMaxLength(n int) Option {
	if n < DefaultUpper {
		panic(panicMaxLengthSmall)
	}
	return func(c *config) { c.maxLength = n }
}

// WithCacheSize sets the LRU capacity.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic(panicCacheSizeBad)
	}
	return func(c *config) { c.cacheSize = n }
}

// WithWorkers bounds the number of concurrent FindAll queries.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersBad)
	}
	return func(c *config) { c.workers = n }
}

// WithMemo attaches a persistent memo consulted after the LRU.
func WithMemo(m Memo) Option {
	return func(c *config) { c.memo = m }
}

// WithLogger overrides the package logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}
