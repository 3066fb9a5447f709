// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/isdsec/isd"
)

// Session runs searches under one configuration and memoises every
// security-level evaluation it performs.
type Session struct {
	id     string
	cfg    config
	solver string // isd.Options fingerprint
	cache  *lru.ARCCache
	log    log.Logger

	evaluations atomic.Uint64
	cacheHits   atomic.Uint64
	memoHits    atomic.Uint64
}

// NewSession builds a session from opts.
func NewSession(opts ...Option) (*Session, error) {
	cfg := gatherOptions(opts)
	cache, err := lru.NewARC(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("search: session cache: %w", err)
	}
	id := uuid.New().String()

	return &Session{
		id:     id,
		cfg:    cfg,
		solver: cfg.solver.Fingerprint(),
		cache:  cache,
		log:    cfg.logger.New("session", id, "variant", cfg.variant),
	}, nil
}

// ID returns the session identifier attached to its log records.
func (s *Session) ID() string { return s.id }

// Variant returns the decoding model evaluated by the session.
func (s *Session) Variant() isd.Variant { return s.cfg.variant }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	return Stats{
		Evaluations: s.evaluations.Load(),
		CacheHits:   s.cacheHits.Load(),
		MemoHits:    s.memoHits.Load(),
	}
}

// Key returns the memo key of p under this session's configuration.
func (s *Session) Key(p Params) Key {
	return Key{Variant: s.cfg.variant, N: p.N, R: p.R, W: p.W, Solver: s.solver}
}

// Level returns the security level of p in bits, consulting the LRU, then
// the persistent memo, then the solver.
func (s *Session) Level(p Params) (float64, error) {
	k := s.Key(p)
	if v, ok := s.cache.Get(k); ok {
		s.cacheHits.Add(1)
		return s.accept(p, v.(Entry))
	}
	if s.cfg.memo != nil {
		e, ok, err := s.cfg.memo.Load(k)
		if err != nil {
			return 0, fmt.Errorf("search: memo load %s: %w", k, err)
		}
		if ok {
			s.memoHits.Add(1)
			s.cache.Add(k, e)
			return s.accept(p, e)
		}
	}

	s.evaluations.Add(1)
	lvl, err := isd.SecurityLevel(p.N, p.R, p.W, s.cfg.variant, s.cfg.solver)
	if err != nil {
		return 0, fmt.Errorf("search: level %s: %w", p, err)
	}
	e := Entry{Bits: lvl.Bits, Converged: lvl.Estimate.Status == isd.Converged}
	s.log.Debug("Evaluated security level", "n", p.N, "r", p.R, "w", p.W, "bits", e.Bits, "converged", e.Converged)

	s.cache.Add(k, e)
	if s.cfg.memo != nil {
		if err = s.cfg.memo.Save(k, e); err != nil {
			return 0, fmt.Errorf("search: memo save %s: %w", k, err)
		}
	}

	return s.accept(p, e)
}

// accept applies the strict-mode policy to e.
func (s *Session) accept(p Params, e Entry) (float64, error) {
	if e.Converged {
		return e.Bits, nil
	}
	if s.cfg.strict {
		return 0, fmt.Errorf("%s bits=%g: %w", p, e.Bits, ErrDidNotConverge)
	}
	s.log.Warn("Accepting unconverged estimate", "n", p.N, "r", p.R, "w", p.W, "bits", e.Bits)

	return e.Bits, nil
}
