// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/isdsec/entropy"
	"github.com/katalvlaran/isdsec/gvbound"
)

// GapHolds reports r ≥ n·H(w/n) + gap: the left space of r bits exceeds the
// right space of weight-w words by at least gap bits.
func GapHolds(n, r, w int, gap float64) bool {
	return float64(r) >= float64(n)*entropy.BinaryEntropy(float64(w)/float64(n))+gap
}

// GapWeight returns the largest w in [1, r) satisfying GapHolds found by
// bisection, or 0 when w = 1 already fails.
func GapWeight(n, r int, gap float64) int {
	if !GapHolds(n, r, 1, gap) {
		return 0
	}
	lower, upper := 1, r
	for lower < upper-1 {
		mid := lower + (upper-lower)/2
		if GapHolds(n, r, mid, gap) {
			lower = mid
		} else {
			upper = mid
		}
	}

	return lower
}

// GapParams returns the triple the gap search evaluates at length n:
// r = n/2, w = min(GV(n, r) − 1, GapWeight(n, r, gap)).
func GapParams(n int, gap float64) (Params, error) {
	r := n / 2
	d, err := gvbound.Distance(n, r)
	if err != nil {
		return Params{}, err
	}

	return Params{N: n, R: r, W: min(d-1, GapWeight(n, r, gap))}, nil
}

// FindGap returns the shortest (n, n/2, w) reaching target bits while
// keeping a lossiness gap of at least gap bits. The returned w is the
// effective weight at the returned n.
func (s *Session) FindGap(target, gap float64) (Params, error) {
	if err := checkTarget("target", target); err != nil {
		return Params{}, err
	}
	if err := checkTarget("gap", gap); err != nil {
		return Params{}, err
	}
	pred := func(n int) (bool, error) {
		p, err := GapParams(n, gap)
		if err != nil {
			return false, err
		}
		bits, err := s.Level(p)
		if err != nil {
			return false, err
		}
		return bits >= target, nil
	}

	n, err := s.minimalLength(pred)
	if err != nil {
		return Params{}, fmt.Errorf("FindGap(%g, %g): %w", target, gap, err)
	}
	if err = s.probe(n, pred); err != nil {
		return Params{}, fmt.Errorf("FindGap(%g, %g): %w", target, gap, err)
	}
	p, err := GapParams(n, gap)
	if err != nil {
		return Params{}, err
	}
	s.log.Info("Found gap parameters", "target", target, "gap", gap, "n", p.N, "r", p.R, "w", p.W)

	return p, nil
}

// FindGap runs a one-off Session.FindGap.
func FindGap(target, gap float64, opts ...Option) (Params, error) {
	s, err := NewSession(opts...)
	if err != nil {
		return Params{}, err
	}
	return s.FindGap(target, gap)
}
