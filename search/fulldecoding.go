// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/isdsec/gvbound"
)

// FullDecodingParams returns the triple the full-decoding search evaluates
// at length n: r = n/2, w = GV(n, r) − 1.
func FullDecodingParams(n int) (Params, error) {
	r := n / 2
	d, err := gvbound.Distance(n, r)
	if err != nil {
		return Params{}, err
	}

	return Params{N: n, R: r, W: d - 1}, nil
}

// FindFullDecoding returns the shortest (n, n/2, GV−1) whose security level
// reaches target bits.
func (s *Session) FindFullDecoding(target float64) (Params, error) {
	if err := checkTarget("target", target); err != nil {
		return Params{}, err
	}
	pred := func(n int) (bool, error) {
		p, err := FullDecodingParams(n)
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
		return Params{}, fmt.Errorf("FindFullDecoding(%g): %w", target, err)
	}
	if err = s.probe(n, pred); err != nil {
		return Params{}, fmt.Errorf("FindFullDecoding(%g): %w", target, err)
	}
	p, err := FullDecodingParams(n)
	if err != nil {
		return Params{}, err
	}
	s.log.Info("Found full-decoding parameters", "target", target, "n", p.N, "r", p.R, "w", p.W)

	return p, nil
}

// FindFullDecoding runs a one-off Session.FindFullDecoding.
func FindFullDecoding(target float64, opts ...Option) (Params, error) {
	s, err := NewSession(opts...)
	if err != nil {
		return Params{}, err
	}
	return s.FindFullDecoding(target)
}
