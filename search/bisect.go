// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"
)

// predicate reports whether length n reaches the target.
type predicate func(n int) (bool, error)

// minimalLength returns the least n in (lower, upper] with pred(n) true after
// doubling upper until pred(upper) holds.
//
// Stage 1: doubling. lower ← upper, upper ← 2·upper while pred(upper) fails.
// Stage 2: bisection while upper > lower+1.
//
// Complexity: O(log n) predicate evaluations per stage.
func (s *Session) minimalLength(pred predicate) (int, error) {
	var (
		lower, upper = DefaultLower, DefaultUpper
		ok           bool
		err          error
	)

	// Stage 1
	for {
		if ok, err = pred(upper); err != nil {
			return 0, err
		}
		if ok {
			break
		}
		if upper > s.cfg.maxLength/2 {
			return 0, fmt.Errorf("n > %d: %w", s.cfg.maxLength, ErrNoFeasibleLength)
		}
		lower, upper = upper, 2*upper
	}

	// Stage 2
	for upper > lower+1 {
		mid := lower + (upper-lower)/2
		if ok, err = pred(mid); err != nil {
			return 0, err
		}
		if ok {
			upper = mid
		} else {
			lower = mid
		}
	}

	return upper, nil
}

// probe checks pred on n+1..n+k.
func (s *Session) probe(n int, pred predicate) error {
	for i := 1; i <= s.cfg.probe; i++ {
		ok, err := pred(n + i)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("result n=%d but n=%d fails: %w", n, n+i, ErrNonMonotone)
		}
	}

	return nil
}

// checkTarget rejects NaN and infinite search inputs.
func checkTarget(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrInvalidTarget)
	}
	return nil
}
