// SPDX-License-Identifier: MIT

package isd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isdsec/nlp"
)

// Model returns the constrained program of variant v at normalized (K, W)
// together with its default initial guess. For Quantum, K is the rate R.
// Constraint order matches the BJMM*/MMTQW* index constants.
func Model(v Variant, K, W float64) (nlp.Problem, []float64, error) {
	if err := checkNormalized(K, W); err != nil {
		return nlp.Problem{}, nil, err
	}
	switch v {
	case Classical:
		g := BJMMGuess
		return bjmmProblem(K, W), g[:], nil
	case Quantum:
		return mmtqwProblem(K, W), mmtqwGuess(K, W), nil
	default:
		return nlp.Problem{}, nil, fmt.Errorf("Model(%d): %w", int(v), ErrUnknownVariant)
	}
}

// CheckGuess reports the constraint indices that guess violates for variant
// v at (K, W); nil means feasible. Classical checks all twelve inequalities
// exactly (tolerance 0). Quantum checks its six inequalities only: the
// stationarity equality is enforced by the optimizer and no closed-form
// guess satisfies it.
func CheckGuess(v Variant, K, W float64, guess []float64) ([]int, error) {
	p, _, err := Model(v, K, W)
	if err != nil {
		return nil, err
	}
	if err = checkGuessShape(v, guess); err != nil {
		return nil, err
	}

	return nlp.Violated(p.Constraints[:checkedConstraints(v)], guess, 0), nil
}

// checkNormalized enforces K ∈ (0,1), W ∈ [0,1).
func checkNormalized(K, W float64) error {
	if !(K > 0 && K < 1) || !(W >= 0 && W < 1) {
		return fmt.Errorf("K=%g W=%g: %w", K, W, ErrInvalidDomain)
	}

	return nil
}

func checkGuessShape(v Variant, guess []float64) error {
	want := BJMMDimension
	if v == Quantum {
		want = MMTQWDimension
	}
	if len(guess) != want {
		return fmt.Errorf("%s guess has %d coordinates, want %d: %w", v, len(guess), want, ErrBadGuess)
	}
	for i := range guess {
		if math.IsNaN(guess[i]) || math.IsInf(guess[i], 0) {
			return fmt.Errorf("%s guess[%d]=%g: %w", v, i, guess[i], ErrBadGuess)
		}
	}

	return nil
}

func checkedConstraints(v Variant) int {
	if v == Quantum {
		return MMTQWInequalities
	}
	return bjmmConstraintCount
}
