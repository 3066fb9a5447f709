// SPDX-License-Identifier: MIT

package isd

import (
	"fmt"

	"github.com/katalvlaran/isdsec/nlp"
)

// repairHalvings bounds the GuessRepair shrink sequence 1, 1/2, 1/4, ….
const repairHalvings = 40

// AlphaBJMM returns the classical BJMM exponent at normalized dimension
// K = k/n and weight W = w/n.
//
// Contracts:
//   - K ∈ (0,1), W ∈ [0,1); otherwise ErrInvalidDomain.
//   - opts.InitialGuess, if set, has length BJMMDimension.
//   - The result is never worse than the objective at a feasible guess.
//   - Non-convergence yields Status DidNotConverge and a nil error.
func AlphaBJMM(K, W float64, opts Options) (Estimate, error) {
	return Alpha(Classical, K, W, opts)
}

// AlphaMMTQW returns the quantum MMTQW exponent at rate R = k/n and W = w/n.
// Contracts mirror AlphaBJMM with MMTQWDimension coordinates.
func AlphaMMTQW(R, W float64, opts Options) (Estimate, error) {
	return Alpha(Quantum, R, W, opts)
}

// Alpha dispatches on v.
//
// Stage 1: validate (K, W) and options, pick the guess.
// Stage 2: check the guess against the inequalities; apply GuessPolicy.
// Stage 3: solve with nlp.Minimize and tag the result.
func Alpha(v Variant, K, W float64, opts Options) (Estimate, error) {
	est := Estimate{Variant: v}

	// Stage 1
	problem, guess, err := Model(v, K, W)
	if err != nil {
		return est, err
	}
	if err = opts.normalize(); err != nil {
		return est, err
	}
	if opts.InitialGuess != nil {
		guess = append([]float64(nil), opts.InitialGuess...)
	}
	if err = checkGuessShape(v, guess); err != nil {
		return est, err
	}

	// Stage 2
	checked := problem.Constraints[:checkedConstraints(v)]
	est.Infeasible = nlp.Violated(checked, guess, 0)
	if est.Infeasible != nil {
		switch opts.GuessPolicy {
		case GuessReject:
			return est, fmt.Errorf("%s K=%g W=%g guess %v violates %v: %w", v, K, W, guess, est.Infeasible, ErrInfeasibleInitialGuess)
		case GuessRepair:
			guess = repair(checked, guess)
			est.Repaired = true
			opts.Logger.Debug("Repaired initial guess", "variant", v, "K", K, "W", W, "guess", guess)
		default:
			opts.Logger.Warn("Initial guess violates constraints", "variant", v, "K", K, "W", W,
				"violated", constraintNames(checked, est.Infeasible))
		}
	}

	// Stage 3
	res, err := nlp.Minimize(problem, guess, opts.solverOptions(v))
	if err != nil {
		return est, fmt.Errorf("%s K=%g W=%g: %w", v, K, W, err)
	}
	est.Alpha = res.F
	est.X = res.X
	est.Violation = res.Violation
	est.Outer = res.Outer
	est.Evaluations = res.Evaluations
	if res.Status == nlp.Converged {
		est.Status = Converged
	} else {
		est.Status = DidNotConverge
		opts.Logger.Warn("Optimization did not converge", "variant", v, "K", K, "W", W,
			"alpha", res.F, "x", res.X, "violation", res.Violation, "reason", res.Status)
	}

	return est, nil
}

// repair scales guess toward the origin by successive halvings and returns
// the first feasible point, or the origin itself.
func repair(cs []nlp.Constraint, guess []float64) []float64 {
	var (
		x     = make([]float64, len(guess))
		scale = 1.0
		i, j  int
	)
	for i = 0; i < repairHalvings; i++ {
		scale /= 2
		for j = range guess {
			x[j] = guess[j] * scale
		}
		if nlp.Violated(cs, x, 0) == nil {
			return x
		}
	}
	for j = range x {
		x[j] = 0
	}

	return x
}

func constraintNames(cs []nlp.Constraint, idx []int) []string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = cs[k].Name
	}
	return out
}
