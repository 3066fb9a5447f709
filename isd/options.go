// SPDX-License-Identifier: MIT

package isd

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/log"

	"github.com/katalvlaran/isdsec/nlp"
)

// GuessPolicy decides what happens to an initial guess that violates
// constraints.
type GuessPolicy int

const (
	// GuessWarn logs the violated indices, records them in
	// Estimate.Infeasible and optimizes from the guess anyway.
	GuessWarn GuessPolicy = iota

	// GuessRepair shrinks the guess toward the origin (which is feasible for
	// both models whenever W ≤ 1−K) until it is feasible, then optimizes.
	GuessRepair

	// GuessReject fails with ErrInfeasibleInitialGuess.
	GuessReject
)

// Solver selects the inner nlp method.
type Solver int

const (
	// SolverAuto picks per variant: Nelder–Mead for the max-type BJMM
	// objective, BFGS for the smooth MMTQW objective, on which the simplex
	// stalls short of the minimum.
	SolverAuto Solver = iota

	// SolverNelderMead forces nlp.NelderMead.
	SolverNelderMead

	// SolverBFGS forces nlp.BFGS.
	SolverBFGS
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverAuto:
		return "auto"
	case SolverNelderMead:
		return "nelder-mead"
	case SolverBFGS:
		return "bfgs"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver is the inverse of Solver.String.
func ParseSolver(s string) (Solver, error) {
	for _, v := range []Solver{SolverAuto, SolverNelderMead, SolverBFGS} {
		if s == v.String() {
			return v, nil
		}
	}
	return 0, fmt.Errorf("solver %q: %w", s, ErrBadOption)
}

// method resolves s for variant v.
func (s Solver) method(v Variant) nlp.Method {
	switch s {
	case SolverNelderMead:
		return nlp.NelderMead
	case SolverBFGS:
		return nlp.BFGS
	}
	if v == Quantum {
		return nlp.BFGS
	}
	return nlp.NelderMead
}

// Defaults for Options.
const (
	DefaultTolerance     = 1e-12
	DefaultMaxIterations = 1000
)

// Options configures AlphaBJMM, AlphaMMTQW and SecurityLevel.
//
//   - Tolerance, MaxIterations: forwarded to nlp (inner convergence and
//     major-iteration cap of each inner solve); zero ⇒ default. The
//     augmented-Lagrangian loop runs up to nlp.DefaultMaxOuterIterations
//     inner solves, and DidNotConverge is reported when that outer cap is
//     reached.
//   - InitialGuess: overrides the model default; length 4 (BJMM) or 3 (MMTQW).
//   - GuessPolicy: see GuessWarn / GuessRepair / GuessReject.
//   - Method: inner nlp method; SolverAuto resolves per variant.
//   - Verbose: per-round Debug records; never changes results.
//   - Logger: nil ⇒ package logger.
type Options struct {
	Tolerance     float64
	MaxIterations int
	InitialGuess  []float64
	GuessPolicy   GuessPolicy
	Method        Solver
	Verbose       bool
	Logger        log.Logger
}

// DefaultOptions returns the reference configuration (tolerance 1e-12,
// 1000 iterations, model default guess, GuessWarn).
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		GuessPolicy:   GuessWarn,
		Method:        SolverAuto,
	}
}

// Fingerprint identifies the settings that influence numeric results;
// Verbose and Logger are excluded. Used to key memo caches.
func (o Options) Fingerprint() string {
	tol, iter := o.Tolerance, o.MaxIterations
	if tol == 0 {
		tol = DefaultTolerance
	}
	if iter == 0 {
		iter = DefaultMaxIterations
	}

	return fmt.Sprintf("tol=%g;iter=%d;method=%s;policy=%d;guess=%v", tol, iter, o.Method, int(o.GuessPolicy), o.InitialGuess)
}

func (o *Options) normalize() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return fmt.Errorf("Tolerance=%g: %w", o.Tolerance, ErrBadOption)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("MaxIterations=%d: %w", o.MaxIterations, ErrBadOption)
	}
	if o.Method < SolverAuto || o.Method > SolverBFGS {
		return fmt.Errorf("Method=%d: %w", int(o.Method), ErrBadOption)
	}
	if o.GuessPolicy < GuessWarn || o.GuessPolicy > GuessReject {
		return fmt.Errorf("GuessPolicy=%d: %w", int(o.GuessPolicy), ErrBadOption)
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = log.New("pkg", "isd")
	}

	return nil
}

// solverOptions maps Options onto nlp.Options for variant v.
func (o Options) solverOptions(v Variant) nlp.Options {
	so := nlp.DefaultOptions()
	so.Tolerance = o.Tolerance
	so.MaxIterations = o.MaxIterations
	so.Method = o.Method.method(v)
	so.Verbose = o.Verbose
	so.Logger = o.Logger

	return so
}
