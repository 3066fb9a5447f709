// SPDX-License-Identifier: MIT

package nlp

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/log"
)

// Method selects the inner unconstrained solver.
type Method int

const (
	// NelderMead is derivative-free; default.
	NelderMead Method = iota

	// BFGS uses gradients: analytic for constraints that provide Grad,
	// central finite differences for the objective and the rest.
	BFGS
)

// Defaults.
const (
	DefaultTolerance            = 1e-12
	DefaultMaxIterations        = 1000
	DefaultMaxOuterIterations   = 60
	DefaultFeasibilityTolerance = 1e-7
	DefaultInitialPenalty       = 10.0
	DefaultPenaltyGrowth        = 10.0
	DefaultMaxPenalty           = 1e12
	DefaultInitialStep          = 0.05

	// minStep bounds the Nelder–Mead restart simplex from below.
	minStep = 1e-6

	// stallIterations is the FunctionConverge window of the inner solver.
	stallIterations = 25
)

// Options configures Minimize. Zero-valued numeric fields are replaced by
// the defaults above; negative or non-finite values are rejected.
//
//   - Tolerance: inner function-convergence threshold; the outer loop uses
//     √Tolerance for stationarity between rounds.
//   - MaxIterations: major-iteration cap of each inner solve.
//   - MaxOuterIterations: augmented-Lagrangian rounds.
//   - FeasibilityTolerance: max violation accepted as feasible.
//   - InitialPenalty, PenaltyGrowth, MaxPenalty: μ schedule.
//   - InitialStep: Nelder–Mead simplex size; halved every round.
//   - Verbose: Debug records per round on Logger.
//   - Logger: nil ⇒ package logger (child of the go-ethereum root logger).
type Options struct {
	Tolerance            float64
	MaxIterations        int
	MaxOuterIterations   int
	FeasibilityTolerance float64
	InitialPenalty       float64
	PenaltyGrowth        float64
	MaxPenalty           float64
	InitialStep          float64
	Method               Method
	Verbose              bool
	Logger               log.Logger
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:            DefaultTolerance,
		MaxIterations:        DefaultMaxIterations,
		MaxOuterIterations:   DefaultMaxOuterIterations,
		FeasibilityTolerance: DefaultFeasibilityTolerance,
		InitialPenalty:       DefaultInitialPenalty,
		PenaltyGrowth:        DefaultPenaltyGrowth,
		MaxPenalty:           DefaultMaxPenalty,
		InitialStep:          DefaultInitialStep,
		Method:               NelderMead,
	}
}

// normalize fills zero fields with defaults and validates the rest.
func (o *Options) normalize() error {
	var (
		floats = []struct {
			name string
			v    *float64
			def  float64
		}{
			{"Tolerance", &o.Tolerance, DefaultTolerance},
			{"FeasibilityTolerance", &o.FeasibilityTolerance, DefaultFeasibilityTolerance},
			{"InitialPenalty", &o.InitialPenalty, DefaultInitialPenalty},
			{"PenaltyGrowth", &o.PenaltyGrowth, DefaultPenaltyGrowth},
			{"MaxPenalty", &o.MaxPenalty, DefaultMaxPenalty},
			{"InitialStep", &o.InitialStep, DefaultInitialStep},
		}
		i int
	)
	for i = range floats {
		f := floats[i]
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) || *f.v < 0 {
			return fmt.Errorf("%s=%g: %w", f.name, *f.v, ErrBadOption)
		}
		if *f.v == 0 {
			*f.v = f.def
		}
	}
	if o.PenaltyGrowth <= 1 {
		return fmt.Errorf("PenaltyGrowth=%g must exceed 1: %w", o.PenaltyGrowth, ErrBadOption)
	}
	if o.MaxIterations < 0 || o.MaxOuterIterations < 0 {
		return fmt.Errorf("iteration caps must be non-negative: %w", ErrBadOption)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxOuterIterations == 0 {
		o.MaxOuterIterations = DefaultMaxOuterIterations
	}
	if o.Method != NelderMead && o.Method != BFGS {
		return fmt.Errorf("Method=%d: %w", int(o.Method), ErrBadOption)
	}
	if o.Logger == nil {
		o.Logger = log.New("pkg", "nlp")
	}

	return nil
}
