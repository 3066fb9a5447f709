// SPDX-License-Identifier: MIT

package isd

import (
	"fmt"
	"strings"
)

// Variant selects the decoding-cost model.
type Variant int

const (
	// Classical is the BJMM model.
	Classical Variant = iota

	// Quantum is the MMTQW model.
	Quantum
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Classical:
		return "classical"
	case Quantum:
		return "quantum"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "classical"/"bjmm" and "quantum"/"mmtqw" (any case).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classical", "bjmm":
		return Classical, nil
	case "quantum", "mmtqw":
		return Quantum, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
}

// Status tags an Estimate with the optimizer's termination state.
type Status int

const (
	// Converged: feasible and stationary within tolerance.
	Converged Status = iota

	// DidNotConverge: iteration cap reached or no feasible iterate found;
	// Alpha is the best value seen.
	DidNotConverge
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Converged {
		return "converged"
	}
	return "did not converge"
}

// Estimate is the result of one exponent computation.
type Estimate struct {
	Variant Variant

	// Alpha is the minimal objective value: decoding costs 2^(Alpha·n).
	Alpha  float64
	Status Status

	// X is the optimization vector at termination, in model order
	// (P, L, E1, E2) or (p, dp, l); Violation is its largest constraint
	// violation.
	X         []float64
	Violation float64

	// Infeasible lists the constraint indices the initial guess violated,
	// nil if it was feasible. Repaired is set when GuessRepair replaced it.
	Infeasible []int
	Repaired   bool

	// Outer and Evaluations are optimizer counters.
	Outer       int
	Evaluations int
}

// Err converts the tags into sentinel errors: ErrDidNotConverge first, then
// ErrInfeasibleInitialGuess for an unrepaired infeasible seed; nil otherwise.
func (e Estimate) Err() error {
	if e.Status == DidNotConverge {
		return fmt.Errorf("%s alpha=%g: %w", e.Variant, e.Alpha, ErrDidNotConverge)
	}
	if len(e.Infeasible) > 0 && !e.Repaired {
		return fmt.Errorf("%s constraints %v: %w", e.Variant, e.Infeasible, ErrInfeasibleInitialGuess)
	}

	return nil
}

// Level is a security estimate in bits for a concrete (n, r, w).
type Level struct {
	N, R, W  int
	Bits     float64
	Estimate Estimate
}

// Normalized holds code parameters as fractions of the length: K = k/n is
// the rate (for Quantum it plays the role of R) and W = w/n the relative
// error weight.
type Normalized struct {
	K, W float64
}

// Normalize maps a concrete (n, r, w) to K = (n−r)/n, W = w/n.
// Requires 0 < r < n and 0 ≤ w < n.
func Normalize(n, r, w int) (Normalized, error) {
	if n <= 0 || r <= 0 || r >= n || w < 0 || w >= n {
		return Normalized{}, fmt.Errorf("Normalize(n=%d, r=%d, w=%d): %w", n, r, w, ErrInvalidDomain)
	}
	fn := float64(n)

	return Normalized{K: float64(n-r) / fn, W: float64(w) / fn}, nil
}
