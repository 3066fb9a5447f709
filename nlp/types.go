// SPDX-License-Identifier: MIT

package nlp

import "fmt"

// Kind distinguishes inequality from equality constraints.
type Kind int

const (
	// Inequality constraints hold when Eval(x) ≥ 0.
	Inequality Kind = iota

	// Equality constraints hold when Eval(x) == 0.
	Equality
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Inequality:
		return "ineq"
	case Equality:
		return "eq"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Constraint is one feasibility condition over the optimisation vector.
// Eval must be pure: it may not retain or modify x.
type Constraint struct {
	// Name is used in diagnostics only.
	Name string
	Kind Kind
	Eval func(x []float64) float64
	// Grad, when non-nil, writes ∇Eval(x) into grad (len(grad) == len(x)).
	// Used by the BFGS inner method only.
	Grad func(grad, x []float64)
}

// Problem couples an objective with its constraints.
type Problem struct {
	Objective   func(x []float64) float64
	Constraints []Constraint
}

// Status reports how Minimize terminated.
type Status int

const (
	// Converged: feasible and stationary within the configured tolerances.
	Converged Status = iota

	// IterationLimit: MaxOuterIterations reached before convergence; the
	// best feasible iterate is still reported.
	IterationLimit

	// Infeasible: no iterate ever satisfied FeasibilityTolerance; X is the
	// last iterate.
	Infeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	case Infeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of Minimize.
type Result struct {
	// X is the reported minimiser; F = Objective(X) (unpenalised).
	X []float64
	F float64

	// Violation is the largest constraint violation at X:
	// max(max_ineq −g, max_eq |h|, 0).
	Violation float64

	Status Status

	// Outer counts augmented-Lagrangian rounds; MajorIterations and
	// Evaluations accumulate over all inner solves; InnerLimitHits counts
	// inner solves that stopped on MaxIterations.
	Outer           int
	MajorIterations int
	Evaluations     int
	InnerLimitHits  int
}
