// SPDX-License-Identifier: MIT

package nlp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Minimize runs the augmented-Lagrangian method from x0.
//
// Contracts:
//   - p.Objective non-nil, len(x0) > 0, every constraint has Eval.
//   - x0 need not be feasible; use Violated to check it beforehand.
//   - x0 is not modified.
//
// Errors: ErrNoObjective, ErrDimension, ErrBadConstraint, ErrBadOption, or an
// inner-solver failure that produced no location at all. Non-convergence is
// NOT an error: it is reported through Result.Status.
//
// Complexity: O(MaxOuterIterations · MaxIterations · (d+1)) objective and
// constraint evaluations in the worst case, d = len(x0).
func Minimize(p Problem, x0 []float64, opts Options) (Result, error) {
	// Stage 1: validate input and options.
	if err := validate(p, x0); err != nil {
		return Result{}, err
	}
	if err := opts.normalize(); err != nil {
		return Result{}, err
	}

	var (
		cs      = p.Constraints
		x       = append([]float64(nil), x0...)
		lambda  = make([]float64, len(cs))
		mu      = opts.InitialPenalty
		step    = opts.InitialStep
		outerTo = math.Sqrt(opts.Tolerance)
		res     Result
	)

	// Stage 2: seed the best-feasible record with the start point.
	var (
		best      []float64
		bestF     = math.Inf(1)
		bestViol  float64
		f         = p.Objective(x)
		viol      = violation(cs, x)
		prevF     = math.Inf(1)
		prevViol  = viol
		converged bool
	)
	res.Evaluations++
	if viol <= opts.FeasibilityTolerance {
		best, bestF, bestViol = append([]float64(nil), x...), f, viol
	}

	// Stage 3: augmented-Lagrangian rounds.
	for res.Outer = 0; res.Outer < opts.MaxOuterIterations; {
		merit := func(y []float64) float64 {
			res.Evaluations++
			return augmented(p, y, lambda, mu)
		}

		inner, err := solveInner(merit, cs, lambda, mu, p.Objective, x, step, opts)
		if err != nil {
			return Result{}, err
		}
		res.Outer++
		res.MajorIterations += inner.major
		if inner.limit {
			res.InnerLimitHits++
		}
		copy(x, inner.x)

		f = p.Objective(x)
		viol = violation(cs, x)
		if viol <= opts.FeasibilityTolerance && f < bestF {
			best, bestF, bestViol = append(best[:0], x...), f, viol
		}
		if opts.Verbose {
			opts.Logger.Debug("Augmented Lagrangian round", "round", res.Outer, "f", f,
				"violation", viol, "mu", mu, "major", inner.major, "innerLimit", inner.limit)
		}

		// Stationary and feasible: stop.
		if viol <= opts.FeasibilityTolerance && math.Abs(f-prevF) <= outerTo*(1+math.Abs(f)) {
			converged = true
			break
		}

		// Multiplier update (first-order PHR).
		var (
			i int
			g float64
		)
		for i = range cs {
			g = cs[i].Eval(x)
			if cs[i].Kind == Equality {
				lambda[i] += mu * g
			} else {
				lambda[i] = math.Max(0, lambda[i]-mu*g)
			}
		}

		// Penalty update when feasibility stalls.
		if viol > 0.25*prevViol {
			mu = math.Min(mu*opts.PenaltyGrowth, opts.MaxPenalty)
		}
		prevF, prevViol = f, viol
		step = math.Max(step*0.5, minStep)
	}

	// Stage 4: report.
	switch {
	case best == nil:
		res.X, res.F, res.Violation, res.Status = x, f, viol, Infeasible
	case converged:
		res.X, res.F, res.Violation, res.Status = best, bestF, bestViol, Converged
	default:
		res.X, res.F, res.Violation, res.Status = best, bestF, bestViol, IterationLimit
	}
	return res, nil
}

// augmented evaluates the PHR augmented Lagrangian at x.
func augmented(p Problem, x, lambda []float64, mu float64) float64 {
	var (
		val = p.Objective(x)
		i   int
		g   float64
		t   float64
	)
	for i = range p.Constraints {
		g = p.Constraints[i].Eval(x)
		if p.Constraints[i].Kind == Equality {
			val += lambda[i]*g + 0.5*mu*g*g
			continue
		}
		t = math.Max(0, lambda[i]-mu*g)
		val += (t*t - lambda[i]*lambda[i]) / (2 * mu)
	}
	if math.IsNaN(val) {
		return math.Inf(1)
	}

	return val
}

// innerResult is what one inner solve hands back to the outer loop.
type innerResult struct {
	x     []float64
	major int
	limit bool
}

// solveInner minimises merit from x with the configured gonum method.
func solveInner(
	merit func([]float64) float64,
	cs []Constraint,
	lambda []float64,
	mu float64,
	objective func([]float64) float64,
	x []float64,
	step float64,
	opts Options,
) (innerResult, error) {
	var (
		problem  = optimize.Problem{Func: merit}
		method   optimize.Method
		settings = &optimize.Settings{
			MajorIterations: opts.MaxIterations,
			Converger: &optimize.FunctionConverge{
				Absolute:   opts.Tolerance,
				Relative:   opts.Tolerance,
				Iterations: stallIterations,
			},
		}
	)
	switch opts.Method {
	case BFGS:
		problem.Grad = meritGradient(cs, lambda, mu, objective)
		method = &optimize.BFGS{}
	default:
		method = &optimize.NelderMead{SimplexSize: step}
	}

	result, err := optimize.Minimize(problem, x, settings, method)
	if result == nil {
		return innerResult{}, fmt.Errorf("nlp: inner %T: %w", method, err)
	}

	out := innerResult{x: result.X, major: result.Stats.MajorIterations}
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit:
		out.limit = true
	}
	if err != nil && !out.limit {
		// Line-search failures and the like still leave a usable best point.
		opts.Logger.Debug("Inner solver stopped early", "status", result.Status, "err", err)
		out.limit = true
	}
	if !finite(out.x) {
		out.x = x
	}

	return out, nil
}

// meritGradient builds ∇L: finite differences for the objective, analytic
// gradients for constraints that carry one, finite differences otherwise.
func meritGradient(cs []Constraint, lambda []float64, mu float64, objective func([]float64) float64) func(grad, x []float64) {
	settings := &fd.Settings{Formula: fd.Central}

	return func(grad, x []float64) {
		fd.Gradient(grad, objective, x, settings)

		var (
			gi   = make([]float64, len(x))
			i, j int
			g    float64
			coef float64
		)
		for i = range cs {
			g = cs[i].Eval(x)
			if cs[i].Kind == Equality {
				coef = lambda[i] + mu*g
			} else {
				t := lambda[i] - mu*g
				if t <= 0 {
					continue
				}
				coef = -t
			}
			if cs[i].Grad != nil {
				cs[i].Grad(gi, x)
			} else {
				fd.Gradient(gi, cs[i].Eval, x, settings)
			}
			for j = range grad {
				grad[j] += coef * gi[j]
			}
		}
	}
}

func finite(x []float64) bool {
	if len(x) == 0 {
		return false
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
