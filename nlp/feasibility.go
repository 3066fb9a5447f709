// SPDX-License-Identifier: MIT

package nlp

import "math"

// Violated returns the indices of constraints not satisfied at x within tol:
// inequalities with Eval(x) < −tol and equalities with |Eval(x)| > tol.
// The result is nil when x is feasible. Indices follow the order of cs.
//
// Complexity: O(len(cs)) constraint evaluations.
func Violated(cs []Constraint, x []float64, tol float64) []int {
	var (
		out []int
		i   int
		v   float64
	)
	for i = range cs {
		v = cs[i].Eval(x)
		switch cs[i].Kind {
		case Equality:
			if !(math.Abs(v) <= tol) {
				out = append(out, i)
			}
		default:
			if !(v >= -tol) {
				out = append(out, i)
			}
		}
	}

	return out
}

// violation returns max(max_ineq −g, max_eq |h|, 0); NaN is reported as +Inf.
func violation(cs []Constraint, x []float64) float64 {
	var (
		worst float64
		v     float64
		i     int
	)
	for i = range cs {
		v = cs[i].Eval(x)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		if cs[i].Kind == Equality {
			v = math.Abs(v)
		} else {
			v = -v
		}
		if v > worst {
			worst = v
		}
	}

	return worst
}

func validate(p Problem, x0 []float64) error {
	if p.Objective == nil {
		return ErrNoObjective
	}
	if len(x0) == 0 {
		return ErrDimension
	}
	var i int
	for i = range p.Constraints {
		c := p.Constraints[i]
		if c.Eval == nil || (c.Kind != Inequality && c.Kind != Equality) {
			return ErrBadConstraint
		}
	}

	return nil
}
