// SPDX-License-Identifier: MIT

// Package nlp minimises a scalar function of a small real vector subject to
// inequality (g(x) ≥ 0) and equality (h(x) = 0) constraints.
//
// Method:
//
//   - Outer loop: Powell–Hestenes–Rockafellar augmented Lagrangian. Each
//     round minimises
//
//     L(x) = f(x) + Σ_ineq [max(0, λᵢ − μ·gᵢ(x))² − λᵢ²]/(2μ)
//     + Σ_eq  [λⱼ·hⱼ(x) + μ·hⱼ(x)²/2]
//
//     then updates λᵢ ← max(0, λᵢ − μ·gᵢ), λⱼ ← λⱼ + μ·hⱼ and raises μ when
//     the constraint violation did not shrink by 4×.
//
//   - Inner loop: gonum optimize.Minimize, Nelder–Mead by default (the ISD
//     objectives are maxima of smooth terms, so derivative-free is the safe
//     default) or BFGS, fed by analytic constraint gradients where a
//     Constraint carries one and central finite differences elsewhere.
//
// Termination: Converged when the iterate is feasible within
// FeasibilityTolerance and two successive outer optima agree within
// √Tolerance (relative); IterationLimit when MaxOuterIterations rounds pass
// first; Infeasible when no iterate was ever feasible. The best feasible
// iterate seen (the start point included) is what Result reports.
//
// Determinism: no randomness and no concurrency; identical inputs give
// identical Results.
package nlp
