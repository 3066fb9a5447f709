// SPDX-License-Identifier: MIT

// Package entropy provides the two combinatorial primitives every other
// isdsec package is built on:
//
//   - BinaryEntropy: base-2 Shannon entropy H(x) of a Bernoulli(x) variable,
//     clamped to 0 outside the open interval (0,1).
//
//   - Binomial / BinomialBig: binomial coefficients C(n,k), either as a
//     float64 computed with real division at every step, or exactly as a
//     *big.Int. gvbound keeps its own incremental recurrence and is checked
//     against BinomialBig prefix sums in its tests.
//
// The asymptotic ISD cost formulas are sums of terms of the form
// a·H(b/a); evaluating them at the edges of the feasible region produces
// arguments such as 0/0 or b/a ≥ 1. BinaryEntropy absorbs those cases and
// always returns a finite value, so the objective functions built on top of
// it never see NaN.
package entropy
