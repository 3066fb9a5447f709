// SPDX-License-Identifier: MIT

package isd

import (
	"math"

	"github.com/katalvlaran/isdsec/entropy"
	"github.com/katalvlaran/isdsec/nlp"
)

// MMTQWDimension is the length of the MMTQW optimization vector (p, dp, l).
const MMTQWDimension = 3

// MMTQW constraint indices, in the order Model returns them. The first
// MMTQWInequalities entries are inequalities; MMTQWStationarity is the
// single equality.
const (
	MMTQWDpNonNeg = iota
	MMTQWPNonNeg
	MMTQWLNonNeg
	MMTQWWindowFits     // R + l − p − dp ≥ 0
	MMTQWPBelowMin      // min(W, R+l) − p ≥ 0
	MMTQWErrorsFitOuter // 1 − R − W + p − l ≥ 0
	MMTQWStationarity   // H((p/2+dp)/(R+l)) − 5l/(4(R+l)) = 0

	// MMTQWInequalities counts the inequality constraints.
	MMTQWInequalities = MMTQWStationarity
)

// mmtqwBeta is the quantum-walk cost term β(R, l, p, dp).
func mmtqwBeta(R, l, p, dp float64) float64 {
	H := entropy.BinaryEntropy
	return 6.0/5.0*(R+l)*H((p/2+dp)/(R+l)) - p - (1-R-l)*H(dp/(1-R-l))
}

// mmtqwGamma is the permutation-success exponent γ(R, l, p, W).
func mmtqwGamma(R, l, p, W float64) float64 {
	H := entropy.BinaryEntropy
	return H(W) - (1-R-l)*H((W-p)/(1-R-l)) - (R+l)*H(p/(R+l))
}

// mmtqwGuess derives the default starting point from (R, W).
func mmtqwGuess(R, W float64) []float64 {
	p := W / 2
	l := (1 - R - W + p) / 2
	dp := (R + l - p) / 10

	return []float64{p, dp, l}
}

// mmtqwProblem assembles the MMTQW program for normalized (R, W); x = (p, dp, l).
func mmtqwProblem(R, W float64) nlp.Problem {
	return nlp.Problem{
		Objective: func(x []float64) float64 {
			p, dp, l := x[0], x[1], x[2]
			return (mmtqwBeta(R, l, p, dp) + mmtqwGamma(R, l, p, W)) / 2
		},
		Constraints: []nlp.Constraint{
			linear("dp >= 0", 0, 0, 1, 0),
			linear("p >= 0", 0, 1, 0, 0),
			linear("l >= 0", 0, 0, 0, 1),
			linear("p+dp <= R+l", R, -1, -1, 1),
			{
				Name: "p <= min(W, R+l)",
				Kind: nlp.Inequality,
				Eval: func(x []float64) float64 { return math.Min(W, R+x[2]) - x[0] },
			},
			linear("l <= 1-R-W+p", 1-R-W, 1, 0, -1),
			{
				Name: "walk stationarity",
				Kind: nlp.Equality,
				Eval: func(x []float64) float64 {
					p, dp, l := x[0], x[1], x[2]
					return entropy.BinaryEntropy((p/2+dp)/(R+l)) - 5*l/(4*(R+l))
				},
			},
		},
	}
}
