// SPDX-License-Identifier: MIT

package isd

import (
	"github.com/katalvlaran/isdsec/entropy"
	"github.com/katalvlaran/isdsec/nlp"
)

// BJMMDimension is the length of the BJMM optimization vector (P, L, E1, E2).
const BJMMDimension = 4

// BJMMGuess is the default BJMM initial point (P, L, E1, E2).
var BJMMGuess = [BJMMDimension]float64{0.05, 0.25, 0.02, 0.01}

// BJMM constraint indices, in the order Model returns them.
const (
	BJMMPNonNeg = iota
	BJMMLNonNeg
	BJMME1NonNeg
	BJMME2NonNeg
	BJMMLBelowRedundancy          // 1 − K − L ≥ 0
	BJMMWindowFitsRedundancy      // 1 − K − W − P − L ≥ 0
	BJMMPBelowW                   // W − P ≥ 0
	BJMMPFitsWindow               // K + L − P ≥ 0
	BJMMPE1FitsWindow             // K + L − P − E1 ≥ 0
	BJMMSecondLevelFitsWindow     // K + L − P/2 − E1 − E2 ≥ 0
	BJMMRepresentationsDecreasing // r1 − r2 ≥ 0
	BJMMRepresentationsBelowL     // L − r1 ≥ 0

	bjmmConstraintCount
)

// bjmmTerms holds the intermediate quantities of one BJMM evaluation.
type bjmmTerms struct {
	r1, r2        float64
	s1, s2, s3    float64
	ec1, ec2, ec3 float64
	pcorr         float64
}

// evalBJMM computes every BJMM term at x = (P, L, E1, E2).
func evalBJMM(K, W float64, x []float64) bjmmTerms {
	var (
		H             = entropy.BinaryEntropy
		P, L, E1, E2  = x[0], x[1], x[2], x[3]
		window        = K + L
		first, second float64
		t             bjmmTerms
	)
	first = window - P
	second = window - P/2 - E1

	// H(1/2) == 1: P/2 coordinates on either side.
	t.r1 = P + first*H(E1/first)
	t.r2 = (P/2 + E1) + second*H(E2/second)

	t.s1 = window*H((P/2+E1)/window) - t.r1
	t.s2 = window*H((P/4+E1/2+E2)/window) - t.r2
	t.s3 = window / 2 * H((P/4+E1/2+E2)/window)

	t.ec1 = 2*t.s1 + t.r1 - L
	t.ec2 = 2*t.s2 + t.r2 - t.r1
	t.ec3 = 2*t.s3 - t.r2

	t.pcorr = window*H(P/window) + (1-window)*H((W-P)/(1-window)) - H(W)

	return t
}

// objective is the bottleneck stage exponent minus the permutation
// correction.
func (t bjmmTerms) objective() float64 {
	return max(t.s1, t.s2, t.s3, t.ec1, t.ec2, t.ec3) - t.pcorr
}

// bjmmProblem assembles the BJMM program for normalized (K, W).
func bjmmProblem(K, W float64) nlp.Problem {
	cs := make([]nlp.Constraint, 0, bjmmConstraintCount)
	cs = append(cs,
		linear("P >= 0", 0, 1, 0, 0, 0),
		linear("L >= 0", 0, 0, 1, 0, 0),
		linear("E1 >= 0", 0, 0, 0, 1, 0),
		linear("E2 >= 0", 0, 0, 0, 0, 1),
		linear("L <= 1-K", 1-K, 0, -1, 0, 0),
		linear("P+L <= 1-K-W", 1-K-W, -1, -1, 0, 0),
		linear("P <= W", W, -1, 0, 0, 0),
		linear("P <= K+L", K, -1, 1, 0, 0),
		linear("P+E1 <= K+L", K, -1, 1, -1, 0),
		linear("P/2+E1+E2 <= K+L", K, -0.5, 1, -1, -1),
		nlp.Constraint{
			Name: "r2 <= r1",
			Kind: nlp.Inequality,
			Eval: func(x []float64) float64 {
				t := evalBJMM(K, W, x)
				return t.r1 - t.r2
			},
		},
		nlp.Constraint{
			Name: "r1 <= L",
			Kind: nlp.Inequality,
			Eval: func(x []float64) float64 { return x[1] - evalBJMM(K, W, x).r1 },
		},
	)

	return nlp.Problem{
		Objective:   func(x []float64) float64 { return evalBJMM(K, W, x).objective() },
		Constraints: cs,
	}
}

// linear builds the inequality c0 + a·x ≥ 0 with its constant gradient.
func linear(name string, c0 float64, a ...float64) nlp.Constraint {
	return nlp.Constraint{
		Name: name,
		Kind: nlp.Inequality,
		Eval: func(x []float64) float64 {
			v := c0
			for i := range a {
				v += a[i] * x[i]
			}
			return v
		},
		Grad: func(grad, _ []float64) { copy(grad, a) },
	}
}
