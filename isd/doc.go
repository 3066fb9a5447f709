// SPDX-License-Identifier: MIT

// Package isd estimates the asymptotic cost of information-set decoding.
//
// Two models are provided, each a constrained minimisation over a few
// fractions of the code length:
//
//   - Classical: BJMM (Becker–Joux–May–Meurer 2012, Eq. (5) ff.). Variables
//     (P, L, E1, E2); objective max(S1,S2,S3,EC1,EC2,EC3) − Pcorr, the
//     bottleneck among the six merge/collision stages net of the
//     permutation-success correction; twelve inequality constraints.
//
//   - Quantum: MMTQW (Kachigar–Tillich 2017, Thm. 4). Variables (p, dp, l);
//     objective (β + γ)/2; six inequalities and one equality tying dp to the
//     quantum-walk stationarity condition.
//
// AlphaBJMM and AlphaMMTQW return the exponent α (decoding costs 2^(α·n))
// as an Estimate tagged Converged or DidNotConverge. SecurityLevel scales
// α to bits for a concrete (n, r, w).
//
// Failure policy:
//   - Inputs outside the model's domain fail with ErrInvalidDomain.
//   - An infeasible initial guess is handled per Options.GuessPolicy:
//     reported and kept (default), repaired, or rejected with
//     ErrInfeasibleInitialGuess.
//   - Non-convergence is never an error here: the best value found is
//     returned with Status == DidNotConverge; Estimate.Err converts the tag.
//
// All functions are pure; concurrent calls share no state.
package isd
