// SPDX-License-Identifier: MIT

package isd

import "errors"

var (
	// ErrInvalidDomain reports parameters outside the model: K ∉ (0,1),
	// W ∉ [0,1), or (n, r, w) violating 0 < r < n, 0 ≤ w < n.
	ErrInvalidDomain = errors.New("isd: parameters outside valid domain")

	// ErrInfeasibleInitialGuess reports a seed point violating constraints.
	// Returned as an error only under GuessReject; otherwise it is carried
	// in Estimate.Infeasible and surfaced by Estimate.Err.
	ErrInfeasibleInitialGuess = errors.New("isd: initial guess violates constraints")

	// ErrDidNotConverge is the error form of Status DidNotConverge.
	ErrDidNotConverge = errors.New("isd: optimization did not converge")

	// ErrBadGuess reports an initial guess of the wrong dimension or with
	// non-finite coordinates.
	ErrBadGuess = errors.New("isd: malformed initial guess")

	// ErrBadOption reports negative or non-finite solver settings.
	ErrBadOption = errors.New("isd: invalid option")

	// ErrUnknownVariant reports a Variant that is neither Classical nor Quantum.
	ErrUnknownVariant = errors.New("isd: unknown variant")
)
