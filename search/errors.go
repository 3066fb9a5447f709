// SPDX-License-Identifier: MIT

package search

import "errors"

var (
	// ErrDidNotConverge is returned in strict mode when an estimate on the
	// search path did not converge.
	ErrDidNotConverge = errors.New("search: estimate did not converge")

	// ErrNonMonotone reports that the monotonicity probe found a length above
	// the result whose predicate fails.
	ErrNonMonotone = errors.New("search: security predicate not monotone in n")

	// ErrNoFeasibleLength reports that doubling passed the maximum length
	// without reaching the target.
	ErrNoFeasibleLength = errors.New("search: no length within bound reaches target")

	// ErrInvalidTarget reports a NaN or infinite target or gap.
	ErrInvalidTarget = errors.New("search: invalid target")

	// ErrUnknownMode reports a Query with an unsupported Mode.
	ErrUnknownMode = errors.New("search: unknown query mode")
)
