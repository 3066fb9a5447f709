// SPDX-License-Identifier: MIT

package nlp

import "errors"

var (
	// ErrNoObjective is returned when Problem.Objective is nil.
	ErrNoObjective = errors.New("nlp: nil objective")

	// ErrDimension is returned for an empty start vector.
	ErrDimension = errors.New("nlp: start vector must be non-empty")

	// ErrBadConstraint is returned when a constraint has no Eval function or
	// an unknown Kind.
	ErrBadConstraint = errors.New("nlp: malformed constraint")

	// ErrBadOption is returned when Options carries a negative or non-finite
	// numeric setting, or an unknown Method.
	ErrBadOption = errors.New("nlp: invalid option")
)
