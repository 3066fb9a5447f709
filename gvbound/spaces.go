// SPDX-License-Identifier: MIT

package gvbound

import (
	"fmt"
	"math"
)

// LeftSpaceBits returns log2 |F_2^r| = r, the size of the syndrome space.
func LeftSpaceBits(r int) float64 {
	return float64(r)
}

// RightSpaceBits returns the Stirling estimate of log2 C(n,w), the size of
// the set of weight-w vectors of F_2^n:
//
//	(n·ln n − w·ln w − (n−w)·ln(n−w)) / ln 2
//
// with 0·ln 0 taken as 0, so RightSpaceBits(n, 0) == RightSpaceBits(n, n) == 0.
//
// Errors: ErrInvalidDomain when n ≤ 0, w < 0 or w > n.
func RightSpaceBits(n, w int) (float64, error) {
	if n <= 0 || w < 0 || w > n {
		return 0, fmt.Errorf("RightSpaceBits(n=%d, w=%d): %w", n, w, ErrInvalidDomain)
	}

	return (xlnx(n) - xlnx(w) - xlnx(n-w)) / math.Ln2, nil
}

// GapBits returns LeftSpaceBits(r) − RightSpaceBits(n, w): how many bits the
// syndrome space is larger than the error space. A positive gap is the
// lossiness margin of s ↦ H·s.
//
// Errors: ErrInvalidDomain when r ≤ 0 or r ≥ n, or as RightSpaceBits.
func GapBits(n, r, w int) (float64, error) {
	if r <= 0 || r >= n {
		return 0, fmt.Errorf("GapBits(n=%d, r=%d): %w", n, r, ErrInvalidDomain)
	}
	right, err := RightSpaceBits(n, w)
	if err != nil {
		return 0, err
	}

	return LeftSpaceBits(r) - right, nil
}

// xlnx returns v·ln v with the continuous extension 0·ln 0 = 0.
func xlnx(v int) float64 {
	if v == 0 {
		return 0
	}
	f := float64(v)

	return f * math.Log(f)
}
