// SPDX-License-Identifier: MIT

package gvbound

import (
	"fmt"
	"math/big"
)

// Distance returns the Gilbert–Varshamov distance for length n and
// redundancy r.
//
// Algorithm:
//  1. limit = 2^r (exact).
//  2. Starting at i = 0, add C(n,i) to a running ball volume and advance i
//     while the volume accumulated so far is still ≤ limit.
//  3. Return i−1: the index of the last coefficient added, i.e. the first
//     radius whose ball volume exceeds 2^r.
//
// Example: Distance(10, 3) == 1, since 1 ≤ 8 and 1+10 = 11 > 8.
//
// Errors: ErrInvalidDomain when n ≤ 0, r ≤ 0 or r ≥ n.
//
// Complexity: O(d) big-integer multiply/divide pairs on numbers of at most
// n bits, where d is the returned distance.
func Distance(n, r int) (int, error) {
	if n <= 0 || r <= 0 || r >= n {
		return 0, fmt.Errorf("Distance(n=%d, r=%d): %w", n, r, ErrInvalidDomain)
	}

	var (
		limit = new(big.Int).Lsh(big.NewInt(1), uint(r))
		sum   = new(big.Int)
		c     = big.NewInt(1) // C(n, i), updated in place
		tmp   = new(big.Int)
		i     int
	)
	// Σ_{i≤n} C(n,i) = 2^n > 2^r, so the loop stops before i passes n.
	for sum.Cmp(limit) <= 0 {
		sum.Add(sum, c)
		// C(n, i+1) = C(n, i)·(n−i)/(i+1), exact.
		c.Mul(c, tmp.SetInt64(int64(n-i)))
		c.Quo(c, tmp.SetInt64(int64(i+1)))
		i++
	}

	return i - 1, nil
}
