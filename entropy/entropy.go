// SPDX-License-Identifier: MIT

package entropy

import (
	"math"
	"math/big"
)

// BinaryEntropy returns H(x) = −x·log2(x) − (1−x)·log2(1−x).
//
// Contracts:
//   - x ≤ 0, x ≥ 1 and NaN all map to 0 (log(0) is never evaluated).
//   - H(x) == H(1−x); H(0.5) == 1.
//
// Complexity: O(1).
func BinaryEntropy(x float64) float64 {
	// The negated form also catches NaN.
	if !(x > 0 && x < 1) {
		return 0.0
	}

	return -x*math.Log2(x) - (1-x)*math.Log2(1-x)
}

// Binomial returns C(n,k) as a float64.
//
// Contracts:
//   - k < 0 or k > n ⇒ 0.
//   - k == 0 or k == n ⇒ 1.
//   - Otherwise the multiplicative recurrence c = c·(n−i)/(i+1) over
//     i < min(k, n−k), dividing in floating point at every step.
//
// Values above ~2^1023 overflow to +Inf; use BinomialBig for exact counts.
//
// Complexity: O(min(k, n−k)).
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if n-k < k {
		k = n - k
	}

	var (
		c = 1.0
		i int
	)
	for i = 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}

	return c
}

// BinomialBig returns C(n,k) exactly.
//
// Same contracts as Binomial. Each step multiplies by (n−i) before dividing
// by (i+1); after step i the running value is C(n,i+1), so every division
// is exact.
//
// Complexity: O(min(k, n−k)) big-integer operations.
func BinomialBig(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}
	if n-k < k {
		k = n - k
	}

	var (
		c   = big.NewInt(1)
		tmp = new(big.Int)
		i   int
	)
	for i = 0; i < k; i++ {
		c.Mul(c, tmp.SetInt64(int64(n-i)))
		c.Quo(c, tmp.SetInt64(int64(i+1)))
	}

	return c
}
