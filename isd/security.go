// SPDX-License-Identifier: MIT

package isd

import "fmt"

// SecurityLevel returns the estimated decoding cost in bits, n·α(K, W) with
// (K, W) = Normalize(n, r, w), for a length-n code with r parity checks and
// error weight w.
//
// Non-convergence propagates through Level.Estimate.Status; the error is
// reserved for domain and configuration failures.
func SecurityLevel(n, r, w int, v Variant, opts Options) (Level, error) {
	lvl := Level{N: n, R: r, W: w}
	nc, err := Normalize(n, r, w)
	if err != nil {
		return lvl, err
	}
	est, err := Alpha(v, nc.K, nc.W, opts)
	lvl.Estimate = est
	if err != nil {
		return lvl, fmt.Errorf("SecurityLevel(n=%d, r=%d, w=%d): %w", n, r, w, err)
	}
	lvl.Bits = float64(n) * est.Alpha

	return lvl, nil
}
