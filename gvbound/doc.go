// SPDX-License-Identifier: MIT

// Package gvbound computes the Gilbert–Varshamov distance of a random binary
// linear code and the sizes of the two sides of the lossy map s ↦ H·s
// built from such a code.
//
//   - Distance(n, r): the GV weight for length n and redundancy r, the
//     default error weight ParameterSearch starts from.
//
//   - LeftSpaceBits(r), RightSpaceBits(n, w), GapBits(n, r, w): log2 sizes
//     of F_2^r and of the weight-w sphere of F_2^n (Stirling form), and their
//     difference: the lossiness gap actually achieved by (n, r, w).
//
// Ball volumes are accumulated with exact big.Int binomials; 2^r for
// cryptographic r has thousands of bits and does not fit a float64.
package gvbound
