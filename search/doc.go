// SPDX-License-Identifier: MIT

// Package search finds the shortest code reaching a target security level.
//
// Both searches fix r = n/2 and choose w from n, then look for the least n
// whose security level (package isd) reaches the target:
//
//   - FindFullDecoding: w = GV(n, r) − 1.
//   - FindGap: w = min(GV(n, r) − 1, wGap), where wGap is the largest weight
//     with r ≥ n·H(w/n) + gap; 0 when even w = 1 fails.
//
// Search shape: the bracket starts at [2, 1000]; the upper bound doubles
// until the predicate holds, then integer bisection shrinks the bracket to
// width one. Correctness rests on the predicate being monotone in n, which
// is assumed, not proven; WithMonotoneProbe re-checks it just above the
// result.
//
// A Session owns one search configuration and an LRU memo of
// (variant, n, r, w, solver settings) → bits shared by every search it runs;
// an optional Memo (for example store.Store) persists entries across
// processes. Sessions are safe for concurrent use; FindAll runs independent
// queries in parallel.
//
// Non-converged estimates are accepted as boundary values by default and
// logged; WithStrict turns them into ErrDidNotConverge.
package search
