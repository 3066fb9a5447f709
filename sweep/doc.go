// SPDX-License-Identifier: MIT

// Package sweep tabulates security level against code length and renders
// the table as an interactive HTML chart (go-echarts).
//
// For every length the triple is chosen exactly as the searches choose it
// (search.FullDecodingParams or search.GapParams), so a sweep shows the
// landscape the bisection walks. Lengths are evaluated in parallel; each
// variant has its own search.Session, so repeated sweeps over a shared
// search.Memo cost nothing.
package sweep
