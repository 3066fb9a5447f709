// SPDX-License-Identifier: MIT

// Package isdsec estimates the security of code-based cryptosystems against
// information-set decoding and searches for the shortest codes that reach a
// target security level.
//
// What is in the module?
//
//	entropy/  — binary entropy, binomial coefficients (float and exact)
//	gvbound/  — Gilbert–Varshamov distance, lossy-map space sizes
//	nlp/      — augmented-Lagrangian constrained minimiser over gonum/optimize
//	isd/      — BJMM (classical) and MMTQW (quantum) exponents, SecurityLevel
//	search/   — doubling + bisection parameter searches with a session memo
//	store/    — SQLite memo and result log
//	sweep/    — security-vs-length tables and HTML charts
//	cmd/isdsec — command-line front-end
//
// Data flows bottom-up: search → isd → nlp → gonum; isd → entropy;
// search → gvbound. Everything is deterministic: the same inputs and
// options give bit-identical results.
//
// Quick example:
//
//	p, err := search.FindFullDecoding(128)
//	// p.N is the shortest half-rate length whose BJMM cost at the GV
//	// weight reaches 2^128; p.R = p.N/2, p.W = GV(p.N, p.R) − 1.
//
//	go install github.com/katalvlaran/isdsec/cmd/isdsec@latest
package isdsec
