// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/isdsec/isd"
)

// Params is a code-parameter triple: length N, redundancy R = N/2 and
// error weight W with 0 ≤ W < N.
type Params struct {
	N, R, W int
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return fmt.Sprintf("(n=%d, r=%d, w=%d)", p.N, p.R, p.W)
}

// Mode selects the search algorithm of a Query.
type Mode int

const (
	// FullDecoding uses w = GV − 1.
	FullDecoding Mode = iota

	// Gap additionally bounds w by the lossiness gap.
	Gap
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case FullDecoding:
		return "full"
	case Gap:
		return "gap"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return FullDecoding, nil
	case "gap":
		return Gap, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// Query is one independent search request for FindAll.
type Query struct {
	Mode   Mode
	Target float64
	// Gap is used by Mode Gap only.
	Gap float64
}

// Key identifies one security-level evaluation. Solver is the
// isd.Options fingerprint.
type Key struct {
	Variant isd.Variant
	N, R, W int
	Solver  string
}

// String renders the key as a stable text form for persistent memos.
func (k Key) String() string {
	return fmt.Sprintf("%s/%d/%d/%d/%s", k.Variant, k.N, k.R, k.W, k.Solver)
}

// Entry is a memoised evaluation.
type Entry struct {
	Bits      float64
	Converged bool
}

// Memo persists evaluations beyond a session. Implementations must be safe
// for concurrent use.
type Memo interface {
	// Load returns the entry for k and whether it was present.
	Load(k Key) (Entry, bool, error)
	// Save records e under k, replacing an existing entry.
	Save(k Key, e Entry) error
}

// Stats are session counters.
type Stats struct {
	// Evaluations counts solver invocations.
	Evaluations uint64
	// CacheHits and MemoHits count lookups answered by the LRU and the
	// persistent memo respectively.
	CacheHits uint64
	MemoHits  uint64
}
