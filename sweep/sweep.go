// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isdsec/gvbound"
	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
)

// DefaultWorkers bounds parallel evaluations when Config.Workers is zero.
const DefaultWorkers = 4

var (
	// ErrNoLengths reports an empty sweep.
	ErrNoLengths = errors.New("sweep: no lengths")

	// ErrBadRange reports a Lengths range with step ≤ 0 or from > to.
	ErrBadRange = errors.New("sweep: invalid length range")
)

// Config describes one sweep.
//
//   - Lengths: code lengths to evaluate, each ≥ 2.
//   - Mode, Gap: how w is chosen (search.FullDecoding or search.Gap).
//   - Variants: models to evaluate; nil ⇒ Classical and Quantum.
//   - Workers: parallel lengths; 0 ⇒ DefaultWorkers.
//   - Search: options for every per-variant session (memo, solver, strict).
type Config struct {
	Lengths  []int
	Mode     search.Mode
	Gap      float64
	Variants []isd.Variant
	Workers  int
	Search   []search.Option
}

// Level is one variant's score at a point.
type Level struct {
	Variant isd.Variant
	Bits    float64
}

// Point is one row of the sweep.
type Point struct {
	Params search.Params
	// GapBits is r − log2 of the right-hand space, in bits.
	GapBits float64
	// Levels follow Config.Variants.
	Levels []Level
}

// Lengths returns from, from+step, … up to and including to.
func Lengths(from, to, step int) ([]int, error) {
	if step <= 0 || from > to || from < 2 {
		return nil, fmt.Errorf("from=%d to=%d step=%d: %w", from, to, step, ErrBadRange)
	}
	out := make([]int, 0, (to-from)/step+1)
	for n := from; n <= to; n += step {
		out = append(out, n)
	}
	return out, nil
}

// Run evaluates cfg. Points follow cfg.Lengths.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	if len(cfg.Lengths) == 0 {
		return nil, ErrNoLengths
	}
	variants := cfg.Variants
	if variants == nil {
		variants = []isd.Variant{isd.Classical, isd.Quantum}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	sessions := make([]*search.Session, len(variants))
	for i, v := range variants {
		opts := append(append([]search.Option(nil), cfg.Search...), search.WithVariant(v))
		s, err := search.NewSession(opts...)
		if err != nil {
			return nil, err
		}
		sessions[i] = s
	}
	logger := log.New("pkg", "sweep", "mode", cfg.Mode)
	logger.Debug("Starting sweep", "lengths", len(cfg.Lengths), "variants", len(variants))

	out := make([]Point, len(cfg.Lengths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range cfg.Lengths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pt, err := evaluate(n, cfg, sessions)
			if err != nil {
				return fmt.Errorf("sweep n=%d: %w", n, err)
			}
			out[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func evaluate(n int, cfg Config, sessions []*search.Session) (Point, error) {
	var (
		p   search.Params
		err error
	)
	switch cfg.Mode {
	case search.FullDecoding:
		p, err = search.FullDecodingParams(n)
	case search.Gap:
		p, err = search.GapParams(n, cfg.Gap)
	default:
		err = fmt.Errorf("%s: %w", cfg.Mode, search.ErrUnknownMode)
	}
	if err != nil {
		return Point{}, err
	}

	gap, err := gvbound.GapBits(p.N, p.R, p.W)
	if err != nil {
		return Point{}, err
	}
	pt := Point{Params: p, GapBits: gap, Levels: make([]Level, len(sessions))}
	for i, s := range sessions {
		bits, err := s.Level(p)
		if err != nil {
			return Point{}, err
		}
		pt.Levels[i] = Level{Variant: s.Variant(), Bits: bits}
	}

	return pt, nil
}
