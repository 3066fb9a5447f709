// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Find dispatches q to FindFullDecoding or FindGap.
func (s *Session) Find(q Query) (Params, error) {
	switch q.Mode {
	case FullDecoding:
		return s.FindFullDecoding(q.Target)
	case Gap:
		return s.FindGap(q.Target, q.Gap)
	default:
		return Params{}, fmt.Errorf("%s: %w", q.Mode, ErrUnknownMode)
	}
}

// FindAll answers qs concurrently with at most WithWorkers queries in
// flight, sharing the session memo. Results follow the order of qs. The
// first failure cancels queries not yet started and is returned.
func (s *Session) FindAll(ctx context.Context, qs []Query) ([]Params, error) {
	out := make([]Params, len(qs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	for i := range qs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := s.Find(qs[i])
			if err != nil {
				return fmt.Errorf("query %d (%s, target=%g): %w", i, qs[i].Mode, qs[i].Target, err)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// FindAll runs a one-off Session.FindAll.
func FindAll(ctx context.Context, qs []Query, opts ...Option) ([]Params, error) {
	s, err := NewSession(opts...)
	if err != nil {
		return nil, err
	}
	return s.FindAll(ctx, qs)
}
