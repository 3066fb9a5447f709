package sweep_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
	"github.com/katalvlaran/isdsec/sweep"
)

// fixed scores classical n/10 and quantum n/20 bits.
type fixed struct {
	mu    sync.Mutex
	loads int
}

func (f *fixed) Load(k search.Key) (search.Entry, bool, error) {
	f.mu.Lock()
	f.loads++
	f.mu.Unlock()
	div := 10.0
	if k.Variant == isd.Quantum {
		div = 20
	}
	return search.Entry{Bits: float64(k.N) / div, Converged: true}, true, nil
}

func (f *fixed) Save(search.Key, search.Entry) error { return nil }

func TestLengths(t *testing.T) {
	got, err := sweep.Lengths(100, 500, 200)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 300, 500}, got)

	got, err = sweep.Lengths(100, 550, 200)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 300, 500}, got)

	for _, bad := range [][3]int{{100, 50, 10}, {100, 200, 0}, {1, 10, 1}} {
		_, err = sweep.Lengths(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, sweep.ErrBadRange, "%v", bad)
	}
}

func TestRun(t *testing.T) {
	memo := &fixed{}
	pts, err := sweep.Run(context.Background(), sweep.Config{
		Lengths: []int{100, 200, 400},
		Search:  []search.Option{search.WithMemo(memo)},
		Workers: 2,
	})
	require.NoError(t, err)
	require.Len(t, pts, 3)

	for i, n := range []int{100, 200, 400} {
		pt := pts[i]
		want, err := search.FullDecodingParams(n)
		require.NoError(t, err)
		assert.Equal(t, want, pt.Params)
		require.Len(t, pt.Levels, 2)
		assert.Equal(t, isd.Classical, pt.Levels[0].Variant)
		assert.Equal(t, float64(n)/10, pt.Levels[0].Bits)
		assert.Equal(t, isd.Quantum, pt.Levels[1].Variant)
		assert.Equal(t, float64(n)/20, pt.Levels[1].Bits)
	}
	assert.Equal(t, 6, memo.loads)
}

func TestRunGapMode(t *testing.T) {
	pts, err := sweep.Run(context.Background(), sweep.Config{
		Lengths:  []int{1000, 2000},
		Mode:     search.Gap,
		Gap:      128,
		Variants: []isd.Variant{isd.Classical},
		Search:   []search.Option{search.WithMemo(&fixed{})},
	})
	require.NoError(t, err)
	require.Len(t, pts, 2)
	for _, pt := range pts {
		want, err := search.GapParams(pt.Params.N, 128)
		require.NoError(t, err)
		assert.Equal(t, want, pt.Params)
		assert.GreaterOrEqual(t, pt.GapBits, 128.0-1e-9, "n=%d", pt.Params.N)
		assert.Len(t, pt.Levels, 1)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := sweep.Run(context.Background(), sweep.Config{})
	assert.ErrorIs(t, err, sweep.ErrNoLengths)

	_, err = sweep.Run(context.Background(), sweep.Config{
		Lengths: []int{100},
		Mode:    search.Mode(7),
		Search:  []search.Option{search.WithMemo(&fixed{})},
	})
	assert.ErrorIs(t, err, search.ErrUnknownMode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sweep.Run(ctx, sweep.Config{Lengths: []int{100, 200}, Search: []search.Option{search.WithMemo(&fixed{})}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderHTML(t *testing.T) {
	pts, err := sweep.Run(context.Background(), sweep.Config{
		Lengths: []int{100, 200},
		Search:  []search.Option{search.WithMemo(&fixed{})},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sweep.RenderHTML(&buf, "Half-rate codes", pts))
	html := buf.String()
	assert.Contains(t, html, "Half-rate codes")
	assert.Contains(t, html, "classical")
	assert.Contains(t, html, "quantum")
	assert.Contains(t, html, "lossiness gap")

	assert.ErrorIs(t, sweep.RenderHTML(&buf, "empty", nil), sweep.ErrNoLengths)
}
