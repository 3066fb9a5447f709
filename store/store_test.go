package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
	"github.com/katalvlaran/isdsec/store"
)

type StoreSuite struct {
	suite.Suite
	path string
	st   *store.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "isdsec.db")
	st, err := store.Open(s.path)
	s.Require().NoError(err)
	s.st = st
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.st.Close())
}

func (s *StoreSuite) key(n int) search.Key {
	return search.Key{Variant: isd.Classical, N: n, R: n / 2, W: n / 10, Solver: isd.DefaultOptions().Fingerprint()}
}

// TestMemoRoundTrip covers miss, hit and replace.
func (s *StoreSuite) TestMemoRoundTrip() {
	k := s.key(100)
	_, ok, err := s.st.Load(k)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.st.Save(k, search.Entry{Bits: 12.5, Converged: false}))
	e, ok, err := s.st.Load(k)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(search.Entry{Bits: 12.5, Converged: false}, e)

	s.Require().NoError(s.st.Save(k, search.Entry{Bits: 13, Converged: true}))
	e, _, err = s.st.Load(k)
	s.Require().NoError(err)
	s.Equal(search.Entry{Bits: 13, Converged: true}, e)

	other := k
	other.Variant = isd.Quantum
	_, ok, err = s.st.Load(other)
	s.Require().NoError(err)
	s.False(ok, "variant is part of the key")

	n, err := s.st.Evaluations()
	s.Require().NoError(err)
	s.Equal(1, n)
}

// TestPersistsAcrossOpen reopens the file.
func (s *StoreSuite) TestPersistsAcrossOpen() {
	k := s.key(2000)
	s.Require().NoError(s.st.Save(k, search.Entry{Bits: 200, Converged: true}))

	again, err := store.Open(s.path)
	s.Require().NoError(err)
	defer again.Close()
	e, ok, err := again.Load(k)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(200.0, e.Bits)
}

// TestResults covers the result log.
func (s *StoreSuite) TestResults() {
	first, err := s.st.SaveResult(store.Record{
		Session: "s1",
		Mode:    search.FullDecoding,
		Variant: isd.Classical,
		Target:  128,
		Params:  search.Params{N: 1280, R: 640, W: 141},
	})
	s.Require().NoError(err)
	s.NotEmpty(first.ID)
	s.False(first.CreatedAt.IsZero())

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	second, err := s.st.SaveResult(store.Record{
		ID:        "fixed",
		Session:   "s1",
		Mode:      search.Gap,
		Variant:   isd.Quantum,
		Target:    128,
		Gap:       64,
		Params:    search.Params{N: 4000, R: 2000, W: 100},
		CreatedAt: at,
	})
	s.Require().NoError(err)

	got, err := s.st.Result("fixed")
	s.Require().NoError(err)
	s.True(at.Equal(got.CreatedAt))
	got.CreatedAt = second.CreatedAt
	s.Equal(second, got)

	all, err := s.st.Results()
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(first.ID, all[0].ID)
	s.Equal(search.Gap, all[1].Mode)

	_, err = s.st.Result("missing")
	s.ErrorIs(err, store.ErrNotFound)
}

// TestBacksSession lets a second session reuse the first one's evaluation.
func (s *StoreSuite) TestBacksSession() {
	p := search.Params{N: 200, R: 100, W: 20}

	a, err := search.NewSession(search.WithMemo(s.st))
	s.Require().NoError(err)
	want, err := a.Level(p)
	s.Require().NoError(err)
	s.Equal(uint64(1), a.Stats().Evaluations)

	b, err := search.NewSession(search.WithMemo(s.st))
	s.Require().NoError(err)
	got, err := b.Level(p)
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Zero(b.Stats().Evaluations)
	s.Equal(uint64(1), b.Stats().MemoHits)
}

func TestOpenBadPath(t *testing.T) {
	_, err := store.Open(filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.Error(t, err)
}

func TestRecordTimeRoundTrip(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "t.db"))
	require.NoError(t, err)
	defer st.Close()

	at := time.Date(2025, 6, 7, 8, 9, 10, 123456789, time.UTC)
	rec, err := st.SaveResult(store.Record{Session: "x", CreatedAt: at})
	require.NoError(t, err)
	got, err := st.Result(rec.ID)
	require.NoError(t, err)
	assert.True(t, at.Equal(got.CreatedAt))
	assert.Equal(t, isd.Classical, got.Variant)
	assert.Equal(t, search.FullDecoding, got.Mode)
}
