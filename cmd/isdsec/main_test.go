package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
	"github.com/katalvlaran/isdsec/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"isdsec"}, args...))
	return out.String(), err
}

func TestAlphaCommand(t *testing.T) {
	out, err := run(t, "alpha", "--k", "0.5", "--w", "0.11")
	require.NoError(t, err)
	assert.Contains(t, out, "variant=classical alpha=")

	_, err = run(t, "alpha", "--variant", "prange")
	assert.ErrorIs(t, err, isd.ErrUnknownVariant)

	out, err = run(t, "alpha", "--variant", "quantum", "--method", "bfgs")
	require.NoError(t, err)
	assert.Contains(t, out, `variant=quantum alpha=0.0582`)
	assert.Contains(t, out, `status="converged"`)

	_, err = run(t, "alpha", "--method", "simplex")
	assert.ErrorIs(t, err, isd.ErrBadOption)
}

func TestLevelCommandDomain(t *testing.T) {
	_, err := run(t, "level", "--n", "10", "--r", "10", "--w", "1")
	assert.ErrorIs(t, err, isd.ErrInvalidDomain)
}

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "isdsec.db")
	html := filepath.Join(dir, "sweep.html")

	out, err := run(t, "sweep", "--from", "100", "--to", "100", "--step", "1",
		"--variant", "classical", "--db", db, "--out", html)
	require.NoError(t, err)
	assert.Contains(t, out, "(n=100, r=50, w=")
	assert.Contains(t, out, "classical=")

	page, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "ISD security vs. code length")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	n, err := st.Evaluations()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = run(t, "sweep", "--mode", "partial")
	assert.ErrorIs(t, err, search.ErrUnknownMode)
}
