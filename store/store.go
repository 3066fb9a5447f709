// SPDX-License-Identifier: MIT

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/isdsec/isd"
	"github.com/katalvlaran/isdsec/search"
)

// ErrNotFound reports a missing result record.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	memo_key   TEXT PRIMARY KEY,
	variant    TEXT NOT NULL,
	n          INTEGER NOT NULL,
	r          INTEGER NOT NULL,
	w          INTEGER NOT NULL,
	solver     TEXT NOT NULL,
	bits       REAL NOT NULL,
	converged  INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY,
	session    TEXT NOT NULL,
	mode       TEXT NOT NULL,
	variant    TEXT NOT NULL,
	target     REAL NOT NULL,
	gap        REAL NOT NULL,
	n          INTEGER NOT NULL,
	r          INTEGER NOT NULL,
	w          INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
`

// Store is a SQLite-backed evaluation memo and result log. Safe for
// concurrent use.
type Store struct {
	db  *sql.DB
	log log.Logger
}

// Record is one logged search result.
type Record struct {
	ID        string
	Session   string
	Mode      search.Mode
	Variant   isd.Variant
	Target    float64
	Gap       float64
	Params    search.Params
	CreatedAt time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000", schema} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: migrate %s: %w", path, err)
		}
	}

	return &Store{db: db, log: log.New("pkg", "store", "path", path)}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements search.Memo.
func (s *Store) Load(k search.Key) (search.Entry, bool, error) {
	var (
		e         search.Entry
		converged int
	)
	err := s.db.QueryRow(`SELECT bits, converged FROM evaluations WHERE memo_key = ?`, k.String()).Scan(&e.Bits, &converged)
	if errors.Is(err, sql.ErrNoRows) {
		return search.Entry{}, false, nil
	}
	if err != nil {
		return search.Entry{}, false, fmt.Errorf("store: load %s: %w", k, err)
	}
	e.Converged = converged != 0

	return e, true, nil
}

// Save implements search.Memo; an existing entry for k is replaced.
func (s *Store) Save(k search.Key, e search.Entry) error {
	converged := 0
	if e.Converged {
		converged = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO evaluations (memo_key, variant, n, r, w, solver, bits, converged, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(memo_key) DO UPDATE SET bits = excluded.bits, converged = excluded.converged`,
		k.String(), k.Variant.String(), k.N, k.R, k.W, k.Solver, e.Bits, converged,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", k, err)
	}
	s.log.Trace("Saved evaluation", "key", k.String(), "bits", e.Bits)

	return nil
}

// Evaluations returns the number of memoised evaluations.
func (s *Store) Evaluations() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM evaluations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// SaveResult appends rec to the result log, assigning ID and CreatedAt when
// they are empty, and returns the stored record.
func (s *Store) SaveResult(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO results (id, session, mode, variant, target, gap, n, r, w, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Session, rec.Mode.String(), rec.Variant.String(), rec.Target, rec.Gap,
		rec.Params.N, rec.Params.R, rec.Params.W, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("store: save result: %w", err)
	}
	s.log.Debug("Saved result", "id", rec.ID, "params", rec.Params)

	return rec, nil
}

// Result returns the record with the given id or ErrNotFound.
func (s *Store) Result(id string) (Record, error) {
	row := s.db.QueryRow(
		`SELECT id, session, mode, variant, target, gap, n, r, w, created_at FROM results WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("result %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: result %s: %w", id, err)
	}

	return rec, nil
}

// Results returns every logged record, oldest first.
func (s *Store) Results() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, session, mode, variant, target, gap, n, r, w, created_at FROM results ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("store: list results: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec           Record
		mode, variant string
		created       string
	)
	err := sc.Scan(&rec.ID, &rec.Session, &mode, &variant, &rec.Target, &rec.Gap,
		&rec.Params.N, &rec.Params.R, &rec.Params.W, &created)
	if err != nil {
		return Record{}, err
	}
	if rec.Mode, err = search.ParseMode(mode); err != nil {
		return Record{}, fmt.Errorf("store: result %s: %w", rec.ID, err)
	}
	if rec.Variant, err = isd.ParseVariant(variant); err != nil {
		return Record{}, fmt.Errorf("store: result %s: %w", rec.ID, err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Record{}, fmt.Errorf("store: result %s: %w", rec.ID, err)
	}

	return rec, nil
}
