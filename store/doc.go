// SPDX-License-Identifier: MIT

// Package store persists security-level evaluations and search results in
// SQLite (modernc.org/sqlite, no cgo).
//
// A Store implements search.Memo, so one database can back many sessions
// and processes: an evaluation keyed by (variant, n, r, w, solver settings)
// is computed once. Search results are appended to a log with a generated
// ID and timestamp.
//
// Connections are limited to one so that concurrent writers from
// search.FindAll serialise instead of failing with SQLITE_BUSY.
package store
