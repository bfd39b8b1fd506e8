// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies remote database errors.
//
// The catalogue treats the remote store in two ways: an unreachable or
// misconfigured store is an expected condition handled by falling back to the
// local store, while a reachable store that rejects the request (bad value,
// constraint violation) is reported to the owner on explicit writes.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsNotFound reports whether err means the queried row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsInvalidRequest reports whether the remote store was reached and rejected
// the request itself.
//
// SQLSTATE classes:
//   - 22: data exception (e.g. invalid uuid text, value too long)
//   - 23: integrity constraint violation (foreign key, not null, check)
func IsInvalidRequest(err error) bool {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) || len(pgError.Code) < 2 {
		return false
	}
	switch pgError.Code[:2] {
	case "22", "23":
		return true
	}
	return false
}

// Reason returns a short metric label for err.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsInvalidRequest(err):
		return "rejected"
	case IsNotFound(err):
		return "not_found"
	default:
		return "unavailable"
	}
}
