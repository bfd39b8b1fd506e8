// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kv provides the device-local key/value store that backs the offline
copy of the catalogue and the owner session flag.

Values are opaque strings. Callers own the encoding (the catalogue stores JSON
lists under fixed keys). Two implementations exist:

  - [SQLite]: a single-file database on this device (modernc.org/sqlite, no cgo).
  - [Memory]: a process-local map, used by tests and ephemeral runs.
*/
package kv

import "context"

// Store is a string-keyed, string-valued persistent map.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
