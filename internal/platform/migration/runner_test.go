// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/novelia/data"
)

func TestToPgx5DSN(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/novelia", toPgx5DSN("postgres://u:p@db:5432/novelia"))
	assert.Equal(t, "pgx5://u@db/novelia", toPgx5DSN("postgresql://u@db/novelia"))
	assert.Equal(t, "pgx5://already", toPgx5DSN("pgx5://already"))
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(data.Migrations, "migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Contains(t, names, "000001_catalog.up.sql")
	assert.Contains(t, names, "000001_catalog.down.sql")
}
