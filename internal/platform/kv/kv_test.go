// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/novelia/internal/platform/kv"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	sqliteStore, err := kv.OpenSQLite(ctx, filepath.Join(t.TempDir(), "nested", "novelia.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	stores := map[string]kv.Store{
		"memory": kv.NewMemory(),
		"sqlite": sqliteStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "novelia_stories", `[{"id":"1"}]`))
			require.NoError(t, store.Set(ctx, "novelia_stories", `[]`))

			value, ok, err := store.Get(ctx, "novelia_stories")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, value)

			require.NoError(t, store.Delete(ctx, "novelia_stories"))
			require.NoError(t, store.Delete(ctx, "novelia_stories"))

			_, ok, err = store.Get(ctx, "novelia_stories")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "novelia.db")

	first, err := kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "novelia_admin_auth", "true"))
	require.NoError(t, first.Close())

	second, err := kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	value, ok, err := second.Get(ctx, "novelia_admin_auth")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}
