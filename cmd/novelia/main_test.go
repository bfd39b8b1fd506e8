// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineEnv points every command at a fresh local store with no remote services.
func offlineEnv(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "novelia.db")
	t.Setenv("LOCAL_DB_PATH", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("AI_API_KEY", "")
	t.Setenv("SEED_LOCAL", "true")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestStoriesCommand(t *testing.T) {
	offlineEnv(t)

	out, err := execute(t, "stories")
	require.NoError(t, err)
	assert.Contains(t, out, "The Clockwork Alchemist")
	assert.Contains(t, out, "Whispers of the Old Forest")
	assert.Less(t, strings.Index(out, "Clockwork"), strings.Index(out, "Whispers"), "newest first")

	filtered, err := execute(t, "stories", "--genre", "Fantasy")
	require.NoError(t, err)
	assert.NotContains(t, filtered, "Clockwork")
	assert.Contains(t, filtered, "Whispers")

	none, err := execute(t, "stories", "-q", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No stories\n", none)
}

func TestChaptersCommand(t *testing.T) {
	offlineEnv(t)

	out, err := execute(t, "chapters", "1")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "The Brass Key"), strings.Index(out, "Pursuit"))

	empty, err := execute(t, "chapters", "2")
	require.NoError(t, err)
	assert.Equal(t, "No chapters for story 2\n", empty)

	_, err = execute(t, "chapters")
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	path := offlineEnv(t)

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestMigrateRequiresRemote(t *testing.T) {
	offlineEnv(t)

	_, err := execute(t, "migrate", "up")
	assert.ErrorIs(t, err, errRemoteNotConfigured)
}

func TestAICommands(t *testing.T) {
	offlineEnv(t)

	out, err := execute(t, "ai", "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "Japanese")

	_, err = execute(t, "ai", "ping")
	assert.Error(t, err, "no API key configured")
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "3"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "3")
	assert.Empty(t, renderTable(nil, nil, nil))
}
