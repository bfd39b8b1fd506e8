// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/taibuivan/novelia/internal/platform/constants"
	"github.com/taibuivan/novelia/internal/platform/kv"
)

// LocalStore keeps the device copy of the catalogue as two JSON lists.
//
// Every mutation re-reads, changes and rewrites the whole list. Reads never
// fail: a missing or corrupt list is an empty list.
type LocalStore struct {
	kv     kv.Store
	logger *slog.Logger
}

// NewLocalStore returns a LocalStore over store.
func NewLocalStore(store kv.Store, logger *slog.Logger) *LocalStore {
	return &LocalStore{kv: store, logger: logger}
}

// Stories returns the stored stories in stored order.
func (local *LocalStore) Stories(ctx context.Context) []Story {
	return readList[Story](ctx, local, constants.KeyStories)
}

// Chapters returns every stored chapter in stored order.
func (local *LocalStore) Chapters(ctx context.Context) []Chapter {
	return readList[Chapter](ctx, local, constants.KeyChapters)
}

// WriteStories replaces the stored story list.
func (local *LocalStore) WriteStories(ctx context.Context, stories []Story) error {
	return writeList(ctx, local, constants.KeyStories, stories)
}

// WriteChapters replaces the stored chapter list.
func (local *LocalStore) WriteChapters(ctx context.Context, chapters []Chapter) error {
	return writeList(ctx, local, constants.KeyChapters, chapters)
}

// Has reports whether key holds any value at all, corrupt or not.
func (local *LocalStore) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := local.kv.Get(ctx, key)
	return ok, err
}

func readList[T any](ctx context.Context, local *LocalStore, key string) []T {
	raw, ok, err := local.kv.Get(ctx, key)
	if err != nil {
		local.logger.Warn("local_read_failed", slog.String("key", key), slog.Any("error", err))
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		local.logger.Warn("local_collection_corrupt", slog.String("key", key), slog.Any("error", err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func writeList[T any](ctx context.Context, local *LocalStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("local: encode %s: %w", key, err)
	}
	if err := local.kv.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("local: write %s: %w", key, err)
	}
	return nil
}

// # List Mutations

// upsertByID replaces the element with the same id in place, or appends it.
func upsertByID[T any](items []T, item T, idOf func(T) string) []T {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func storyID(story Story) string       { return story.ID }
func chapterID(chapter Chapter) string { return chapter.ID }
