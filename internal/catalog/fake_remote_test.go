// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// memoryRemote is an in-process RemoteStore. When fail is set every call
// returns it instead of touching the data.
type memoryRemote struct {
	mu       sync.Mutex
	stories  []StoryRow
	chapters []ChapterRow
	fail     error
	block    bool
}

func (remote *memoryRemote) check(ctx context.Context) error {
	if remote.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return remote.fail
}

func (remote *memoryRemote) ListStories(ctx context.Context) ([]StoryRow, error) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return nil, err
	}

	rows := slices.Clone(remote.stories)
	slices.SortStableFunc(rows, func(a, b StoryRow) int { return cmp.Compare(isoToMillis(b.CreatedAt), isoToMillis(a.CreatedAt)) })
	return rows, nil
}

func (remote *memoryRemote) GetStory(ctx context.Context, id string) (StoryRow, error) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return StoryRow{}, err
	}

	for _, row := range remote.stories {
		if row.ID == id {
			return row, nil
		}
	}
	return StoryRow{}, ErrNotFound
}

func (remote *memoryRemote) UpsertStory(ctx context.Context, row StoryRow) error {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return err
	}

	remote.stories = upsertByID(remote.stories, row, func(r StoryRow) string { return r.ID })
	return nil
}

func (remote *memoryRemote) DeleteStory(ctx context.Context, id string) error {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return err
	}

	remote.chapters = slices.DeleteFunc(remote.chapters, func(r ChapterRow) bool { return r.StoryID == id })
	remote.stories = slices.DeleteFunc(remote.stories, func(r StoryRow) bool { return r.ID == id })
	return nil
}

func (remote *memoryRemote) ListChapters(ctx context.Context, storyID string) ([]ChapterRow, error) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return nil, err
	}

	var rows []ChapterRow
	for _, row := range remote.chapters {
		if row.StoryID == storyID {
			rows = append(rows, row)
		}
	}
	slices.SortStableFunc(rows, func(a, b ChapterRow) int { return cmp.Compare(a.OrderIndex, b.OrderIndex) })
	return rows, nil
}

func (remote *memoryRemote) GetChapter(ctx context.Context, id string) (ChapterRow, error) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return ChapterRow{}, err
	}

	for _, row := range remote.chapters {
		if row.ID == id {
			return row, nil
		}
	}
	return ChapterRow{}, ErrNotFound
}

func (remote *memoryRemote) UpsertChapter(ctx context.Context, row ChapterRow) error {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return err
	}

	remote.chapters = upsertByID(remote.chapters, row, func(r ChapterRow) string { return r.ID })
	return nil
}

func (remote *memoryRemote) DeleteChapter(ctx context.Context, id string) error {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if err := remote.check(ctx); err != nil {
		return err
	}

	remote.chapters = slices.DeleteFunc(remote.chapters, func(r ChapterRow) bool { return r.ID == id })
	return nil
}
