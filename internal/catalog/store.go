// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a remote store when the requested row does not exist.
	ErrNotFound = errors.New("catalog: record not found")

	// ErrRemoteDisabled is returned by every call of the offline remote.
	ErrRemoteDisabled = errors.New("catalog: remote store not configured")
)

// RemoteStore is the hosted system of record. It speaks in row shapes.
type RemoteStore interface {
	ListStories(ctx context.Context) ([]StoryRow, error)
	GetStory(ctx context.Context, id string) (StoryRow, error)
	UpsertStory(ctx context.Context, row StoryRow) error

	// DeleteStory removes the story and all of its chapters.
	DeleteStory(ctx context.Context, id string) error

	ListChapters(ctx context.Context, storyID string) ([]ChapterRow, error)
	GetChapter(ctx context.Context, id string) (ChapterRow, error)
	UpsertChapter(ctx context.Context, row ChapterRow) error
	DeleteChapter(ctx context.Context, id string) error
}

// OfflineRemote is the [RemoteStore] used when no remote is configured.
// Every call fails with [ErrRemoteDisabled] so the service serves the local copy.
type OfflineRemote struct{}

func (OfflineRemote) ListStories(context.Context) ([]StoryRow, error) {
	return nil, ErrRemoteDisabled
}

func (OfflineRemote) GetStory(context.Context, string) (StoryRow, error) {
	return StoryRow{}, ErrRemoteDisabled
}

func (OfflineRemote) UpsertStory(context.Context, StoryRow) error { return ErrRemoteDisabled }

func (OfflineRemote) DeleteStory(context.Context, string) error { return ErrRemoteDisabled }

func (OfflineRemote) ListChapters(context.Context, string) ([]ChapterRow, error) {
	return nil, ErrRemoteDisabled
}

func (OfflineRemote) GetChapter(context.Context, string) (ChapterRow, error) {
	return ChapterRow{}, ErrRemoteDisabled
}

func (OfflineRemote) UpsertChapter(context.Context, ChapterRow) error { return ErrRemoteDisabled }

func (OfflineRemote) DeleteChapter(context.Context, string) error { return ErrRemoteDisabled }
