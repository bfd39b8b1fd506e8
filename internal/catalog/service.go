// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/dberr"
	"github.com/taibuivan/novelia/internal/platform/metrics"
	"github.com/taibuivan/novelia/internal/platform/validate"
	"github.com/taibuivan/novelia/pkg/slice"
	"github.com/taibuivan/novelia/pkg/uuid"
)

// Maximum lengths accepted for story metadata.
const (
	maxTitleLen    = 300
	maxGenreLen    = 60
	maxSynopsisLen = 5000
)

/*
Service is the Storage Service facade.

Reads: remote first, device copy on any remote error (including "not found",
since the device may hold records the remote never received). Reads never
return errors.

Writes: the device copy is committed first and is authoritative for this
device. The remote write is then attempted under a timeout. An unreachable
remote is logged and counted only. A remote that was reached and rejected the
change is reported as UNPROCESSABLE so the owner learns about it; the device
copy is kept either way.
*/
type Service struct {
	remote  RemoteStore
	local   *LocalStore
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires the facade. timeout bounds every remote call.
func NewService(remote RemoteStore, local *LocalStore, timeout time.Duration, logger *slog.Logger) *Service {
	if remote == nil {
		remote = OfflineRemote{}
	}
	return &Service{
		remote:  remote,
		local:   local,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// # Stories

// ListStories returns every story, newest first.
func (service *Service) ListStories(ctx context.Context) []Story {
	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	rows, err := service.remote.ListStories(remoteCtx)
	if err == nil {
		return mapRows(rows, storyFromRow)
	}
	service.readFailed(ctx, "list_stories", err)

	stories := service.local.Stories(ctx)
	slices.SortStableFunc(stories, func(a, b Story) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return stories
}

// GetStory returns the story with id, if any.
func (service *Service) GetStory(ctx context.Context, id string) (Story, bool) {
	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	row, err := service.remote.GetStory(remoteCtx, id)
	if err == nil {
		return storyFromRow(row), true
	}
	service.readFailed(ctx, "get_story", err)

	stories := service.local.Stories(ctx)
	index := slices.IndexFunc(stories, func(story Story) bool { return story.ID == id })
	if index < 0 {
		return Story{}, false
	}
	return stories[index], true
}

// SaveStory creates or fully replaces a story. A missing id or creation time
// is assigned here.
func (service *Service) SaveStory(ctx context.Context, story Story) (Story, error) {
	if story.ID == "" {
		story.ID = uuid.New()
	}
	if story.CreatedAt == 0 {
		story.CreatedAt = service.now().UnixMilli()
	}
	if story.Status == "" {
		story.Status = StatusOngoing
	}

	if err := validateStory(story); err != nil {
		return Story{}, err
	}

	stories := service.local.Stories(ctx)
	if err := service.local.WriteStories(ctx, upsertByID(stories, story, storyID)); err != nil {
		return Story{}, apperr.Internal(err)
	}

	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	remoteErr := service.remote.UpsertStory(remoteCtx, storyToRow(story))
	service.logger.InfoContext(ctx, "story_saved",
		slog.String("story_id", story.ID),
		slog.String("remote", dberr.Reason(remoteErr)),
	)

	return story, service.writeFailed(ctx, "save_story", remoteErr)
}

// DeleteStory removes a story and every chapter that belongs to it.
func (service *Service) DeleteStory(ctx context.Context, id string) error {
	stories := slice.Filter(service.local.Stories(ctx), func(story Story) bool { return story.ID != id })
	chapters := slice.Filter(service.local.Chapters(ctx), func(chapter Chapter) bool { return chapter.StoryID != id })

	if err := service.local.WriteStories(ctx, stories); err != nil {
		return apperr.Internal(err)
	}
	if err := service.local.WriteChapters(ctx, chapters); err != nil {
		return apperr.Internal(err)
	}

	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	remoteErr := service.remote.DeleteStory(remoteCtx, id)
	service.logger.WarnContext(ctx, "story_deleted",
		slog.String("story_id", id),
		slog.String("remote", dberr.Reason(remoteErr)),
	)

	return service.writeFailed(ctx, "delete_story", remoteErr)
}

// # Chapters

// ListChaptersByStory returns a story's chapters sorted by order. Chapters with
// equal order keep their insertion order.
func (service *Service) ListChaptersByStory(ctx context.Context, storyID string) []Chapter {
	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	rows, err := service.remote.ListChapters(remoteCtx, storyID)
	if err == nil {
		return mapRows(rows, chapterFromRow)
	}
	service.readFailed(ctx, "list_chapters", err)

	chapters := slice.Filter(service.local.Chapters(ctx), func(chapter Chapter) bool {
		return chapter.StoryID == storyID
	})
	slices.SortStableFunc(chapters, func(a, b Chapter) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return chapters
}

// GetChapter returns the chapter with id, if any.
func (service *Service) GetChapter(ctx context.Context, id string) (Chapter, bool) {
	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	row, err := service.remote.GetChapter(remoteCtx, id)
	if err == nil {
		return chapterFromRow(row), true
	}
	service.readFailed(ctx, "get_chapter", err)

	chapters := service.local.Chapters(ctx)
	index := slices.IndexFunc(chapters, func(chapter Chapter) bool { return chapter.ID == id })
	if index < 0 {
		return Chapter{}, false
	}
	return chapters[index], true
}

// SaveChapter creates or fully replaces a chapter.
func (service *Service) SaveChapter(ctx context.Context, chapter Chapter) (Chapter, error) {
	if chapter.ID == "" {
		chapter.ID = uuid.New()
	}
	if chapter.PublishedAt == 0 {
		chapter.PublishedAt = service.now().UnixMilli()
	}

	if err := validateChapter(chapter); err != nil {
		return Chapter{}, err
	}

	chapters := service.local.Chapters(ctx)
	if err := service.local.WriteChapters(ctx, upsertByID(chapters, chapter, chapterID)); err != nil {
		return Chapter{}, apperr.Internal(err)
	}

	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	remoteErr := service.remote.UpsertChapter(remoteCtx, chapterToRow(chapter))
	service.logger.InfoContext(ctx, "chapter_saved",
		slog.String("chapter_id", chapter.ID),
		slog.String("story_id", chapter.StoryID),
		slog.String("remote", dberr.Reason(remoteErr)),
	)

	return chapter, service.writeFailed(ctx, "save_chapter", remoteErr)
}

// DeleteChapter removes one chapter.
func (service *Service) DeleteChapter(ctx context.Context, id string) error {
	chapters := slice.Filter(service.local.Chapters(ctx), func(chapter Chapter) bool { return chapter.ID != id })
	if err := service.local.WriteChapters(ctx, chapters); err != nil {
		return apperr.Internal(err)
	}

	remoteCtx, cancel := service.remoteContext(ctx)
	defer cancel()

	remoteErr := service.remote.DeleteChapter(remoteCtx, id)
	service.logger.WarnContext(ctx, "chapter_deleted",
		slog.String("chapter_id", id),
		slog.String("remote", dberr.Reason(remoteErr)),
	)

	return service.writeFailed(ctx, "delete_chapter", remoteErr)
}

// # Publishing

/*
PublishStory saves a story and then its chapters one at a time, numbering
them 1..n in the given order.

It stops at the first failing chapter. Chapters saved before the failure stay
saved; the returned result lists them and the error says where it stopped.
*/
func (service *Service) PublishStory(ctx context.Context, story Story, chapters []Chapter) (PublishResult, error) {
	result := PublishResult{Chapters: []Chapter{}}

	saved, err := service.SaveStory(ctx, story)
	if err != nil {
		return result, err
	}
	result.Story = saved

	for i, chapter := range chapters {
		chapter.StoryID = saved.ID
		chapter.Order = i + 1

		stored, err := service.SaveChapter(ctx, chapter)
		if err != nil {
			service.logger.WarnContext(ctx, "publish_interrupted",
				slog.String("story_id", saved.ID),
				slog.Int("saved", len(result.Chapters)),
				slog.Int("total", len(chapters)),
			)
			return result, withPublishProgress(err, i+1, len(chapters))
		}
		result.Chapters = append(result.Chapters, stored)
	}

	service.logger.InfoContext(ctx, "story_published",
		slog.String("story_id", saved.ID),
		slog.Int("chapters", len(result.Chapters)),
	)
	return result, nil
}

func withPublishProgress(err error, position, total int) error {
	appError := apperr.As(err)
	if appError == nil {
		return err
	}

	progress := *appError
	progress.Details = append(slices.Clone(appError.Details), apperr.FieldError{
		Field:   FieldChapters,
		Message: fmt.Sprintf("Publishing stopped at chapter %d of %d", position, total),
	})
	return &progress
}

// # Discovery

// SearchStories filters the listing by title/genre substring and exact genre.
func (service *Service) SearchStories(ctx context.Context, filter Filter) []Story {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	return slice.Filter(service.ListStories(ctx), func(story Story) bool {
		if filter.Genre != "" && filter.Genre != GenreAll && story.Genre != filter.Genre {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(story.Title), query) ||
			strings.Contains(strings.ToLower(story.Genre), query)
	})
}

// Genres returns GenreAll followed by every distinct genre in listing order.
func (service *Service) Genres(ctx context.Context) []string {
	genres := slice.Distinct(service.ListStories(ctx), func(story Story) string { return story.Genre })
	return append([]string{GenreAll}, genres...)
}

// Neighbours returns the chapters before and after chapter in reading order.
func (service *Service) Neighbours(ctx context.Context, chapter Chapter) (previous, next *Chapter) {
	chapters := service.ListChaptersByStory(ctx, chapter.StoryID)

	index := slices.IndexFunc(chapters, func(candidate Chapter) bool { return candidate.ID == chapter.ID })
	if index < 0 {
		return nil, nil
	}

	if index > 0 {
		previous = &chapters[index-1]
	}
	if index < len(chapters)-1 {
		next = &chapters[index+1]
	}
	return previous, next
}

// # Remote Outcome Handling

func (service *Service) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if service.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, service.timeout)
}

func (service *Service) readFailed(ctx context.Context, operation string, err error) {
	metrics.RemoteFallbacks.WithLabelValues(operation).Inc()

	if errors.Is(err, ErrRemoteDisabled) || errors.Is(err, ErrNotFound) {
		return
	}
	service.logger.WarnContext(ctx, "remote_read_failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
}

func (service *Service) writeFailed(ctx context.Context, operation string, err error) error {
	if err == nil || errors.Is(err, ErrRemoteDisabled) {
		return nil
	}

	metrics.RemoteWriteFailures.WithLabelValues(operation, dberr.Reason(err)).Inc()
	service.logger.WarnContext(ctx, "remote_write_failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	if dberr.IsInvalidRequest(err) {
		return apperr.Unprocessable("The remote store rejected the change. It was kept on this device only.", err)
	}
	return nil
}

// # Validation

func validateStory(story Story) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, story.Title).MaxLen(FieldTitle, story.Title, maxTitleLen)
	validator.Required(FieldGenre, story.Genre).MaxLen(FieldGenre, story.Genre, maxGenreLen)
	validator.Required(FieldSynopsis, story.Synopsis).MaxLen(FieldSynopsis, story.Synopsis, maxSynopsisLen)
	validator.OneOf(FieldStatus, string(story.Status), string(StatusOngoing), string(StatusCompleted))
	validator.URL(FieldCoverURL, story.CoverURL)

	return validator.Err()
}

func validateChapter(chapter Chapter) error {
	validator := &validate.Validator{}

	validator.Required(FieldStoryID, chapter.StoryID)
	validator.Required(FieldTitle, chapter.Title).MaxLen(FieldTitle, chapter.Title, maxTitleLen)
	validator.Custom(FieldOrder, chapter.Order < 0, "Must not be negative")

	return validator.Err()
}

func mapRows[R, T any](rows []R, fromRow func(R) T) []T {
	if len(rows) == 0 {
		return []T{}
	}
	return slice.Map(rows, fromRow)
}
