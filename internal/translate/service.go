// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/metrics"
	"github.com/taibuivan/novelia/internal/platform/validate"
)

// Service applies the failure policy for every AI-backed feature.
//
// Reader translations never fail: the caller gets the original text back and
// a false flag. Owner actions return an [apperr.AppError].
type Service struct {
	client *Client
	cache  Cache
	logger *slog.Logger
}

// NewService wires a service. client nil means no API key is configured;
// cache nil disables caching.
func NewService(client *Client, cache Cache, logger *slog.Logger) *Service {
	return &Service{client: client, cache: cache, logger: logger}
}

// Enabled reports whether an API client is configured.
func (service *Service) Enabled() bool {
	return service.client != nil
}

// ForReader translates text for display. It returns the original text and
// false whenever the translation cannot be produced.
func (service *Service) ForReader(ctx context.Context, text, lang string, markupAware bool) (string, bool) {
	translated, err := service.translate(ctx, text, lang, markupAware)
	if err != nil {
		service.logFailure(ctx, lang, err)
		return text, false
	}
	return translated, true
}

// LocalizeStory translates a story's title and synopsis concurrently. The
// story is returned unchanged unless both succeed.
func (service *Service) LocalizeStory(ctx context.Context, story catalog.Story, lang string) (catalog.Story, bool) {
	var title, synopsis string

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		title, err = service.translate(groupCtx, story.Title, lang, false)
		return err
	})
	group.Go(func() (err error) {
		synopsis, err = service.translate(groupCtx, story.Synopsis, lang, false)
		return err
	})

	if err := group.Wait(); err != nil {
		service.logFailure(ctx, lang, err, slog.String("story_id", story.ID))
		return story, false
	}

	story.Title = title
	story.Synopsis = synopsis
	return story, true
}

// LocalizeChapter translates a chapter's title and HTML content concurrently.
// The chapter is returned unchanged unless both succeed.
func (service *Service) LocalizeChapter(ctx context.Context, chapter catalog.Chapter, lang string) (catalog.Chapter, bool) {
	var title, content string

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		title, err = service.translate(groupCtx, chapter.Title, lang, false)
		return err
	})
	group.Go(func() (err error) {
		content, err = service.translate(groupCtx, chapter.Content, lang, true)
		return err
	})

	if err := group.Wait(); err != nil {
		service.logFailure(ctx, lang, err, slog.String("chapter_id", chapter.ID))
		return chapter, false
	}

	chapter.Title = title
	chapter.Content = content
	return chapter, true
}

// Improve polishes an owner's draft.
func (service *Service) Improve(ctx context.Context, text string) (string, error) {
	if service.client == nil {
		return "", errNotConfigured
	}
	if err := (&validate.Validator{}).Required("text", text).Err(); err != nil {
		return "", err
	}

	improved, err := service.client.Improve(ctx, text)
	if err != nil {
		return "", upstreamError("AI editing failed", err)
	}
	return improved, nil
}

// Synopsis drafts a synopsis for a story that does not have one yet.
func (service *Service) Synopsis(ctx context.Context, title, genre string) (string, error) {
	if service.client == nil {
		return "", errNotConfigured
	}
	validator := &validate.Validator{}
	validator.Required(catalog.FieldTitle, title).MaxLen(catalog.FieldTitle, title, 300)
	validator.MaxLen(catalog.FieldGenre, genre, 60)
	if err := validator.Err(); err != nil {
		return "", err
	}

	synopsis, err := service.client.GenerateSynopsis(ctx, title, genre)
	if err != nil {
		return "", upstreamError("Synopsis generation failed", err)
	}
	return synopsis, nil
}

// Ping runs the connection test against the API.
func (service *Service) Ping(ctx context.Context) error {
	if service.client == nil {
		return errNotConfigured
	}
	if err := service.client.Ping(ctx); err != nil {
		return upstreamError("The AI service is not reachable", err)
	}
	return nil
}

var errNotConfigured = apperr.ServiceUnavailable("AI features are not configured on this server")

// errSkipped marks a translation that was never attempted.
var errSkipped = errors.New("translate: no API key configured")

// errUnsupported marks a target language outside the supported list.
var errUnsupported = errors.New("translate: unsupported language")

func (service *Service) translate(ctx context.Context, text, lang string, markupAware bool) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	target, ok := Resolve(lang)
	if !ok {
		return "", errUnsupported
	}
	if service.client == nil {
		return "", errSkipped
	}

	key := CacheKey(target.Code, markupAware, text)
	if cached, hit := service.cacheGet(ctx, key); hit {
		return cached, nil
	}

	translated, err := service.client.Translate(ctx, Request{Text: text, Target: target.Name, MarkupAware: markupAware})
	if err != nil {
		return "", err
	}

	service.cacheSet(ctx, key, translated)
	return translated, nil
}

func (service *Service) cacheGet(ctx context.Context, key string) (string, bool) {
	if service.cache == nil {
		return "", false
	}

	value, hit, err := service.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.TranslationCache.WithLabelValues("error").Inc()
		service.logger.WarnContext(ctx, "translation_cache_read_failed", slog.Any("error", err))
		return "", false
	case hit:
		metrics.TranslationCache.WithLabelValues("hit").Inc()
		return value, true
	default:
		metrics.TranslationCache.WithLabelValues("miss").Inc()
		return "", false
	}
}

func (service *Service) cacheSet(ctx context.Context, key, value string) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Set(ctx, key, value); err != nil {
		service.logger.WarnContext(ctx, "translation_cache_write_failed", slog.Any("error", err))
	}
}

func (service *Service) logFailure(ctx context.Context, lang string, err error, attrs ...any) {
	if errors.Is(err, errSkipped) || errors.Is(err, errUnsupported) {
		service.logger.DebugContext(ctx, "translation_skipped", append(attrs, slog.String("lang", lang), slog.Any("reason", err))...)
		return
	}
	service.logger.WarnContext(ctx, "translation_failed", append(attrs, slog.String("lang", lang), slog.Any("error", err))...)
}

func upstreamError(message string, err error) error {
	switch {
	case errors.Is(err, ErrTruncated):
		return apperr.Upstream(message+": the response was cut off. Try a shorter passage.", err)
	case errors.Is(err, ErrMarkupChanged):
		return apperr.Upstream(message+": the response changed the formatting. Nothing was applied.", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.Upstream(message+": the AI service timed out.", err)
	default:
		return apperr.Upstream(message, err)
	}
}
