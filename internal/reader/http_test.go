// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/kv"
)

type shoutingTranslator struct{ calls int }

func (translator *shoutingTranslator) LocalizeChapter(_ context.Context, chapter catalog.Chapter, lang string) (catalog.Chapter, bool) {
	translator.calls++
	if lang == "xx" {
		return chapter, false
	}
	chapter.Title = strings.ToUpper(chapter.Title)
	chapter.Content = strings.ReplaceAll(chapter.Content, "key", "KEY")
	return chapter, true
}

func newReaderRouter(t *testing.T, translator Translator) http.Handler {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	local := catalog.NewLocalStore(kv.NewMemory(), logger)
	require.NoError(t, local.Seed(context.Background(), time.UnixMilli(1_700_000_000_000)))

	service := catalog.NewService(nil, local, time.Second, logger)
	router := chi.NewRouter()
	NewHandler(service, translator).RegisterRoutes(router)
	return router
}

func readView(t *testing.T, router http.Handler, target string) (int, View) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var envelope struct {
		Data View `json:"data"`
	}
	if recorder.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder.Code, envelope.Data
}

func TestHandler_ReadPlain(t *testing.T) {
	router := newReaderRouter(t, nil)

	code, view := readView(t, router, "/chapters/c1/read")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "1", view.StoryID)
	assert.Equal(t, "The Clockwork Alchemist", view.StoryTitle)
	assert.Equal(t, "Chapter 1: The Brass Key", view.ChapterTitle)
	assert.Empty(t, view.PreviousChapterID)
	assert.Equal(t, "c2", view.NextChapterID)
	assert.Zero(t, view.MatchCount)
	assert.Equal(t, LanguageOriginal, view.Language)
	assert.Equal(t, Settings{FontSize: DefaultFontSize, Serif: true}, view.Settings)
	assert.NotContains(t, view.Content, "<mark")
}

func TestHandler_ReadWithSearch(t *testing.T) {
	router := newReaderRouter(t, nil)

	_, view := readView(t, router, "/chapters/c1/read?q=the")
	require.Positive(t, view.MatchCount)
	assert.Equal(t, 1, view.CurrentMatch)
	assert.Equal(t, "match-1", view.Anchor)

	_, previous := readView(t, router, "/chapters/c1/read?q=the&nav=prev")
	assert.Equal(t, view.MatchCount, previous.CurrentMatch, "previous from the first match wraps to the last")

	_, selected := readView(t, router, "/chapters/c1/read?q=the&match=2&nav=next")
	assert.Equal(t, 3, selected.CurrentMatch)
	assert.Contains(t, selected.Content, `id="match-3" data-match="3" class="match match-current"`)

	_, second := readView(t, router, "/chapters/c2/read?q=guild")
	assert.Equal(t, 1, second.MatchCount)
	assert.Equal(t, "c1", second.PreviousChapterID)
	assert.Empty(t, second.NextChapterID)
}

func TestHandler_ReadTranslated(t *testing.T) {
	translator := &shoutingTranslator{}
	router := newReaderRouter(t, translator)

	_, original := readView(t, router, "/chapters/c1/read?lang=original&q=KEY")
	assert.Zero(t, translator.calls)
	assert.Equal(t, LanguageOriginal, original.Language)

	_, view := readView(t, router, "/chapters/c1/read?lang=fr&q=KEY")
	assert.Equal(t, 1, translator.calls)
	assert.Equal(t, "fr", view.Language)
	assert.Equal(t, "CHAPTER 1: THE BRASS KEY", view.ChapterTitle)
	assert.Contains(t, view.Content, `class="match match-current">KEY</mark>`)

	_, failed := readView(t, router, "/chapters/c1/read?lang=xx")
	assert.Equal(t, LanguageOriginal, failed.Language)
	assert.Equal(t, "Chapter 1: The Brass Key", failed.ChapterTitle)
}

func TestHandler_ReadMissingChapter(t *testing.T) {
	router := newReaderRouter(t, nil)

	code, _ := readView(t, router, "/chapters/nope/read")
	assert.Equal(t, http.StatusNotFound, code)
}
