// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/novelia/internal/catalog"
	"github.com/taibuivan/novelia/internal/platform/apperr"
	requestutil "github.com/taibuivan/novelia/internal/platform/request"
	"github.com/taibuivan/novelia/internal/platform/respond"
)

// LanguageOriginal means "show the chapter as written".
const LanguageOriginal = "original"

// Translator localises a chapter's title and content. It never fails: when it
// cannot translate it returns the chapter unchanged and false.
type Translator interface {
	LocalizeChapter(ctx context.Context, chapter catalog.Chapter, lang string) (catalog.Chapter, bool)
}

// View is everything a client needs to render one reading screen.
type View struct {
	StoryID           string   `json:"storyId"`
	StoryTitle        string   `json:"storyTitle"`
	ChapterID         string   `json:"chapterId"`
	ChapterTitle      string   `json:"chapterTitle"`
	Content           string   `json:"content"`
	Query             string   `json:"query"`
	MatchCount        int      `json:"matchCount"`
	CurrentMatch      int      `json:"currentMatch"`
	Anchor            string   `json:"anchor,omitempty"`
	PreviousChapterID string   `json:"previousChapterId,omitempty"`
	NextChapterID     string   `json:"nextChapterId,omitempty"`
	Language          string   `json:"language"`
	Settings          Settings `json:"settings"`
}

// Handler serves the reading view.
type Handler struct {
	catalog    *catalog.Service
	translator Translator
}

// NewHandler returns a reader handler. translator may be nil.
func NewHandler(catalogService *catalog.Service, translator Translator) *Handler {
	return &Handler{catalog: catalogService, translator: translator}
}

// RegisterRoutes mounts the reader routes on an /api/v1 router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/chapters/{id}/read", handler.read)
}

/*
read handles GET /api/v1/chapters/{id}/read.

Query parameters:
  - q: search query, matched literally and case-insensitively
  - match: requested current match (1-based), ignored when out of range
  - nav: "next" or "prev", applied after match
  - lang: target language, "original" or empty for the text as written
  - fontSize, serif: reading settings
*/
func (handler *Handler) read(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	chapter, found := handler.catalog.GetChapter(ctx, requestutil.ID(request, "id"))
	if !found {
		respond.Error(writer, request, apperr.NotFound("Chapter"))
		return
	}

	view := View{
		StoryID:   chapter.StoryID,
		ChapterID: chapter.ID,
		Language:  LanguageOriginal,
		Settings:  SettingsFromRequest(request),
	}

	if story, ok := handler.catalog.GetStory(ctx, chapter.StoryID); ok {
		view.StoryTitle = story.Title
	}

	previous, next := handler.catalog.Neighbours(ctx, chapter)
	if previous != nil {
		view.PreviousChapterID = previous.ID
	}
	if next != nil {
		view.NextChapterID = next.ID
	}

	lang := request.URL.Query().Get("lang")
	if lang != "" && lang != LanguageOriginal && handler.translator != nil {
		localized, translated := handler.translator.LocalizeChapter(ctx, chapter, lang)
		if translated {
			chapter = localized
			view.Language = lang
		}
	}
	view.ChapterTitle = chapter.Title

	search := NewSearch(chapter.Content)
	search.SetQuery(request.URL.Query().Get("q"))
	search.Select(requestutil.QueryInt(request, "match", 0))

	switch request.URL.Query().Get("nav") {
	case "next":
		search.Next()
	case "prev":
		search.Previous()
	}

	view.Query = search.Query()
	view.Content = search.Rendered()
	view.MatchCount = search.Count()
	view.CurrentMatch = search.Current()
	view.Anchor = search.Anchor()

	respond.OK(writer, view)
}
