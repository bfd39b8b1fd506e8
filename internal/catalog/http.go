// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/novelia/internal/platform/apperr"
	"github.com/taibuivan/novelia/internal/platform/middleware"
	requestutil "github.com/taibuivan/novelia/internal/platform/request"
	"github.com/taibuivan/novelia/internal/platform/respond"
	"github.com/taibuivan/novelia/pkg/pagination"
)

// Localizer translates the display fields of a story. It reports whether the
// returned story is actually translated.
type Localizer interface {
	LocalizeStory(ctx context.Context, story Story, lang string) (Story, bool)
}

// Handler exposes the catalogue over HTTP.
type Handler struct {
	service   *Service
	owner     middleware.OwnerChecker
	localizer Localizer
}

// NewHandler returns a catalogue handler. localizer may be nil.
func NewHandler(service *Service, owner middleware.OwnerChecker, localizer Localizer) *Handler {
	return &Handler{service: service, owner: owner, localizer: localizer}
}

// publishInput is the body of a full story publish.
type publishInput struct {
	Story    Story     `json:"story"`
	Chapters []Chapter `json:"chapters"`
}

// RegisterRoutes mounts the catalogue routes on an /api/v1 router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/stories", handler.listStories)
	router.Get("/genres", handler.listGenres)
	router.Get("/stories/{id}", handler.getStory)
	router.Get("/stories/{id}/chapters", handler.listChapters)
	router.Get("/chapters/{id}", handler.getChapter)

	// Owner only
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(middleware.RequireOwner(handler.owner))

		ownerRoute.Post("/stories", handler.createStory)
		ownerRoute.Post("/stories/publish", handler.publishStory)
		ownerRoute.Put("/stories/{id}", handler.updateStory)
		ownerRoute.Delete("/stories/{id}", handler.deleteStory)

		ownerRoute.Post("/chapters", handler.createChapter)
		ownerRoute.Put("/chapters/{id}", handler.updateChapter)
		ownerRoute.Delete("/chapters/{id}", handler.deleteChapter)
	})
}

// # Stories

func (handler *Handler) listStories(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Genre: request.URL.Query().Get("genre"),
	}

	stories, meta := pagination.Window(handler.service.SearchStories(request.Context(), filter), paginationParams)
	respond.Paginated(writer, stories, meta)
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Genres(request.Context()))
}

func (handler *Handler) getStory(writer http.ResponseWriter, request *http.Request) {
	story, found := handler.service.GetStory(request.Context(), requestutil.ID(request, "id"))
	if !found {
		respond.Error(writer, request, apperr.NotFound("Story"))
		return
	}

	if lang := request.URL.Query().Get("lang"); lang != "" && handler.localizer != nil {
		localized, translated := handler.localizer.LocalizeStory(request.Context(), story, lang)
		if translated {
			writer.Header().Set("Content-Language", lang)
		}
		story = localized
	}

	respond.OK(writer, story)
}

func (handler *Handler) createStory(writer http.ResponseWriter, request *http.Request) {
	var input Story
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	story, err := handler.service.SaveStory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, story)
}

func (handler *Handler) updateStory(writer http.ResponseWriter, request *http.Request) {
	var input Story
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.ID(request, "id")

	story, err := handler.service.SaveStory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, story)
}

func (handler *Handler) deleteStory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteStory(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) publishStory(writer http.ResponseWriter, request *http.Request) {
	var input publishInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.PublishStory(request.Context(), input.Story, input.Chapters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

// # Chapters

func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListChaptersByStory(request.Context(), requestutil.ID(request, "id")))
}

func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	chapter, found := handler.service.GetChapter(request.Context(), requestutil.ID(request, "id"))
	if !found {
		respond.Error(writer, request, apperr.NotFound("Chapter"))
		return
	}
	respond.OK(writer, chapter)
}

func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	var input Chapter
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.SaveChapter(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, chapter)
}

func (handler *Handler) updateChapter(writer http.ResponseWriter, request *http.Request) {
	var input Chapter
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = requestutil.ID(request, "id")

	chapter, err := handler.service.SaveChapter(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteChapter(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
