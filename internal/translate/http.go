// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/novelia/internal/platform/middleware"
	requestutil "github.com/taibuivan/novelia/internal/platform/request"
	"github.com/taibuivan/novelia/internal/platform/respond"
)

// Handler exposes translation and the owner's AI editing tools.
type Handler struct {
	service *Service
	owner   middleware.OwnerChecker
}

// NewHandler returns a translate handler.
func NewHandler(service *Service, owner middleware.OwnerChecker) *Handler {
	return &Handler{service: service, owner: owner}
}

// RegisterRoutes mounts the translate routes on an /api/v1 router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/languages", handler.listLanguages)
	router.Post("/translate", handler.translate)

	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(middleware.RequireOwner(handler.owner))

		ownerRoute.Post("/chapters/improve", handler.improve)
		ownerRoute.Post("/stories/synopsis", handler.synopsis)
		ownerRoute.Get("/ai/status", handler.status)
	})
}

type translateInput struct {
	Text   string `json:"text"`
	Lang   string `json:"lang"`
	Markup bool   `json:"markup"`
}

type translateOutput struct {
	Text       string `json:"text"`
	Language   string `json:"language"`
	Translated bool   `json:"translated"`
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Languages())
}

/*
translate handles POST /api/v1/translate.

It always answers 200. When the text cannot be translated the original comes
back with translated=false and language "original".
*/
func (handler *Handler) translate(writer http.ResponseWriter, request *http.Request) {
	var input translateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	text, translated := handler.service.ForReader(request.Context(), input.Text, input.Lang, input.Markup)

	output := translateOutput{Text: text, Language: Original, Translated: translated}
	if translated {
		if target, ok := Resolve(input.Lang); ok {
			output.Language = target.Code
		}
	}
	respond.OK(writer, output)
}

func (handler *Handler) improve(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Text string `json:"text"`
	}
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	improved, err := handler.service.Improve(request.Context(), input.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"text": improved})
}

func (handler *Handler) synopsis(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Title string `json:"title"`
		Genre string `json:"genre"`
	}
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	synopsis, err := handler.service.Synopsis(request.Context(), input.Title, input.Genre)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"synopsis": synopsis})
}

func (handler *Handler) status(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Ping(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"connected": true})
}
