// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownerFlag bool

func (o ownerFlag) IsAuthenticated(context.Context) bool { return bool(o) }

type upperLocalizer struct{}

func (upperLocalizer) LocalizeStory(_ context.Context, story Story, _ string) (Story, bool) {
	story.Title = strings.ToUpper(story.Title)
	return story, true
}

func newRouter(t *testing.T, owner bool) (http.Handler, fixture) {
	f := newFixture(t, &memoryRemote{fail: errConnectionRefused})
	router := chi.NewRouter()
	NewHandler(f.service, ownerFlag(owner), upperLocalizer{}).RegisterRoutes(router)
	return router, f
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

func TestHandler_OwnerRoutesRequireSession(t *testing.T) {
	router, _ := newRouter(t, false)

	for _, route := range []struct{ method, target string }{
		{http.MethodPost, "/stories"},
		{http.MethodPut, "/stories/1"},
		{http.MethodDelete, "/stories/1"},
		{http.MethodPost, "/stories/publish"},
		{http.MethodPost, "/chapters"},
		{http.MethodDelete, "/chapters/c1"},
	} {
		recorder := serve(router, route.method, route.target, `{}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, route.method+" "+route.target)
	}

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/stories", "").Code)
}

func TestHandler_StoryLifecycle(t *testing.T) {
	router, _ := newRouter(t, true)

	created := serve(router, http.MethodPost, "/stories",
		`{"title":"Night Train","genre":"Mystery","synopsis":"Someone is missing.","coverUrl":"https://example.com/c.jpg"}`)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var envelope struct {
		Data Story `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	id := envelope.Data.ID
	require.NotEmpty(t, id)
	assert.Equal(t, StatusOngoing, envelope.Data.Status)

	fetched := serve(router, http.MethodGet, "/stories/"+id+"?lang=fr", "")
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Contains(t, fetched.Body.String(), `"title":"NIGHT TRAIN"`)
	assert.Equal(t, "fr", fetched.Header().Get("Content-Language"))

	listed := serve(router, http.MethodGet, "/stories?q=night&limit=5", "")
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Contains(t, listed.Body.String(), `"total":1`)

	invalid := serve(router, http.MethodPut, "/stories/"+id, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/stories/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/stories/"+id, "").Code)
}

func TestHandler_PublishAndChapters(t *testing.T) {
	router, _ := newRouter(t, true)

	published := serve(router, http.MethodPost, "/stories/publish", `{
		"story": {"id":"s9","title":"Serial","genre":"Drama","synopsis":"Weekly."},
		"chapters": [{"title":"One","content":"<p>1</p>"},{"title":"Two","content":"<p>2</p>"}]
	}`)
	require.Equal(t, http.StatusCreated, published.Code, published.Body.String())

	chapters := serve(router, http.MethodGet, "/stories/s9/chapters", "")
	require.Equal(t, http.StatusOK, chapters.Code)

	var envelope struct {
		Data []Chapter `json:"data"`
	}
	require.NoError(t, json.Unmarshal(chapters.Body.Bytes(), &envelope))
	assert.Equal(t, []string{"One", "Two"}, titles(envelope.Data))

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/chapters/missing", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/chapters", `not json`).Code)
}
