// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type ownerFlag bool

func (o ownerFlag) IsAuthenticated(context.Context) bool { return bool(o) }

func newTranslateRouter(service *Service, owner bool) http.Handler {
	router := chi.NewRouter()
	NewHandler(service, ownerFlag(owner)).RegisterRoutes(router)
	return router
}

func post(router http.Handler, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return recorder
}

func TestHandler_Translate(t *testing.T) {
	service, _ := newTestService(echoUpper, nil)
	router := newTranslateRouter(service, false)

	recorder := post(router, "/translate", `{"text":"<p>hi</p>","lang":"fr","markup":true}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"text":"<p>HI</p>","language":"fr","translated":true}}`, recorder.Body.String())

	fallback := post(router, "/translate", `{"text":"hi","lang":"original"}`)
	assert.Equal(t, http.StatusOK, fallback.Code)
	assert.JSONEq(t, `{"data":{"text":"hi","language":"original","translated":false}}`, fallback.Body.String())

	assert.Equal(t, http.StatusBadRequest, post(router, "/translate", `{`).Code)
}

func TestHandler_OwnerToolsRequireSession(t *testing.T) {
	service, generator := newTestService(answer("Fixed."), nil)
	router := newTranslateRouter(service, false)

	assert.Equal(t, http.StatusUnauthorized, post(router, "/chapters/improve", `{"text":"x"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(router, "/stories/synopsis", `{"title":"x"}`).Code)
	assert.Zero(t, generator.calls())
}

func TestHandler_OwnerTools(t *testing.T) {
	service, _ := newTestService(answer("Fixed."), nil)
	router := newTranslateRouter(service, true)

	improved := post(router, "/chapters/improve", `{"text":"fixd"}`)
	assert.Equal(t, http.StatusOK, improved.Code)
	assert.JSONEq(t, `{"data":{"text":"Fixed."}}`, improved.Body.String())

	synopsis := post(router, "/stories/synopsis", `{"title":"Night Train","genre":"Mystery"}`)
	assert.Equal(t, http.StatusOK, synopsis.Code)
	assert.JSONEq(t, `{"data":{"synopsis":"Fixed."}}`, synopsis.Body.String())

	unconfigured := newTranslateRouter(NewService(nil, nil, service.logger), true)
	assert.Equal(t, http.StatusServiceUnavailable, post(unconfigured, "/chapters/improve", `{"text":"fixd"}`).Code)
}

func TestHandler_Languages(t *testing.T) {
	service, _ := newTestService(echoUpper, nil)
	recorder := httptest.NewRecorder()
	newTranslateRouter(service, false).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/languages", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"ja"`)
}
