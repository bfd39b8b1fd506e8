// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAI(t *testing.T) {
	before := testutil.ToFloat64(aiRequests.WithLabelValues("translate", "error"))

	ObserveAI("translate", time.Now(), errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(aiRequests.WithLabelValues("translate", "error")))
}

func TestHandler(t *testing.T) {
	RemoteFallbacks.WithLabelValues("list_stories").Inc()

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "novelia_remote_fallback_total")
}
