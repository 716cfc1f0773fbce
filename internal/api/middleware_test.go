// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovererWritesGenericErrorDocument(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	h := Recoverer()(panicking)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/media-pipeline", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeInternalError, envelope.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom", "panic detail never leaks to the client")
}

func TestRateLimitEnforced(t *testing.T) {
	mw := NewMiddleware(&MiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := mw.RateLimit()(ok)

	statuses := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/media-pipeline", nil)
		req.RemoteAddr = "10.1.2.3:4444"
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestGenerateETagIsStable(t *testing.T) {
	a := generateETag([]byte(`{"x":1}`))
	b := generateETag([]byte(`{"x":1}`))
	c := generateETag([]byte(`{"x":2}`))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
