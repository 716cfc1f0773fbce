// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junctionhq/junction/internal/integration"
	"github.com/junctionhq/junction/internal/models"
)

func testFetcher() *HTTPFetcher {
	return NewHTTPFetcher(Options{Timeout: 2 * time.Second})
}

func sonarrRef(baseURL string) integration.Ref {
	return integration.Ref{
		ID:      "sonarr-1",
		Type:    integration.TypeSonarr,
		Name:    "Sonarr",
		Enabled: true,
		BaseURL: baseURL,
		APIKey:  "secret",
	}
}

func TestHTTPFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/queue", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalRecords": 7}`))
	}))
	defer srv.Close()

	o := testFetcher().FetchMetric(context.Background(), sonarrRef(srv.URL), MetricQueue)
	require.True(t, o.OK(), "reason: %s", o.Reason())

	q, ok := As[models.ArrQueue](o)
	require.True(t, ok)
	assert.Equal(t, 7, q.TotalRecords)
}

func TestHTTPFetcherErrorStatusIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	o := testFetcher().FetchMetric(context.Background(), sonarrRef(srv.URL), MetricQueue)
	assert.False(t, o.OK())
	assert.Contains(t, o.Reason(), "502")
}

func TestHTTPFetcherUnsupportedMetricIsFailure(t *testing.T) {
	o := testFetcher().FetchMetric(context.Background(), sonarrRef("http://localhost:1"), MetricClients)
	assert.False(t, o.OK())
	assert.Contains(t, o.Reason(), "does not support")
}

func TestHTTPFetcherDecodeErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	o := testFetcher().FetchMetric(context.Background(), sonarrRef(srv.URL), MetricQueue)
	assert.False(t, o.OK())
	assert.Contains(t, o.Reason(), "decode")
}

func TestHTTPFetcherTimeoutIsFailure(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: 50 * time.Millisecond})
	o := f.FetchMetric(context.Background(), sonarrRef(srv.URL), MetricQueue)
	assert.False(t, o.OK())
}

func TestHTTPFetcherBreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(Options{Timeout: time.Second, BreakerEnabled: true})
	ref := sonarrRef(srv.URL)

	for i := 0; i < 10; i++ {
		o := f.FetchMetric(context.Background(), ref, MetricQueue)
		assert.False(t, o.OK())
	}

	// Breaker is open by now; subsequent fetches fail fast as outcomes, not panics.
	o := f.FetchMetric(context.Background(), ref, MetricQueue)
	assert.False(t, o.OK())
}
