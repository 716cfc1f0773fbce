// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package metrics provides Prometheus instrumentation for Junction:
// upstream fetch outcomes and latency, circuit breaker state, and API
// endpoint throughput.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream fetch metrics
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "junction_fetches_total",
			Help: "Total number of upstream metric fetches",
		},
		[]string{"integration", "metric", "outcome"}, // outcome: success, failure
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "junction_fetch_duration_seconds",
			Help:    "Duration of upstream metric fetches in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"integration", "metric"},
	)

	BreakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "junction_breaker_open",
			Help: "Whether the circuit breaker for an integration is open (1) or closed (0)",
		},
		[]string{"integration"},
	)

	// Aggregation metrics
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "junction_aggregations_total",
			Help: "Total number of aggregation requests by endpoint",
		},
		[]string{"endpoint"},
	)

	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "junction_aggregation_duration_seconds",
			Help:    "End-to-end aggregation duration (fan-out join included)",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "junction_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "junction_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// ObserveFetch records one completed fetch.
func ObserveFetch(integration, metric string, ok bool, elapsed time.Duration) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	FetchesTotal.WithLabelValues(integration, metric, outcome).Inc()
	FetchDuration.WithLabelValues(integration, metric).Observe(elapsed.Seconds())
}

// ObserveAPIRequest records one completed API request.
func ObserveAPIRequest(method, endpoint string, status int, elapsed time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// SetBreakerOpen publishes the breaker state for an integration.
func SetBreakerOpen(integration string, open bool) {
	v := 0.0
	if open {
		v = 1.0
	}
	BreakerOpen.WithLabelValues(integration).Set(v)
}
