// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP surface.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the given handler and middleware factory.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	if mw == nil {
		mw = NewMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup configures all routes. Every dashboard endpoint is read-only GET;
// chi rejects other methods with 405.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(Recoverer())
	r.Use(router.middleware.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics())
		r.Use(RequestLogging())

		r.Get("/media-pipeline", router.handler.MediaPipeline)
		r.Get("/subtitle-health", router.handler.SubtitleHealth)
		r.Get("/download-activity", router.handler.DownloadActivity)
		r.Get("/transcoding-resources", router.handler.TranscodingResources)
		r.Get("/service-mapping", router.handler.ServiceMapping)
		r.Get("/client-correlation", router.handler.ClientCorrelation)
		r.Get("/discover-tplink", router.handler.DiscoverTPLink)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
