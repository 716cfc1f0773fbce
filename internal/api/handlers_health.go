// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package api

import (
	"net/http"

	"github.com/junctionhq/junction/internal/integration"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status       string            `json:"status"`
	Integrations []integration.Ref `json:"integrations,omitempty"`
}

// HealthLive handles GET /api/v1/health/live. Liveness is unconditional: the
// process answering is the signal.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{Status: "ok"})
}

// HealthReady handles GET /api/v1/health/ready. Junction holds no state and
// opens no connections at startup, so readiness reports the configured
// integration inventory rather than probing upstreams.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	enabled := h.dir.ListEnabled(integration.AllTypes())
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:       "ok",
		Integrations: enabled.All,
	})
}
