// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package fetch

import (
	"context"

	"github.com/junctionhq/junction/internal/integration"
)

// Metric names understood by the adapter. Each integration type supports a
// subset; requesting an unsupported pair yields a Failure outcome.
const (
	MetricRequestCounts = "request-counts"
	MetricIndexerHealth = "indexer-health"
	MetricQueue         = "queue"
	MetricWanted        = "wanted"
	MetricTransfer      = "transfer"
	MetricActivity      = "activity"
	MetricHomeStats     = "home-stats"
	MetricLibraryStats  = "library-stats"
	MetricClients       = "clients"
	MetricGuests        = "guests"
	MetricSystem        = "system"
)

// Fetcher performs one metric fetch against one integration. Implementations
// must honor ctx cancellation and must represent every failure as a Failure
// outcome rather than an error.
type Fetcher interface {
	FetchMetric(ctx context.Context, ref integration.Ref, metric string) Outcome
}

// Func adapts a function to the Fetcher interface, mainly for tests.
type Func func(ctx context.Context, ref integration.Ref, metric string) Outcome

// FetchMetric implements Fetcher.
func (f Func) FetchMetric(ctx context.Context, ref integration.Ref, metric string) Outcome {
	return f(ctx, ref, metric)
}
