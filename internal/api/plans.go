// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package api

import (
	"github.com/junctionhq/junction/internal/aggregate"
	"github.com/junctionhq/junction/internal/fetch"
	"github.com/junctionhq/junction/internal/integration"
)

// Fetch plans, one per endpoint. A plan is the complete list of upstream
// fetches the endpoint needs; the orchestrator issues them concurrently and
// absent integrations degrade to failure outcomes. Jellyfin and Netdata are
// conditional fallbacks: they are queried only when their preferred peer is
// not enabled, never fetched-and-discarded.
var (
	planMediaPipeline = aggregate.Plan{
		Endpoint: "media-pipeline",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeOverseerr, Metric: fetch.MetricRequestCounts},
			{Type: integration.TypeProwlarr, Metric: fetch.MetricIndexerHealth},
			{Type: integration.TypeSonarr, Metric: fetch.MetricQueue},
			{Type: integration.TypeSonarr, Metric: fetch.MetricWanted},
			{Type: integration.TypeRadarr, Metric: fetch.MetricQueue},
			{Type: integration.TypeRadarr, Metric: fetch.MetricWanted},
			{Type: integration.TypeQBittorrent, Metric: fetch.MetricTransfer},
			{Type: integration.TypeSABnzbd, Metric: fetch.MetricQueue},
			{Type: integration.TypeTautulli, Metric: fetch.MetricActivity},
			{Type: integration.TypePlex, Metric: fetch.MetricLibraryStats},
			{Type: integration.TypeJellyfin, Metric: fetch.MetricLibraryStats,
				SkipWhenEnabled: integration.TypePlex},
		},
	}

	planSubtitleHealth = aggregate.Plan{
		Endpoint: "subtitle-health",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeBazarr, Metric: fetch.MetricWanted},
			{Type: integration.TypeTautulli, Metric: fetch.MetricHomeStats},
		},
	}

	planDownloadActivity = aggregate.Plan{
		Endpoint: "download-activity",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeQBittorrent, Metric: fetch.MetricTransfer},
			{Type: integration.TypeSABnzbd, Metric: fetch.MetricQueue},
			{Type: integration.TypeTautulli, Metric: fetch.MetricActivity},
		},
	}

	planTranscodingResources = aggregate.Plan{
		Endpoint: "transcoding-resources",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeTautulli, Metric: fetch.MetricActivity},
			{Type: integration.TypeGlances, Metric: fetch.MetricSystem},
			{Type: integration.TypeNetdata, Metric: fetch.MetricSystem,
				SkipWhenEnabled: integration.TypeGlances},
		},
	}

	planServiceMapping = aggregate.Plan{
		Endpoint: "service-mapping",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeProxmox, Metric: fetch.MetricGuests},
		},
	}

	planClientCorrelation = aggregate.Plan{
		Endpoint: "client-correlation",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeUniFi, Metric: fetch.MetricClients},
			{Type: integration.TypeTautulli, Metric: fetch.MetricActivity},
		},
	}

	planDiscoverTPLink = aggregate.Plan{
		Endpoint: "discover-tplink",
		Specs: []aggregate.FetchSpec{
			{Type: integration.TypeUniFi, Metric: fetch.MetricClients},
		},
	}
)
