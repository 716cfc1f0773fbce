// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package api

import (
	"net/http"

	"github.com/junctionhq/junction/internal/aggregate"
	"github.com/junctionhq/junction/internal/analytics"
	"github.com/junctionhq/junction/internal/classify"
	"github.com/junctionhq/junction/internal/correlate"
	"github.com/junctionhq/junction/internal/fetch"
	"github.com/junctionhq/junction/internal/integration"
	"github.com/junctionhq/junction/internal/models"
)

// popularMissingLimit caps the cross-referenced subtitle lists.
const popularMissingLimit = 10

// Handler serves the dashboard endpoints. Each handler aggregates its plan,
// reconciles the outcomes, and responds with a complete document; upstream
// failures surface as absent fields and nil sources, never as HTTP errors.
type Handler struct {
	orch *aggregate.Orchestrator
	dir  integration.Directory
}

// NewHandler creates the endpoint handler.
func NewHandler(orch *aggregate.Orchestrator, dir integration.Directory) *Handler {
	return &Handler{orch: orch, dir: dir}
}

func typePtr(t integration.Type) *integration.Type { return &t }

// queueStage builds the pipeline stage for one *arr application: the queue
// size is the in-flight count, the wanted/missing total is pending work.
func queueStage(res aggregate.Result, t integration.Type) models.PipelineStage {
	var stage models.PipelineStage
	if q, ok := aggregate.Payload[models.ArrQueue](res, t, fetch.MetricQueue); ok {
		stage.Count = q.TotalRecords
		stage.Source = typePtr(t)
	}
	if w, ok := aggregate.Payload[models.ArrWanted](res, t, fetch.MetricWanted); ok {
		stage.Pending = w.TotalRecords
		if stage.Source == nil {
			stage.Source = typePtr(t)
		}
	}
	return stage
}

// sourceIf returns a source annotation only when the fetch succeeded.
func sourceIf(res aggregate.Result, t integration.Type, metric string) *integration.Type {
	if res.Outcome(t, metric).OK() {
		return typePtr(t)
	}
	return nil
}

// MediaPipeline handles GET /api/v1/dashboard/media-pipeline.
func (h *Handler) MediaPipeline(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planMediaPipeline)

	var doc models.MediaPipelineDoc

	if rc, ok := aggregate.Payload[models.RequestCounts](res, integration.TypeOverseerr, fetch.MetricRequestCounts); ok {
		doc.Requests = models.PipelineStage{
			Count:   rc.Pending,
			Pending: rc.Approved,
			Source:  typePtr(integration.TypeOverseerr),
		}
	}
	if ih, ok := aggregate.Payload[models.IndexerHealth](res, integration.TypeProwlarr, fetch.MetricIndexerHealth); ok {
		doc.IndexerHealth = models.PipelineStage{
			Count:   ih.Healthy,
			Pending: ih.Unhealthy,
			Source:  typePtr(integration.TypeProwlarr),
		}
	}
	doc.TVQueue = queueStage(res, integration.TypeSonarr)
	doc.MovieQueue = queueStage(res, integration.TypeRadarr)

	// Downloads aggregate across both clients; the stage source is the first
	// contributing client.
	if ti, ok := aggregate.Payload[models.TransferInfo](res, integration.TypeQBittorrent, fetch.MetricTransfer); ok {
		doc.Downloads.Count += ti.ActiveDownloads
		doc.Downloads.Source = typePtr(integration.TypeQBittorrent)
	}
	if sq, ok := aggregate.Payload[models.SabQueue](res, integration.TypeSABnzbd, fetch.MetricQueue); ok {
		doc.Downloads.Count += sq.ActiveCount
		if doc.Downloads.Source == nil {
			doc.Downloads.Source = typePtr(integration.TypeSABnzbd)
		}
	}

	if act, ok := aggregate.Payload[models.Activity](res, integration.TypeTautulli, fetch.MetricActivity); ok {
		doc.Transcoding = models.PipelineStage{Count: act.TranscodeCount, Source: typePtr(integration.TypeTautulli)}
	}
	if src, lib := aggregate.PickFirst[models.LibraryStats](res, aggregate.PrefLibraryStats); src != nil {
		doc.Library = models.PipelineStage{Count: lib.Movies + lib.Series, Source: src}
	}

	// The flow stages participate in bottleneck detection; indexer health and
	// library are state, not flow.
	stages := []analytics.StageCount{
		{Name: "requests", Count: doc.Requests.Count},
		{Name: "tv_queue", Count: doc.TVQueue.Count},
		{Name: "movie_queue", Count: doc.MovieQueue.Count},
		{Name: "downloads", Count: doc.Downloads.Count},
		{Name: "transcoding", Count: doc.Transcoding.Count},
	}
	doc.Bottleneck = analytics.Bottleneck(stages)
	for _, s := range stages {
		doc.TotalInPipeline += s.Count
	}

	rw.Success(doc)
}

// SubtitleHealth handles GET /api/v1/dashboard/subtitle-health.
func (h *Handler) SubtitleHealth(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planSubtitleHealth)

	var doc models.SubtitleHealthDoc
	doc.SubtitleSource = sourceIf(res, integration.TypeBazarr, fetch.MetricWanted)
	doc.ActivitySource = sourceIf(res, integration.TypeTautulli, fetch.MetricHomeStats)

	wanted, _ := aggregate.Payload[models.SubtitleWanted](res, integration.TypeBazarr, fetch.MetricWanted)
	doc.SeriesMissing = wanted.SeriesMissing
	doc.MoviesMissing = wanted.MoviesMissing
	doc.TotalMissing = wanted.SeriesMissing + wanted.MoviesMissing
	doc.HealthScore = analytics.HealthScore(doc.TotalMissing)

	missing := make([]models.MissingSubtitle, 0, len(wanted.Items))
	for _, item := range wanted.Items {
		missing = append(missing, models.MissingSubtitle{
			Title:    item.Title,
			Language: item.Language,
			Series:   item.Series,
		})
	}

	if stats, ok := aggregate.Payload[models.HomeStats](res, integration.TypeTautulli, fetch.MetricHomeStats); ok {
		// Popular-missing ranks by watch count; recently-watched preserves the
		// recency order reported upstream.
		enriched := correlate.EnrichWithWatchCounts(missing, stats.MostWatched)
		popular := enriched[:0:0]
		for _, m := range enriched {
			if m.WatchCount > 0 {
				popular = append(popular, m)
			}
		}
		doc.PopularMissing = correlate.RankByWatchCount(popular, popularMissingLimit)
		doc.RecentlyWatched = correlate.CrossReference(missing, stats.RecentlyWatched, popularMissingLimit)
	}

	rw.Success(doc)
}

// DownloadActivity handles GET /api/v1/dashboard/download-activity.
func (h *Handler) DownloadActivity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planDownloadActivity)

	var doc models.DownloadActivityDoc
	doc.Sources = []models.DownloadSource{}

	if ti, ok := aggregate.Payload[models.TransferInfo](res, integration.TypeQBittorrent, fetch.MetricTransfer); ok {
		doc.Sources = append(doc.Sources, models.DownloadSource{
			Source:      integration.TypeQBittorrent,
			ActiveCount: ti.ActiveDownloads,
			SpeedMBps:   float64(ti.DownloadSpeed) / 1e6,
		})
	}
	if sq, ok := aggregate.Payload[models.SabQueue](res, integration.TypeSABnzbd, fetch.MetricQueue); ok {
		doc.Sources = append(doc.Sources, models.DownloadSource{
			Source:      integration.TypeSABnzbd,
			ActiveCount: sq.ActiveCount,
			SpeedMBps:   sq.SpeedKBps / 1e3,
		})
	}
	for _, s := range doc.Sources {
		doc.TotalActive += s.ActiveCount
		doc.TotalSpeedMBps += s.SpeedMBps
	}

	doc.ActivitySource = sourceIf(res, integration.TypeTautulli, fetch.MetricActivity)
	if act, ok := aggregate.Payload[models.Activity](res, integration.TypeTautulli, fetch.MetricActivity); ok {
		doc.StreamingBandwidthMbps = analytics.KbpsToMbps(float64(act.TotalBandwidthKbps))
	}

	// Both sides in Mbps: MB/s * 8 converts the download side.
	doc.ContentionFlag = analytics.Contention(doc.TotalSpeedMBps*8, doc.StreamingBandwidthMbps)

	rw.Success(doc)
}

// TranscodingResources handles GET /api/v1/dashboard/transcoding-resources.
func (h *Handler) TranscodingResources(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planTranscodingResources)

	var doc models.TranscodingResourcesDoc
	doc.ActivitySource = sourceIf(res, integration.TypeTautulli, fetch.MetricActivity)

	if act, ok := aggregate.Payload[models.Activity](res, integration.TypeTautulli, fetch.MetricActivity); ok {
		doc.ActiveStreams = act.StreamCount
		doc.Transcodes = act.TranscodeCount
		doc.DirectPlay = act.DirectPlayCount
		doc.DirectStream = act.DirectStreamCount
		for _, s := range act.Sessions {
			if s.HWTranscode {
				doc.HWTranscodes++
			}
		}
	}

	src, sys := aggregate.PickFirst[models.SystemStats](res, aggregate.PrefHostResources)
	doc.ResourceSource = src
	if src != nil {
		doc.CPUPercent = sys.CPUPercent
		doc.MemPercent = sys.MemPercent
		doc.CPUPerTranscode = analytics.ResourcePerUnit(sys.CPUPercent, doc.Transcodes)
		doc.ResourceBound = analytics.ResourceBound(sys.CPUPercent)
	}

	rw.Success(doc)
}

// ServiceMapping handles GET /api/v1/dashboard/service-mapping.
func (h *Handler) ServiceMapping(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planServiceMapping)

	var doc models.ServiceMappingDoc
	doc.GuestSource = sourceIf(res, integration.TypeProxmox, fetch.MetricGuests)

	enabled := h.dir.ListEnabled(integration.ServiceTypes())
	services := make([]correlate.Service, 0, len(enabled.All))
	for _, ref := range enabled.All {
		services = append(services, correlate.Service{Name: ref.Name, Type: string(ref.Type)})
	}

	guests, _ := aggregate.Payload[models.Guests](res, integration.TypeProxmox, fetch.MetricGuests)
	matches, unmapped := correlate.MatchServices(services, guests.Guests)

	doc.Services = make([]models.ServiceMapping, 0, len(matches))
	for _, m := range matches {
		sm := models.ServiceMapping{Service: m.Service.Name, Type: m.Service.Type}
		if m.Guest != nil {
			sm.Guest = &models.GuestSummary{ID: m.Guest.ID, Name: m.Guest.Name, Kind: m.Guest.Kind}
			sm.MatchBasis = "name"
		}
		doc.Services = append(doc.Services, sm)
	}
	doc.UnmappedGuests = make([]models.GuestSummary, 0, len(unmapped))
	for _, g := range unmapped {
		doc.UnmappedGuests = append(doc.UnmappedGuests, models.GuestSummary{ID: g.ID, Name: g.Name, Kind: g.Kind})
	}

	rw.Success(doc)
}

// ClientCorrelation handles GET /api/v1/dashboard/client-correlation.
func (h *Handler) ClientCorrelation(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planClientCorrelation)

	var doc models.ClientCorrelationDoc
	doc.NetworkSource = sourceIf(res, integration.TypeUniFi, fetch.MetricClients)
	doc.ActivitySource = sourceIf(res, integration.TypeTautulli, fetch.MetricActivity)

	clients, _ := aggregate.Payload[models.NetClients](res, integration.TypeUniFi, fetch.MetricClients)
	act, _ := aggregate.Payload[models.Activity](res, integration.TypeTautulli, fetch.MetricActivity)

	index := correlate.NewClientIndex(clients.Clients)
	matches, unmatched := correlate.MatchSessions(act.Sessions, index)

	doc.Sessions = make([]models.AnnotatedSession, 0, len(matches))
	for _, m := range matches {
		s := models.AnnotatedSession{
			SessionKey: m.Session.SessionKey,
			Title:      m.Session.Title,
			User:       m.Session.User,
			IPAddress:  m.Session.IPAddress,
			Player:     m.Session.Player,
		}
		if m.Client != nil {
			s.Client = &models.MatchedClient{
				Name:           m.Client.Name,
				MAC:            m.Client.MAC,
				ConnectionType: m.Client.ConnectionType,
			}
		}
		doc.Sessions = append(doc.Sessions, s)
	}
	doc.UnmatchedIPs = unmatched
	if doc.UnmatchedIPs == nil {
		doc.UnmatchedIPs = []string{}
	}

	rw.Success(doc)
}

// DiscoverTPLink handles GET /api/v1/dashboard/discover-tplink.
func (h *Handler) DiscoverTPLink(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res := h.orch.Aggregate(r.Context(), planDiscoverTPLink)

	doc := models.TPLinkDiscoveryDoc{
		Kasa:    []models.ClassifiedDevice{},
		Tapo:    []models.ClassifiedDevice{},
		TapoHub: []models.ClassifiedDevice{},
		Unknown: []models.ClassifiedDevice{},
	}

	clients, _ := aggregate.Payload[models.NetClients](res, integration.TypeUniFi, fetch.MetricClients)
	for _, c := range clients.Clients {
		f := classify.Classify(c.MAC, c.Hostname, c.Name)
		if !f.ShouldReport() {
			continue
		}
		dev := models.ClassifiedDevice{
			Name:             c.Name,
			Hostname:         c.Hostname,
			MAC:              c.MAC,
			IP:               c.IP,
			Classification:   string(f.Classification),
			Model:            f.Model,
			DeviceType:       classify.DeviceType(f),
			MACPrefixMatched: f.MACPrefixMatched,
		}
		switch f.Classification {
		case classify.Kasa:
			doc.Kasa = append(doc.Kasa, dev)
		case classify.Tapo:
			doc.Tapo = append(doc.Tapo, dev)
		case classify.TapoHub:
			doc.TapoHub = append(doc.TapoHub, dev)
		default:
			doc.Unknown = append(doc.Unknown, dev)
		}
		doc.TotalFound++
	}

	rw.Success(doc)
}
