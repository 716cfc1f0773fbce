// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package models

import "github.com/junctionhq/junction/internal/integration"

// PipelineStage is one stage of the media pipeline. Source is nil when no
// contributing integration was available; Count is then zero, never an error.
type PipelineStage struct {
	Count   int               `json:"count"`
	Pending int               `json:"pending"`
	Source  *integration.Type `json:"source"`
}

// MediaPipelineDoc is the media-pipeline endpoint document. Stage order here
// is the declared order used for bottleneck tie-breaking.
type MediaPipelineDoc struct {
	Requests        PipelineStage `json:"requests"`
	IndexerHealth   PipelineStage `json:"indexer_health"`
	TVQueue         PipelineStage `json:"tv_queue"`
	MovieQueue      PipelineStage `json:"movie_queue"`
	Downloads       PipelineStage `json:"downloads"`
	Transcoding     PipelineStage `json:"transcoding"`
	Library         PipelineStage `json:"library"`
	Bottleneck      *string       `json:"bottleneck"`
	TotalInPipeline int           `json:"total_in_pipeline"`
}

// MissingSubtitle is a missing-subtitle record, optionally enriched with a
// watch count when the title cross-references current popularity data.
type MissingSubtitle struct {
	Title      string `json:"title"`
	Language   string `json:"language"`
	Series     bool   `json:"series"`
	WatchCount int    `json:"watch_count,omitempty"`
}

// SubtitleHealthDoc is the subtitle-health endpoint document.
type SubtitleHealthDoc struct {
	SeriesMissing   int               `json:"series_missing"`
	MoviesMissing   int               `json:"movies_missing"`
	TotalMissing    int               `json:"total_missing"`
	HealthScore     int               `json:"health_score"`
	PopularMissing  []MissingSubtitle `json:"popular_missing"`
	RecentlyWatched []MissingSubtitle `json:"recently_watched"`
	SubtitleSource  *integration.Type `json:"subtitle_source"`
	ActivitySource  *integration.Type `json:"activity_source"`
}

// DownloadSource is one download client's contribution to download activity.
type DownloadSource struct {
	Source      integration.Type `json:"source"`
	ActiveCount int              `json:"active_count"`
	SpeedMBps   float64          `json:"speed_mbps"`
}

// DownloadActivityDoc is the download-activity endpoint document.
type DownloadActivityDoc struct {
	Sources                []DownloadSource  `json:"sources"`
	TotalActive            int               `json:"total_active"`
	TotalSpeedMBps         float64           `json:"total_speed_mbps"`
	StreamingBandwidthMbps float64           `json:"streaming_bandwidth_mbps"`
	ContentionFlag         bool              `json:"contention"`
	ActivitySource         *integration.Type `json:"activity_source"`
}

// TranscodingResourcesDoc is the transcoding-resources endpoint document.
type TranscodingResourcesDoc struct {
	ActiveStreams     int               `json:"active_streams"`
	Transcodes        int               `json:"transcodes"`
	HWTranscodes      int               `json:"hw_transcodes"`
	DirectPlay        int               `json:"direct_play"`
	DirectStream      int               `json:"direct_stream"`
	CPUPercent        float64           `json:"cpu_percent"`
	MemPercent        float64           `json:"mem_percent"`
	CPUPerTranscode   float64           `json:"cpu_per_transcode"`
	ResourceBound     bool              `json:"resource_bound"`
	ActivitySource    *integration.Type `json:"activity_source"`
	ResourceSource    *integration.Type `json:"resource_source"`
}

// GuestSummary is the projection of a hypervisor guest exposed to clients.
type GuestSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ServiceMapping pairs one configured service with its best-match guest.
// Guest is nil when no candidate matched.
type ServiceMapping struct {
	Service    string        `json:"service"`
	Type       string        `json:"type"`
	Guest      *GuestSummary `json:"guest"`
	MatchBasis string        `json:"match_basis,omitempty"`
}

// ServiceMappingDoc is the service-mapping endpoint document.
type ServiceMappingDoc struct {
	Services       []ServiceMapping  `json:"services"`
	UnmappedGuests []GuestSummary    `json:"unmapped_guests"`
	GuestSource    *integration.Type `json:"guest_source"`
}

// MatchedClient is the network client paired with a playback session.
type MatchedClient struct {
	Name           string `json:"name"`
	MAC            string `json:"mac"`
	ConnectionType string `json:"connection_type"`
}

// AnnotatedSession is a playback session with its matched network client,
// or a nil client when the session IP is unknown to the controller.
type AnnotatedSession struct {
	SessionKey string         `json:"session_key"`
	Title      string         `json:"title"`
	User       string         `json:"user"`
	IPAddress  string         `json:"ip_address"`
	Player     string         `json:"player"`
	Client     *MatchedClient `json:"client"`
}

// ClientCorrelationDoc is the client-correlation endpoint document.
type ClientCorrelationDoc struct {
	Sessions       []AnnotatedSession `json:"sessions"`
	UnmatchedIPs   []string           `json:"unmatched_ips"`
	NetworkSource  *integration.Type  `json:"network_source"`
	ActivitySource *integration.Type  `json:"activity_source"`
}

// ClassifiedDevice is one network client classified by the TP-Link
// fingerprint classifier.
type ClassifiedDevice struct {
	Name             string `json:"name"`
	Hostname         string `json:"hostname"`
	MAC              string `json:"mac"`
	IP               string `json:"ip"`
	Classification   string `json:"classification"`
	Model            string `json:"model,omitempty"`
	DeviceType       string `json:"device_type,omitempty"`
	MACPrefixMatched bool   `json:"mac_prefix_matched"`
}

// TPLinkDiscoveryDoc is the discover-tplink endpoint document.
type TPLinkDiscoveryDoc struct {
	Kasa       []ClassifiedDevice `json:"kasa"`
	Tapo       []ClassifiedDevice `json:"tapo"`
	TapoHub    []ClassifiedDevice `json:"tapo_hub"`
	Unknown    []ClassifiedDevice `json:"unknown"`
	TotalFound int                `json:"total_found"`
}
