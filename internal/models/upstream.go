// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package models defines the typed payloads returned by upstream integrations
// and the response documents produced by the dashboard endpoints.
package models

// RequestCounts is Overseerr's media request summary.
type RequestCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Available int `json:"available"`
	Total     int `json:"total"`
}

// IndexerHealth summarizes Prowlarr indexer status.
type IndexerHealth struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Unhealthy int `json:"unhealthy"`
}

// ArrQueue is the queue summary shared by Sonarr and Radarr.
type ArrQueue struct {
	TotalRecords int `json:"totalRecords"`
}

// ArrWanted is the wanted/missing summary shared by Sonarr and Radarr.
type ArrWanted struct {
	TotalRecords int `json:"totalRecords"`
}

// TransferInfo is qBittorrent's global transfer state. Speeds are bytes/sec.
type TransferInfo struct {
	DownloadSpeed   int64 `json:"dl_info_speed"`
	UploadSpeed     int64 `json:"up_info_speed"`
	ActiveDownloads int   `json:"active_downloads"`
}

// SabQueue is SABnzbd's queue state. SABnzbd reports speed in KB/sec.
type SabQueue struct {
	SpeedKBps   float64 `json:"kbpersec,string"`
	ActiveCount int     `json:"noofslots"`
	Paused      bool    `json:"paused"`
}

// Session is one active playback session as reported by Tautulli.
type Session struct {
	SessionKey        string `json:"session_key"`
	Title             string `json:"title"`
	User              string `json:"user"`
	IPAddress         string `json:"ip_address"`
	Player            string `json:"player"`
	TranscodeDecision string `json:"transcode_decision"` // transcode, copy, direct play
	HWTranscode       bool   `json:"hw_transcode"`
	BandwidthKbps     int64  `json:"bandwidth"`
}

// Activity is Tautulli's current activity snapshot.
type Activity struct {
	StreamCount         int       `json:"stream_count"`
	TranscodeCount      int       `json:"transcode_count"`
	DirectPlayCount     int       `json:"direct_play_count"`
	DirectStreamCount   int       `json:"direct_stream_count"`
	TotalBandwidthKbps  int64     `json:"total_bandwidth"`
	Sessions            []Session `json:"sessions"`
}

// LibraryStats is the library availability summary from Plex or Jellyfin.
type LibraryStats struct {
	Movies   int `json:"movies"`
	Series   int `json:"series"`
	Episodes int `json:"episodes"`
}

// WantedSubtitle is one entry in Bazarr's missing-subtitles list.
type WantedSubtitle struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Series   bool   `json:"series"`
}

// SubtitleWanted is Bazarr's missing-subtitles summary.
type SubtitleWanted struct {
	SeriesMissing int              `json:"series_missing"`
	MoviesMissing int              `json:"movies_missing"`
	Items         []WantedSubtitle `json:"items"`
}

// PopularTitle is one entry from Tautulli's most-watched home stats.
type PopularTitle struct {
	Title      string `json:"title"`
	WatchCount int    `json:"watch_count"`
}

// HomeStats is Tautulli's home statistics payload.
type HomeStats struct {
	MostWatched     []PopularTitle `json:"most_watched"`
	RecentlyWatched []PopularTitle `json:"recently_watched"`
}

// NetClient is one client known to the UniFi controller.
type NetClient struct {
	Name           string `json:"name"`
	Hostname       string `json:"hostname"`
	MAC            string `json:"mac"`
	IP             string `json:"ip"`
	ConnectionType string `json:"connection_type"` // wired or wireless
}

// NetClients is the UniFi client registry payload.
type NetClients struct {
	Clients []NetClient `json:"clients"`
}

// Guest is one VM or container reported by Proxmox.
type Guest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"` // qemu or lxc
	Status string  `json:"status"`
	CPU    float64 `json:"cpu"`
	MemMB  int64   `json:"mem_mb"`
}

// Guests is the Proxmox guest inventory payload.
type Guests struct {
	Guests []Guest `json:"guests"`
}

// SystemStats is the host resource snapshot from Glances or Netdata.
type SystemStats struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}
