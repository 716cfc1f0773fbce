// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package integration defines the integration taxonomy and the directory that
// resolves which configured integrations can serve a request.
//
// An integration is one upstream service instance (a Sonarr install, a UniFi
// controller, ...). The directory answers exactly one question: given the
// integration types an endpoint needs, which enabled integrations exist for
// each type. It performs no network calls.
package integration

// Type identifies a kind of upstream integration.
type Type string

// Supported integration types.
const (
	TypeOverseerr   Type = "overseerr"   // media request management
	TypeProwlarr    Type = "prowlarr"    // indexer management
	TypeSonarr      Type = "sonarr"      // TV series management
	TypeRadarr      Type = "radarr"      // movie management
	TypeQBittorrent Type = "qbittorrent" // torrent download client
	TypeSABnzbd     Type = "sabnzbd"     // usenet download client
	TypeTautulli    Type = "tautulli"    // Plex watch activity
	TypePlex        Type = "plex"        // media server / library index
	TypeJellyfin    Type = "jellyfin"    // media server / library index
	TypeBazarr      Type = "bazarr"      // subtitle management
	TypeUniFi       Type = "unifi"       // network controller
	TypeProxmox     Type = "proxmox"     // hypervisor
	TypeGlances     Type = "glances"     // host resource monitor
	TypeNetdata     Type = "netdata"     // host resource monitor
)

// AllTypes lists every supported integration type in a stable order.
func AllTypes() []Type {
	return []Type{
		TypeOverseerr,
		TypeProwlarr,
		TypeSonarr,
		TypeRadarr,
		TypeQBittorrent,
		TypeSABnzbd,
		TypeTautulli,
		TypePlex,
		TypeJellyfin,
		TypeBazarr,
		TypeUniFi,
		TypeProxmox,
		TypeGlances,
		TypeNetdata,
	}
}

// ServiceTypes lists the integration types that represent services a user
// typically runs as a VM or container, used by the service-mapping endpoint.
// The hypervisor itself and pure monitoring agents are excluded.
func ServiceTypes() []Type {
	return []Type{
		TypeOverseerr,
		TypeProwlarr,
		TypeSonarr,
		TypeRadarr,
		TypeQBittorrent,
		TypeSABnzbd,
		TypeTautulli,
		TypePlex,
		TypeJellyfin,
		TypeBazarr,
		TypeUniFi,
	}
}

// Ref describes one configured integration instance. A Ref is immutable for
// the duration of a request.
type Ref struct {
	ID      string `json:"id"`
	Type    Type   `json:"type"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	BaseURL string `json:"-"`
	APIKey  string `json:"-"`
}
