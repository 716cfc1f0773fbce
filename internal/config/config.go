// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package config loads and validates Junction's configuration with layered
// sources: built-in defaults, an optional YAML file, and environment
// variables (highest priority).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/junctionhq/junction/internal/integration"
)

// IntegrationConfig configures one upstream integration instance.
type IntegrationConfig struct {
	Enabled bool   `koanf:"enabled"`
	Name    string `koanf:"name"`
	URL     string `koanf:"url" validate:"omitempty,url"`
	APIKey  string `koanf:"api_key"`
}

// IntegrationsConfig holds one section per supported integration type.
type IntegrationsConfig struct {
	Overseerr   IntegrationConfig `koanf:"overseerr"`
	Prowlarr    IntegrationConfig `koanf:"prowlarr"`
	Sonarr      IntegrationConfig `koanf:"sonarr"`
	Radarr      IntegrationConfig `koanf:"radarr"`
	QBittorrent IntegrationConfig `koanf:"qbittorrent"`
	SABnzbd     IntegrationConfig `koanf:"sabnzbd"`
	Tautulli    IntegrationConfig `koanf:"tautulli"`
	Plex        IntegrationConfig `koanf:"plex"`
	Jellyfin    IntegrationConfig `koanf:"jellyfin"`
	Bazarr      IntegrationConfig `koanf:"bazarr"`
	UniFi       IntegrationConfig `koanf:"unifi"`
	Proxmox     IntegrationConfig `koanf:"proxmox"`
	Glances     IntegrationConfig `koanf:"glances"`
	Netdata     IntegrationConfig `koanf:"netdata"`
}

// byType returns the section for an integration type.
func (ic *IntegrationsConfig) byType(t integration.Type) *IntegrationConfig {
	switch t {
	case integration.TypeOverseerr:
		return &ic.Overseerr
	case integration.TypeProwlarr:
		return &ic.Prowlarr
	case integration.TypeSonarr:
		return &ic.Sonarr
	case integration.TypeRadarr:
		return &ic.Radarr
	case integration.TypeQBittorrent:
		return &ic.QBittorrent
	case integration.TypeSABnzbd:
		return &ic.SABnzbd
	case integration.TypeTautulli:
		return &ic.Tautulli
	case integration.TypePlex:
		return &ic.Plex
	case integration.TypeJellyfin:
		return &ic.Jellyfin
	case integration.TypeBazarr:
		return &ic.Bazarr
	case integration.TypeUniFi:
		return &ic.UniFi
	case integration.TypeProxmox:
		return &ic.Proxmox
	case integration.TypeGlances:
		return &ic.Glances
	case integration.TypeNetdata:
		return &ic.Netdata
	default:
		return nil
	}
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// AggregateConfig configures the fan-out and the fetch adapter.
type AggregateConfig struct {
	// FetchTimeout bounds each upstream fetch; a slow source degrades to a
	// failure outcome after this wait rather than stalling the join barrier.
	FetchTimeout   time.Duration `koanf:"fetch_timeout"`
	RatePerSecond  float64       `koanf:"rate_per_second"`
	BreakerEnabled bool          `koanf:"breaker_enabled"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Config is the root configuration.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Aggregate    AggregateConfig    `koanf:"aggregate"`
	Logging      LoggingConfig      `koanf:"logging"`
	Integrations IntegrationsConfig `koanf:"integrations"`
}

// defaultConfig returns a Config with all defaults applied. Integrations are
// disabled by default; enabling one requires at least a URL.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8484,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Aggregate: AggregateConfig{
			FetchTimeout:   10 * time.Second,
			RatePerSecond:  5,
			BreakerEnabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Refs materializes the configured integrations as directory refs. Sections
// without a name default to the type name.
func (c *Config) Refs() []integration.Ref {
	var refs []integration.Ref
	for _, t := range integration.AllTypes() {
		sec := c.Integrations.byType(t)
		if sec == nil {
			continue
		}
		name := sec.Name
		if name == "" {
			name = string(t)
		}
		refs = append(refs, integration.Ref{
			ID:      string(t) + "-1",
			Type:    t,
			Name:    name,
			Enabled: sec.Enabled,
			BaseURL: sec.URL,
			APIKey:  sec.APIKey,
		})
	}
	return refs
}

// Validate checks struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, t := range integration.AllTypes() {
		sec := c.Integrations.byType(t)
		if sec.Enabled && sec.URL == "" {
			return fmt.Errorf("integration %s is enabled but has no url", t)
		}
	}
	return nil
}
