// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junctionhq/junction/internal/integration"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file in reach

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Aggregate.FetchTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Integrations.Sonarr.Enabled, "integrations default to disabled")
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := `
server:
  port: 9999
integrations:
  sonarr:
    enabled: true
    url: http://sonarr:8989
    api_key: abc123
  glances:
    enabled: true
    url: http://glances:61208
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.True(t, cfg.Integrations.Sonarr.Enabled)
	assert.Equal(t, "http://sonarr:8989", cfg.Integrations.Sonarr.URL)
	assert.Equal(t, "abc123", cfg.Integrations.Sonarr.APIKey)
	assert.True(t, cfg.Integrations.Glances.Enabled)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7777")
	t.Setenv("RADARR_ENABLED", "true")
	t.Setenv("RADARR_URL", "http://radarr:7878")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port, "env beats file")
	assert.True(t, cfg.Integrations.Radarr.Enabled)
	assert.Equal(t, "http://radarr:7878", cfg.Integrations.Radarr.URL)
}

func TestEnabledWithoutURLFailsValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PLEX_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plex")
}

func TestUnknownEnvVarsIgnored(t *testing.T) {
	assert.Empty(t, envTransformFunc("PATH"))
	assert.Empty(t, envTransformFunc("HOME"))
	assert.Equal(t, "integrations.sonarr.api_key", envTransformFunc("SONARR_API_KEY"))
	assert.Equal(t, "logging.level", envTransformFunc("LOG_LEVEL"))
}

func TestRefsCoversAllTypes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Integrations.Tautulli = IntegrationConfig{
		Enabled: true,
		Name:    "tautulli-main",
		URL:     "http://tautulli:8181",
		APIKey:  "key",
	}

	refs := cfg.Refs()
	require.Len(t, refs, len(integration.AllTypes()))

	var tautulli *integration.Ref
	for i := range refs {
		if refs[i].Type == integration.TypeTautulli {
			tautulli = &refs[i]
		}
		assert.NotEmpty(t, refs[i].Name, "unnamed sections fall back to the type name")
	}
	require.NotNil(t, tautulli)
	assert.True(t, tautulli.Enabled)
	assert.Equal(t, "tautulli-main", tautulli.Name)
	assert.Equal(t, "http://tautulli:8181", tautulli.BaseURL)
}

func TestCORSOriginsFromEnvSplit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Server.CORSOrigins)
}
