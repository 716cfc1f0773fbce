// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/junctionhq/junction/internal/integration"
)

// DefaultConfigPaths lists the paths where config files are searched, in
// order. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/junction/config.yaml",
	"/etc/junction/config.yml",
}

// ConfigPathEnvVar overrides the config file search entirely.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration in three layers, later layers overriding
// earlier ones:
//
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first readable config file, preferring the
// CONFIG_PATH environment variable over the default search paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are config paths whose env-var values arrive as
// comma-separated strings but unmarshal into slices.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields splits comma-separated string values for known slice
// fields. YAML-sourced values are already slices and pass through untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps flat environment variable names (lower-cased) to nested
// config paths. Integration sections follow a uniform naming scheme
// (SONARR_URL, SONARR_API_KEY, ...) and are generated; the rest are listed
// explicitly.
var envMappings = buildEnvMappings()

func buildEnvMappings() map[string]string {
	m := map[string]string{
		"server_host":              "server.host",
		"http_port":                "server.port",
		"server_timeout":           "server.timeout",
		"server_shutdown_timeout":  "server.shutdown_timeout",
		"cors_origins":             "server.cors_origins",
		"rate_limit_reqs":          "server.rate_limit_reqs",
		"rate_limit_window":        "server.rate_limit_window",
		"aggregate_fetch_timeout":  "aggregate.fetch_timeout",
		"aggregate_rate_per_sec":   "aggregate.rate_per_second",
		"aggregate_breaker":        "aggregate.breaker_enabled",
		"log_level":                "logging.level",
		"log_format":               "logging.format",
		"log_caller":               "logging.caller",
	}
	for _, t := range integration.AllTypes() {
		prefix := string(t)
		section := "integrations." + prefix
		m[prefix+"_enabled"] = section + ".enabled"
		m[prefix+"_name"] = section + ".name"
		m[prefix+"_url"] = section + ".url"
		m[prefix+"_api_key"] = section + ".api_key"
	}
	return m
}

// envTransformFunc maps an environment variable name to its config path, or
// "" to ignore the variable. Unknown variables are dropped rather than
// guessed at; a stray PATH or HOME must never land in the config tree.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
