// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKasaBeforeTapoOnOverlappingPatterns(t *testing.T) {
	// Regression for the documented collision: "kp115" contains "p115".
	// A hostname carrying the Kasa code must never be attributed to Tapo.
	tests := []struct {
		hostname string
	}{
		{"kp115-plug"},
		{"office-KP125"},
		{"KP100 hallway"},
	}
	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			f := Classify("", tt.hostname, "")
			assert.Equal(t, Kasa, f.Classification)
		})
	}
}

func TestClassifyTapo(t *testing.T) {
	f := Classify("", "tapo-p110-heater", "")
	assert.Equal(t, Tapo, f.Classification)
	assert.Equal(t, "P110", f.Model)
}

func TestClassifyHubGuard(t *testing.T) {
	// "h100" preceded by 'k' is the Kasa hub naming convention.
	f := Classify("", "kh100-hub", "")
	assert.Equal(t, Kasa, f.Classification)

	f = Classify("", "h100-hub", "")
	assert.Equal(t, TapoHub, f.Classification)
	assert.Equal(t, "H100", f.Model)
}

func TestClassifyBrandFallbacks(t *testing.T) {
	f := Classify("", "kasa-livingroom", "")
	assert.Equal(t, Kasa, f.Classification)
	assert.Empty(t, f.Model, "brand fallback carries no model code")

	f = Classify("", "", "Tapo Bedroom")
	assert.Equal(t, Tapo, f.Classification)
}

func TestClassifyModelExtractionWidensToFullCode(t *testing.T) {
	f := Classify("", "kitchen-kp125m", "")
	assert.Equal(t, Kasa, f.Classification)
	assert.Equal(t, "KP125M", f.Model, "trailing characters of the model code are captured")

	// Extraction stops at non-alphanumerics.
	f = Classify("", "kp125-outlet", "")
	assert.Equal(t, "KP125", f.Model)
}

func TestClassifyDisplayNameAlsoSearched(t *testing.T) {
	f := Classify("", "generic-host", "Living Room HS110")
	assert.Equal(t, Kasa, f.Classification)
	assert.Equal(t, "HS110", f.Model)
}

func TestClassifyMACPrefix(t *testing.T) {
	tests := []struct {
		name    string
		mac     string
		matched bool
	}{
		{"known prefix", "50:C7:BF:12:34:56", true},
		{"known prefix lowercase", "1c:3b:f3:aa:bb:cc", true},
		{"dash separators", "50-C7-BF-12-34-56", true},
		{"unknown prefix", "de:ad:be:ef:00:01", false},
		{"empty", "", false},
		{"truncated", "50:c7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.mac, "", "")
			assert.Equal(t, tt.matched, f.MACPrefixMatched)
		})
	}
}

func TestShouldReport(t *testing.T) {
	// MAC prefix match always reports, even when classification is unknown.
	f := Classify("50:c7:bf:00:00:01", "mystery-device", "")
	assert.Equal(t, Unknown, f.Classification)
	assert.True(t, f.ShouldReport())

	// Text match without MAC evidence reports.
	f = Classify("de:ad:be:ef:00:01", "kp115", "")
	assert.Equal(t, Kasa, f.Classification)
	assert.True(t, f.ShouldReport())

	// Neither signal: never reported.
	f = Classify("de:ad:be:ef:00:01", "random-laptop", "")
	assert.Equal(t, Unknown, f.Classification)
	assert.False(t, f.ShouldReport())
}

func TestClassificationIsTotal(t *testing.T) {
	f := Classify("", "", "")
	assert.Equal(t, Unknown, f.Classification)
}

func TestDeviceType(t *testing.T) {
	tests := []struct {
		hostname string
		expected string
	}{
		{"kp115-desk", "plug_energy"},
		{"p110-heater", "plug_energy"},
		{"kp100-lamp", "plug"},
		{"hs300-strip", "power_strip"},
		{"p300-strip", "power_strip"},
		{"kl130-bulb", "bulb"},
		{"l530 bedroom", "bulb"},
		{"h100", "hub"},
		{"kh100", "hub"},
		{"t310-sensor", "sensor"},
		{"kasa-only", ""},
	}
	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			f := Classify("", tt.hostname, "")
			assert.Equal(t, tt.expected, DeviceType(f))
		})
	}
}
