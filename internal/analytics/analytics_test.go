// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBottleneck(t *testing.T) {
	tests := []struct {
		name     string
		stages   []StageCount
		expected *string
	}{
		{
			name: "clear bottleneck above threshold",
			stages: []StageCount{
				{"requests", 1}, {"tv_queue", 2}, {"movie_queue", 1},
				{"downloads", 5}, {"transcoding", 0},
			},
			expected: strPtr("downloads"),
		},
		{
			name: "all at or below threshold is nil",
			stages: []StageCount{
				{"requests", 3}, {"tv_queue", 3}, {"downloads", 2},
			},
			expected: nil,
		},
		{
			name: "tie resolves to first declared stage",
			stages: []StageCount{
				{"requests", 7}, {"downloads", 7},
			},
			expected: strPtr("requests"),
		},
		{
			name:     "empty stages",
			stages:   nil,
			expected: nil,
		},
		{
			name: "maximum exactly at threshold is nil",
			stages: []StageCount{
				{"downloads", BottleneckThreshold},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bottleneck(tt.stages)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestResourcePerUnit(t *testing.T) {
	assert.InDelta(t, 20.0, ResourcePerUnit(60.0, 3), 1e-9)
	assert.Zero(t, ResourcePerUnit(60.0, 0), "no active units yields zero, not a division")
	assert.Zero(t, ResourcePerUnit(60.0, -1))
}

func TestResourceBound(t *testing.T) {
	assert.False(t, ResourceBound(80.0), "threshold is strict")
	assert.True(t, ResourceBound(80.1))
	assert.False(t, ResourceBound(12.0))
}

func TestContentionRequiresBothSides(t *testing.T) {
	assert.True(t, Contention(500, 60))
	assert.False(t, Contention(500, 10), "streaming side below threshold")
	assert.False(t, Contention(100, 60), "download side below threshold")
	assert.False(t, Contention(100, 10))
}

func TestUnitConversions(t *testing.T) {
	// 2097152 B/s = 2 MiB/s ≈ 16.78 Mbps
	assert.InDelta(t, 16.777216, BytesPerSecToMbps(2097152), 1e-6)
	assert.InDelta(t, 8.0, BytesPerSecToMbps(1e6), 1e-9)
	assert.InDelta(t, 1.5, KbpsToMbps(1500), 1e-9)
}

func TestHealthScoreExampleScenario(t *testing.T) {
	// seriesMissing=3, moviesMissing=2 -> round(100 - 5/50*100) = 90
	assert.Equal(t, 90, HealthScore(5))
}

func TestHealthScoreClamping(t *testing.T) {
	assert.Equal(t, 100, HealthScore(0))
	assert.Equal(t, 0, HealthScore(50))
	assert.Equal(t, 0, HealthScore(5000), "clamped for arbitrarily large missing counts")
	assert.Equal(t, 100, HealthScore(-1), "negative counts clamp at 100")
}

func TestHealthScoreMonotonicNonIncreasing(t *testing.T) {
	prev := HealthScore(0)
	for missing := 1; missing <= 120; missing++ {
		cur := HealthScore(missing)
		assert.LessOrEqual(t, cur, prev, "missing=%d", missing)
		assert.GreaterOrEqual(t, cur, 0)
		assert.LessOrEqual(t, cur, 100)
		prev = cur
	}
}
