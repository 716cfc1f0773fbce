// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package analytics derives summary figures from already-reconciled data:
// pipeline bottlenecks, resource correlation, bandwidth contention, and a
// bounded health score. Every function here is pure; nothing is persisted.
package analytics

import "math"

// BottleneckThreshold is the count a stage must strictly exceed to be
// reported as the pipeline bottleneck.
const BottleneckThreshold = 3

// StageCount is one pipeline stage with its item count, in declaration order.
type StageCount struct {
	Name  string
	Count int
}

// Bottleneck returns the stage with the strictly maximal count, provided that
// maximum strictly exceeds BottleneckThreshold; otherwise nil. Ties resolve
// to the first stage in declaration order.
func Bottleneck(stages []StageCount) *string {
	if len(stages) == 0 {
		return nil
	}
	best := stages[0]
	for _, s := range stages[1:] {
		if s.Count > best.Count {
			best = s
		}
	}
	if best.Count <= BottleneckThreshold {
		return nil
	}
	name := best.Name
	return &name
}

// ResourceBoundThreshold is the resource utilization percentage above which
// the workload is flagged resource bound.
const ResourceBoundThreshold = 80.0

// ResourcePerUnit divides a resource metric across active units. Returns 0
// when no units are active; the ratio is meaningless without a denominator.
func ResourcePerUnit(resourceMetric float64, activeUnits int) float64 {
	if activeUnits <= 0 {
		return 0
	}
	return resourceMetric / float64(activeUnits)
}

// ResourceBound reports whether the resource metric exceeds the fixed
// utilization threshold.
func ResourceBound(resourceMetric float64) bool {
	return resourceMetric > ResourceBoundThreshold
}

// Contention thresholds, both in megabits per second. Both sides must exceed
// their threshold simultaneously for the flag to raise.
const (
	DownloadContentionMbps  = 400.0
	StreamingContentionMbps = 50.0
)

// BytesPerSecToMbps converts a byte rate to megabits per second, the common
// unit both contention thresholds are expressed in.
func BytesPerSecToMbps(bytesPerSec float64) float64 {
	return bytesPerSec * 8 / 1e6
}

// KbpsToMbps converts kilobits per second to megabits per second.
func KbpsToMbps(kbps float64) float64 {
	return kbps / 1e3
}

// Contention raises when download traffic and streaming traffic exceed their
// thresholds at the same time, both compared in Mbps.
func Contention(downloadMbps, streamingMbps float64) bool {
	return downloadMbps > DownloadContentionMbps && streamingMbps > StreamingContentionMbps
}

// HealthScoreAssumedMax is the missing-count at which the health score
// reaches zero. A fixed assumption, not learned or configured.
const HealthScoreAssumedMax = 50

// HealthScore is a bounded linear decay over the missing count:
// clamp(100 - missing/50*100, 0, 100), rounded to the nearest integer.
// Monotonically non-increasing in missingCount.
func HealthScore(missingCount int) int {
	score := 100 - float64(missingCount)/float64(HealthScoreAssumedMax)*100
	score = math.Round(score)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
