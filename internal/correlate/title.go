// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package correlate

import (
	"sort"
	"strings"

	"github.com/junctionhq/junction/internal/models"
)

// EnrichWithWatchCounts cross-references missing-subtitle records against
// popularity data by case-insensitive exact title equality. A matching record
// gains the watch count in place; no duplicate entry is created. The returned
// slice is a copy; the input slices are not modified.
func EnrichWithWatchCounts(missing []models.MissingSubtitle, popular []models.PopularTitle) []models.MissingSubtitle {
	counts := make(map[string]int, len(popular))
	for _, p := range popular {
		counts[strings.ToLower(p.Title)] = p.WatchCount
	}

	out := make([]models.MissingSubtitle, len(missing))
	copy(out, missing)
	for i := range out {
		if wc, ok := counts[strings.ToLower(out[i].Title)]; ok {
			out[i].WatchCount = wc
		}
	}
	return out
}

// RankByWatchCount returns up to limit records ordered by watch count
// descending, ties broken by title for stable output. Records that gained no
// watch count rank last.
func RankByWatchCount(items []models.MissingSubtitle, limit int) []models.MissingSubtitle {
	out := make([]models.MissingSubtitle, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WatchCount != out[j].WatchCount {
			return out[i].WatchCount > out[j].WatchCount
		}
		return out[i].Title < out[j].Title
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CrossReference returns the missing-subtitle records whose titles appear in
// the given popularity list, preserving the popularity list's order and
// cap. Used for the "recently watched but missing subtitles" view.
func CrossReference(missing []models.MissingSubtitle, watched []models.PopularTitle, limit int) []models.MissingSubtitle {
	byTitle := make(map[string]models.MissingSubtitle, len(missing))
	for _, m := range missing {
		byTitle[strings.ToLower(m.Title)] = m
	}

	var out []models.MissingSubtitle
	for _, w := range watched {
		if m, ok := byTitle[strings.ToLower(w.Title)]; ok {
			m.WatchCount = w.WatchCount
			out = append(out, m)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
