// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package correlate links records across datasets that share no common
// identifier. Three matchers cover the three join-key characters Junction
// needs: tokenized name containment, exact IP equality, and case-insensitive
// title equality. All matchers are pure: they only produce derived linking
// records and never mutate their inputs.
package correlate

import (
	"sort"
	"strings"

	"github.com/junctionhq/junction/internal/models"
)

// Service is one configured service to map onto a hypervisor guest.
type Service struct {
	Name string
	Type string
}

// ServiceMatch pairs a service with its best-match guest. Guest is nil when
// no candidate matched.
type ServiceMatch struct {
	Service Service
	Guest   *models.Guest
}

// tokenize splits a display name on whitespace, hyphens, and underscores,
// lower-casing each token.
func tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == '_'
	})
}

// matchScore returns the strength of the match between a service and a
// candidate guest name, or 0 for no match. A candidate matches when its name
// contains the service's type string or any token of the service's display
// name. The score is the length of the longest matching fragment, which is
// the deterministic tie-break key for candidates that match equally well.
func matchScore(svc Service, guestName string) int {
	score := 0
	if t := strings.ToLower(svc.Type); t != "" && strings.Contains(guestName, t) {
		score = len(t)
	}
	for _, tok := range tokenize(svc.Name) {
		if strings.Contains(guestName, tok) && len(tok) > score {
			score = len(tok)
		}
	}
	return score
}

// MatchServices maps each service to its best-match guest and reports the
// guests no service claimed. Candidates are ranked by match strength and
// then lexically by name, so the result is independent of guest iteration
// order. Each service maps to at most one guest.
func MatchServices(services []Service, guests []models.Guest) ([]ServiceMatch, []models.Guest) {
	matches := make([]ServiceMatch, 0, len(services))
	claimed := make(map[string]bool, len(guests))

	for _, svc := range services {
		best := -1
		bestScore := 0
		for i, g := range guests {
			name := strings.ToLower(g.Name)
			score := matchScore(svc, name)
			if score == 0 {
				continue
			}
			if score > bestScore {
				best, bestScore = i, score
				continue
			}
			if score == bestScore && best >= 0 &&
				strings.ToLower(g.Name) < strings.ToLower(guests[best].Name) {
				best = i
			}
		}

		m := ServiceMatch{Service: svc}
		if best >= 0 {
			g := guests[best]
			m.Guest = &g
			claimed[g.ID] = true
		}
		matches = append(matches, m)
	}

	var unmapped []models.Guest
	for _, g := range guests {
		if !claimed[g.ID] {
			unmapped = append(unmapped, g)
		}
	}
	sort.Slice(unmapped, func(i, j int) bool { return unmapped[i].Name < unmapped[j].Name })

	return matches, unmapped
}
