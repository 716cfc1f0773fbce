// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package correlate

import "github.com/junctionhq/junction/internal/models"

// SessionMatch pairs one playback session with the network client registered
// at the session's IP address. Client is nil when the IP is unknown.
type SessionMatch struct {
	Session models.Session
	Client  *models.NetClient
}

// NewClientIndex builds the IP-keyed client registry. Addresses are matched
// by exact string equality; IPv4/IPv6 representation mismatches are not
// reconciled. When several clients report the same IP (NAT, stale leases),
// the last-registered client wins.
func NewClientIndex(clients []models.NetClient) map[string]models.NetClient {
	index := make(map[string]models.NetClient, len(clients))
	for _, c := range clients {
		if c.IP == "" {
			continue
		}
		index[c.IP] = c
	}
	return index
}

// MatchSessions annotates each session with its registered client, if any.
// Session IPs with no registered client are collected into a deduplicated
// unmatched list in first-seen order: several sessions sharing an unknown IP
// contribute one entry, attributed to the first session seen.
func MatchSessions(sessions []models.Session, index map[string]models.NetClient) ([]SessionMatch, []string) {
	matches := make([]SessionMatch, 0, len(sessions))
	seen := make(map[string]bool)
	var unmatched []string

	for _, s := range sessions {
		m := SessionMatch{Session: s}
		if c, ok := index[s.IPAddress]; ok {
			client := c
			m.Client = &client
		} else if s.IPAddress != "" && !seen[s.IPAddress] {
			seen[s.IPAddress] = true
			unmatched = append(unmatched, s.IPAddress)
		}
		matches = append(matches, m)
	}
	return matches, unmatched
}
