// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junctionhq/junction/internal/models"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"spaces", "My Sonarr Instance", []string{"my", "sonarr", "instance"}},
		{"hyphens", "sonarr-main", []string{"sonarr", "main"}},
		{"underscores", "media_server_01", []string{"media", "server", "01"}},
		{"mixed", "Plex-Media Server_4K", []string{"plex", "media", "server", "4k"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchServicesByTypeString(t *testing.T) {
	guests := []models.Guest{
		{ID: "100", Name: "web-proxy", Kind: "lxc"},
		{ID: "101", Name: "sonarr-lxc", Kind: "lxc"},
	}

	matches, unmapped := MatchServices([]Service{{Name: "TV Manager", Type: "sonarr"}}, guests)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Guest)
	assert.Equal(t, "101", matches[0].Guest.ID)

	require.Len(t, unmapped, 1)
	assert.Equal(t, "100", unmapped[0].ID)
}

func TestMatchServicesByNameToken(t *testing.T) {
	guests := []models.Guest{
		{ID: "200", Name: "media-downloads", Kind: "qemu"},
	}

	matches, _ := MatchServices([]Service{{Name: "Downloads Box", Type: "qbittorrent"}}, guests)
	require.NotNil(t, matches[0].Guest)
	assert.Equal(t, "200", matches[0].Guest.ID)
}

func TestMatchServicesNoMatchIsNil(t *testing.T) {
	guests := []models.Guest{{ID: "300", Name: "backup-target", Kind: "qemu"}}

	matches, unmapped := MatchServices([]Service{{Name: "Overseerr", Type: "overseerr"}}, guests)
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Guest)
	assert.Len(t, unmapped, 1)
}

func TestMatchServicesDeterministicTieBreak(t *testing.T) {
	// Both guests contain the type string; the longest-match score ties, so
	// the lexically smaller name must win regardless of input order.
	forward := []models.Guest{
		{ID: "1", Name: "plex-b"},
		{ID: "2", Name: "plex-a"},
	}
	reversed := []models.Guest{
		{ID: "2", Name: "plex-a"},
		{ID: "1", Name: "plex-b"},
	}
	svc := []Service{{Name: "Media Server", Type: "plex"}}

	m1, _ := MatchServices(svc, forward)
	m2, _ := MatchServices(svc, reversed)
	require.NotNil(t, m1[0].Guest)
	require.NotNil(t, m2[0].Guest)
	assert.Equal(t, "plex-a", m1[0].Guest.Name)
	assert.Equal(t, m1[0].Guest.ID, m2[0].Guest.ID, "match must not depend on iteration order")
}

func TestMatchServicesPrefersLongerMatch(t *testing.T) {
	guests := []models.Guest{
		{ID: "1", Name: "arr"},          // matches short token only
		{ID: "2", Name: "sonarr-main"},  // contains full type string
	}

	matches, _ := MatchServices([]Service{{Name: "arr stack", Type: "sonarr"}}, guests)
	require.NotNil(t, matches[0].Guest)
	assert.Equal(t, "2", matches[0].Guest.ID)
}

func TestMatchServicesDoesNotMutateInputs(t *testing.T) {
	guests := []models.Guest{{ID: "1", Name: "sonarr"}}
	services := []Service{{Name: "Sonarr", Type: "sonarr"}}

	matches, _ := MatchServices(services, guests)
	require.NotNil(t, matches[0].Guest)
	matches[0].Guest.Name = "changed"
	assert.Equal(t, "sonarr", guests[0].Name, "matcher must return copies, not aliases")
}
