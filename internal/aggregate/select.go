// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package aggregate

import "github.com/junctionhq/junction/internal/integration"

// Preference is a declarative ordered source list for one capability that
// more than one integration type can satisfy. The lower-priority source is
// consulted only when the higher-priority source failed or is not enabled —
// never to fill gaps within a single field.
type Preference struct {
	Capability string
	Metric     string
	Order      []integration.Type
}

// Capability preference tables. These are the only places source precedence
// is encoded; endpoints must not branch on integration types ad hoc.
var (
	// PrefLibraryStats: library availability counts.
	PrefLibraryStats = Preference{
		Capability: "library-stats",
		Metric:     "library-stats",
		Order:      []integration.Type{integration.TypePlex, integration.TypeJellyfin},
	}

	// PrefHostResources: host CPU/memory statistics.
	PrefHostResources = Preference{
		Capability: "host-resources",
		Metric:     "system",
		Order:      []integration.Type{integration.TypeGlances, integration.TypeNetdata},
	}
)

// PickFirst returns the payload from the first source in the preference
// order whose outcome succeeded, along with the chosen type. When no source
// contributed it returns a nil type and the zero value: absence of data and
// absence of source collapse into the same "not contributing" state.
func PickFirst[T any](res Result, pref Preference) (*integration.Type, T) {
	for _, t := range pref.Order {
		if v, ok := Payload[T](res, t, pref.Metric); ok {
			chosen := t
			return &chosen, v
		}
	}
	var zero T
	return nil, zero
}
