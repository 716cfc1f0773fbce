// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package integration

// Enabled is the result of a directory lookup: the enabled integrations
// partitioned by type, plus a flat list of all of them.
type Enabled struct {
	ByType map[Type][]Ref
	All    []Ref
}

// First returns the first enabled integration of the given type, or nil.
func (e *Enabled) First(t Type) *Ref {
	refs := e.ByType[t]
	if len(refs) == 0 {
		return nil
	}
	return &refs[0]
}

// Has reports whether at least one integration of the given type is enabled.
func (e *Enabled) Has(t Type) bool {
	return len(e.ByType[t]) > 0
}

// Directory resolves configured integrations by type.
type Directory interface {
	// ListEnabled returns the enabled integrations for the requested types.
	// Types with no enabled integration are absent from ByType.
	ListEnabled(types []Type) Enabled
}

// StaticDirectory is a Directory backed by a fixed set of refs, typically
// built from configuration at startup.
type StaticDirectory struct {
	refs []Ref
}

// NewStaticDirectory creates a directory over the given refs.
func NewStaticDirectory(refs []Ref) *StaticDirectory {
	return &StaticDirectory{refs: refs}
}

// ListEnabled implements Directory.
func (d *StaticDirectory) ListEnabled(types []Type) Enabled {
	wanted := make(map[Type]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	out := Enabled{ByType: make(map[Type][]Ref)}
	for _, ref := range d.refs {
		if !ref.Enabled || !wanted[ref.Type] {
			continue
		}
		out.ByType[ref.Type] = append(out.ByType[ref.Type], ref)
		out.All = append(out.All, ref)
	}
	return out
}
