// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package fetch is the adapter between Junction and its upstream
// integrations. Every metric fetch produces exactly one tagged Outcome:
// either a success carrying a typed payload, or a failure carrying a reason.
// Failures are data inspected by the caller; they never cross this boundary
// as errors or panics.
package fetch

// Outcome is the tagged result of a single metric fetch. The zero value is a
// failure with an empty reason; use Success and Failure to construct values.
type Outcome struct {
	ok     bool
	data   any
	reason string
}

// Success returns a successful outcome carrying the payload.
func Success(data any) Outcome {
	return Outcome{ok: true, data: data}
}

// Failure returns a failed outcome carrying the reason.
func Failure(reason string) Outcome {
	return Outcome{reason: reason}
}

// OK reports whether the fetch succeeded.
func (o Outcome) OK() bool { return o.ok }

// Data returns the payload of a successful outcome, or nil.
func (o Outcome) Data() any { return o.data }

// Reason returns the failure reason, or empty string on success.
func (o Outcome) Reason() string { return o.reason }

// As extracts the payload of a successful outcome as T. It returns false for
// failures and for payloads of a different type.
func As[T any](o Outcome) (T, bool) {
	var zero T
	if !o.ok {
		return zero, false
	}
	v, ok := o.data.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
