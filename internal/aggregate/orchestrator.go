// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Package aggregate implements the fan-out/fan-in orchestrator and the
// source selection policy.
//
// For one inbound request the orchestrator resolves the enabled integrations,
// issues every needed (integration, metric) fetch concurrently, and joins on
// all outcomes. A failing or absent integration produces a Failure outcome
// under its own key and never disturbs any other key. The join is a barrier,
// not a race: every outcome is collected, bounded by the fetch adapter's
// per-fetch timeout.
package aggregate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/junctionhq/junction/internal/fetch"
	"github.com/junctionhq/junction/internal/integration"
	"github.com/junctionhq/junction/internal/metrics"
)

// Key identifies one (integration type, metric) outcome slot.
type Key string

// NewKey builds the outcome key for a type and metric.
func NewKey(t integration.Type, metric string) Key {
	return Key(string(t) + "." + metric)
}

// FetchSpec names one fetch an endpoint needs.
type FetchSpec struct {
	Type   integration.Type
	Metric string

	// SkipWhenEnabled skips this fetch entirely when the named type is
	// enabled. This is how conditional low-priority sources avoid a
	// fetch-and-discard: if the preferred source is configured, the fallback
	// is never queried at all.
	SkipWhenEnabled integration.Type
}

// Plan is the fixed fetch list for one endpoint.
type Plan struct {
	Endpoint string
	Specs    []FetchSpec
}

// Types returns the unique integration types the plan touches, in spec order.
func (p Plan) Types() []integration.Type {
	seen := make(map[integration.Type]bool, len(p.Specs))
	var out []integration.Type
	for _, s := range p.Specs {
		if !seen[s.Type] {
			seen[s.Type] = true
			out = append(out, s.Type)
		}
	}
	return out
}

// Result holds everything downstream stages need: one outcome per issued
// fetch and the availability of each requested type.
type Result struct {
	Outcomes     map[Key]fetch.Outcome
	Availability map[integration.Type]*integration.Ref
}

// Outcome returns the outcome for a type and metric. Keys that were never
// issued (skipped or not planned) read as failures.
func (r Result) Outcome(t integration.Type, metric string) fetch.Outcome {
	if o, ok := r.Outcomes[NewKey(t, metric)]; ok {
		return o
	}
	return fetch.Failure("no fetch issued for " + string(t) + "." + metric)
}

// Payload extracts the typed payload for a type and metric, if the fetch
// succeeded.
func Payload[T any](r Result, t integration.Type, metric string) (T, bool) {
	return fetch.As[T](r.Outcome(t, metric))
}

// defaultMaxConcurrent bounds the fan-out width. Endpoint plans issue at most
// about a dozen fetches, so this is a safety bound, not a queue.
const defaultMaxConcurrent = 12

// Orchestrator issues the fetches for a plan and joins on all outcomes.
type Orchestrator struct {
	dir           integration.Directory
	fetcher       fetch.Fetcher
	maxConcurrent int
}

// New creates an orchestrator over the given directory and fetcher.
func New(dir integration.Directory, fetcher fetch.Fetcher) *Orchestrator {
	return &Orchestrator{dir: dir, fetcher: fetcher, maxConcurrent: defaultMaxConcurrent}
}

// Aggregate runs the plan: one concurrent fetch per issuable spec, then a
// join over all outcomes. It never returns an error; every upstream problem
// is an outcome. Fetch contexts derive from ctx, so an aborted request
// cancels in-flight fetches.
func (o *Orchestrator) Aggregate(ctx context.Context, plan Plan) Result {
	start := time.Now()
	enabled := o.dir.ListEnabled(plan.Types())

	res := Result{
		Outcomes:     make(map[Key]fetch.Outcome, len(plan.Specs)),
		Availability: make(map[integration.Type]*integration.Ref, len(plan.Specs)),
	}
	for _, t := range plan.Types() {
		res.Availability[t] = enabled.First(t)
	}

	// Each issued fetch gets a disjoint slot, so the goroutines share nothing
	// and the join needs no locking.
	type task struct {
		key Key
		ref integration.Ref
	}
	var tasks []task
	for _, spec := range plan.Specs {
		if spec.SkipWhenEnabled != "" && enabled.Has(spec.SkipWhenEnabled) {
			continue
		}
		key := NewKey(spec.Type, spec.Metric)
		ref := enabled.First(spec.Type)
		if ref == nil {
			res.Outcomes[key] = fetch.Failure("integration not enabled: " + string(spec.Type))
			continue
		}
		tasks = append(tasks, task{key: key, ref: *ref})
	}

	slots := make([]fetch.Outcome, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrent)
	for i, tk := range tasks {
		g.Go(func() error {
			slots[i] = o.fetcher.FetchMetric(gctx, tk.ref, metricOf(tk.key))
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors; failures are outcomes

	for i, tk := range tasks {
		res.Outcomes[tk.key] = slots[i]
	}

	if plan.Endpoint != "" {
		metrics.AggregationsTotal.WithLabelValues(plan.Endpoint).Inc()
		metrics.AggregationDuration.WithLabelValues(plan.Endpoint).Observe(time.Since(start).Seconds())
	}
	return res
}

// metricOf recovers the metric name from a key. Keys are always built by
// NewKey, so the first dot separates type from metric.
func metricOf(k Key) string {
	s := string(k)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}
