// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/junctionhq/junction/internal/integration"
	"github.com/junctionhq/junction/internal/logging"
	"github.com/junctionhq/junction/internal/metrics"
	"github.com/junctionhq/junction/internal/models"
)

// Options configures the HTTP fetcher.
type Options struct {
	// Timeout bounds each individual fetch. A slow upstream degrades to a
	// Failure outcome after this wait instead of stalling the whole join.
	Timeout time.Duration

	// RatePerSecond limits requests issued to a single integration.
	// Zero disables client-side rate limiting.
	RatePerSecond float64

	// BreakerEnabled wraps each integration's calls in a circuit breaker so
	// that a persistently failing upstream is skipped cheaply.
	BreakerEnabled bool
}

// DefaultOptions returns production defaults for the HTTP fetcher.
func DefaultOptions() Options {
	return Options{
		Timeout:        10 * time.Second,
		RatePerSecond:  5,
		BreakerEnabled: true,
	}
}

// route maps one (type, metric) pair to an upstream path and payload decoder.
type route struct {
	path   string
	decode func([]byte) (any, error)
}

func decodeInto[T any](b []byte) (any, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// routes declares, per integration type, which metrics the adapter can fetch
// and how to decode each payload.
var routes = map[integration.Type]map[string]route{
	integration.TypeOverseerr: {
		MetricRequestCounts: {"/api/v1/request/count", decodeInto[models.RequestCounts]},
	},
	integration.TypeProwlarr: {
		MetricIndexerHealth: {"/api/v1/health", decodeInto[models.IndexerHealth]},
	},
	integration.TypeSonarr: {
		MetricQueue:  {"/api/v3/queue", decodeInto[models.ArrQueue]},
		MetricWanted: {"/api/v3/wanted/missing", decodeInto[models.ArrWanted]},
	},
	integration.TypeRadarr: {
		MetricQueue:  {"/api/v3/queue", decodeInto[models.ArrQueue]},
		MetricWanted: {"/api/v3/wanted/missing", decodeInto[models.ArrWanted]},
	},
	integration.TypeQBittorrent: {
		MetricTransfer: {"/api/v2/transfer/info", decodeInto[models.TransferInfo]},
	},
	integration.TypeSABnzbd: {
		MetricQueue: {"/api?mode=queue&output=json", decodeInto[models.SabQueue]},
	},
	integration.TypeTautulli: {
		MetricActivity:  {"/api/v2?cmd=get_activity", decodeInto[models.Activity]},
		MetricHomeStats: {"/api/v2?cmd=get_home_stats", decodeInto[models.HomeStats]},
	},
	integration.TypePlex: {
		MetricLibraryStats: {"/library/sections/stats", decodeInto[models.LibraryStats]},
	},
	integration.TypeJellyfin: {
		MetricLibraryStats: {"/Items/Counts", decodeInto[models.LibraryStats]},
	},
	integration.TypeBazarr: {
		MetricWanted: {"/api/badges", decodeInto[models.SubtitleWanted]},
	},
	integration.TypeUniFi: {
		MetricClients: {"/proxy/network/api/s/default/stat/sta", decodeInto[models.NetClients]},
	},
	integration.TypeProxmox: {
		MetricGuests: {"/api2/json/cluster/resources?type=vm", decodeInto[models.Guests]},
	},
	integration.TypeGlances: {
		MetricSystem: {"/api/4/quicklook", decodeInto[models.SystemStats]},
	},
	integration.TypeNetdata: {
		MetricSystem: {"/api/v1/info", decodeInto[models.SystemStats]},
	},
}

// HTTPFetcher fetches metrics over HTTP. One breaker and one rate limiter
// are maintained per integration ID so that a misbehaving upstream neither
// floods its service nor delays unrelated integrations.
type HTTPFetcher struct {
	client *http.Client
	opts   Options

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
	limiters map[string]*rate.Limiter
}

// NewHTTPFetcher creates an HTTP fetcher with the given options.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &HTTPFetcher{
		client:   &http.Client{}, // per-request contexts carry the timeout
		opts:     opts,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]byte]),
		limiters: make(map[string]*rate.Limiter),
	}
}

// FetchMetric implements Fetcher. All failures, including unsupported
// metrics, HTTP errors, breaker rejections, and decode errors, are returned
// as Failure outcomes.
func (f *HTTPFetcher) FetchMetric(ctx context.Context, ref integration.Ref, metric string) Outcome {
	start := time.Now()
	outcome := f.fetch(ctx, ref, metric)
	metrics.ObserveFetch(string(ref.Type), metric, outcome.OK(), time.Since(start))

	if !outcome.OK() {
		log := logging.Ctx(ctx)
		log.Warn().
			Str("integration", string(ref.Type)).
			Str("name", ref.Name).
			Str("metric", metric).
			Str("reason", outcome.Reason()).
			Msg("fetch failed")
	}
	return outcome
}

func (f *HTTPFetcher) fetch(ctx context.Context, ref integration.Ref, metric string) Outcome {
	rt, ok := routes[ref.Type][metric]
	if !ok {
		return Failure(fmt.Sprintf("integration %s does not support metric %s", ref.Type, metric))
	}

	if lim := f.limiter(ref); lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return Failure("rate limit wait: " + err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	body, err := f.execute(ref, func() ([]byte, error) {
		return f.get(ctx, ref, rt.path)
	})
	if err != nil {
		return Failure(err.Error())
	}

	payload, err := rt.decode(body)
	if err != nil {
		return Failure("decode " + metric + ": " + err.Error())
	}
	return Success(payload)
}

// execute runs fn, routed through the integration's breaker when enabled.
func (f *HTTPFetcher) execute(ref integration.Ref, fn func() ([]byte, error)) ([]byte, error) {
	if !f.opts.BreakerEnabled {
		return fn()
	}
	return f.breaker(ref).Execute(fn)
}

func (f *HTTPFetcher) get(ctx context.Context, ref integration.Ref, path string) ([]byte, error) {
	url := strings.TrimRight(ref.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if ref.APIKey != "" {
		req.Header.Set("X-Api-Key", ref.APIKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, ref.Type)
	}

	// Bound the body read; dashboard payloads are small.
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

func (f *HTTPFetcher) limiter(ref integration.Ref) *rate.Limiter {
	if f.opts.RatePerSecond <= 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[ref.ID]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(f.opts.RatePerSecond), int(f.opts.RatePerSecond)+1)
		f.limiters[ref.ID] = lim
	}
	return lim
}

func (f *HTTPFetcher) breaker(ref integration.Ref) *gobreaker.CircuitBreaker[[]byte] {
	f.mu.Lock()
	defer f.mu.Unlock()
	cb, ok := f.breakers[ref.ID]
	if !ok {
		name := string(ref.Type) + "/" + ref.ID
		cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        name,
			MaxRequests: 2,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.Requests >= 5 &&
					float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Info().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("circuit breaker state change")
				metrics.SetBreakerOpen(name, to == gobreaker.StateOpen)
			},
		})
		f.breakers[ref.ID] = cb
	}
	return cb
}
