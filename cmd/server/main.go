// Junction - Multi-Source Aggregation and Correlation for Homelab Dashboards
// Copyright 2026 Junction contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/junctionhq/junction

// Junction aggregates and correlates data from independently-failing homelab
// services into dashboard-ready documents. It holds no state: every request
// fans out to the configured integrations and reconciles whatever answered.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/junctionhq/junction/internal/aggregate"
	"github.com/junctionhq/junction/internal/api"
	"github.com/junctionhq/junction/internal/config"
	"github.com/junctionhq/junction/internal/fetch"
	"github.com/junctionhq/junction/internal/integration"
	"github.com/junctionhq/junction/internal/logging"
	"github.com/junctionhq/junction/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config errors use the default logger; configuration is not available.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	refs := cfg.Refs()
	enabledCount := 0
	for _, ref := range refs {
		if ref.Enabled {
			enabledCount++
			logging.Info().
				Str("integration", string(ref.Type)).
				Str("name", ref.Name).
				Msg("Integration enabled")
		}
	}
	logging.Info().
		Int("enabled", enabledCount).
		Int("supported", len(integration.AllTypes())).
		Msg("Starting Junction")

	dir := integration.NewStaticDirectory(refs)
	fetcher := fetch.NewHTTPFetcher(fetch.Options{
		Timeout:        cfg.Aggregate.FetchTimeout,
		RatePerSecond:  cfg.Aggregate.RatePerSecond,
		BreakerEnabled: cfg.Aggregate.BreakerEnabled,
	})
	orch := aggregate.New(dir, fetcher)

	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Server.CORSOrigins,
		RateLimitRequests:  cfg.Server.RateLimitReqs,
		RateLimitWindow:    cfg.Server.RateLimitWindow,
	})
	router := api.NewRouter(api.NewHandler(orch, dir), mw)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.Root().ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	logging.Info().Msg("Stopped gracefully")
}
