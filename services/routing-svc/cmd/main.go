// Package main is the entry point for the routing-svc microservice.
//
// routing-svc computes per-day route breakdowns as a gRPC service: it picks
// a stop order with a fixed-bookend TSP optimizer, fetches leg distances and
// durations from a routing provider (cloud, self-host, or Haversine
// fallback) through a circuit-breaking orchestrator, and persists committed
// route versions per trip day.
//
// # Service Overview
//
// The routing service exposes the following capabilities via gRPC:
//   - Day-Route Breakdown: order resolution + parallel leg computation + preview
//   - Preview commit: persisting a computed breakdown as a new route version
//   - Route version history: list, get-active, set-active per day
//
// # Configuration
//
// Configuration is loaded the same way as every other service in this
// repository (see pkg/config): environment variables (LOGISTICS_ prefix),
// then config files, then defaults. Routing-specific keys live under the
// `routing` section:
//
//	LOGISTICS_ROUTING_MODE                    - cloud, selfhost, cloud-with-selfhost-fallback
//	LOGISTICS_ROUTING_USE_CLOUD_MATRIX         - use the cloud adapter for matrix calls
//	LOGISTICS_ROUTING_CLOUD_BASE_URL           - cloud provider endpoint
//	LOGISTICS_ROUTING_CLOUD_API_KEY            - cloud provider API key
//	LOGISTICS_ROUTING_SELFHOST_BASE_URL        - self-host provider endpoint
//	LOGISTICS_ROUTING_BREAKER_FAILURES         - consecutive failures before opening
//	LOGISTICS_ROUTING_BACKOFF_BASE_DELAY       - initial retry delay
//	LOGISTICS_ROUTING_BREAKDOWN_SEGMENT_DEADLINE - per-leg compute_route deadline
//	LOGISTICS_ROUTING_BREAKDOWN_OVERALL_DEADLINE - soft deadline for the whole breakdown
//	LOGISTICS_ROUTING_PREVIEW_TTL_S            - uncommitted preview token lifetime
//
// # Graceful Shutdown
//
// On SIGINT/SIGTERM the service stops accepting new breakdown requests,
// waits for in-flight legs to finish (bounded by ShutdownTimeout), then
// closes the database pool and cache connections.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	routingv1 "logistics/gen/go/logistics/routing/v1"
	"logistics/pkg/breaker"
	"logistics/pkg/cache"
	"logistics/pkg/client"
	"logistics/pkg/config"
	"logistics/pkg/database"
	"logistics/pkg/logger"
	"logistics/pkg/metrics"
	"logistics/pkg/server"
	"logistics/pkg/telemetry"
	"logistics/services/routing-svc/internal/orchestrator"
	"logistics/services/routing-svc/internal/provider"
	"logistics/services/routing-svc/internal/repository"
	"logistics/services/routing-svc/internal/service"
)

func main() {
	cfg, err := config.LoadWithServiceDefaults("routing-svc", 50057)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		tp, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:     cfg.Tracing.Enabled,
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Environment,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			logger.Log.Warn("Failed to init telemetry", "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					logger.Log.Warn("Failed to shutdown telemetry", "error", err)
				}
			}()
			logger.Log.Info("Telemetry initialized", "endpoint", cfg.Tracing.Endpoint)
		}
	}

	metrics.InitMetrics(cfg.Metrics.Namespace, cfg.App.Name)

	// =========================================================================
	// Database
	// =========================================================================
	//
	// Route versions are persisted in Postgres; the pool is shared by the
	// repository's transactional Create/SetActive calls.
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	repo := repository.NewPostgresRouteVersionRepository(db)

	// =========================================================================
	// Cache (matrix + preview)
	// =========================================================================
	//
	// Both the distance/duration matrix cache and the uncommitted-preview
	// cache share the same backend (memory or Redis); each wraps it with its
	// own key prefix and TTL.
	var baseCache cache.Cache
	if cfg.Cache.Enabled {
		cacheOpts := cache.FromConfig(&cfg.Cache)
		baseCache, err = cache.New(cacheOpts)
		if err != nil {
			logger.Log.Warn("Failed to create cache, continuing without cache", "error", err)
			baseCache = nil
		}
	}

	var matrixCache *cache.MatrixCache
	if baseCache != nil {
		matrixCache = cache.NewMatrixCache(baseCache, cfg.Routing.MatrixCache.DefaultTTL)
	}

	previewCache := cache.NewPreviewCache(baseCache, cfg.Routing.Preview.TTL)

	// =========================================================================
	// Provider adapters + orchestrator
	// =========================================================================
	var cloudAdapter, selfHostAdapter provider.Adapter
	if cfg.Routing.Cloud.BaseURL != "" {
		cloudAdapter = provider.NewCloudAdapter(cfg.Routing.Cloud.BaseURL, cfg.Routing.Cloud.APIKey, cfg.Routing.Cloud.Timeout)
	}
	if cfg.Routing.SelfHost.BaseURL != "" {
		selfHostAdapter = provider.NewSelfHostAdapter(cfg.Routing.SelfHost.BaseURL, cfg.Routing.SelfHost.Timeout)
	}

	orch := orchestrator.New(orchestrator.Config{
		Mode:           orchestrator.Mode(cfg.Routing.Mode),
		UseCloudMatrix: cfg.Routing.UseCloudMatrix,
		Cloud:          cloudAdapter,
		SelfHost:       selfHostAdapter,
		Breaker: breaker.New(&breaker.Config{
			Failures:        cfg.Routing.Breaker.Failures,
			Window:          cfg.Routing.Breaker.Window,
			Cooldown:        cfg.Routing.Breaker.Cooldown,
			CleanupInterval: cfg.Routing.Breaker.CleanupInterval,
		}),
		Backoff: orchestrator.BackoffConfig{
			BaseDelay:   cfg.Routing.Backoff.BaseDelay,
			Factor:      cfg.Routing.Backoff.Factor,
			JitterFrac:  cfg.Routing.Backoff.JitterFrac,
			MaxDelay:    cfg.Routing.Backoff.MaxDelay,
			MaxAttempts: cfg.Routing.Backoff.MaxAttempts,
		},
		MatrixCache: matrixCache,
	})

	// =========================================================================
	// validation-svc client
	// =========================================================================
	//
	// Optional: ComputeDayBreakdown calls validation-svc to check stop shape
	// before running the Optimizer. A dial failure here is non-fatal, since
	// the Optimizer re-validates what it depends on regardless.
	var validationClient *client.ValidationClient
	if cfg.Services.Validation.Host != "" {
		addr := fmt.Sprintf("%s:%d", cfg.Services.Validation.Host, cfg.Services.Validation.Port)
		vc, vcErr := client.NewValidationClient(&client.ValidationClientConfig{
			Address:    addr,
			Timeout:    cfg.Services.Validation.Timeout,
			MaxRetries: cfg.Services.Validation.MaxRetries,
			EnableTLS:  cfg.Services.Validation.TLS,
		})
		if vcErr != nil {
			logger.Log.Warn("failed to dial validation-svc, continuing without remote validation", "error", vcErr)
		} else {
			validationClient = vc
			defer vc.Close()
		}
	}

	// =========================================================================
	// gRPC server + service registration
	// =========================================================================
	srv := server.New(cfg)

	svcConfig := &service.ServiceConfig{
		MaxConcurrentLegs:  cfg.Routing.Breakdown.MaxConcurrentLegs,
		SegmentDeadline:    cfg.Routing.Breakdown.SegmentDeadline,
		OverallDeadline:    cfg.Routing.Breakdown.OverallDeadline,
		MinSuccessFraction: cfg.Routing.Breakdown.MinSuccessFraction,
		PreviewTTL:         cfg.Routing.Preview.TTL,
		ShutdownTimeout:    30 * time.Second,
	}
	routingService := service.NewRoutingServiceWithConfig(cfg.App.Version, orch, repo, previewCache, svcConfig)
	if validationClient != nil {
		routingService.SetValidationClient(validationClient)
	}
	routingv1.RegisterRoutingServiceServer(srv.GetEngine(), routingService)

	logger.Info("Starting routing service",
		"port", cfg.GRPC.Port,
		"environment", cfg.App.Environment,
		"version", cfg.App.Version,
		"mode", cfg.Routing.Mode,
		"cache_enabled", baseCache != nil,
	)

	if err := srv.Run(); err != nil {
		logger.Fatal("server failed", "error", err)
	}
}
