package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"listing-directory/config"
	_ "listing-directory/docs" // Swagger docs
	"listing-directory/internal/httpserver"
	"listing-directory/internal/listing/repository/directory"
	"listing-directory/internal/listing/usecase"
	"listing-directory/internal/middleware"
	"listing-directory/internal/session"
	"listing-directory/pkg/log"
	"listing-directory/pkg/metrics"
)

// @title       Listing Directory API
// @description Local session over a remote real-estate listing directory: filters, draft form and listing actions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Listing Directory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Directory URL: %s", cfg.Directory.URL)

	// 3. Metrics (optional)
	var metricsManager *metrics.Manager
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager(cfg.Metrics.Namespace)
	}

	// 4. Listing domain
	client := directory.NewClient(directory.ClientConfig{
		BaseURL:           cfg.Directory.URL,
		Timeout:           cfg.Directory.Timeout,
		RequestsPerSecond: cfg.Directory.RequestsPerSecond,
		Burst:             cfg.Directory.Burst,
		Metrics:           metricsManager,
	})
	repo := directory.New(client, logger)
	listingUC := usecase.New(logger, repo, usecase.Config{
		DetailCacheSize: cfg.Directory.DetailCacheSize,
		DetailCacheTTL:  cfg.Directory.DetailCacheTTL,
	})

	// 5. Session
	sess := session.New(logger, listingUC, session.Options{
		FilterDebounce: cfg.Filter.Debounce,
	})
	defer sess.Close()

	go func() {
		if err := sess.Start(ctx); err != nil {
			logger.Warnf(ctx, "Initial listing fetch failed: %v", err)
			return
		}
		logger.Info(ctx, "Initial listing fetch completed")
	}()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		Metrics: metricsManager,
		Session: sess,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
