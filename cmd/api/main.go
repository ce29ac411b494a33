// ABOUTME: Main entry point for the CuraPick API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curapick-app-api/api"
	"curapick-app-api/core/analysis"
	"curapick-app-api/core/curation"
	"curapick-app-api/core/interfaces"
	stdhttp "curapick-app-api/infrastructure/http/standard"
	stdlogger "curapick-app-api/infrastructure/logger/standard"
	"curapick-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := stdlogger.NewFileLogger(cfg.Log)
	logger.Info("Starting CuraPick API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"max_products": cfg.Curation.MaxProducts,
		"groq_key":     cfg.Upstream.GroqAPIKey != "",
		"serper_key":   cfg.Upstream.SerperAPIKey != "",
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services. Missing API keys enable demo mode: canned
	// analysis and sample products instead of upstream calls.
	analysisService := analysis.NewService(deps, cfg.Upstream.GroqAPIKey)
	if cfg.Upstream.GroqAPIKey == "" {
		logger.Warn("GROQ_API_KEY not set, analysis runs in demo mode", nil)
	}

	var searcher interfaces.ProductSearcher
	if cfg.Upstream.SerperAPIKey != "" {
		searcher = curation.NewSerperClient(deps, cfg.Upstream.SerperAPIKey)
	} else {
		logger.Warn("SERPER_API_KEY not set, search runs in demo mode", nil)
	}

	registry := curation.DefaultRegistry()
	curationService := curation.NewService(
		deps,
		searcher,
		registry,
		curation.Options{
			MaxProducts:     cfg.Curation.MaxProducts,
			TargetProducts:  cfg.Curation.TargetProducts,
			MinProducts:     cfg.Curation.MinProducts,
			PerPairLimit:    cfg.Curation.PerPairLimit,
			ResultsPerQuery: cfg.Curation.ResultsPerQuery,
		},
		cfg.Curation.OverlapThreshold,
		time.Duration(cfg.Curation.SearchIntervalMS)*time.Millisecond,
	)

	// Create router with middleware
	router := api.NewRouter(api.Config{
		Logger:     logger,
		Analysis:   analysisService,
		Curation:   curationService,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Duration(cfg.Server.RateWindowSeconds) * time.Second,
	})

	// Create HTTP server. Write timeout leaves room for a full paced
	// pipeline run across several upstream search calls.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
   ______                 ____  _      __      ___    ____  ____
  / ____/_  ___________ _/ __ \(_)____/ /__   /   |  / __ \/  _/
 / /   / / / / ___/ __ '/ /_/ / / ___/ //_/  / /| | / /_/ // /
/ /___/ /_/ / /  / /_/ / ____/ / /__/ ,<    / ___ |/ ____// /
\____/\__,_/_/   \__,_/_/   /_/\___/_/|_|  /_/  |_/_/   /___/
	`)
}
