// ABOUTME: HTTP router configuration and route registration
// ABOUTME: Wires CORS, logging, and rate limiting around the API handlers

package api

import (
	"net/http"
	"time"

	"curapick-app-api/api/handlers"
	"curapick-app-api/api/middleware"
	"curapick-app-api/core/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds configuration for the API router
type Config struct {
	Logger     interfaces.Logger
	Analysis   interfaces.AnalysisService
	Curation   interfaces.CurationService
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window
}

// NewRouter creates the chi router with middleware and routes configured
func NewRouter(cfg Config) chi.Router {
	router := chi.NewRouter()

	// CORS first so preflights never hit rate limiting
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// Wrong-method requests on known paths answer with the Korean 405 body
	router.MethodNotAllowed(handlers.MethodNotAllowed)

	analyzeHandler := handlers.NewAnalyzeHandler(cfg.Analysis, cfg.Logger)
	searchHandler := handlers.NewSearchHandler(cfg.Curation, cfg.Logger)

	router.Post("/api/analyze", analyzeHandler.Analyze)
	router.Post("/api/search", searchHandler.Search)

	// Bare OPTIONS without preflight headers bypasses the CORS handler;
	// answer 200 so simple clients can probe the endpoints.
	okHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	router.Options("/api/analyze", okHandler)
	router.Options("/api/search", okHandler)

	return router
}
