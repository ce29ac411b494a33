// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, upstream APIs, and curation tuning

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains external API configuration
	Upstream UpstreamConfig

	// Curation contains product curation pipeline tuning
	Curation CurationConfig

	// Log contains log output configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per window per IP
	RateLimit int

	// RateWindowSeconds is the rate limit window length in seconds
	RateWindowSeconds int
}

// UpstreamConfig holds external API configuration
type UpstreamConfig struct {
	// GroqAPIKey authenticates symptom analysis calls. Empty enables
	// the canned fallback analysis (demo mode).
	GroqAPIKey string

	// SerperAPIKey authenticates web search calls. Empty enables the
	// deterministic sample product response (demo mode).
	SerperAPIKey string

	// TimeoutSeconds is the per-call HTTP timeout for upstream requests
	TimeoutSeconds int
}

// CurationConfig holds product curation pipeline tuning
type CurationConfig struct {
	// MaxProducts is the global cap on the returned product list
	MaxProducts int

	// TargetProducts stops tier escalation once reached
	TargetProducts int

	// MinProducts is topped up with placeholder products when the real
	// pipeline yields fewer results
	MinProducts int

	// PerPairLimit bounds hits kept per keyword/site or keyword/strategy pair
	PerPairLimit int

	// ResultsPerQuery is the number of results requested per search call
	ResultsPerQuery int

	// OverlapThreshold is the fuzzy title dedup threshold, as a fraction
	// of the shorter title's token count
	OverlapThreshold float64

	// SearchIntervalMS is the minimum interval between search calls in
	// milliseconds, to stay under the upstream provider's rate limit
	SearchIntervalMS int
}

// LogConfig holds log output configuration
type LogConfig struct {
	// File is the log file path. Empty logs to stdout.
	File string

	// MaxSizeMB is the maximum log file size before rotation
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep
	MaxBackups int

	// MaxAgeDays is the maximum age of rotated files in days
	MaxAgeDays int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Upstream: UpstreamConfig{
			GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
			SerperAPIKey:   os.Getenv("SERPER_API_KEY"),
			TimeoutSeconds: getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 30),
		},
		Curation: CurationConfig{
			MaxProducts:      getEnvAsIntOrDefault("MAX_PRODUCTS", 8),
			TargetProducts:   getEnvAsIntOrDefault("TARGET_PRODUCTS", 6),
			MinProducts:      getEnvAsIntOrDefault("MIN_PRODUCTS", 3),
			PerPairLimit:     getEnvAsIntOrDefault("PER_PAIR_LIMIT", 3),
			ResultsPerQuery:  getEnvAsIntOrDefault("RESULTS_PER_QUERY", 10),
			OverlapThreshold: getEnvAsFloatOrDefault("DEDUP_OVERLAP_THRESHOLD", 0.7),
			SearchIntervalMS: getEnvAsIntOrDefault("SEARCH_INTERVAL_MS", 800),
		},
		Log: LogConfig{
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", 28),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.Curation.MaxProducts < 1 {
		return errors.New("max products must be at least 1")
	}

	if c.Curation.MinProducts > c.Curation.MaxProducts {
		return errors.New("min products cannot exceed max products")
	}

	if c.Curation.TargetProducts > c.Curation.MaxProducts {
		return errors.New("target products cannot exceed max products")
	}

	if c.Curation.OverlapThreshold <= 0 || c.Curation.OverlapThreshold > 1 {
		return errors.New("dedup overlap threshold must be in (0, 1]")
	}

	if c.Curation.SearchIntervalMS < 0 {
		return errors.New("search interval cannot be negative")
	}

	if c.Upstream.TimeoutSeconds < 1 {
		return errors.New("upstream timeout must be at least 1 second")
	}

	return nil
}
