package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %s, want 8000", cfg.Server.Port)
	}
	if cfg.Curation.MaxProducts != 8 {
		t.Errorf("MaxProducts = %d, want 8", cfg.Curation.MaxProducts)
	}
	if cfg.Curation.MinProducts != 3 {
		t.Errorf("MinProducts = %d, want 3", cfg.Curation.MinProducts)
	}
	if cfg.Curation.OverlapThreshold != 0.7 {
		t.Errorf("OverlapThreshold = %v, want 0.7", cfg.Curation.OverlapThreshold)
	}
	if cfg.Curation.SearchIntervalMS != 800 {
		t.Errorf("SearchIntervalMS = %d, want 800", cfg.Curation.SearchIntervalMS)
	}
	if cfg.Upstream.GroqAPIKey != "" {
		t.Errorf("GroqAPIKey should default to empty, got %s", cfg.Upstream.GroqAPIKey)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9090")
	os.Setenv("MAX_PRODUCTS", "10")
	os.Setenv("DEDUP_OVERLAP_THRESHOLD", "0.6")
	os.Setenv("SERPER_API_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Curation.MaxProducts != 10 {
		t.Errorf("MaxProducts = %d, want 10", cfg.Curation.MaxProducts)
	}
	if cfg.Curation.OverlapThreshold != 0.6 {
		t.Errorf("OverlapThreshold = %v, want 0.6", cfg.Curation.OverlapThreshold)
	}
	if cfg.Upstream.SerperAPIKey != "test-key" {
		t.Errorf("SerperAPIKey = %s, want test-key", cfg.Upstream.SerperAPIKey)
	}
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	os.Clearenv()
	os.Setenv("MAX_PRODUCTS", "not-a-number")
	defer os.Clearenv()

	cfg, _ := LoadFromEnv()

	if cfg.Curation.MaxProducts != 8 {
		t.Errorf("MaxProducts = %d, want default 8 for invalid value", cfg.Curation.MaxProducts)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate returned error for default config: %v", err)
	}
}

func TestValidate_EmptyPort(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Server.Port = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should return error for empty port")
	}
}

func TestValidate_MinExceedsMax(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Curation.MinProducts = 20

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should return error when min products exceeds max")
	}
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	cfg.Curation.OverlapThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should return error for zero threshold")
	}

	cfg.Curation.OverlapThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should return error for threshold above 1")
	}
}
