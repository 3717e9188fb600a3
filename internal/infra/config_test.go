package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "DATABASE_URL", "OLLAMA_BASE_URL",
		"OLLAMA_GENERATE_TIMEOUT_SECONDS", "OLLAMA_LIST_TIMEOUT_SECONDS",
		"OLLAMA_MODEL_CACHE_TTL_SECONDS", "RATE_LIMIT_PER_MINUTE",
		"CORS_ORIGINS", "HISTORY_LIST_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.OllamaBaseURL != "http://127.0.0.1:11434" {
		t.Errorf("OllamaBaseURL = %q", cfg.OllamaBaseURL)
	}
	if cfg.OllamaGenerateTimeout != 60*time.Second {
		t.Errorf("OllamaGenerateTimeout = %v, want 60s", cfg.OllamaGenerateTimeout)
	}
	if cfg.OllamaListTimeout != 5*time.Second {
		t.Errorf("OllamaListTimeout = %v, want 5s", cfg.OllamaListTimeout)
	}
	if cfg.OllamaModelCacheTTL != 5*time.Minute {
		t.Errorf("OllamaModelCacheTTL = %v, want 5m", cfg.OllamaModelCacheTTL)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Errorf("RateLimitPerMin = %d, want 60", cfg.RateLimitPerMin)
	}
	if cfg.CORSOrigins != nil {
		t.Errorf("CORSOrigins = %v, want nil", cfg.CORSOrigins)
	}
	if cfg.HistoryListLimit != 20 {
		t.Errorf("HistoryListLimit = %d, want 20", cfg.HistoryListLimit)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:11434")
	t.Setenv("OLLAMA_GENERATE_TIMEOUT_SECONDS", "120")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AppEnv != "production" {
		t.Errorf("AppEnv = %q, want production", cfg.AppEnv)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.OllamaBaseURL != "http://ollama.internal:11434" {
		t.Errorf("OllamaBaseURL = %q", cfg.OllamaBaseURL)
	}
	if cfg.OllamaGenerateTimeout != 120*time.Second {
		t.Errorf("OllamaGenerateTimeout = %v, want 120s", cfg.OllamaGenerateTimeout)
	}
	if cfg.RateLimitPerMin != 10 {
		t.Errorf("RateLimitPerMin = %d, want 10", cfg.RateLimitPerMin)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSOrigins) != len(want) || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("OLLAMA_LIST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.OllamaListTimeout != 5*time.Second {
		t.Errorf("OllamaListTimeout = %v, want default 5s", cfg.OllamaListTimeout)
	}
}
