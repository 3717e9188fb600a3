package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                string
	Port                  string
	DatabaseURL           string
	OllamaBaseURL         string
	OllamaGenerateTimeout time.Duration
	OllamaListTimeout     time.Duration
	OllamaModelCacheTTL   time.Duration
	HTTPReadTimeout       time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration
	RateLimitPerMin       int
	CORSOrigins           []string
	HistoryListLimit      int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL is optional: without it history is
// kept in memory only.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		OllamaBaseURL:         getEnv("OLLAMA_BASE_URL", "http://127.0.0.1:11434"),
		OllamaGenerateTimeout: time.Second * time.Duration(getEnvInt("OLLAMA_GENERATE_TIMEOUT_SECONDS", 60)),
		OllamaListTimeout:     time.Second * time.Duration(getEnvInt("OLLAMA_LIST_TIMEOUT_SECONDS", 5)),
		OllamaModelCacheTTL:   time.Second * time.Duration(getEnvInt("OLLAMA_MODEL_CACHE_TTL_SECONDS", 300)),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:       getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		CORSOrigins:           getEnvList("CORS_ORIGINS"),
		HistoryListLimit:      getEnvInt("HISTORY_LIST_LIMIT", 20),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
