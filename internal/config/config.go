package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port             string
	DataPath         string
	DataURL          string
	FetchTimeoutSecs int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	IdleTimeoutSecs  int
	DefaultBins      int
	PreviewLimit     int
	PreviewMax       int
}

// Load reads configuration from environment variables, applying defaults and
// validation. DATA_URL, when set, takes precedence over DATA_PATH.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DataPath:         getEnv("DATA_PATH", "Movie-Rating.csv"),
		DataURL:          os.Getenv("DATA_URL"),
		FetchTimeoutSecs: getEnvInt("DATA_FETCH_TIMEOUT_SECS", 10),
		ReadTimeoutSecs:  getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DefaultBins:      getEnvInt("CHART_DEFAULT_BINS", 20),
		PreviewLimit:     getEnvInt("PREVIEW_LIMIT", 10),
		PreviewMax:       getEnvInt("PREVIEW_MAX", 15),
	}

	if cfg.DataPath == "" && cfg.DataURL == "" {
		return Config{}, fmt.Errorf("DATA_PATH or DATA_URL is required")
	}
	if cfg.FetchTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("DATA_FETCH_TIMEOUT_SECS must be positive")
	}
	if cfg.DefaultBins <= 0 {
		return Config{}, fmt.Errorf("CHART_DEFAULT_BINS must be positive")
	}
	if cfg.PreviewLimit <= 0 {
		return Config{}, fmt.Errorf("PREVIEW_LIMIT must be positive")
	}
	if cfg.PreviewMax < cfg.PreviewLimit {
		return Config{}, fmt.Errorf("PREVIEW_MAX cannot be less than PREVIEW_LIMIT")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
