// Package config loads server configuration from the environment.
// Engine scoring constants (threshold, weights) are deliberately not
// configurable here: they are compile-time options, so inference
// results stay deterministic across deployments.
package config

import (
	"os"
	"strconv"
)

// Config holds the HTTP server settings.
type Config struct {
	Port           string  `json:"port"`
	MaxUploadBytes int64   `json:"max_upload_bytes"`
	SampleSize     int     `json:"sample_size"`
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`
	LogLevel       string  `json:"log_level"`
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local runs.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("SERVER_PORT", "8087"),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 16<<20),
		SampleSize:     getEnvInt("SAMPLE_SIZE", 10),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
