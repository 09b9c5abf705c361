// Package config loads server settings from the environment and optional .env files
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	Port               string
	GinMode            string
	LogLevel           string
	DataDir            string
	DevMode            bool
	DefaultLanguage    string
	CacheTTL           time.Duration
	MaxCacheSize       int
	RateLimit          float64
	RateBurst          float64
	BatchConcurrency   int
	ExtractMainContent bool
	RulesFile          string
}

// EnvFiles are loaded in order; variables already set are never overridden
var EnvFiles = []string{".env.development", ".env"}

// Load reads the .env files that exist and then the environment
func Load() (*Config, error) {
	for _, file := range EnvFiles {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8082"),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DefaultLanguage: strings.ToLower(getEnv("DEFAULT_LANGUAGE", "en")),
		RulesFile:       os.Getenv("RULES_FILE"),
	}

	var err error
	if cfg.DevMode, err = getBool("DEV_MODE", false); err != nil {
		return nil, err
	}
	if cfg.ExtractMainContent, err = getBool("EXTRACT_MAIN_CONTENT", false); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.MaxCacheSize, err = getInt("MAX_CACHE_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency, err = getInt("BATCH_CONCURRENCY", 4); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getFloat("RATE_LIMIT", 2); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getFloat("RATE_BURST", 5); err != nil {
		return nil, err
	}

	if cfg.DefaultLanguage != "en" && cfg.DefaultLanguage != "el" {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE: unsupported language %q", cfg.DefaultLanguage)
	}
	if cfg.BatchConcurrency < 1 {
		return nil, fmt.Errorf("BATCH_CONCURRENCY: must be at least 1, got %d", cfg.BatchConcurrency)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return v, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s: invalid positive number %q", key, raw)
	}
	return v, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return v, nil
}
