// Package scraper fetches submitted pages and extracts their titles.
package scraper

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the page scraper.
type Config struct {
	Timeout     time.Duration // HTTP request timeout
	MaxBodySize int64         // Max bytes read from a fetched page
}

// LoadConfig loads scraper configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Timeout:     10 * time.Second,
		MaxBodySize: 1 << 20, // 1 MiB
	}
	if v := os.Getenv("SCRAPER_TIMEOUT_SECONDS"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	if v := os.Getenv("SCRAPER_MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodySize = n
		}
	}
	return cfg
}
