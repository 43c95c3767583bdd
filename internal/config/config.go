package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8000"
	defaultDatabaseURL  = "database.db"
	defaultWikipediaURL = "https://en.wikipedia.org/w/api.php"
	defaultWikiTimeout  = "10s"
	defaultFrontendDist = "frontend/dist"
)

// Config holds the runtime configuration for the API server.
type Config struct {
	Addr            string
	DatabaseURL     string
	WikipediaAPIURL string
	WikiTimeout     time.Duration
	FrontendDist    string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.WikipediaAPIURL = strings.TrimSpace(getEnv("WIKIPEDIA_API_URL", defaultWikipediaURL))
	cfg.FrontendDist = strings.TrimSpace(getEnv("FRONTEND_DIST", defaultFrontendDist))

	var err error
	cfg.WikiTimeout, err = parseDurationEnv("WIKIPEDIA_TIMEOUT", defaultWikiTimeout)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.WikipediaAPIURL == "" {
		return fmt.Errorf("WIKIPEDIA_API_URL must not be empty")
	}
	if cfg.WikiTimeout <= 0 {
		return fmt.Errorf("WIKIPEDIA_TIMEOUT must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
