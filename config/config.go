package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAPIURL   = "http://localhost:8888/api/v1"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "warn"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	APIURL    string
	Timeout   time.Duration
	LogLevel  log.Level
	PrefsFile string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is read first; values already set in the
// shell take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on environment variables")
	}

	apiURL := os.Getenv("STOCKLENS_API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	u, err := url.Parse(apiURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("STOCKLENS_API_URL must be an absolute http(s) URL, got %q", apiURL)
	}

	timeout := DefaultTimeout
	if raw := os.Getenv("STOCKLENS_TIMEOUT"); raw != "" {
		if raw == "0" {
			timeout = 0
		} else {
			timeout, err = time.ParseDuration(raw)
			if err != nil || timeout < 0 {
				return nil, fmt.Errorf("STOCKLENS_TIMEOUT must be a non-negative duration, got %q", raw)
			}
		}
	}

	levelStr := os.Getenv("STOCKLENS_LOG_LEVEL")
	if levelStr == "" {
		levelStr = DefaultLogLevel
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STOCKLENS_LOG_LEVEL: %w", err)
	}

	prefsFile := os.Getenv("STOCKLENS_PREFS_FILE")
	if prefsFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("STOCKLENS_PREFS_FILE not set and no user config dir: %w", err)
		}
		prefsFile = filepath.Join(dir, "stocklens", "prefs.json")
	}

	return &Config{
		APIURL:    apiURL,
		Timeout:   timeout,
		LogLevel:  level,
		PrefsFile: prefsFile,
	}, nil
}
