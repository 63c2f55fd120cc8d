// Package config loads the gridpathd service configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates an environment variable with an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr          = "GRIDPATH_ADDR"
	EnvLogLevel      = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat     = "GRIDPATH_LOG_FORMAT"
	EnvGinMode       = "GRIDPATH_GIN_MODE"
	EnvSearchTimeout = "GRIDPATH_SEARCH_TIMEOUT"
	EnvMaxCells      = "GRIDPATH_MAX_CELLS"
)

// Config holds the service configuration.
type Config struct {
	Addr          string        // listen address
	LogLevel      string        // debug, info, warn or error
	LogFormat     string        // text or json
	GinMode       string        // debug, release or test
	SearchTimeout time.Duration // per-request search deadline
	MaxCells      int           // largest grid (or matrix) a request may carry
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		GinMode:       "release",
		SearchTimeout: 5 * time.Second,
		MaxCells:      1_000_000,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then builds a Config from it. A missing default
// .env file is not an error; a missing explicit file is.
// Variables already set in the environment win over .env entries.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, starting at Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		v = strings.ToLower(v)
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return Config{}, fmt.Errorf("%w: %s=%q, want debug, info, warn or error", ErrInvalidConfig, EnvLogLevel, v)
		}
	}
	if v, ok := lookup(EnvLogFormat); ok {
		v = strings.ToLower(v)
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("%w: %s=%q, want text or json", ErrInvalidConfig, EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvGinMode); ok {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return Config{}, fmt.Errorf("%w: %s=%q, want debug, release or test", ErrInvalidConfig, EnvGinMode, v)
		}
	}
	if v, ok := lookup(EnvSearchTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a positive duration", ErrInvalidConfig, EnvSearchTimeout, v)
		}
		cfg.SearchTimeout = d
	}
	if v, ok := lookup(EnvMaxCells); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalidConfig, EnvMaxCells, v)
		}
		cfg.MaxCells = n
	}

	return cfg, nil
}
