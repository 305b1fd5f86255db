// Package config loads settings for the lineview command line tool
// from an optional TOML file.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the CLI settings.
type Config struct {
	// CacheCapacity bounds the compiled-pattern cache. Zero means the
	// library default.
	CacheCapacity int `toml:"cache_capacity"`

	// MaxMatches stops the scan after this many matching lines. Zero
	// means unlimited.
	MaxMatches int `toml:"max_matches"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LineEnding overrides terminator detection: "lf", "crlf", "cr",
	// or "auto".
	LineEnding string `toml:"line_ending"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		LineEnding: "auto",
	}
}

// Load reads the configuration at path, applying defaults for missing
// keys. A missing file is not an error; malformed TOML is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
