// Package config loads repdash configuration by layering defaults, an
// optional YAML file, and REPDASH_-prefixed environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/ryvens/repdash/internal/core/grouping"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is where the logger writes when not in debug mode.
	LogFile string `koanf:"log_file"`

	// SnapshotPath points at the exported account snapshot.
	SnapshotPath string `koanf:"snapshot_path"`

	// MinRefreshMS is the minimum interval between full rebuilds in watch
	// mode, in milliseconds. Triggers inside the interval are dropped.
	MinRefreshMS int `koanf:"min_refresh_ms"`

	// NestingExceptions lists faction names that always render as direct
	// top-level entries regardless of their parent chain.
	NestingExceptions []string `koanf:"nesting_exceptions"`

	// DefaultIcon is the icon ID used for factions with no known icon.
	DefaultIcon int `koanf:"default_icon"`

	// Color toggles ANSI color output.
	Color bool `koanf:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		LogLevel:          "info",
		LogFile:           filepath.Join(home, ".repdash", "logs", "app.log"),
		SnapshotPath:      filepath.Join(home, ".repdash", "snapshot.json"),
		MinRefreshMS:      500,
		NestingExceptions: grouping.DefaultNestingExceptions,
		DefaultIcon:       134400,
		Color:             true,
	}
}

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if path is non-empty
//  3. env (prefix REPDASH_)
func Load(path string) (*Config, error) {
	cfg := *Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: REPDASH_SNAPSHOT_PATH, REPDASH_MIN_REFRESH_MS,
	// ... Preserve underscores to match the koanf tags on the struct.
	envProvider := env.Provider("REPDASH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "repdash_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.SnapshotPath == "" {
		return nil, errors.New("snapshot_path must not be empty")
	}
	if cfg.MinRefreshMS < 0 {
		return nil, errors.New("min_refresh_ms must not be negative")
	}
	return &cfg, nil
}

// MinRefreshInterval returns the rebuild throttle as a duration.
func (c *Config) MinRefreshInterval() time.Duration {
	return time.Duration(c.MinRefreshMS) * time.Millisecond
}
