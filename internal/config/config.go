// Package config handles configuration for hash-omikuji.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// environment variables, command-line flags (applied by the cmd layer).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all hash-omikuji configuration.
type Config struct {
	// User is the default identity to draw a fortune for when --user is
	// not given. Falls back to $USER, then the hostname.
	User string `env:"OMIKUJI_USER" yaml:"user"`
	// Format is the default output format: "text" or "json".
	Format string `env:"OMIKUJI_FORMAT" yaml:"format"`
	// HistoryPath overrides where past draws are recorded.
	HistoryPath string `env:"OMIKUJI_HISTORY" yaml:"history_path"`
	// NoHistory disables recording draws entirely.
	NoHistory bool `env:"OMIKUJI_NO_HISTORY" yaml:"no_history"`
}

// DefaultDir returns the per-user state directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hash-omikuji"
	}
	return filepath.Join(home, ".hash-omikuji")
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load builds a Config from the YAML file at path overlaid with
// environment variables. An empty path means the default location, which
// is allowed to be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{Format: "text"}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No default config file is fine.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid format %q: want text or json", cfg.Format)
	}
	return cfg, nil
}

// ResolveUser picks the identity a fortune is drawn for: the explicit
// flag value, then the configured default, then $USER, then the
// hostname.
func (c *Config) ResolveUser(flagUser string) string {
	if flagUser != "" {
		return flagUser
	}
	if c.User != "" {
		return c.User
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "unknown"
}
