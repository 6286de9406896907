// Package config loads the shell configuration from
// ~/.config/gosh/config.yaml, falling back to defaults when the file is
// absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global gosh configuration.
type Config struct {
	Prompt  string        `yaml:"prompt"`
	History HistoryConfig `yaml:"history"`
	Trace   TraceConfig   `yaml:"trace"`
}

// HistoryConfig controls history persistence.
type HistoryConfig struct {
	// Path of the history file. The HISTFILE environment variable
	// overrides it.
	Path string `yaml:"path"`
	// Limit is the maximum number of entries kept in the file.
	Limit int `yaml:"limit"`
}

// TraceConfig controls the execution trace log.
type TraceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt: "$ ",
		History: HistoryConfig{
			Path:  filepath.Join(home, ".gosh_history"),
			Limit: 500,
		},
		Trace: TraceConfig{
			Enabled: false,
			Path:    filepath.Join(home, ".local", "share", "gosh", "trace.jsonl"),
		},
	}
}

// Load reads the config from the standard location
// (~/.config/gosh/config.yaml). A missing file yields the defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(filepath.Join(home, ".config", "gosh", "config.yaml"))
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.History.Path = expandHome(cfg.History.Path)
	cfg.Trace.Path = expandHome(cfg.Trace.Path)

	return cfg, nil
}

// HistoryPath returns the effective history file path, honoring the
// HISTFILE environment variable over the configured one.
func (c *Config) HistoryPath() string {
	if path := os.Getenv("HISTFILE"); path != "" {
		return path
	}
	return c.History.Path
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
