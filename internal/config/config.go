// Package config loads optional TOML configuration for the fnlen CLI.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "fnlen.toml"

// Config holds the tunable scan settings. Every field has a default that
// preserves the original hardcoded behavior.
type Config struct {
	SourceDirs []string `toml:"source_dirs"`
	MaxLines   int      `toml:"max_lines"`
	Extension  string   `toml:"extension"`
	Parallel   int      `toml:"parallel"`
	Exclude    []string `toml:"exclude"`
	ReportsDir string   `toml:"reports_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceDirs: []string{"src"},
		MaxLines:   120,
		Extension:  ".ts",
		Parallel:   1,
		ReportsDir: ".fnlen-reports",
	}
}

// Load reads a TOML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()

	if len(cfg.SourceDirs) == 0 {
		cfg.SourceDirs = def.SourceDirs
	}

	if cfg.MaxLines == 0 {
		cfg.MaxLines = def.MaxLines
	}

	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}

	if cfg.Parallel == 0 {
		cfg.Parallel = def.Parallel
	}

	if cfg.ReportsDir == "" {
		cfg.ReportsDir = def.ReportsDir
	}
}
