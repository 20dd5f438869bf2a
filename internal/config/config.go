// Package config provides configuration management for stockledger.
//
// The database path is owned here and injected into the store at
// construction time by whoever assembles the process; nothing else in the
// system holds path state.
//
// Config file locations (priority order):
//  1. $STOCKLEDGER_CONFIG
//  2. ./stockledger.yaml
//  3. $XDG_CONFIG_HOME/stockledger/config.yaml
//  4. ~/.config/stockledger/config.yaml
//  5. /etc/stockledger/config.yaml
//
// Environment variables override file values after loading:
// STOCKLEDGER_DB_PATH and STOCKLEDGER_FIXTURE_PATH.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Fixture  FixtureConfig  `yaml:"fixture,omitempty"`
}

// DatabaseConfig locates the backing store file
type DatabaseConfig struct {
	Path string `yaml:"path" envconfig:"STOCKLEDGER_DB_PATH"`
}

// FixtureConfig locates an optional batch of pre-authored statements for
// demos; empty path means no fixture is available
type FixtureConfig struct {
	Path string `yaml:"path,omitempty" envconfig:"STOCKLEDGER_FIXTURE_PATH"`
}

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Path: "./stockledger.db"},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Path == "" {
		c.Database.Path = "./stockledger.db"
	}
}

// applyEnv overrides file values from the environment; unset variables
// leave the loaded values untouched.
func (c *Config) applyEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("process env overrides: %w", err)
	}
	return nil
}
