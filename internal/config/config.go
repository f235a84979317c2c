// Package config loads the YAML configuration file
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write modes understood by the store
const (
	WriteModeDeferred  = "deferred"
	WriteModeImmediate = "immediate"
)

// Config represents the application configuration
type Config struct {
	Database    Database    `yaml:"database"`
	Store       Store       `yaml:"store"`
	Log         Log         `yaml:"log"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Database selects the durable medium backing the store
type Database struct {
	Driver string `yaml:"driver"` // "sqlite" or "mysql"
	Path   string `yaml:"path"`   // sqlite file, ignored for mysql
	DSN    string `yaml:"dsn"`    // mysql data source name
}

// Store configures persistence behaviour
type Store struct {
	WriteMode string `yaml:"write_mode"`
}

// Log configures the log file
type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path.
// A missing file yields the default config
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DataDir returns ~/.tasklist, where the database and logs live by default
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tasklist"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if p := os.Getenv("TASKLIST_CONFIG"); p != "" {
		return p, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasklist", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasklist", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		if dir, err := DataDir(); err == nil {
			c.Database.Path = filepath.Join(dir, "tasks.db")
		}
	}
	if c.Store.WriteMode == "" {
		c.Store.WriteMode = WriteModeDeferred
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Path == "" {
		if dir, err := DataDir(); err == nil {
			c.Log.Path = filepath.Join(dir, "logs", "tasklist.log")
		}
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.applyDefaults()
}
