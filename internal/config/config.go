// Package config loads the inkbook configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/akeil/inkbook/internal/logging"
)

// Config holds the full inkbook configuration.
type Config struct {
	RootDir        string `yaml:"root_dir"`
	Listen         string `yaml:"listen"`
	LogLevel       string `yaml:"log_level"`
	PageWidth      int    `yaml:"page_width"`
	PageHeight     int    `yaml:"page_height"`
	StrictVersions bool   `yaml:"strict_versions"`
}

// DefaultConfig returns sane defaults.
// Notebooks are kept in ~/.local/share/inkbook/notebooks.
func DefaultConfig() *Config {
	return &Config{
		RootDir:    defaultRootDir(),
		Listen:     "127.0.0.1:8642",
		LogLevel:   "info",
		PageWidth:  800,
		PageHeight: 600,
	}
}

// DefaultPath is the location of the config file if none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkbook.yaml"
	}
	return filepath.Join(dir, "inkbook", "config.yaml")
}

// LoadConfig reads and parses a YAML config file.
// Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadOptional is like LoadConfig, but returns the defaults
// if the file does not exist.
func LoadOptional(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		logging.Debug("No config file at %q, using defaults", path)
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root_dir is required")
	}
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warning", "warn", "error", "none":
	default:
		return fmt.Errorf("log_level %q is not a known level", c.LogLevel)
	}
	if c.PageWidth <= 0 {
		return fmt.Errorf("page_width must be > 0")
	}
	if c.PageHeight <= 0 {
		return fmt.Errorf("page_height must be > 0")
	}
	return nil
}

func defaultRootDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notebooks"
	}
	return filepath.Join(home, ".local", "share", "inkbook", "notebooks")
}
