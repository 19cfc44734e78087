package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a revguard run.
type Config struct {
	DataDir     string `yaml:"data_dir"`   // directory holding the CSV dataset
	ListenAddr  string `yaml:"listen"`     // serve: HTTP listen address
	LogFormat   string `yaml:"log_format"` // "text" or "json"
	MaxUploadMB int    `yaml:"max_upload_mb"`
	Force       bool   // re-load even if the upload SHA matches the current snapshot
}

// Defaults used when neither flags nor the YAML file set a value.
const (
	DefaultListenAddr  = ":8080"
	DefaultMaxUploadMB = 50
)

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set (by flags) win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.DataDir == "" {
		c.DataDir = fc.DataDir
	}
	if c.ListenAddr == "" {
		c.ListenAddr = fc.ListenAddr
	}
	if c.LogFormat == "" {
		c.LogFormat = fc.LogFormat
	}
	if c.MaxUploadMB == 0 {
		c.MaxUploadMB = fc.MaxUploadMB
	}
	return nil
}

// Validate checks fields every command needs and fills in defaults.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("--data-dir is required")
	}
	if _, err := os.Stat(c.DataDir); err != nil {
		return fmt.Errorf("data dir not accessible: %w", err)
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = DefaultMaxUploadMB
	}
	return nil
}

// ValidateServe checks serve-specific fields on top of Validate.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	return nil
}
