// Package config provides configuration management for the secretshare CLI.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Sharing SharingConfig `yaml:"sharing"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SharingConfig defines default dealing parameters.
type SharingConfig struct {
	DefaultThreshold int  `yaml:"default_threshold"`
	DefaultShares    int  `yaml:"default_shares"`
	SignByDefault    bool `yaml:"sign_by_default"`
	MemoryLock       bool `yaml:"memory_lock"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the configured home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// GetDefaultThreshold returns the configured default dealing threshold.
func (c *Config) GetDefaultThreshold() int {
	return c.Sharing.DefaultThreshold
}

// GetDefaultShares returns the configured default share count.
func (c *Config) GetDefaultShares() int {
	return c.Sharing.DefaultShares
}

// IsSignByDefault returns true if new dealings are Merkle-signed by default.
func (c *Config) IsSignByDefault() bool {
	return c.Sharing.SignByDefault
}

// IsMemoryLockEnabled returns true if secret and recovered-secret buffers
// should be mlocked (where the OS supports it) for the lifetime of a command.
func (c *Config) IsMemoryLockEnabled() bool {
	return c.Sharing.MemoryLock
}

// DefaultHome returns the default secretshare home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".secretshare"
	}
	return filepath.Join(home, ".secretshare")
}
