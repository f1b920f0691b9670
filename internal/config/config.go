// Package config handles gram configuration loading and validation.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure for gram.
type Config struct {
	// Server settings for the local bridge server.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Inbox settings.
	Inbox InboxConfig `yaml:"inbox" mapstructure:"inbox"`

	// Logging settings.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig describes how to reach the bridge server that holds the
// authenticated messaging session.
type ServerConfig struct {
	// URL is the base URL of the bridge server.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds each API call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// InboxConfig contains inbox display settings.
type InboxConfig struct {
	// DefaultLimit is how many threads to fetch when --limit is not given.
	DefaultLimit int `yaml:"default_limit" mapstructure:"default_limit"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://127.0.0.1:8047",
			Timeout: 30 * time.Second,
		},
		Inbox: InboxConfig{
			DefaultLimit: 20,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url is required")
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1s")
	}
	if c.Inbox.DefaultLimit < 1 {
		return fmt.Errorf("inbox.default_limit must be at least 1")
	}
	return nil
}
