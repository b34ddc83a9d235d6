package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Display styles
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
}

// DisplayConfig holds output preferences
type DisplayConfig struct {
	Style string `json:"style"` // "plain" or "styled"
	Chart bool   `json:"chart"` // plot calories after the summary
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Style: StylePlain,
		},
	}
}

// Load reads the configuration from ~/.ftracker/config.json.
// Without a resolvable home directory there is no config file, so it
// returns ErrNoConfig.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfig, err)
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	if cfg.Display.Style == "" {
		cfg.Display.Style = DefaultConfig().Display.Style
	}

	return &cfg, nil
}

// Validate checks that the config values are recognized
func (c *Config) Validate() error {
	if c.Display.Style != "" && c.Display.Style != StylePlain && c.Display.Style != StyleStyled {
		return fmt.Errorf("display.style must be %q or %q, got %q", StylePlain, StyleStyled, c.Display.Style)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ftracker", "config.json"), nil
}
