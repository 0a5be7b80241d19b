// Package config handles application configuration loading and validation.
package config

import (
	"fmt"

	"github.com/fwojciec/jview"
	"github.com/fwojciec/jview/lipgloss"
)

// Config is the root configuration structure.
type Config struct {
	// Theme settings
	Theme ThemeConfig `mapstructure:"theme"`

	// Display settings
	Display DisplayConfig `mapstructure:"display"`

	// Logging settings
	Logging LoggingConfig `mapstructure:"logging"`
}

// ThemeConfig selects the theme document and what happens without one.
type ThemeConfig struct {
	// File is an explicit theme document path. When empty, theme.toml,
	// theme.yaml and theme.yml are searched in the config directories.
	File string `mapstructure:"file"`

	// Fallback is used when no theme document is loaded (builtin, none).
	Fallback string `mapstructure:"fallback"`
}

// DisplayConfig contains rendering settings.
type DisplayConfig struct {
	// ColorProfile forces a color profile (auto, ascii, ansi, ansi256, truecolor).
	ColorProfile string `mapstructure:"color_profile"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Fallback: jview.FallbackBuiltin.String(),
		},
		Display: DisplayConfig{
			ColorProfile: "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := jview.ParseFallback(c.Theme.Fallback); err != nil {
		return fmt.Errorf("theme.fallback: %w", err)
	}

	if _, _, err := lipgloss.ParseProfile(c.Display.ColorProfile); err != nil {
		return fmt.Errorf("display.color_profile: %w", err)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be one of console, json")
	}

	return nil
}

// Fallback returns the parsed theme fallback policy. Call Validate first.
func (c *Config) Fallback() jview.Fallback {
	f, _ := jview.ParseFallback(c.Theme.Fallback)
	return f
}
