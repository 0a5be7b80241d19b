// Package fs locates and loads theme documents from the file system.
package fs

import (
	"os"
	"path/filepath"
)

// AppName names the configuration directory.
const AppName = "jview"

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/jview,
// or a relative .jview directory if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}
