package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/jview/fs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// JVIEW_THEME_FALLBACK=none.
const EnvPrefix = "JVIEW"

// keys lists every configurable key. Each is bound to an environment variable.
var keys = []string{
	"theme.file",
	"theme.fallback",
	"display.color_profile",
	"logging.level",
	"logging.format",
}

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
	configDirs []string
}

// NewLoader creates a new configuration loader searching the default
// config directories.
func NewLoader() *Loader {
	return &Loader{
		v:          viper.New(),
		configDirs: []string{fs.DefaultConfigDir(), "."},
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// SetConfigDirs replaces the directories searched for config.toml.
func (l *Loader) SetConfigDirs(dirs ...string) {
	l.configDirs = dirs
}

// BindFlag binds a command-line flag to a configuration key. A flag the user
// sets takes precedence over the environment and the config file.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load loads configuration with precedence defaults < config file < env vars
// < flags.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	l.setupViper(cfg)

	if err := l.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Theme.File = expandTilde(cfg.Theme.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ConfigFileUsed returns the config file that was loaded, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range l.configDirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("theme.file", cfg.Theme.File)
	v.SetDefault("theme.fallback", cfg.Theme.Fallback)
	v.SetDefault("display.color_profile", cfg.Display.ColorProfile)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	// Unmarshal only sees env vars for keys that are explicitly bound.
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()
}

// loadConfigFile reads the config file. A missing file is only an error when
// it was set explicitly.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
