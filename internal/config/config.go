package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete fiberscope configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Observe ObserveConfig `mapstructure:"observe"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory log files are written to. Empty means stderr.
	Dir string `mapstructure:"dir"`
}

// ObserveConfig controls the observe command's demo host and TUI
type ObserveConfig struct {
	// Renderers is the number of simulated renderers the demo host injects
	Renderers int `mapstructure:"renderers"`
	// CommitIntervalMs is the delay between simulated root commits
	CommitIntervalMs int `mapstructure:"commit_interval_ms"`
	// MaxEventRows limits how many event rows the TUI keeps in its log
	MaxEventRows int `mapstructure:"max_event_rows"`
}

// CommitInterval returns the commit interval as a duration
func (o *ObserveConfig) CommitInterval() time.Duration {
	return time.Duration(o.CommitIntervalMs) * time.Millisecond
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
		Observe: ObserveConfig{
			Renderers:        3,
			CommitIntervalMs: 500,
			MaxEventRows:     200,
		},
	}
}

// SetDefaults registers all default values with viper.
// Must be called before Load so unset keys resolve to defaults.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("observe.renderers", defaults.Observe.Renderers)
	viper.SetDefault("observe.commit_interval_ms", defaults.Observe.CommitIntervalMs)
	viper.SetDefault("observe.max_event_rows", defaults.Observe.MaxEventRows)
}

// Load unmarshals the current viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory fiberscope reads its config file from.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fiberscope")
	}
	// Fall back to ~/.config/fiberscope
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fiberscope"
	}
	return filepath.Join(home, ".config", "fiberscope")
}
