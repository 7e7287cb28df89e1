// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/SailerAI/arco-pricing/core/types"
	"github.com/SailerAI/arco-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Currency is the default presentation currency
	Currency types.Currency `json:"currency"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Sweep contains sweep defaults
	Sweep SweepConfig `json:"sweep"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color"`
}

// SweepConfig contains sweep-related settings
type SweepConfig struct {
	// MaxVolume is the default volume-sweep ceiling
	MaxVolume float64 `json:"max_volume"`

	// VolumeStep is the default volume-sweep increment
	VolumeStep float64 `json:"volume_step"`

	// Workers caps sweep parallelism; 0 means one worker per CPU
	Workers int `json:"workers"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Currency: types.CurrencyBRL,
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Sweep: SweepConfig{
			MaxVolume:  3500,
			VolumeStep: 100,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
