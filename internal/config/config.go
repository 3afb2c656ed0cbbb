// Package config provides configuration management for the library.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the library-wide configuration.
type Config struct {
	// GeneratedColumnName is the column name used when inflating a series
	// that has no name into a one-column DataFrame.
	GeneratedColumnName string `yaml:"generated_column_name"`

	// StrictColumnLookup controls GetSeries on a missing column: when true
	// the lookup fails, when false it yields an empty series.
	StrictColumnLookup bool `yaml:"strict_column_lookup"`

	// SortBufferHint is the initial pair-buffer capacity the sort engine
	// allocates before draining its source (0 = no preallocation).
	SortBufferHint int `yaml:"sort_buffer_hint"`
}

// Default configuration values.
const (
	DefaultGeneratedColumnName = "Value"
	DefaultSortBufferHint      = 64
)

// Global configuration instance.
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values.
func NewConfig() Config {
	return Config{
		GeneratedColumnName: DefaultGeneratedColumnName,
		StrictColumnLookup:  false,
		SortBufferHint:      DefaultSortBufferHint,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.GeneratedColumnName == "" {
		return fmt.Errorf("GeneratedColumnName must not be empty")
	}
	if c.SortBufferHint < 0 {
		return fmt.Errorf("SortBufferHint must be non-negative, got %d", c.SortBufferHint)
	}
	return nil
}

// WithDefaults returns a new configuration with default values filled in for
// zero values. Boolean fields are left as-is so an explicit false survives.
func (c Config) WithDefaults() Config {
	defaults := NewConfig()
	if c.GeneratedColumnName == "" {
		c.GeneratedColumnName = defaults.GeneratedColumnName
	}
	if c.SortBufferHint == 0 {
		c.SortBufferHint = defaults.SortBufferHint
	}
	return c
}

// SetGlobalConfig sets the global configuration.
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration.
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}
	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from environment variables, starting from
// defaults.
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv("EGRET_GENERATED_COLUMN_NAME"); val != "" {
		config.GeneratedColumnName = val
	}
	if val := os.Getenv("EGRET_STRICT_COLUMN_LOOKUP"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.StrictColumnLookup = parsed
		}
	}
	if val := os.Getenv("EGRET_SORT_BUFFER_HINT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.SortBufferHint = parsed
		}
	}

	return config
}
