package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultResultsDir       = "vm-results"
	DefaultLogName          = "fuzz.log"
	DefaultHorizonHours     = 24
	DefaultSingleOutput     = "coverage.svg"
	DefaultComparisonOutput = "coverage-comparison.svg"
)

// Environment variable names.
const (
	// EnvMaxHour overrides the plotting horizon in comparison mode.
	EnvMaxHour = "MAX_HOUR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir:       DefaultResultsDir,
		LogName:          DefaultLogName,
		Exclude:          []string{"afl"},
		DefaultHorizon:   DefaultHorizonHours,
		SingleOutput:     DefaultSingleOutput,
		ComparisonOutput: DefaultComparisonOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to
// the config. MAX_HOUR set to "0" is an explicit zero horizon, distinct
// from unset.
func (c *Config) applyEnvironmentOverrides() error {
	if raw, ok := os.LookupEnv(EnvMaxHour); ok {
		hour, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: parsing %q as integer: %w", EnvMaxHour, raw, err)
		}
		c.MaxHour = &hour
	}
	return nil
}
