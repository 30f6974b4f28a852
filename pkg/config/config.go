package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the file at path if it exists, otherwise returns
// the default configuration. Environment overrides and validation apply
// either way.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); err == nil {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.ResultsDir == "" {
		return errors.New("results_dir: a results directory is required")
	}

	if cfg.LogName == "" {
		return errors.New("log_name: a log file name is required")
	}

	if cfg.DefaultHorizon <= 0 {
		return fmt.Errorf("default_horizon: must be positive, got %v", cfg.DefaultHorizon)
	}

	if cfg.SingleOutput == "" {
		return errors.New("single_output: an output file name is required")
	}

	if cfg.ComparisonOutput == "" {
		return errors.New("comparison_output: an output file name is required")
	}

	if cfg.MaxHour != nil && *cfg.MaxHour < 0 {
		return fmt.Errorf("max_hour: must be >= 0, got %d", *cfg.MaxHour)
	}

	return nil
}
