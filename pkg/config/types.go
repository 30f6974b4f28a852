// Package config provides configuration for chart generation.
package config

// Config holds the settings for log discovery and chart output.
type Config struct {
	// ResultsDir is the directory scanned for run logs in comparison mode,
	// relative to the working directory unless absolute.
	ResultsDir string `yaml:"results_dir"`

	// LogName is the exact file name identifying a run log.
	LogName string `yaml:"log_name"`

	// Exclude lists path substrings; any log whose path contains one is
	// skipped during discovery.
	Exclude []string `yaml:"exclude"`

	// DefaultHorizon is the plotting horizon in hours used when no
	// override applies and no run is in progress.
	DefaultHorizon float64 `yaml:"default_horizon"`

	// SingleOutput is the output file for single-run mode.
	SingleOutput string `yaml:"single_output"`

	// ComparisonOutput is the output file for comparison mode.
	ComparisonOutput string `yaml:"comparison_output"`

	// MaxHour overrides the plotting horizon when set. Nil means no
	// override; an explicit zero is honored as a zero horizon.
	MaxHour *int `yaml:"max_hour"`
}
