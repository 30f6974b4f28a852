// Package graph assembles parsed fuzzing runs into an ordered,
// horizon-bounded set ready for comparison rendering.
package graph

import (
	"time"

	"github.com/aptos-labs/covgraph/pkg/parser"
)

// Comparison orders and truncates a set of runs for overlay plotting.
type Comparison struct {
	defaultHorizon float64

	// Options
	override *int
	now      time.Time
}

// Option configures comparison behavior.
type Option func(*Comparison)

// WithHorizon forces the plotting horizon to the given hour value,
// overriding both the configured default and any running run's
// timestamp. An explicit zero is honored.
func WithHorizon(hour int) Option {
	return func(c *Comparison) {
		c.override = &hour
	}
}

// WithNow sets the reference time for recency ordering. Defaults to
// time.Now; tests pin it for determinism.
func WithNow(now time.Time) Option {
	return func(c *Comparison) {
		c.now = now
	}
}

// NewComparison creates a comparison builder. defaultHorizon is the
// horizon used when no override applies and no run is in progress.
func NewComparison(defaultHorizon float64, opts ...Option) *Comparison {
	c := &Comparison{
		defaultHorizon: defaultHorizon,
		now:            time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is an ordered, truncated run set with its resolved horizon.
type Result struct {
	// Runs are ordered most-recent first, each truncated to Horizon.
	Runs []parser.Run

	// Horizon is the maximum elapsed-hours value included.
	Horizon float64
}

// Build orders the runs by recency and truncates each to the resolved
// horizon. Returns an error for an unparseable run name or a running
// run with no samples.
func (c *Comparison) Build(runs []parser.Run) (*Result, error) {
	sorted, err := sortByRecency(runs, c.now)
	if err != nil {
		return nil, err
	}

	horizon, err := resolveHorizon(sorted, c.defaultHorizon, c.override)
	if err != nil {
		return nil, err
	}

	truncated := make([]parser.Run, len(sorted))
	for i, run := range sorted {
		truncated[i] = parser.Run{
			Name:   run.Name,
			Series: Truncate(run.Series, horizon),
		}
	}

	return &Result{Runs: truncated, Horizon: horizon}, nil
}
