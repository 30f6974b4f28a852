package graph

import (
	"fmt"

	"github.com/aptos-labs/covgraph/pkg/parser"
)

// horizonEpsilon is added to a running run's final timestamp so the
// strict <= truncation filter does not drop its own last point.
const horizonEpsilon = 0.01

// resolveHorizon computes the maximum elapsed-hours value to plot.
//
// An explicit override wins over everything and is used exactly.
// Otherwise a run named "running" sets the horizon to its final sample
// plus a small epsilon; with no running run the configured default
// stands.
func resolveHorizon(runs []parser.Run, defaultHorizon float64, override *int) (float64, error) {
	if override != nil {
		return float64(*override), nil
	}

	for _, run := range runs {
		if run.Name != RunningName {
			continue
		}
		if len(run.Series) == 0 {
			return 0, fmt.Errorf("run %q: no coverage samples to derive horizon from", run.Name)
		}
		return run.Series[len(run.Series)-1].Hours + horizonEpsilon, nil
	}

	return defaultHorizon, nil
}

// Truncate returns the prefix of the series whose samples fall at or
// before the horizon, times and coverages in lockstep.
func Truncate(series parser.Series, horizon float64) parser.Series {
	cut := len(series)
	for i, sample := range series {
		if sample.Hours > horizon {
			cut = i
			break
		}
	}
	return series[:cut]
}
