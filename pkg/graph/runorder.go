package graph

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aptos-labs/covgraph/pkg/parser"
)

// RunningName is the directory name of an in-progress fuzzing session.
// It sorts as "now" and its final sample defines the default plotting
// horizon.
const RunningName = "running"

// monthDayLayout matches run names like "Jan-05" or "Feb-3"; the year is
// implicit (taken from the current time).
const monthDayLayout = "Jan-2"

// recencyKey maps a run name to a timestamp used for ordering. The name
// "running" means now; anything else must begin with a Month-Day token
// (first two dash-separated fields).
func recencyKey(name string, now time.Time) (time.Time, error) {
	if name == RunningName {
		return now, nil
	}

	fields := strings.SplitN(name, "-", 3)
	if len(fields) < 2 {
		return time.Time{}, fmt.Errorf("run name %q: expected %q or a Month-Day prefix like Jan-05", name, RunningName)
	}

	token := fields[0] + "-" + fields[1]
	parsed, err := time.Parse(monthDayLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("run name %q: parsing %q as Month-Day: %w", name, token, err)
	}

	return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), nil
}

// sortByRecency orders runs most-recent first for stable, readable
// legend ordering. Returns an error for any run name that is neither
// "running" nor a parseable Month-Day token.
func sortByRecency(runs []parser.Run, now time.Time) ([]parser.Run, error) {
	keys := make(map[string]time.Time, len(runs))
	for _, run := range runs {
		key, err := recencyKey(run.Name, now)
		if err != nil {
			return nil, err
		}
		keys[run.Name] = key
	}

	sorted := make([]parser.Run, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keys[sorted[i].Name].After(keys[sorted[j].Name])
	})
	return sorted, nil
}
