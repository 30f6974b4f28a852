// Package output provides summary report formatting for generated charts.
package output

import (
	"github.com/aptos-labs/covgraph/pkg/parser"
)

// Modes of operation reported in a summary.
const (
	ModeSingle     = "single"
	ModeComparison = "comparison"
)

// Report summarizes a chart generation run.
type Report struct {
	// Mode is "single" or "comparison".
	Mode string `json:"mode"`

	// Output is the path of the chart file that was written.
	Output string `json:"output"`

	// Horizon is the resolved plotting horizon in hours.
	// Zero in single mode, where no horizon applies.
	Horizon float64 `json:"horizon,omitempty"`

	// Runs summarizes each plotted run, in legend order.
	Runs []RunSummary `json:"runs"`
}

// RunSummary gives per-run statistics after truncation.
type RunSummary struct {
	// Name is the run's display name.
	Name string `json:"name"`

	// Samples is the number of plotted points.
	Samples int `json:"samples"`

	// FinalHours is the elapsed-hours value of the last plotted point.
	FinalHours float64 `json:"final_hours"`

	// FinalCoverage is the coverage value of the last plotted point.
	FinalCoverage int `json:"final_coverage"`
}

// NewReport builds a Report from the plotted runs.
func NewReport(mode, outputPath string, horizon float64, runs []parser.Run) *Report {
	report := &Report{
		Mode:    mode,
		Output:  outputPath,
		Horizon: horizon,
		Runs:    make([]RunSummary, 0, len(runs)),
	}

	for _, run := range runs {
		summary := RunSummary{
			Name:    run.Name,
			Samples: len(run.Series),
		}
		if len(run.Series) > 0 {
			last := run.Series[len(run.Series)-1]
			summary.FinalHours = last.Hours
			summary.FinalCoverage = last.Coverage
		}
		report.Runs = append(report.Runs, summary)
	}

	return report
}
