package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct{}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Chart: %s (%s mode)\n", report.Output, report.Mode)
	if report.Mode == ModeComparison {
		fmt.Fprintf(w, "Horizon: %.2f hours\n", report.Horizon)
	}

	for _, run := range report.Runs {
		if run.Samples == 0 {
			fmt.Fprintf(w, "  %-24s no samples\n", run.Name)
			continue
		}
		fmt.Fprintf(w, "  %-24s %d samples, final coverage %d at %.2fh\n",
			run.Name, run.Samples, run.FinalCoverage, run.FinalHours)
	}

	return nil
}
