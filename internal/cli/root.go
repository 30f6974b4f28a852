// Package cli provides the command-line interface for covgraph.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aptos-labs/covgraph/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.GraphOptions{}

	rootCmd := &cobra.Command{
		Use:   "covgraph [log-file]",
		Short: "Render fuzzing coverage charts from libFuzzer logs",
		Long: `Covgraph turns libFuzzer-style status logs into coverage-over-time charts.

With no arguments it scans a results directory (default ./vm-results) for
fuzz.log files, one per run, and renders a comparison overlay of every run
to coverage-comparison.svg. Run names come from each log's parent directory:
a Month-Day date such as Jan-05-libfuzzer, or the literal "running" for an
in-progress session. The most recent run appears first in the legend, and
an in-progress run's final timestamp bounds the chart unless MAX_HOUR (or
--max-hour) overrides it.

With a single log file argument it renders that run alone to coverage.svg.

Exit codes:
  0 - Chart written
  2 - Configuration or runtime error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunGraph(cmd, args, opts)
		},
	}

	commands.AddGraphFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
