package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aptos-labs/covgraph/pkg/config"
	"github.com/aptos-labs/covgraph/pkg/graph"
	"github.com/aptos-labs/covgraph/pkg/output"
	"github.com/aptos-labs/covgraph/pkg/parser"
	"github.com/aptos-labs/covgraph/pkg/render"
	"github.com/aptos-labs/covgraph/pkg/scanner"
)

// DefaultConfigFile is loaded when present and --config is not given.
const DefaultConfigFile = "covgraph.yaml"

// GraphOptions holds command-line options for chart generation.
type GraphOptions struct {
	Config     string
	ResultsDir string
	Exclude    []string
	MaxHour    int
	Output     string

	// Summary options
	Summary       bool
	SummaryFormat string
}

// AddGraphFlags registers the chart generation flags on a command.
func AddGraphFlags(cmd *cobra.Command, opts *GraphOptions) {
	cmd.Flags().StringVar(&opts.Config, "config", "", "Config file (default covgraph.yaml if present)")
	cmd.Flags().StringVar(&opts.ResultsDir, "results-dir", "", "Directory scanned for run logs in comparison mode")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Path substring to exclude from the scan (can be repeated)")
	cmd.Flags().IntVar(&opts.MaxHour, "max-hour", 0, "Force the plotting horizon to this hour value")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output SVG path (overrides config)")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "Print a per-run summary after rendering")
	cmd.Flags().StringVar(&opts.SummaryFormat, "summary-format", "text", "Summary format (text|json)")
}

// RunGraph renders either a single-run chart (one log file argument) or
// a comparison overlay of every run under the results directory (no
// arguments).
func RunGraph(cmd *cobra.Command, args []string, opts *GraphOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return runSingle(ctx, cfg, args[0], opts)
	}
	return runComparison(ctx, cfg, opts)
}

// loadConfig resolves the effective configuration: file (explicit or
// default), environment, then flags, most specific last.
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *GraphOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if opts.Config != "" {
		cfg, err = config.Load(ctx, opts.Config)
	} else {
		cfg, err = config.LoadOrDefault(ctx, DefaultConfigFile)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.ResultsDir != "" {
		cfg.ResultsDir = opts.ResultsDir
	}
	if len(opts.Exclude) > 0 {
		cfg.Exclude = opts.Exclude
	}
	if cmd.Flags().Changed("max-hour") {
		hour := opts.MaxHour
		cfg.MaxHour = &hour
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func runSingle(ctx context.Context, cfg *config.Config, logPath string, opts *GraphOptions) error {
	series, err := parser.NewExtractor().ParseFile(logPath)
	if err != nil {
		return err
	}

	outputPath := cfg.SingleOutput
	if opts.Output != "" {
		outputPath = opts.Output
	}

	if err := render.Save(render.SingleRun(series), outputPath); err != nil {
		return err
	}
	fmt.Printf("Coverage graph saved as '%s'\n", outputPath)

	if opts.Summary {
		runs := []parser.Run{{Name: logPath, Series: series}}
		return printSummary(ctx, opts, output.NewReport(output.ModeSingle, outputPath, 0, runs))
	}
	return nil
}

func runComparison(ctx context.Context, cfg *config.Config, opts *GraphOptions) error {
	logs, err := scanner.FindLogs(cfg.ResultsDir, cfg.LogName, scanner.ExcludeSubstrings(cfg.Exclude...))
	if err != nil {
		return err
	}

	extractor := parser.NewExtractor()
	runs := make([]parser.Run, 0, len(logs))
	for _, log := range logs {
		series, err := extractor.ParseFile(log)
		if err != nil {
			return err
		}
		runs = append(runs, parser.Run{Name: scanner.RunName(log), Series: series})
	}

	var graphOpts []graph.Option
	if cfg.MaxHour != nil {
		graphOpts = append(graphOpts, graph.WithHorizon(*cfg.MaxHour))
	}

	result, err := graph.NewComparison(cfg.DefaultHorizon, graphOpts...).Build(runs)
	if err != nil {
		return err
	}

	outputPath := cfg.ComparisonOutput
	if opts.Output != "" {
		outputPath = opts.Output
	}

	if err := render.Save(render.Comparison(result.Runs), outputPath); err != nil {
		return err
	}
	fmt.Printf("Coverage graph saved as '%s'\n", outputPath)

	if opts.Summary {
		return printSummary(ctx, opts, output.NewReport(output.ModeComparison, outputPath, result.Horizon, result.Runs))
	}
	return nil
}

func printSummary(ctx context.Context, opts *GraphOptions, report *output.Report) error {
	formatter, err := output.NewFormatter(opts.SummaryFormat)
	if err != nil {
		return err
	}
	return formatter.Format(ctx, report, os.Stdout)
}
