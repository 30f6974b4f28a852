package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aptos-labs/covgraph/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a covgraph configuration file without rendering anything.

Checks:
  - YAML syntax
  - Required fields and value ranges
  - Results directory existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Results dir: %s\n", cfg.ResultsDir)
	fmt.Printf("  Log name:    %s\n", cfg.LogName)
	fmt.Printf("  Horizon:     %v hours (default)\n", cfg.DefaultHorizon)
	if len(cfg.Exclude) > 0 {
		fmt.Printf("  Exclude:     %v\n", cfg.Exclude)
	}
	if cfg.MaxHour != nil {
		fmt.Printf("  Max hour:    %d (override)\n", *cfg.MaxHour)
	}

	// Check the results directory exists (warning only)
	if _, err := os.Stat(cfg.ResultsDir); os.IsNotExist(err) {
		fmt.Printf("\nWarning: results directory %s does not exist\n", cfg.ResultsDir)
	}

	return nil
}
