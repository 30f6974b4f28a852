package test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aptos-labs/covgraph/internal/cli"
	"github.com/aptos-labs/covgraph/pkg/config"
	"github.com/aptos-labs/covgraph/pkg/graph"
	"github.com/aptos-labs/covgraph/pkg/parser"
	"github.com/aptos-labs/covgraph/pkg/render"
	"github.com/aptos-labs/covgraph/pkg/scanner"
)

// writeResultsTree lays out a synthetic vm-results directory with three
// runs plus an excluded afl run, and returns its path.
func writeResultsTree(t *testing.T, root string) string {
	t.Helper()

	resultsDir := filepath.Join(root, "vm-results")
	runs := map[string]string{
		"Jan-05-libfuzzer": `INFO: Seed: 99
# cov: 100 time: 3600
# cov: 100 time: 7200
# cov: 150 time: 90000
`,
		"Jan-10-libfuzzer": `# cov: 120 time: 3600
# cov: 180 time: 43200
`,
		"running": `# cov: 0 time: 10
# cov: 90 time: 1800
# cov: 140 time: 21600
`,
		"Jan-07-afl": `# cov: 999 time: 3600
`,
	}

	for name, content := range runs {
		dir := filepath.Join(resultsDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "fuzz.log"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return resultsDir
}

// TestE2E_ComparisonPipeline drives discovery, parsing, comparison
// assembly, and rendering end to end against a synthetic results tree.
func TestE2E_ComparisonPipeline(t *testing.T) {
	tmpDir := t.TempDir()
	resultsDir := writeResultsTree(t, tmpDir)
	ctx := context.Background()

	// The horizon assertions below assume no environment override.
	t.Setenv("MAX_HOUR", "")
	os.Unsetenv("MAX_HOUR")

	cfg, err := config.LoadOrDefault(ctx, filepath.Join(tmpDir, "covgraph.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.ResultsDir = resultsDir

	logs, err := scanner.FindLogs(cfg.ResultsDir, cfg.LogName, scanner.ExcludeSubstrings(cfg.Exclude...))
	if err != nil {
		t.Fatalf("Failed to find logs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("Found %d logs, want 3 (afl run excluded)", len(logs))
	}

	extractor := parser.NewExtractor()
	var runs []parser.Run
	for _, log := range logs {
		series, err := extractor.ParseFile(log)
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", log, err)
		}
		runs = append(runs, parser.Run{Name: scanner.RunName(log), Series: series})
	}

	result, err := graph.NewComparison(cfg.DefaultHorizon).Build(runs)
	if err != nil {
		t.Fatalf("Failed to build comparison: %v", err)
	}

	// Legend order is most-recent first.
	var order []string
	for _, run := range result.Runs {
		order = append(order, run.Name)
	}
	want := []string{"running", "Jan-10-libfuzzer", "Jan-05-libfuzzer"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Run order = %v, want %v", order, want)
		}
	}

	// The running run's 6h final sample bounds the horizon.
	if result.Horizon < 6.0 || result.Horizon > 6.02 {
		t.Errorf("Horizon = %v, want 6.01", result.Horizon)
	}

	for _, run := range result.Runs {
		for _, sample := range run.Series {
			if sample.Hours > result.Horizon {
				t.Errorf("Run %s has sample at %vh beyond horizon %v", run.Name, sample.Hours, result.Horizon)
			}
			if sample.Coverage == 0 {
				t.Errorf("Run %s has zero coverage sample", run.Name)
			}
		}
	}

	outputPath := filepath.Join(tmpDir, "coverage-comparison.svg")
	if err := render.Save(render.Comparison(result.Runs), outputPath); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "<svg") {
		t.Error("Output is not SVG")
	}
	for _, name := range want {
		if !strings.Contains(content, name) {
			t.Errorf("Chart legend missing run %q", name)
		}
	}
}

// TestE2E_CLI runs the full command twice: comparison mode with a
// MAX_HOUR override, then single-run mode.
func TestE2E_CLI(t *testing.T) {
	tmpDir := t.TempDir()
	resultsDir := writeResultsTree(t, tmpDir)
	t.Setenv("MAX_HOUR", "12")

	comparisonOut := filepath.Join(tmpDir, "coverage-comparison.svg")
	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"--results-dir", resultsDir, "-o", comparisonOut})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Comparison mode failed: %v", err)
	}
	if info, err := os.Stat(comparisonOut); err != nil || info.Size() == 0 {
		t.Fatalf("Comparison output missing or empty: %v", err)
	}

	singleOut := filepath.Join(tmpDir, "coverage.svg")
	cmd = cli.NewRootCommand()
	cmd.SetArgs([]string{filepath.Join(resultsDir, "running", "fuzz.log"), "-o", singleOut})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Single-run mode failed: %v", err)
	}
	if info, err := os.Stat(singleOut); err != nil || info.Size() == 0 {
		t.Fatalf("Single-run output missing or empty: %v", err)
	}
}
