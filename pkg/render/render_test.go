package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/aptos-labs/covgraph/pkg/parser"
)

var testSeries = parser.Series{
	{Hours: 1.0, Coverage: 5},
	{Hours: 3.0, Coverage: 9},
	{Hours: 4.0, Coverage: 9},
}

func TestSingleRun(t *testing.T) {
	ch := SingleRun(testSeries)

	if ch.Title != "Coverage Over Time" {
		t.Errorf("Title = %q, want %q", ch.Title, "Coverage Over Time")
	}
	if ch.XAxis.Name != "Hours" {
		t.Errorf("XAxis.Name = %q, want Hours", ch.XAxis.Name)
	}
	if ch.YAxis.Name != "Block Coverage" {
		t.Errorf("YAxis.Name = %q, want Block Coverage", ch.YAxis.Name)
	}
	if len(ch.Series) != 1 {
		t.Fatalf("Got %d series, want 1", len(ch.Series))
	}

	cs, ok := ch.Series[0].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("Series[0] is %T, want ContinuousSeries", ch.Series[0])
	}
	if len(cs.XValues) != 3 || len(cs.YValues) != 3 {
		t.Errorf("Series lengths X=%d Y=%d, want 3/3", len(cs.XValues), len(cs.YValues))
	}
}

func TestComparison(t *testing.T) {
	runs := []parser.Run{
		{Name: "running", Series: testSeries},
		{Name: "Jan-05-libfuzzer", Series: testSeries[:2]},
	}

	ch := Comparison(runs)

	if len(ch.Series) != 2 {
		t.Fatalf("Got %d series, want 2", len(ch.Series))
	}
	for i, run := range runs {
		cs, ok := ch.Series[i].(chart.ContinuousSeries)
		if !ok {
			t.Fatalf("Series[%d] is %T, want ContinuousSeries", i, ch.Series[i])
		}
		if cs.Name != run.Name {
			t.Errorf("Series[%d].Name = %q, want %q", i, cs.Name, run.Name)
		}
		if len(cs.XValues) != len(run.Series) {
			t.Errorf("Series[%d] has %d points, want %d", i, len(cs.XValues), len(run.Series))
		}
	}
	if len(ch.Elements) != 1 {
		t.Errorf("Got %d renderable elements, want 1 (legend)", len(ch.Elements))
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.svg")

	if err := Save(SingleRun(testSeries), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Output file is empty")
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("Output does not look like SVG")
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.svg")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Save(SingleRun(testSeries), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("Save() did not overwrite existing file")
	}
}

func TestSave_EmptySeriesSurfacesRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.svg")

	// The chart library rejects empty series; the error propagates as-is.
	if err := Save(SingleRun(parser.Series{}), path); err == nil {
		t.Fatal("Save() expected error for empty series")
	}
}
