// Package render builds coverage charts on top of go-chart.
//
// Charts are explicit values returned from constructors and written out
// by Save; there is no shared drawing state, so building and rendering
// can be repeated or done concurrently.
package render

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/aptos-labs/covgraph/pkg/parser"
)

// Fixed chart labels.
const (
	ChartTitle = "Coverage Over Time"
	XAxisName  = "Hours"
	YAxisName  = "Block Coverage"
)

// seriesStyle renders a connecting line with dot markers, both in the
// given color.
func seriesStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorAlternateGray,
		StrokeWidth: 1.0,
	}
}

// SingleRun builds a chart for one run's series.
func SingleRun(series parser.Series) chart.Chart {
	return chart.Chart{
		Title:  ChartTitle,
		Width:  1000,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: XAxisName, GridMajorStyle: gridStyle()},
		YAxis: chart.YAxis{Name: YAxisName, GridMajorStyle: gridStyle()},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: series.Hours(),
				YValues: series.Coverages(),
				Style:   seriesStyle(chart.ColorBlue),
			},
		},
	}
}

// Comparison builds an overlay chart with one colored series per run
// and a legend. Runs should already be ordered and truncated; series
// appear in the legend in the given order.
func Comparison(runs []parser.Run) chart.Chart {
	series := make([]chart.Series, 0, len(runs))
	for i, run := range runs {
		series = append(series, chart.ContinuousSeries{
			Name:    run.Name,
			XValues: run.Series.Hours(),
			YValues: run.Series.Coverages(),
			Style:   seriesStyle(chart.GetDefaultColor(i)),
		})
	}

	ch := chart.Chart{
		Title:  ChartTitle,
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			// Right padding reserves space for the legend beside the plot.
			Padding: chart.Box{Top: 20, Left: 20, Right: 200, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: XAxisName, GridMajorStyle: gridStyle()},
		YAxis:  chart.YAxis{Name: YAxisName, GridMajorStyle: gridStyle()},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Save renders the chart as SVG to path, overwriting any existing file.
func Save(ch chart.Chart, path string) error {
	f, err := os.Create(path) // #nosec G304 -- user-chosen output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := ch.Render(chart.SVG, f); err != nil {
		f.Close()
		return fmt.Errorf("rendering chart to %s: %w", path, err)
	}

	return f.Close()
}
