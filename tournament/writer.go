package tournament

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// WriteResults persists one "<alpha>\t<win percentage>" line per swept value,
// in grid order, to path. An empty path writes to standard output instead.
func WriteResults(path string, alphas, results []float64) error {
	if len(alphas) != len(results) {
		return fmt.Errorf("got %d alphas but %d results", len(alphas), len(results))
	}

	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create results file: %w", err)
		}
		defer f.Close()
		out = f
	}

	for i := range alphas {
		_, err := fmt.Fprintf(out, "%g\t%g\n", alphas[i], results[i])
		if err != nil {
			return fmt.Errorf("failed to write result line: %w", err)
		}
	}
	return nil
}

// LogSummary reports the spread of win-percentage samples across the sweep.
func LogSummary(alphas, results []float64) {
	if len(results) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(results, nil)
	bestIdx := 0
	for i, r := range results {
		if r > results[bestIdx] {
			bestIdx = i
		}
	}
	log.Info().
		Float64("mean", mean).
		Float64("stddev", std).
		Float64("best_alpha", alphas[bestIdx]).
		Float64("best_win_pct", results[bestIdx]).
		Msg("sweep summary")
}

// WriteChart renders the sweep as an HTML line chart.
func WriteChart(path string, alphas, results []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "win percentage by mixing coefficient",
		}),
	)

	var labels []string
	items := make([]opts.LineData, 0)
	for i := range alphas {
		labels = append(labels, fmt.Sprintf("%g", alphas[i]))
		items = append(items, opts.LineData{Value: results[i]})
	}
	line.SetXAxis(labels)
	line.AddSeries("win %", items)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
