package record

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WriteEnergyChart renders total energy per step as a PNG line chart.
func WriteEnergyChart(w io.Writer, title string, energies []float64) error {
	if len(energies) < 2 {
		return fmt.Errorf("record: energy chart needs at least 2 samples, got %d", len(energies))
	}
	steps := make([]float64, len(energies))
	for i := range steps {
		steps[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "Step",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "Total energy",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Total energy",
				XValues: steps,
				YValues: energies,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 220, G: 60, B: 30, A: 255},
					StrokeWidth: 3.0,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render energy chart: %w", err)
	}
	return nil
}

// Trace plots energies as a small ASCII chart for terminal output.
func Trace(energies []float64, caption string) string {
	if len(energies) == 0 {
		return ""
	}
	return asciigraph.Plot(energies,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
