package record

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram writes a histogram of cell energies to path. The image
// format follows the file extension (png, svg, pdf, ...).
func SaveHistogram(path, title string, values []float64, bins int) error {
	if len(values) == 0 {
		return fmt.Errorf("record: histogram of %s needs values", path)
	}
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Cell energy"
	p.Y.Label.Text = "Cells"

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("record: build histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("record: save histogram %s: %w", path, err)
	}
	return nil
}
