package diffusion

import (
	"fmt"

	"entropy/internal/core"
)

// StepContinuous advances a continuous grid by one time step. Every cell of
// lagged spreads its energy over its patch of working using fresh weights;
// working is then copied into lagged and zeroed. Grids of different sizes
// are rejected with ErrGridMismatch before anything is touched.
func StepContinuous(lagged, working *core.Grid[float64], rng core.Source) error {
	if err := checkPair(lagged, working); err != nil {
		return fmt.Errorf("continuous step: %w", err)
	}
	stepContinuous(lagged, working, rng)
	return nil
}

func stepContinuous(lagged, working *core.Grid[float64], rng core.Source) {
	h, w := lagged.H, lagged.W
	var buf [9]float64
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			p := ClassifyPatch(i, j, h, w)
			weights := Weights(rng, buf[:p.Size()])
			spread(working, p, lagged.At(i, j), weights)
		}
	}
	lagged.CopyFrom(working)
	working.Clear()
}

// spread adds energy*weights element-wise into the patch region of dst.
// weights is laid out row-major over the patch.
func spread(dst *core.Grid[float64], p Patch, energy float64, weights []float64) {
	k := 0
	for r := p.Row; r < p.Row+p.Rows; r++ {
		row := dst.Cells()[r*dst.W+p.Col : r*dst.W+p.Col+p.Cols]
		for c := range row {
			row[c] += energy * weights[k]
			k++
		}
	}
}
