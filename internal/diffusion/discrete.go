package diffusion

import (
	"fmt"
	"math"

	"entropy/internal/core"
)

// StepDiscrete advances an integer grid by one time step. Each cell diffuses
// with probability heat; a cell whose draw exceeds heat contributes nothing to
// working, so its units are dropped for this step. working is then copied into
// lagged and zeroed. Grids of different sizes are rejected with
// ErrGridMismatch.
func StepDiscrete(lagged, working *core.Grid[uint64], heat float64, rng core.Source) error {
	if err := checkPair(lagged, working); err != nil {
		return fmt.Errorf("discrete step: %w", err)
	}
	stepDiscrete(lagged, working, heat, rng)
	return nil
}

func stepDiscrete(lagged, working *core.Grid[uint64], heat float64, rng core.Source) {
	h, w := lagged.H, lagged.W
	var (
		nbuf    [9]core.Coord
		amounts [9]uint64
	)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if rng.Float64() > heat {
				continue
			}
			neighbors := Neighbors(i, j, h, w, nbuf[:0])
			shares := Allocate(lagged.At(i, j), len(neighbors), rng, amounts[:0])
			for k, n := range neighbors {
				working.Add(n.Row, n.Col, shares[k])
			}
		}
	}
	lagged.CopyFrom(working)
	working.Clear()
}

// Allocate splits units over n recipients and returns the per-recipient
// amounts in dst[:n]. The first n-1 recipients receive floor(units*weight)
// from n-1 normalized weights; whatever remains goes to one recipient drawn
// uniformly from all n, which may already hold a weighted share. The amounts
// always sum to units.
func Allocate(units uint64, n int, rng core.Source, dst []uint64) []uint64 {
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]uint64, n)
	}
	dst = dst[:n]
	for k := range dst {
		dst[k] = 0
	}

	var buf [8]float64
	var weights []float64
	if n-1 <= len(buf) {
		weights = Weights(rng, buf[:n-1])
	} else {
		weights = NewWeights(rng, n-1)
	}

	var allocated uint64
	for k, wt := range weights {
		share := uint64(math.Floor(float64(units) * wt))
		if share > units-allocated {
			share = units - allocated
		}
		dst[k] = share
		allocated += share
	}
	dst[rng.IntN(n)] += units - allocated
	return dst
}
