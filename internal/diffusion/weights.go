package diffusion

import (
	"entropy/internal/core"

	"gonum.org/v1/gonum/floats"
)

// Weights fills dst with independent uniform draws normalized to sum to 1
// and returns it. A single slot always receives exactly 1.
func Weights(rng core.Source, dst []float64) []float64 {
	for i := range dst {
		dst[i] = rng.Float64()
	}
	switch len(dst) {
	case 0:
		return dst
	case 1:
		dst[0] = 1
		return dst
	}
	sum := floats.Sum(dst)
	if sum == 0 {
		for i := range dst {
			dst[i] = 1 / float64(len(dst))
		}
		return dst
	}
	floats.Scale(1/sum, dst)
	return dst
}

// NewWeights allocates and returns n normalized weights.
func NewWeights(rng core.Source, n int) []float64 {
	if n < 0 {
		n = 0
	}
	return Weights(rng, make([]float64, n))
}
