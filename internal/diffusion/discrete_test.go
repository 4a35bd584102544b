package diffusion

import (
	"testing"

	"entropy/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateConservesUnitsExactly(t *testing.T) {
	rng := core.NewRNG(99)
	for _, n := range []int{1, 4, 6, 9} {
		for trial := 0; trial < 500; trial++ {
			units := uint64(rng.IntN(100000))
			shares := Allocate(units, n, rng, nil)
			require.Len(t, shares, n)
			var total uint64
			for _, s := range shares {
				total += s
			}
			require.Equal(t, units, total, "n=%d units=%d shares=%v", n, units, shares)
		}
	}
}

func TestAllocateCreditsRemainderToDrawnNeighbour(t *testing.T) {
	rng := &scriptedSource{floats: []float64{0.5, 0.25, 0.25}, ints: []int{0}}
	shares := Allocate(10, 4, rng, nil)
	// Weights 0.5/0.25/0.25 give 5+2+2; the leftover unit lands on slot 0,
	// which already holds a weighted share.
	assert.Equal(t, []uint64{6, 2, 2, 0}, shares)
}

func TestAllocateLastSlotOnlyReceivesRemainder(t *testing.T) {
	rng := &scriptedSource{floats: []float64{0.5, 0.5}, ints: []int{0}}
	shares := Allocate(8, 3, rng, nil)
	assert.Equal(t, []uint64{4, 4, 0}, shares)

	rng = &scriptedSource{floats: []float64{0.5, 0.5}, ints: []int{2}}
	shares = Allocate(9, 3, rng, nil)
	assert.Equal(t, []uint64{4, 4, 1}, shares)
}

func TestAllocateSingleRecipientKeepsEverything(t *testing.T) {
	shares := Allocate(17, 1, core.NewRNG(1), nil)
	assert.Equal(t, []uint64{17}, shares)
	assert.Empty(t, Allocate(17, 0, core.NewRNG(1), nil))
}

func TestStepDiscreteFullHeatConservesGrid(t *testing.T) {
	cfg := Config{Height: 8, Width: 11, Hotspots: 6, Heat: 1}
	rng := core.NewRNG(17)
	lagged, err := SeedHotspotUnits(cfg, rng)
	require.NoError(t, err)
	working := core.NewGrid[uint64](cfg.Width, cfg.Height)
	initial := lagged.Sum()

	for step := 0; step < 40; step++ {
		require.NoError(t, StepDiscrete(lagged, working, cfg.Heat, rng))
		require.Equal(t, initial, lagged.Sum(), "step %d", step)
		require.Zero(t, working.NonZero(), "working grid must be zero after step %d", step)
	}
}

func TestStepDiscreteSingleCellConservation(t *testing.T) {
	for _, src := range []core.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2}, {Row: 4, Col: 3}} {
		lagged := core.NewGrid[uint64](4, 5)
		lagged.Set(src.Row, src.Col, 1001)
		working := core.NewGrid[uint64](4, 5)

		require.NoError(t, StepDiscrete(lagged, working, 1, core.NewRNG(int64(src.Row*10+src.Col))))

		require.Equal(t, 1001.0, lagged.Sum(), "diffusing cell %+v", src)
		for i := 0; i < lagged.H; i++ {
			for j := 0; j < lagged.W; j++ {
				if lagged.At(i, j) == 0 {
					continue
				}
				di, dj := i-src.Row, j-src.Col
				require.True(t, di >= -1 && di <= 1 && dj >= -1 && dj <= 1,
					"units from %+v escaped to (%d,%d)", src, i, j)
			}
		}
	}
}

func TestStepDiscreteDropsUndiffusedEnergy(t *testing.T) {
	lagged := core.NewGrid[uint64](3, 3)
	lagged.Set(1, 1, 50)
	working := core.NewGrid[uint64](3, 3)

	require.NoError(t, StepDiscrete(lagged, working, 0, constant(0.5)))

	assert.Zero(t, lagged.Sum(), "a cell that does not diffuse loses its units for the step")
}

func TestStepDiscretePartialHeatDoesNotConserveGrid(t *testing.T) {
	cfg := Config{Height: 10, Width: 10, Hotspots: 20, Heat: 0.5}
	rng := core.NewRNG(8)
	lagged, err := SeedHotspotUnits(cfg, rng)
	require.NoError(t, err)
	working := core.NewGrid[uint64](cfg.Width, cfg.Height)
	initial := lagged.Sum()

	for step := 0; step < 5; step++ {
		before := lagged.Sum()
		require.NoError(t, StepDiscrete(lagged, working, cfg.Heat, rng))
		require.LessOrEqual(t, lagged.Sum(), before)
	}
	assert.Less(t, lagged.Sum(), initial, "grid-level energy is expected to leak when heat < 1")
}

func TestStepDiscreteHeatThresholdIsInclusive(t *testing.T) {
	lagged := core.NewGrid[uint64](1, 1)
	lagged.Set(0, 0, 5)
	working := core.NewGrid[uint64](1, 1)

	// A draw equal to heat still diffuses; the 1x1 grid diffuses into itself.
	require.NoError(t, StepDiscrete(lagged, working, 0.5, constant(0.5)))
	assert.Equal(t, uint64(5), lagged.At(0, 0))
}

func TestStepDiscreteRejectsMismatchedGrids(t *testing.T) {
	lagged := core.NewGrid[uint64](3, 3)
	lagged.Set(0, 0, 9)
	working := core.NewGrid[uint64](4, 3)

	err := StepDiscrete(lagged, working, 1, constant(0.5))
	require.ErrorIs(t, err, ErrGridMismatch)
	assert.Equal(t, uint64(9), lagged.At(0, 0))
}
