package diffusion

import (
	"fmt"

	"entropy/internal/core"
)

// SeedHotspots returns a grid where exactly cfg.Hotspots distinct cells hold
// cfg.HotspotEnergy() and every other cell is zero.
func SeedHotspots(cfg Config, rng core.Source) (*core.Grid[float64], error) {
	if err := cfg.Validate(VariantContinuous); err != nil {
		return nil, fmt.Errorf("seed hotspots: %w", err)
	}
	g := core.NewGrid[float64](cfg.Width, cfg.Height)
	placeHotspots(g, cfg.Hotspots, cfg.HotspotEnergy(), rng)
	return g, nil
}

// SeedHotspotUnits is the integer twin of SeedHotspots: each hotspot holds
// cfg.HotspotUnits() units.
func SeedHotspotUnits(cfg Config, rng core.Source) (*core.Grid[uint64], error) {
	if err := cfg.Validate(VariantDiscrete); err != nil {
		return nil, fmt.Errorf("seed hotspot units: %w", err)
	}
	g := core.NewGrid[uint64](cfg.Width, cfg.Height)
	placeHotspots(g, cfg.Hotspots, cfg.HotspotUnits(), rng)
	return g, nil
}

// placeHotspots draws coordinates uniformly and accepts only empty cells.
// Callers guarantee count <= cells and value != 0, otherwise it never returns.
func placeHotspots[T core.Energy](g *core.Grid[T], count int, value T, rng core.Source) {
	for placed := 0; placed < count; {
		col := rng.IntN(g.W)
		row := rng.IntN(g.H)
		if g.At(row, col) != 0 {
			continue
		}
		g.Set(row, col, value)
		placed++
	}
}
