package diffusion

import (
	"errors"
	"fmt"

	"entropy/internal/core"
)

// Sentinel errors returned by configuration validation and grid seeding.
var (
	// ErrInvalidDimensions indicates non-positive (or, for the continuous
	// strategy, smaller than 2x2) grid dimensions.
	ErrInvalidDimensions = errors.New("diffusion: invalid grid dimensions")

	// ErrInvalidHotspots indicates a hotspot count outside [1, h*w] or a
	// per-hotspot share that truncates to zero.
	ErrInvalidHotspots = errors.New("diffusion: invalid hotspot count")

	// ErrInvalidHeat indicates a diffusion probability outside [0, 1].
	ErrInvalidHeat = errors.New("diffusion: heat must be within [0, 1]")

	// ErrUnknownVariant indicates an unrecognised strategy name.
	ErrUnknownVariant = errors.New("diffusion: unknown variant")

	// ErrNilGrid indicates a missing grid was handed to an Engine.
	ErrNilGrid = errors.New("diffusion: nil grid")

	// ErrGridMismatch indicates lagged and working grids of different sizes.
	ErrGridMismatch = errors.New("diffusion: lagged and working grids differ in size")
)

func checkPair[T core.Energy](lagged, working *core.Grid[T]) error {
	if lagged == nil || working == nil {
		return ErrNilGrid
	}
	if !lagged.SameSize(working) {
		return fmt.Errorf("lagged %dx%d, working %dx%d: %w",
			lagged.W, lagged.H, working.W, working.H, ErrGridMismatch)
	}
	return nil
}
