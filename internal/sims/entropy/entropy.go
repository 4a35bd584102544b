package entropy

import (
	"fmt"
	"image/color"
	"log"

	"entropy/internal/core"
	"entropy/internal/diffusion"
	"entropy/internal/render"
)

const (
	// NameContinuous is the registry name of the real-valued simulation.
	NameContinuous = "entropy"
	// NameDiscrete is the registry name of the integer-unit simulation.
	NameDiscrete = "entropy-discrete"
)

// World drives a diffusion engine and keeps a palette-indexed display buffer
// in sync with its lagged grid.
type World[T core.Energy] struct {
	cfg     Config
	name    string
	variant diffusion.Variant

	strategy diffusion.Strategy[T]
	seed     func(diffusion.Config, core.Source) (*core.Grid[T], error)
	engine   *diffusion.Engine[T]

	display []uint8
	palette []color.RGBA
	initial float64
}

// NewContinuous returns the real-valued simulation, seeded with cfg.Seed.
func NewContinuous(cfg Config) (*World[float64], error) {
	return newWorld[float64](cfg, NameContinuous, diffusion.VariantContinuous,
		diffusion.Continuous{}, diffusion.SeedHotspots)
}

// NewDiscrete returns the integer-unit simulation, seeded with cfg.Seed.
func NewDiscrete(cfg Config) (*World[uint64], error) {
	return newWorld[uint64](cfg, NameDiscrete, diffusion.VariantDiscrete,
		diffusion.Discrete{Heat: cfg.Diffusion.Heat}, diffusion.SeedHotspotUnits)
}

func newWorld[T core.Energy](
	cfg Config,
	name string,
	variant diffusion.Variant,
	strategy diffusion.Strategy[T],
	seed func(diffusion.Config, core.Source) (*core.Grid[T], error),
) (*World[T], error) {
	if err := cfg.Validate(variant); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	palette, err := render.Palette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	w := &World[T]{
		cfg:      cfg,
		name:     name,
		variant:  variant,
		strategy: strategy,
		seed:     seed,
		display:  make([]uint8, cfg.Diffusion.Cells()),
		palette:  palette,
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World[T]) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World[T]) Size() core.Size {
	return core.Size{W: w.cfg.Diffusion.Width, H: w.cfg.Diffusion.Height}
}

// Cells exposes the current display buffer.
func (w *World[T]) Cells() []uint8 { return w.display }

// Palette exposes the colors the display buffer indexes into.
func (w *World[T]) Palette() []color.RGBA { return w.palette }

// Config returns the active configuration.
func (w *World[T]) Config() Config { return w.cfg }

// Grid exposes the current energy grid. Callers must not mutate it.
func (w *World[T]) Grid() *core.Grid[T] { return w.engine.Lagged() }

// State reports the engine lifecycle state.
func (w *World[T]) State() diffusion.State { return w.engine.State() }

// Reset reseeds the hotspots. A zero seed falls back to the configured seed;
// any other seed becomes the configured seed.
func (w *World[T]) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective)
	grid, err := w.seed(w.cfg.Diffusion, rng)
	if err != nil {
		// Configs are validated at construction, so this only fires if a
		// caller bypassed the constructors.
		log.Printf("%s: reset: %v", w.name, err)
		return
	}
	w.engine = diffusion.NewEngine[T](w.strategy, rng)
	if err := w.engine.Load(grid); err != nil {
		log.Printf("%s: reset: %v", w.name, err)
		return
	}
	w.cfg.Seed = effective
	w.initial = grid.Sum()
	w.rebuildDisplay()
}

// Step advances the diffusion by one time step.
func (w *World[T]) Step() {
	w.engine.Step()
	w.rebuildDisplay()
}

// Steps returns the number of steps since the last reset.
func (w *World[T]) Steps() int { return w.engine.Steps() }

// TotalEnergy sums the current grid.
func (w *World[T]) TotalEnergy() float64 { return w.engine.Lagged().Sum() }

// InitialEnergy returns the grid total right after the last reset.
func (w *World[T]) InitialEnergy() float64 { return w.initial }

// Values returns a float64 copy of the current grid in row-major order.
func (w *World[T]) Values() []float64 { return w.engine.Lagged().Values() }

// SetFloatParameter adjusts heat (discrete only, clamped to [0, 1]) or
// max_energy (positive) on the fly.
func (w *World[T]) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "heat":
		if w.variant != diffusion.VariantDiscrete {
			return false
		}
		value = min(max(value, 0), 1)
		s, ok := any(diffusion.Discrete{Heat: value}).(diffusion.Strategy[T])
		if !ok {
			return false
		}
		w.cfg.Diffusion.Heat = value
		w.strategy = s
		w.engine.SetStrategy(s)
		return true
	case "max_energy":
		if !(value > 0) {
			return false
		}
		w.cfg.MaxEnergy = value
		w.rebuildDisplay()
		return true
	}
	return false
}

func init() {
	core.Register(NameContinuous, func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", NameContinuous, err)
		}
		w, err := NewContinuous(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	core.Register(NameDiscrete, func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", NameDiscrete, err)
		}
		w, err := NewDiscrete(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
