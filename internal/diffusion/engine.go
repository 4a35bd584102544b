package diffusion

import (
	"fmt"

	"entropy/internal/core"
)

// State tracks an Engine's lifecycle.
type State uint8

const (
	// StateIdle means no grid has been loaded.
	StateIdle State = iota
	// StateReady means a grid is loaded and no step has run since.
	StateReady
	// StateStepped means at least one step has run since the last load.
	StateStepped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateStepped:
		return "stepped"
	}
	return "unknown"
}

// Strategy advances a lagged/working grid pair by one time step, leaving the
// result in lagged and zeros in working.
type Strategy[T core.Energy] interface {
	Step(lagged, working *core.Grid[T], rng core.Source)
}

// Continuous is the real-valued patch strategy.
type Continuous struct{}

// Step implements Strategy.
func (Continuous) Step(lagged, working *core.Grid[float64], rng core.Source) {
	stepContinuous(lagged, working, rng)
}

// Discrete is the integer-unit strategy.
type Discrete struct {
	Heat float64
}

// Step implements Strategy.
func (d Discrete) Step(lagged, working *core.Grid[uint64], rng core.Source) {
	stepDiscrete(lagged, working, d.Heat, rng)
}

// Engine owns the lagged and working grids of one simulation and is the only
// thing that mutates them. It is not safe for concurrent use; readers should
// only look at Lagged between calls to Step.
type Engine[T core.Energy] struct {
	strategy Strategy[T]
	rng      core.Source

	lagged  *core.Grid[T]
	working *core.Grid[T]

	state State
	steps int
}

// NewEngine returns an idle engine driven by strategy and rng.
func NewEngine[T core.Energy](strategy Strategy[T], rng core.Source) *Engine[T] {
	return &Engine[T]{strategy: strategy, rng: rng}
}

// NewContinuous validates cfg, seeds its hotspots and returns a ready engine.
func NewContinuous(cfg Config, rng core.Source) (*Engine[float64], error) {
	g, err := SeedHotspots(cfg, rng)
	if err != nil {
		return nil, err
	}
	e := NewEngine[float64](Continuous{}, rng)
	if err := e.Load(g); err != nil {
		return nil, err
	}
	return e, nil
}

// NewDiscrete validates cfg, seeds its hotspot units and returns a ready engine.
func NewDiscrete(cfg Config, rng core.Source) (*Engine[uint64], error) {
	g, err := SeedHotspotUnits(cfg, rng)
	if err != nil {
		return nil, err
	}
	e := NewEngine[uint64](Discrete{Heat: cfg.Heat}, rng)
	if err := e.Load(g); err != nil {
		return nil, err
	}
	return e, nil
}

// Load installs grid as the lagged grid, allocates a matching working grid
// and moves the engine to StateReady.
func (e *Engine[T]) Load(grid *core.Grid[T]) error {
	if grid == nil {
		return fmt.Errorf("load: %w", ErrNilGrid)
	}
	working := e.working
	if working == nil || !working.SameSize(grid) {
		working = core.NewGrid[T](grid.W, grid.H)
	}
	return e.LoadPair(grid, working)
}

// LoadPair installs caller-owned lagged and working grids. The pair must
// match in size; working is cleared.
func (e *Engine[T]) LoadPair(lagged, working *core.Grid[T]) error {
	if err := checkPair(lagged, working); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	working.Clear()
	e.lagged = lagged
	e.working = working
	e.state = StateReady
	e.steps = 0
	return nil
}

// Step advances the grid by one time step. It does nothing while idle.
func (e *Engine[T]) Step() {
	if e.state == StateIdle {
		return
	}
	e.strategy.Step(e.lagged, e.working, e.rng)
	e.state = StateStepped
	e.steps++
}

// SetStrategy swaps the stepping strategy, e.g. to change heat mid-run.
func (e *Engine[T]) SetStrategy(s Strategy[T]) { e.strategy = s }

// Strategy returns the active stepping strategy.
func (e *Engine[T]) Strategy() Strategy[T] { return e.strategy }

// Lagged returns the most recent grid state. Callers must not mutate it.
func (e *Engine[T]) Lagged() *core.Grid[T] { return e.lagged }

// Working returns the scratch buffer, which is all zeros between steps.
func (e *Engine[T]) Working() *core.Grid[T] { return e.working }

// State reports the lifecycle state.
func (e *Engine[T]) State() State { return e.state }

// Steps returns how many steps ran since the last Load.
func (e *Engine[T]) Steps() int { return e.steps }
