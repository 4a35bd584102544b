package record

import (
	"fmt"
	"math"

	"entropy/internal/core"
)

// Result summarizes one headless run.
type Result struct {
	Sim   string
	Seed  int64
	Steps int

	// Energies[0] is the total right after reset, Energies[i] after step i.
	Energies []float64
	Initial  float64
	Final    float64
	// MaxDrift is the largest |total - initial| observed.
	MaxDrift float64
}

// RelativeDrift returns MaxDrift as a fraction of the initial energy.
func (r Result) RelativeDrift() float64 {
	if r.Initial == 0 {
		return 0
	}
	return r.MaxDrift / r.Initial
}

// Run resets sim with seed, advances it steps times and records the total
// energy after each step. When video is non-nil every state, including the
// initial one, is appended as a frame.
func Run(sim core.Sim, seed int64, steps int, video *Video) (Result, error) {
	reporter, ok := sim.(core.EnergyReporter)
	if !ok {
		return Result{}, fmt.Errorf("record: sim %q does not report energy", sim.Name())
	}
	sim.Reset(seed)
	res := Result{
		Sim:      sim.Name(),
		Seed:     seed,
		Energies: make([]float64, 0, steps+1),
		Initial:  reporter.InitialEnergy(),
	}

	sample := func() error {
		total := reporter.TotalEnergy()
		res.Energies = append(res.Energies, total)
		res.MaxDrift = math.Max(res.MaxDrift, math.Abs(total-res.Initial))
		if video == nil {
			return nil
		}
		return video.AddFrame(sim.Cells())
	}

	if err := sample(); err != nil {
		return res, err
	}
	for i := 0; i < steps; i++ {
		sim.Step()
		res.Steps++
		if err := sample(); err != nil {
			return res, err
		}
	}
	res.Final = res.Energies[len(res.Energies)-1]
	return res, nil
}
