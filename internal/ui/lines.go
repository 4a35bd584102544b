package ui

import (
	"fmt"

	"entropy/internal/core"
)

// Lines builds the text rows shown in the HUD panel: a title, energy
// bookkeeping when the sim reports it, then every parameter group.
func Lines(sim core.Sim, paused bool) []string {
	if sim == nil {
		return nil
	}
	status := "running"
	if paused {
		status = "paused"
	}
	lines := []string{fmt.Sprintf("%s (%s)", sim.Name(), status)}

	if r, ok := sim.(core.EnergyReporter); ok {
		total, initial := r.TotalEnergy(), r.InitialEnergy()
		drift := 0.0
		if initial != 0 {
			drift = (total - initial) / initial
		}
		lines = append(lines,
			"",
			fmt.Sprintf("step     %d", r.Steps()),
			fmt.Sprintf("energy   %.6g", total),
			fmt.Sprintf("initial  %.6g", initial),
			fmt.Sprintf("drift    %+.3e", drift),
		)
	}

	if p, ok := sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			lines = append(lines, "", g.Name)
			for _, param := range g.Params {
				lines = append(lines, fmt.Sprintf("  %-10s %s", param.Label, param.Value))
			}
		}
	}
	return lines
}
