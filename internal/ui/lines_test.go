package ui

import (
	"strings"
	"testing"

	"entropy/internal/diffusion"
	"entropy/internal/sims/entropy"
)

func TestLinesListEnergyAndParameters(t *testing.T) {
	cfg := entropy.DefaultConfig()
	cfg.Diffusion = diffusion.Config{Height: 6, Width: 6, Hotspots: 2, Heat: 0.4}
	world, err := entropy.NewDiscrete(cfg)
	if err != nil {
		t.Fatal(err)
	}
	world.Step()

	joined := strings.Join(Lines(world, true), "\n")
	for _, want := range []string{"entropy-discrete (paused)", "step     1", "initial  36", "Heat", "0.4", "Diffusion"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("HUD text missing %q:\n%s", want, joined)
		}
	}
}

func TestLinesNilSim(t *testing.T) {
	if Lines(nil, false) != nil {
		t.Fatal("nil sim should produce no lines")
	}
}
