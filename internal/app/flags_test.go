package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"entropy/internal/config"
	"entropy/internal/diffusion"
)

func TestResolveUsesFileDefaults(t *testing.T) {
	f := config.Default()
	f.Variant = "discrete"
	f.SleepIntervalMs = 30

	launch, err := NewConfig().Resolve(f)
	if err != nil {
		t.Fatal(err)
	}
	if launch.Sim != "entropy-discrete" {
		t.Fatalf("expected discrete sim, got %q", launch.Sim)
	}
	if launch.Interval != 30*time.Millisecond {
		t.Fatalf("expected 30ms interval, got %v", launch.Interval)
	}
	if launch.Scale != f.SizeFactor || launch.Seed != f.Seed {
		t.Fatalf("unexpected launch %+v", launch)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("entropy", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "2", "-seed", "99", "-interval", "0", "-sim", "entropy"}); err != nil {
		t.Fatal(err)
	}

	f := config.Default()
	f.SleepIntervalMs = 500
	launch, err := cfg.Resolve(f)
	if err != nil {
		t.Fatal(err)
	}
	if launch.Scale != 2 || launch.Seed != 99 || launch.Interval != 0 || launch.Sim != "entropy" {
		t.Fatalf("flags not applied: %+v", launch)
	}
	if launch.Params["seed"] != "99" {
		t.Fatalf("seed override missing from params: %v", launch.Params)
	}
}

func TestResolveRejectsInvalidFile(t *testing.T) {
	f := config.Default()
	f.Hotspots = 0
	if _, err := NewConfig().Resolve(f); !errors.Is(err, diffusion.ErrInvalidHotspots) {
		t.Fatalf("expected ErrInvalidHotspots, got %v", err)
	}
}
