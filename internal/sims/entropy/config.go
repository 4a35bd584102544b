package entropy

import (
	"fmt"
	"strconv"

	"entropy/internal/diffusion"
)

// Config controls the entropy simulations.
type Config struct {
	Diffusion diffusion.Config

	Seed int64

	// MaxEnergy is the energy rendered with the hottest palette color.
	MaxEnergy float64
	Palette   string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Diffusion: diffusion.DefaultConfig(),
		Seed:      1337,
		MaxEnergy: 2.0,
		Palette:   "hue",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values are parsed but not range-checked; the constructors validate them.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"h", &c.Diffusion.Height},
		{"w", &c.Diffusion.Width},
		{"hotspots", &c.Diffusion.Hotspots},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = parsed
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"heat", &c.Diffusion.Heat},
		{"max_energy", &c.MaxEnergy},
	}
	for _, f := range floats {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("parse seed: %w", err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["palette"]; ok {
		c.Palette = v
	}
	return c, nil
}

// Validate checks the configuration for the given variant.
func (c Config) Validate(v diffusion.Variant) error {
	if err := c.Diffusion.Validate(v); err != nil {
		return err
	}
	if !(c.MaxEnergy > 0) {
		return fmt.Errorf("max energy must be positive, got %v", c.MaxEnergy)
	}
	return nil
}
