package diffusion

import (
	"fmt"
	"math"
)

// Variant selects the diffusion strategy.
type Variant string

const (
	// VariantContinuous spreads real-valued energy into boundary-anchored patches.
	VariantContinuous Variant = "continuous"
	// VariantDiscrete moves integer units with per-step probability heat.
	VariantDiscrete Variant = "discrete"
)

// ParseVariant maps a name onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantContinuous, VariantDiscrete:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Config holds the parameters the diffusion core interprets.
type Config struct {
	Height   int
	Width    int
	Hotspots int
	// Heat is the per-step probability that a cell diffuses. Only the
	// discrete strategy reads it.
	Heat float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Height: 100, Width: 100, Hotspots: 10, Heat: 0.5}
}

// Cells returns the number of grid cells.
func (c Config) Cells() int { return c.Height * c.Width }

// TotalEnergy returns the energy shared by all hotspots. The expression
// h*w*w/h reduces to w*w; it is kept in this form for parity with existing
// configurations.
func (c Config) TotalEnergy() float64 {
	h, w := float64(c.Height), float64(c.Width)
	return h * w * w / h
}

// HotspotEnergy returns the continuous energy assigned to each hotspot.
func (c Config) HotspotEnergy() float64 {
	return c.TotalEnergy() / float64(c.Hotspots)
}

// HotspotUnits returns the integer units assigned to each hotspot.
func (c Config) HotspotUnits() uint64 {
	if c.Height <= 0 || c.Hotspots <= 0 {
		return 0
	}
	return uint64(c.Height*c.Width*c.Width/c.Height) / uint64(c.Hotspots)
}

// Validate rejects configurations the given variant cannot run.
func (c Config) Validate(v Variant) error {
	least := 1
	if v == VariantContinuous {
		// Corner patches are 2x2.
		least = 2
	}
	if c.Height < least || c.Width < least {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d for %s)", ErrInvalidDimensions, c.Height, c.Width, least, least, v)
	}
	if c.Hotspots <= 0 || c.Hotspots > c.Cells() {
		return fmt.Errorf("%w: %d hotspots on %d cells", ErrInvalidHotspots, c.Hotspots, c.Cells())
	}
	switch v {
	case VariantContinuous:
	case VariantDiscrete:
		if math.IsNaN(c.Heat) || c.Heat < 0 || c.Heat > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidHeat, c.Heat)
		}
		if c.HotspotUnits() == 0 {
			return fmt.Errorf("%w: %d hotspots leave no units per hotspot", ErrInvalidHotspots, c.Hotspots)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	return nil
}
