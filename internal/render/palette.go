package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/mazznoer/colorgrad"
)

// PaletteSize is the number of energy levels a palette distinguishes.
const PaletteSize = 256

const (
	minHue = 240.0 // blue, no energy
	maxHue = 0.0   // red, max energy
)

// PaletteNames lists the palettes accepted by Palette.
func PaletteNames() []string {
	return []string{"hue", "viridis", "inferno", "magma", "plasma", "turbo"}
}

// Palette returns the named palette. The empty name selects "hue".
func Palette(name string) ([]color.RGBA, error) {
	switch name {
	case "", "hue":
		return HuePalette(), nil
	case "viridis":
		return gradientPalette(colorgrad.Viridis()), nil
	case "inferno":
		return gradientPalette(colorgrad.Inferno()), nil
	case "magma":
		return gradientPalette(colorgrad.Magma()), nil
	case "plasma":
		return gradientPalette(colorgrad.Plasma()), nil
	case "turbo":
		return gradientPalette(colorgrad.Turbo()), nil
	}
	return nil, fmt.Errorf("unknown palette %q (available: %v)", name, PaletteNames())
}

// HuePalette sweeps the HSV hue from blue at index 0 to red at the last
// index, at full saturation and value.
func HuePalette() []color.RGBA {
	palette := make([]color.RGBA, PaletteSize)
	for i := range palette {
		t := float64(i) / float64(PaletteSize-1)
		hue := minHue - t*(minHue-maxHue)
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			// Only reachable for out-of-range inputs; fall back to black.
			r, g, b = 0, 0, 0
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

func gradientPalette(grad colorgrad.Gradient) []color.RGBA {
	palette := make([]color.RGBA, 0, PaletteSize)
	for _, c := range grad.Colors(PaletteSize) {
		palette = append(palette, color.RGBAModel.Convert(c).(color.RGBA))
	}
	return palette
}

// Quantize maps energy onto a palette index, saturating at maxEnergy.
func Quantize(energy, maxEnergy float64) uint8 {
	if maxEnergy <= 0 || math.IsNaN(energy) || energy <= 0 {
		return 0
	}
	t := energy / maxEnergy
	if t >= 1 {
		return PaletteSize - 1
	}
	return uint8(t * (PaletteSize - 1))
}
