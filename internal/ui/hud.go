//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"entropy/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	panelPad   = 8

	heatStep      = 0.05
	maxEnergyStep = 1.25
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	floatSetter core.FloatParameterSetter
	paused      bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles HUD key bindings: Up/Down tune heat, +/- rescale the palette.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	if h.floatSetter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.adjust("heat", heatStep, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.adjust("heat", -heatStep, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		h.adjust("max_energy", maxEnergyStep, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		h.adjust("max_energy", 1/maxEnergyStep, true)
	}
}

func (h *HUD) adjust(key string, delta float64, multiplicative bool) {
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, g := range provider.Parameters().Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			current, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return
			}
			if multiplicative {
				h.floatSetter.SetFloatParameter(key, current*delta)
			} else {
				h.floatSetter.SetFloatParameter(key, current+delta)
			}
			return
		}
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := panelPad + lineHeight
	for _, line := range Lines(h.sim, h.paused) {
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, panelPad, y, color.White)
		y += lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
