package entropy

import "entropy/internal/render"

func (w *World[T]) rebuildDisplay() {
	cells := w.engine.Lagged().Cells()
	for i, v := range cells {
		w.display[i] = render.Quantize(float64(v), w.cfg.MaxEnergy)
	}
}
