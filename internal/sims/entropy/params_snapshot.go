package entropy

import (
	"strconv"

	"entropy/internal/core"
	"entropy/internal/diffusion"
)

// Parameters describes the active configuration for the overlay.
func (w *World[T]) Parameters() core.ParameterSnapshot {
	d := w.cfg.Diffusion
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("h", "Height", d.Height),
				intParam("w", "Width", d.Width),
				intParam("hotspots", "Hotspots", d.Hotspots),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				stringParam("variant", "Variant", string(w.variant)),
				floatParam("heat", "Heat", d.Heat),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				floatParam("max_energy", "Max energy", w.cfg.MaxEnergy),
				stringParam("palette", "Palette", w.cfg.Palette),
			},
		},
	}
	if w.variant != diffusion.VariantDiscrete {
		// Heat only drives the discrete strategy.
		groups[1].Params = groups[1].Params[:1]
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
