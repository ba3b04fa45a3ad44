package worldgen

import (
	"strconv"

	"feudal-map/internal/core"
)

// Parameters exposes the generation config and results for the HUD and CLIs.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Islets",
			Params: []core.Parameter{
				intParam("islet_count", "Islets wanted", cfg.Islets.Count),
				intParam("islets_placed", "Islets placed", len(w.islets)),
				intParam("islet_attempts", "Islet attempts", w.stats.Islets.Attempts),
				floatParam("islet_spacing", "Islet spacing", cfg.Islets.MinSpacing),
				floatParam("islet_ring_water", "Ring water fraction", cfg.Islets.RingWaterFraction),
			},
		},
		{
			Name: "Ports",
			Params: []core.Parameter{
				intParam("port_count", "Mainland ports wanted", cfg.Ports.MainlandCount),
				intParam("ports_placed", "Ports placed", len(w.ports)),
				intParam("ports_fallback", "Fallback ports", w.stats.FallbackPorts),
				floatParam("port_spacing", "Port spacing", cfg.Ports.MinSpacing),
			},
		},
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
