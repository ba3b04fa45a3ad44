package worldgen

import (
	"math"
	"strconv"
)

// IsletParams tunes islet placement.
type IsletParams struct {
	Count      int
	MinRadius  float64
	MaxRadius  float64
	MinSpacing float64

	// RingGap and RingSamples describe the acceptance ring drawn at
	// radius+RingGap; at least RingWaterFraction of it must be water.
	RingGap           float64
	RingSamples       int
	RingWaterFraction float64

	BoundaryPoints int
	Jitter         float64
	EdgeMargin     float64
	MaxAttempts    int
}

// PortParams tunes mainland and islet port placement.
type PortParams struct {
	MainlandCount int
	MinSpacing    float64
	ProbeOffset   float64
	EdgeMargin    float64
	Radius        float64
	MaxAttempts   int

	// SweepStep is the angular step in degrees used around islets.
	SweepStep    float64
	IsletSpacing float64
	RayStep      float64
}

// CastleParams tunes the repair of castles and the king spawn.
type CastleParams struct {
	Radius       float64
	SearchStep   float64
	SearchRadius float64
	SearchAngles int
}

// Config controls world generation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// RasterCell is the world size of one background cell. Zero skips the
	// background raster entirely (headless sweeps).
	RasterCell int

	Islets  IsletParams
	Ports   PortParams
	Castles CastleParams
}

// DefaultConfig returns the standard 2400x1800 world.
func DefaultConfig() Config {
	return Config{
		Width:      2400,
		Height:     1800,
		Seed:       1337,
		RasterCell: 2,
		Islets: IsletParams{
			Count:             6,
			MinRadius:         28,
			MaxRadius:         60,
			MinSpacing:        60,
			RingGap:           24,
			RingSamples:       24,
			RingWaterFraction: 0.8,
			BoundaryPoints:    18,
			Jitter:            0.25,
			EdgeMargin:        120,
			MaxAttempts:       400,
		},
		Ports: PortParams{
			MainlandCount: 4,
			MinSpacing:    220,
			ProbeOffset:   6,
			EdgeMargin:    64,
			Radius:        18,
			MaxAttempts:   2000,
			SweepStep:     10,
			IsletSpacing:  80,
			RayStep:       2,
		},
		Castles: CastleParams{
			Radius:       18,
			SearchStep:   8,
			SearchRadius: 240,
			SearchAngles: 16,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields of c from flag-style key/value pairs. Unknown keys
// and unparsable values are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	setInt(cfg, "w", &c.Width, 1)
	setInt(cfg, "h", &c.Height, 1)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setInt(cfg, "raster_cell", &c.RasterCell, 0)

	setInt(cfg, "islet_count", &c.Islets.Count, 0)
	setFloat(cfg, "islet_radius_min", &c.Islets.MinRadius, 1)
	setFloat(cfg, "islet_radius_max", &c.Islets.MaxRadius, 1)
	if c.Islets.MaxRadius < c.Islets.MinRadius {
		c.Islets.MaxRadius = c.Islets.MinRadius
	}
	setFloat(cfg, "islet_spacing", &c.Islets.MinSpacing, 0)
	setFloat(cfg, "islet_ring_gap", &c.Islets.RingGap, 0)
	setInt(cfg, "islet_ring_samples", &c.Islets.RingSamples, 1)
	setFloat(cfg, "islet_ring_water", &c.Islets.RingWaterFraction, 0)
	c.Islets.RingWaterFraction = math.Min(c.Islets.RingWaterFraction, 1)
	setInt(cfg, "islet_points", &c.Islets.BoundaryPoints, 3)
	setFloat(cfg, "islet_jitter", &c.Islets.Jitter, 0)
	c.Islets.Jitter = math.Min(c.Islets.Jitter, 0.9)
	setFloat(cfg, "islet_margin", &c.Islets.EdgeMargin, 0)
	setInt(cfg, "islet_attempts", &c.Islets.MaxAttempts, 0)

	setInt(cfg, "port_count", &c.Ports.MainlandCount, 0)
	setFloat(cfg, "port_spacing", &c.Ports.MinSpacing, 0)
	setFloat(cfg, "port_probe", &c.Ports.ProbeOffset, 1)
	setFloat(cfg, "port_margin", &c.Ports.EdgeMargin, 0)
	setFloat(cfg, "port_radius", &c.Ports.Radius, 1)
	setInt(cfg, "port_attempts", &c.Ports.MaxAttempts, 0)
	setFloat(cfg, "port_sweep_step", &c.Ports.SweepStep, 1)
	setFloat(cfg, "port_islet_spacing", &c.Ports.IsletSpacing, 0)

	setFloat(cfg, "castle_search_step", &c.Castles.SearchStep, 1)
	setFloat(cfg, "castle_search_radius", &c.Castles.SearchRadius, 0)
	setInt(cfg, "castle_search_angles", &c.Castles.SearchAngles, 1)
}

func setInt(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

func setFloat(cfg map[string]string, key string, dst *float64, min float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min && !math.IsInf(parsed, 0) {
		*dst = parsed
	}
}
