package worldgen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/terrain"
	"feudal-map/pkg/core"
)

// DefaultKingSpeed is used when a spawn leaves the speed unset.
const DefaultKingSpeed = 180

// Spawn carries the entities loaded from the world file.
type Spawn struct {
	King        mgl64.Vec2
	KingSpeed   float64
	Castles     []Castle
	LandPatches []terrain.Circle
}

// Stats summarises one generation run.
type Stats struct {
	Islets        IsletStats
	PortAttempts  int
	FallbackPorts int
	Repairs       map[Repair]int
}

// World is one generated map. Terrain and placements are fixed after
// Generate returns; only castle owners change afterwards.
type World struct {
	cfg    Config
	bounds Rect

	Oracle *terrain.Oracle
	// Raster is nil when Config.RasterCell is zero.
	Raster *terrain.Raster

	islets  []Islet
	ports   []Port
	castles []Castle

	king      mgl64.Vec2
	kingSpeed float64

	stats Stats
}

// Generate builds the terrain, places islets and ports, then repairs the
// spawn points so nothing starts in water.
func Generate(cfg Config, spawn Spawn, logger *slog.Logger) (*World, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		cfg:    cfg,
		bounds: WorldRect(float64(cfg.Width), float64(cfg.Height)),
		stats:  Stats{Repairs: make(map[Repair]int)},
	}
	mask := terrain.NewOverrideMask()
	for _, patch := range spawn.LandPatches {
		if err := mask.Add(patch); err != nil {
			return nil, fmt.Errorf("add land patch: %w", err)
		}
	}
	cls := terrain.NewClassifier(float64(cfg.Width), float64(cfg.Height))
	w.Oracle = terrain.NewOracle(terrain.NewField(cfg.Seed), cls, mask)

	var painter Painter
	if cfg.RasterCell > 0 {
		w.Raster = terrain.Build(w.Oracle, cfg.RasterCell)
		painter = w.Raster
	}

	isletRNG := core.NewStream(cfg.Seed, core.StreamIslets)
	w.islets, w.stats.Islets = PlaceIslets(isletRNG, w.Oracle, mask, painter, w.bounds, cfg.Islets)
	logger.Debug("islets placed",
		"seed", cfg.Seed,
		"placed", len(w.islets),
		"wanted", cfg.Islets.Count,
		"attempts", w.stats.Islets.Attempts,
		"rejected_land", w.stats.Islets.RejectedLand,
		"rejected_spacing", w.stats.Islets.RejectedSpace,
		"rejected_ring", w.stats.Islets.RejectedRing,
	)

	portRNG := core.NewStream(cfg.Seed, core.StreamPorts)
	w.ports, w.stats.PortAttempts = PlaceMainlandPorts(portRNG, w.Oracle, mask, w.bounds, cfg.Ports, nil)
	for i, is := range w.islets {
		pt := PlaceIsletPort(w.Oracle, is, i, cfg.Ports, w.ports)
		if pt.Fallback {
			w.stats.FallbackPorts++
		}
		w.ports = append(w.ports, pt)
	}
	logger.Debug("ports placed",
		"seed", cfg.Seed,
		"mainland", len(w.ports)-len(w.islets),
		"islet", len(w.islets),
		"fallback", w.stats.FallbackPorts,
		"attempts", w.stats.PortAttempts,
	)
	mask.Seal()

	for _, c := range spawn.Castles {
		pos, rep := SnapToLand(w.Oracle, c.Pos, cfg.Castles, w.ports, cfg.Ports.ProbeOffset)
		w.stats.Repairs[rep]++
		if rep != RepairNone {
			logger.Debug("castle repositioned", "castle", c.Name, "repair", rep.String(), "from", c.Pos, "to", pos)
		}
		c.Pos = pos
		if c.Radius <= 0 {
			c.Radius = cfg.Castles.Radius
		}
		w.castles = append(w.castles, c)
	}

	king, rep := SnapToLand(w.Oracle, spawn.King, cfg.Castles, w.ports, cfg.Ports.ProbeOffset)
	w.stats.Repairs[rep]++
	if rep != RepairNone {
		logger.Debug("king repositioned", "repair", rep.String(), "from", spawn.King, "to", king)
	}
	w.king = king
	w.kingSpeed = spawn.KingSpeed
	if w.kingSpeed <= 0 {
		w.kingSpeed = DefaultKingSpeed
	}
	return w, nil
}

// Config returns the generation config.
func (w *World) Config() Config { return w.cfg }

// Bounds returns the world rectangle.
func (w *World) Bounds() Rect { return w.bounds }

// Size returns the world dimensions in pixels.
func (w *World) Size() mgl64.Vec2 { return w.bounds.Size() }

// Stats returns placement counters.
func (w *World) Stats() Stats { return w.stats }

// King returns the repaired king spawn and speed.
func (w *World) King() (mgl64.Vec2, float64) { return w.king, w.kingSpeed }

// Islets returns a copy of the generated islets.
func (w *World) Islets() []Islet {
	out := make([]Islet, len(w.islets))
	for i, is := range w.islets {
		is.Boundary = append(terrain.Polygon(nil), is.Boundary...)
		out[i] = is
	}
	return out
}

// Ports returns a copy of the generated ports.
func (w *World) Ports() []Port {
	return append([]Port(nil), w.ports...)
}

// Castles returns a copy of the castles.
func (w *World) Castles() []Castle {
	return append([]Castle(nil), w.castles...)
}

// SetOwner changes the owner of the castle at index i.
func (w *World) SetOwner(i int, o Owner) bool {
	if i < 0 || i >= len(w.castles) {
		return false
	}
	w.castles[i].Owner = o
	return true
}

// DockAt reports whether p lies within any port's interaction radius.
func (w *World) DockAt(p mgl64.Vec2) bool {
	_, ok := w.PortAt(p)
	return ok
}

// PortAt returns the first port whose interaction radius covers p.
func (w *World) PortAt(p mgl64.Vec2) (Port, bool) {
	for _, pt := range w.ports {
		if pt.Contains(p) {
			return pt, true
		}
	}
	return Port{}, false
}

// CastleAt returns the index of the castle under p, or -1.
func (w *World) CastleAt(p mgl64.Vec2) int {
	for i, c := range w.castles {
		if c.Contains(p) {
			return i
		}
	}
	return -1
}

// CastleByName finds a castle by name, tolerating small typos. Exact
// (case-insensitive) matches win, then prefixes, then the closest edit
// distance within a length-based limit.
func (w *World) CastleByName(name string) (Castle, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return Castle{}, false
	}
	best := -1
	bestDist := 0
	for i, c := range w.castles {
		cand := strings.ToLower(c.Name)
		if cand == q {
			return c, true
		}
		if strings.HasPrefix(cand, q) && len(q) >= 3 {
			return c, true
		}
		d := levenshtein.ComputeDistance(q, cand)
		if d > editLimit(len(cand)) {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Castle{}, false
	}
	return w.castles[best], true
}

func editLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}
