package worldgen

import (
	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/terrain"
)

type constHeight float64

func (c constHeight) Sample(float64, float64) float64 { return float64(c) }

// oceanOracle is water everywhere until the mask says otherwise.
func oceanOracle(w, h float64) *terrain.Oracle {
	return terrain.NewOracle(constHeight(0.1), terrain.Classifier{Width: w, Height: h}, nil)
}

// landOracle is land everywhere inside the bounds.
func landOracle(w, h float64) *terrain.Oracle {
	return terrain.NewOracle(constHeight(0.6), terrain.Classifier{Width: w, Height: h}, nil)
}

// halfPlane is land left of Split and water elsewhere, with an optional mask.
type halfPlane struct {
	Split float64
	W, H  float64
	Mask  *terrain.OverrideMask
}

func (h halfPlane) IsLand(p mgl64.Vec2) bool {
	if h.Mask.Contains(p) {
		return true
	}
	if p.X() < 0 || p.Y() < 0 || p.X() >= h.W || p.Y() >= h.H {
		return false
	}
	return p.X() < h.Split
}

func (h halfPlane) IsWater(p mgl64.Vec2) bool { return !h.IsLand(p) }

type recordingPainter struct {
	calls int
}

func (r *recordingPainter) PaintIslet(terrain.Polygon, mgl64.Vec2) { r.calls++ }

// landFunc adapts a predicate into a Surface.
type landFunc func(p mgl64.Vec2) bool

func (f landFunc) IsLand(p mgl64.Vec2) bool  { return f(p) }
func (f landFunc) IsWater(p mgl64.Vec2) bool { return !f(p) }
