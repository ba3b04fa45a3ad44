package worldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/terrain"
)

// Surface answers land/water queries. *terrain.Oracle implements it.
type Surface interface {
	IsLand(p mgl64.Vec2) bool
	IsWater(p mgl64.Vec2) bool
}

// Painter receives accepted islet outlines. *terrain.Raster implements it.
type Painter interface {
	PaintIslet(boundary terrain.Polygon, center mgl64.Vec2)
}

// Rect is an axis-aligned world rectangle.
type Rect struct {
	Min, Max mgl64.Vec2
}

// WorldRect returns the rectangle [0,w) x [0,h).
func WorldRect(w, h float64) Rect {
	return Rect{Max: mgl64.Vec2{w, h}}
}

// Inset shrinks the rectangle by m on every side. The result may be empty.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		Min: r.Min.Add(mgl64.Vec2{m, m}),
		Max: r.Max.Sub(mgl64.Vec2{m, m}),
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X() <= r.Min.X() || r.Max.Y() <= r.Min.Y()
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Min.X() && p.Y() >= r.Min.Y() && p.X() < r.Max.X() && p.Y() < r.Max.Y()
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() mgl64.Vec2 { return r.Max.Sub(r.Min) }

// probeDirs are the four axis neighbours used by coastal checks.
var probeDirs = [4]mgl64.Vec2{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsCoastal reports whether p is land with at least one axis neighbour at
// distance probe classified as water.
func IsCoastal(s Surface, p mgl64.Vec2, probe float64) bool {
	if !s.IsLand(p) {
		return false
	}
	for _, d := range probeDirs {
		if s.IsWater(p.Add(d.Mul(probe))) {
			return true
		}
	}
	return false
}

func polar(center mgl64.Vec2, angle, r float64) mgl64.Vec2 {
	return mgl64.Vec2{center.X() + float64(math.Cos(angle)*r), center.Y() + float64(math.Sin(angle)*r)}
}

func dist(a, b mgl64.Vec2) float64 { return a.Sub(b).Len() }
