package worldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/terrain"
	"feudal-map/pkg/core"
)

// Islet is a generated land blob surrounded by water.
type Islet struct {
	Center   mgl64.Vec2
	Radius   float64
	Boundary terrain.Polygon
}

// IsletStats reports how placement went.
type IsletStats struct {
	Attempts       int
	RejectedLand   int
	RejectedSpace  int
	RejectedRing   int
	RejectedCommit int
}

// PlaceIslets places up to p.Count islets in open water. Accepted outlines
// are committed to mask and handed to painter (which may be nil). The loop
// stops after p.MaxAttempts candidates, so a partial result is possible.
func PlaceIslets(rng *core.RNG, s Surface, mask *terrain.OverrideMask, painter Painter, bounds Rect, p IsletParams) ([]Islet, IsletStats) {
	var stats IsletStats
	area := bounds.Inset(p.EdgeMargin)
	if area.Empty() || p.Count <= 0 {
		return nil, stats
	}
	out := make([]Islet, 0, p.Count)
	for len(out) < p.Count && stats.Attempts < p.MaxAttempts {
		stats.Attempts++
		c := mgl64.Vec2{
			rng.Range(area.Min.X(), area.Max.X()),
			rng.Range(area.Min.Y(), area.Max.Y()),
		}
		if s.IsLand(c) {
			stats.RejectedLand++
			continue
		}
		r := rng.Range(p.MinRadius, p.MaxRadius)
		if tooClose(out, c, r, p.MinSpacing) {
			stats.RejectedSpace++
			continue
		}
		if !ringIsWater(s, c, r+p.RingGap, p.RingSamples, p.RingWaterFraction) {
			stats.RejectedRing++
			continue
		}
		boundary := isletBoundary(rng, c, r, p.BoundaryPoints, p.Jitter)
		if err := mask.Add(boundary); err != nil {
			stats.RejectedCommit++
			continue
		}
		if painter != nil {
			painter.PaintIslet(boundary, c)
		}
		out = append(out, Islet{Center: c, Radius: r, Boundary: boundary})
	}
	return out, stats
}

func tooClose(accepted []Islet, c mgl64.Vec2, r, spacing float64) bool {
	for _, is := range accepted {
		if dist(is.Center, c)-is.Radius-r < spacing {
			return true
		}
	}
	return false
}

// ringIsWater samples n points on a circle and reports whether at least
// frac of them are water.
func ringIsWater(s Surface, c mgl64.Vec2, radius float64, n int, frac float64) bool {
	if n <= 0 {
		return true
	}
	water := 0
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if s.IsWater(polar(c, a, radius)) {
			water++
		}
	}
	return float64(water) >= frac*float64(n)
}

// isletBoundary builds n jittered radial points and applies one smoothing
// pass moving each point halfway toward the mean of its two neighbours.
func isletBoundary(rng *core.RNG, c mgl64.Vec2, r float64, n int, jitter float64) terrain.Polygon {
	if n < 3 {
		n = 3
	}
	raw := make([]mgl64.Vec2, n)
	for i := range raw {
		a := 2 * math.Pi * float64(i) / float64(n)
		raw[i] = polar(c, a, r*(1+float64(jitter*rng.Signed())))
	}
	out := make(terrain.Polygon, n)
	for i := range raw {
		prev := raw[(i+n-1)%n]
		next := raw[(i+1)%n]
		mid := prev.Add(next).Mul(0.5)
		out[i] = raw[i].Add(mid.Sub(raw[i]).Mul(0.5))
	}
	return out
}
