package terrain

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMaskSealed is returned when a region is added after generation finished.
var ErrMaskSealed = errors.New("terrain: override mask is sealed")

// Region is an area forced to land.
type Region interface {
	Contains(p mgl64.Vec2) bool
	// Bounds returns the axis-aligned bounding box (min, max).
	Bounds() (mgl64.Vec2, mgl64.Vec2)
}

// Polygon is a closed simple polygon in world coordinates.
type Polygon []mgl64.Vec2

// Contains uses even-odd ray casting.
func (pg Polygon) Contains(p mgl64.Vec2) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := pg[i], pg[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			xCross := a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
			if p.X() < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the polygon's bounding box.
func (pg Polygon) Bounds() (mgl64.Vec2, mgl64.Vec2) {
	if len(pg) == 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}
	lo, hi := pg[0], pg[0]
	for _, v := range pg[1:] {
		lo = mgl64.Vec2{math.Min(lo.X(), v.X()), math.Min(lo.Y(), v.Y())}
		hi = mgl64.Vec2{math.Max(hi.X(), v.X()), math.Max(hi.Y(), v.Y())}
	}
	return lo, hi
}

// Scaled returns a copy of the polygon scaled by k about center.
func (pg Polygon) Scaled(center mgl64.Vec2, k float64) Polygon {
	out := make(Polygon, len(pg))
	for i, v := range pg {
		out[i] = center.Add(v.Sub(center).Mul(k))
	}
	return out
}

// Circle is a disc in world coordinates.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p mgl64.Vec2) bool {
	return p.Sub(c.Center).Len() <= c.Radius
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() (mgl64.Vec2, mgl64.Vec2) {
	r := mgl64.Vec2{c.Radius, c.Radius}
	return c.Center.Sub(r), c.Center.Add(r)
}

// OverrideMask is the set of regions forced to land. It is written during
// world generation only; Seal freezes it for the rest of the session.
type OverrideMask struct {
	regions []Region
	sealed  bool
}

// NewOverrideMask returns an empty, writable mask.
func NewOverrideMask() *OverrideMask { return &OverrideMask{} }

// Add commits a region.
func (m *OverrideMask) Add(r Region) error {
	if m.sealed {
		return ErrMaskSealed
	}
	if r == nil {
		return nil
	}
	m.regions = append(m.regions, r)
	return nil
}

// Seal prevents further writes.
func (m *OverrideMask) Seal() { m.sealed = true }

// Sealed reports whether the mask is frozen.
func (m *OverrideMask) Sealed() bool { return m.sealed }

// Len returns the number of committed regions.
func (m *OverrideMask) Len() int {
	if m == nil {
		return 0
	}
	return len(m.regions)
}

// Contains reports whether any region covers p.
func (m *OverrideMask) Contains(p mgl64.Vec2) bool {
	if m == nil {
		return false
	}
	for _, r := range m.regions {
		lo, hi := r.Bounds()
		if p.X() < lo.X() || p.Y() < lo.Y() || p.X() > hi.X() || p.Y() > hi.Y() {
			continue
		}
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Regions returns a copy of the committed regions.
func (m *OverrideMask) Regions() []Region {
	if m == nil {
		return nil
	}
	out := make([]Region, len(m.regions))
	copy(out, m.regions)
	return out
}
