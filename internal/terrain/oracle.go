package terrain

import "github.com/go-gl/mathgl/mgl64"

// HeightSource produces raw height samples in [0,1].
type HeightSource interface {
	Sample(x, y float64) float64
}

// Oracle answers land/water queries for world coordinates. It is the single
// height path shared by the raster, the placers and movement validation.
type Oracle struct {
	src  HeightSource
	cls  Classifier
	mask *OverrideMask
}

// NewOracle combines a height source, classifier and override mask. The
// classifier's Width and Height define the world bounds.
func NewOracle(src HeightSource, cls Classifier, mask *OverrideMask) *Oracle {
	if mask == nil {
		mask = NewOverrideMask()
	}
	return &Oracle{src: src, cls: cls, mask: mask}
}

// Mask returns the override mask the oracle consults.
func (o *Oracle) Mask() *OverrideMask { return o.mask }

// Classifier returns the biome classifier.
func (o *Oracle) Classifier() Classifier { return o.cls }

// InBounds reports whether p lies inside the world rectangle.
func (o *Oracle) InBounds(p mgl64.Vec2) bool {
	return p.X() >= 0 && p.Y() >= 0 && p.X() < o.cls.Width && p.Y() < o.cls.Height
}

// Biome returns the noise-derived biome at p, ignoring overrides.
func (o *Oracle) Biome(p mgl64.Vec2) Biome {
	return o.cls.Classify(o.src.Sample(p.X(), p.Y()), p.X(), p.Y())
}

// IsWater reports whether p is water. Overrides win; outside the world is water.
func (o *Oracle) IsWater(p mgl64.Vec2) bool {
	if o.mask.Contains(p) {
		return false
	}
	if !o.InBounds(p) {
		return true
	}
	return o.Biome(p).IsWater()
}

// IsLand is the exact complement of IsWater.
func (o *Oracle) IsLand(p mgl64.Vec2) bool {
	return !o.IsWater(p)
}
