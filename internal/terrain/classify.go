package terrain

import "image/color"

// Biome is a terrain category ordered by elevation rank.
type Biome uint8

const (
	BiomeDeepWater Biome = iota
	BiomeShallowWater
	BiomeSand
	BiomeGrass
	BiomeHill
	BiomeMountain

	biomeCount
)

// Thresholds are the ascending lower bounds of ShallowWater through Mountain.
var Thresholds = [5]float64{0.35, 0.40, 0.45, 0.75, 0.90}

// DefaultLightStrength is the peak magnitude of the directional light bias.
const DefaultLightStrength = 0.03

var biomeNames = [biomeCount]string{"deep water", "shallow water", "sand", "grass", "hill", "mountain"}

func (b Biome) String() string {
	if b >= biomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// IsWater reports whether b is DeepWater or ShallowWater.
func (b Biome) IsWater() bool {
	return b == BiomeDeepWater || b == BiomeShallowWater
}

// Classifier maps height samples to biomes.
type Classifier struct {
	Width  float64
	Height float64
	// LightStrength scales a bias that brightens the upper-left of the map.
	LightStrength float64
}

// NewClassifier returns a classifier for a world of w by h pixels.
func NewClassifier(w, h float64) Classifier {
	return Classifier{Width: w, Height: h, LightStrength: DefaultLightStrength}
}

// Bias returns the additive light term at (x, y), in [-LightStrength, LightStrength].
func (c Classifier) Bias(x, y float64) float64 {
	if c.LightStrength == 0 || c.Width <= 0 || c.Height <= 0 {
		return 0
	}
	nx := clamp01(x / c.Width)
	ny := clamp01(y / c.Height)
	return float64(c.LightStrength * ((0.5 - nx) + (0.5 - ny)))
}

// Elevation returns the biased height that classification thresholds apply to.
func (c Classifier) Elevation(height, x, y float64) float64 {
	return clamp01(height + float64(c.Bias(x, y)))
}

// Classify returns the biome for a raw height sample at (x, y).
func (c Classifier) Classify(height, x, y float64) Biome {
	return BiomeFor(c.Elevation(height, x, y))
}

// BiomeFor walks the threshold ladder for an already biased elevation.
func BiomeFor(elevation float64) Biome {
	b := BiomeDeepWater
	for i, t := range Thresholds {
		if elevation < t {
			break
		}
		b = Biome(i + 1)
	}
	return b
}

// Palette holds one colour per biome.
var Palette = [biomeCount]color.RGBA{
	BiomeDeepWater:    {R: 20, G: 50, B: 110, A: 255},
	BiomeShallowWater: {R: 40, G: 120, B: 180, A: 255},
	BiomeSand:         {R: 235, G: 215, B: 160, A: 255},
	BiomeGrass:        {R: 85, G: 150, B: 85, A: 255},
	BiomeHill:         {R: 120, G: 110, B: 85, A: 255},
	BiomeMountain:     {R: 160, G: 160, B: 160, A: 255},
}
