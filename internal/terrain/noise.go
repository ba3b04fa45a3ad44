package terrain

import "math"

// Deterministic 2D value noise summed over a fixed octave table.
// Lattice values come from integer hashing only, so samples are bit-identical
// across runs and platforms for the same seed. Products that feed an addition
// are wrapped in float64() so the compiler rounds them instead of fusing the
// pair into a single FMA on architectures that have one.

// BaseFrequency converts world pixels to lattice units for the first octave.
const BaseFrequency = 1.0 / 320.0

// Octave is one layer of the fractal sum.
type Octave struct {
	Frequency  float64
	Weight     float64
	SeedOffset int64
}

// Octaves weights sum to 1 so the result stays in [0,1].
var Octaves = [3]Octave{
	{Frequency: 1.0, Weight: 0.55, SeedOffset: 0},
	{Frequency: 2.6, Weight: 0.30, SeedOffset: 7919},
	{Frequency: 5.3, Weight: 0.15, SeedOffset: 15485},
}

// Field samples the seeded height field.
type Field struct {
	seed  int64
	scale float64
}

// NewField returns a Field for seed using BaseFrequency.
func NewField(seed int64) *Field {
	return &Field{seed: seed, scale: BaseFrequency}
}

// Sample returns the height at world coordinate (x, y) in [0,1].
func (f *Field) Sample(x, y float64) float64 {
	sum := 0.0
	for _, o := range Octaves {
		freq := f.scale * o.Frequency
		sum += float64(o.Weight * valueNoise2D(x*freq, y*freq, f.seed+o.SeedOffset))
	}
	return clamp01(sum)
}

// smoothstep eases t with 3t²−2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - float64(2*t))
}

func lerp(a, b, t float64) float64 {
	return a + float64(t*(b-a))
}

func hash2(x, y, seed int64) uint64 {
	// SplitMix64 finalizer over per-axis odd multipliers.
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xC2B2AE3D27D4EB4F + uint64(seed)*0x165667B19E3779F9
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y, seed int64) float64 {
	// Top 53 bits map exactly onto a float64 mantissa in [0,1).
	return float64(hash2(x, y, seed)>>11) / (1 << 53)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix := int64(x0)
	iy := int64(y0)

	fx := smoothstep(x - x0)
	fy := smoothstep(y - y0)

	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
