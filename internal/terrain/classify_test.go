package terrain

import "testing"

func TestBiomeForThresholdLadder(t *testing.T) {
	cases := []struct {
		h    float64
		want Biome
	}{
		{0, BiomeDeepWater},
		{0.3499, BiomeDeepWater},
		{0.35, BiomeShallowWater},
		{0.3999, BiomeShallowWater},
		{0.40, BiomeSand},
		{0.45, BiomeGrass},
		{0.7499, BiomeGrass},
		{0.75, BiomeHill},
		{0.90, BiomeMountain},
		{1, BiomeMountain},
	}
	for _, tc := range cases {
		if got := BiomeFor(tc.h); got != tc.want {
			t.Errorf("BiomeFor(%v) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	c := NewClassifier(2400, 1800)
	coords := [][2]float64{{0, 0}, {1200, 900}, {2399, 1799}, {300, 1500}}
	for _, p := range coords {
		prev := c.Classify(0, p[0], p[1])
		for h := 0.0; h <= 1.0; h += 0.001 {
			b := c.Classify(h, p[0], p[1])
			if b < prev {
				t.Fatalf("classification decreased at h=%v (%v -> %v) at %v", h, prev, b, p)
			}
			prev = b
		}
	}
}

func TestBiasBounded(t *testing.T) {
	c := NewClassifier(2400, 1800)
	if got := c.Bias(1200, 900); got != 0 {
		t.Fatalf("bias at world centre = %v, want 0", got)
	}
	if c.Bias(0, 0) <= 0 || c.Bias(2400, 1800) >= 0 {
		t.Fatal("light should brighten the upper-left and darken the lower-right")
	}
	if got := c.Bias(-500, -500); got > c.LightStrength+1e-12 {
		t.Fatalf("bias %v exceeds light strength", got)
	}
	flat := Classifier{Width: 100, Height: 100}
	if flat.Bias(0, 0) != 0 {
		t.Fatal("zero light strength must not bias heights")
	}
}

func TestWaterBiomes(t *testing.T) {
	for b := BiomeDeepWater; b < biomeCount; b++ {
		want := b == BiomeDeepWater || b == BiomeShallowWater
		if b.IsWater() != want {
			t.Errorf("%v.IsWater() = %v", b, b.IsWater())
		}
	}
}
