package terrain

import (
	"math"
	"math/rand"
	"testing"
)

func TestHash2Deterministic(t *testing.T) {
	first := hash2(10, 20, 42)
	for i := 0; i < 100; i++ {
		if got := hash2(10, 20, 42); got != first {
			t.Fatalf("hash2 not deterministic: %d vs %d", first, got)
		}
	}
	if hash2(1, 2, 42) == hash2(2, 1, 42) {
		t.Fatal("hash2 should differ when axes are swapped")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Fatal("hash2 should differ for different seeds")
	}
}

func TestSmoothstepEndpoints(t *testing.T) {
	if smoothstep(0) != 0 || smoothstep(1) != 1 {
		t.Fatalf("smoothstep endpoints = %v, %v", smoothstep(0), smoothstep(1))
	}
	if got := smoothstep(0.5); got != 0.5 {
		t.Fatalf("smoothstep(0.5) = %v, want 0.5", got)
	}
}

func TestValueNoiseInterpolatesLatticeCorners(t *testing.T) {
	seed := int64(9)
	for _, c := range [][2]int64{{0, 0}, {3, -2}, {-7, 11}} {
		got := valueNoise2D(float64(c[0]), float64(c[1]), seed)
		want := latticeValue(c[0], c[1], seed)
		if got != want {
			t.Fatalf("noise at lattice point %v = %v, want corner value %v", c, got, want)
		}
	}
}

func TestOctaveWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, o := range Octaves {
		sum += o.Weight
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("octave weights sum to %v, want 1", sum)
	}
	seen := map[int64]bool{}
	for _, o := range Octaves {
		if seen[o.SeedOffset] {
			t.Fatalf("octaves share seed offset %d", o.SeedOffset)
		}
		seen[o.SeedOffset] = true
	}
}

func TestFieldSampleRangeAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	a := NewField(1337)
	b := NewField(1337)
	for i := 0; i < 2000; i++ {
		x := rng.Float64()*4800 - 1200
		y := rng.Float64()*3600 - 900
		va := a.Sample(x, y)
		if va < 0 || va > 1 {
			t.Fatalf("Sample(%f, %f) = %f out of [0,1]", x, y, va)
		}
		if vb := b.Sample(x, y); va != vb {
			t.Fatalf("Sample(%f, %f) not bit-identical: %v vs %v", x, y, va, vb)
		}
	}
}

func TestFieldContinuity(t *testing.T) {
	f := NewField(1337)
	for x := 0.0; x < 2400; x += 37 {
		v1 := f.Sample(x, 500)
		v2 := f.Sample(x+0.5, 500)
		if math.Abs(v1-v2) > 0.05 {
			t.Fatalf("field jumps between x=%v and x=%v: %v vs %v", x, x+0.5, v1, v2)
		}
	}
}

func TestFieldSeedsDiffer(t *testing.T) {
	a := NewField(1)
	b := NewField(2)
	diff := 0
	for i := 0; i < 50; i++ {
		x := float64(i) * 47.3
		if a.Sample(x, x*0.7) != b.Sample(x, x*0.7) {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical fields")
	}
}

// roundedSample recomputes Field.Sample rounding every product before the
// addition it feeds.
func roundedSample(seed int64, x, y float64) float64 {
	lerpR := func(a, b, t float64) float64 { return a + float64(t*(b-a)) }
	sum := 0.0
	for _, o := range Octaves {
		freq := BaseFrequency * o.Frequency
		px, py := x*freq, y*freq
		x0, y0 := math.Floor(px), math.Floor(py)
		ix, iy := int64(x0), int64(y0)
		s := seed + o.SeedOffset
		fx, fy := smoothstep(px-x0), smoothstep(py-y0)
		top := lerpR(latticeValue(ix, iy, s), latticeValue(ix+1, iy, s), fx)
		bottom := lerpR(latticeValue(ix, iy+1, s), latticeValue(ix+1, iy+1, s), fx)
		sum += float64(o.Weight * lerpR(top, bottom, fy))
	}
	return clamp01(sum)
}

// fusedSample is the same sum with multiply-adds fused into math.FMA.
func fusedSample(seed int64, x, y float64) float64 {
	lerpF := func(a, b, t float64) float64 { return math.FMA(t, b-a, a) }
	sum := 0.0
	for _, o := range Octaves {
		freq := BaseFrequency * o.Frequency
		px, py := x*freq, y*freq
		x0, y0 := math.Floor(px), math.Floor(py)
		ix, iy := int64(x0), int64(y0)
		s := seed + o.SeedOffset
		fx, fy := smoothstep(px-x0), smoothstep(py-y0)
		top := lerpF(latticeValue(ix, iy, s), latticeValue(ix+1, iy, s), fx)
		bottom := lerpF(latticeValue(ix, iy+1, s), latticeValue(ix+1, iy+1, s), fx)
		sum = math.FMA(o.Weight, lerpF(top, bottom, fy), sum)
	}
	return clamp01(sum)
}

func TestSampleRoundsEveryProduct(t *testing.T) {
	const seed = 1337
	f := NewField(seed)
	fusedDiffers := 0
	for y := 0.0; y < 1800; y += 7 {
		for x := 0.0; x < 2400; x += 7 {
			got := f.Sample(x, y)
			want := roundedSample(seed, x, y)
			if math.Float64bits(got) != math.Float64bits(want) {
				t.Fatalf("Sample(%v, %v) = %x, want %x", x, y, math.Float64bits(got), math.Float64bits(want))
			}
			if math.Float64bits(fusedSample(seed, x, y)) != math.Float64bits(want) {
				fusedDiffers++
			}
		}
	}
	if fusedDiffers == 0 {
		t.Fatal("fused rendition never differs; the comparison cannot detect FMA contraction")
	}
}
