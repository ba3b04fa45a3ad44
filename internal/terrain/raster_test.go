package terrain

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildDeterministic(t *testing.T) {
	cls := NewClassifier(400, 300)
	a := Build(NewOracle(NewField(1337), cls, nil), 4)
	b := Build(NewOracle(NewField(1337), cls, nil), 4)
	if a.Biomes().W != 100 || a.Biomes().H != 75 {
		t.Fatalf("raster size = %dx%d, want 100x75", a.Biomes().W, a.Biomes().H)
	}
	if !bytes.Equal(a.Biomes().Cells(), b.Biomes().Cells()) {
		t.Fatal("biome raster differs between identical builds")
	}
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Fatal("background pixels differ between identical builds")
	}
}

func TestRasterMatchesOracle(t *testing.T) {
	o := NewOracle(NewField(7), NewClassifier(320, 240), nil)
	r := Build(o, 2)
	for y := 0; y < r.Biomes().H; y += 7 {
		for x := 0; x < r.Biomes().W; x += 7 {
			p := r.CellCenter(x, y)
			if r.BiomeAt(p) != o.Biome(p) {
				t.Fatalf("raster biome at %v = %v, oracle says %v", p, r.BiomeAt(p), o.Biome(p))
			}
		}
	}
}

func TestPaintIsletMarksSandAndGrass(t *testing.T) {
	o := NewOracle(constHeight(0.1), Classifier{Width: 200, Height: 200}, nil)
	r := Build(o, 2)
	center := mgl64.Vec2{100, 100}
	r.PaintIslet(square(100, 100, 40), center)

	if got := r.BiomeAt(center); got != BiomeGrass {
		t.Fatalf("islet interior = %v, want grass", got)
	}
	if got := r.BiomeAt(mgl64.Vec2{137, 100}); got != BiomeSand {
		t.Fatalf("islet rim = %v, want sand", got)
	}
	if got := r.BiomeAt(mgl64.Vec2{170, 100}); !got.IsWater() {
		t.Fatalf("outside the islet = %v, want water", got)
	}
	px := r.Image().RGBAAt(50, 50)
	if px != Palette[BiomeGrass] {
		t.Fatalf("interior pixel = %v, want grass colour %v", px, Palette[BiomeGrass])
	}
}

func TestBuildPaintsMaskedCirclesAsGrass(t *testing.T) {
	mask := NewOverrideMask()
	if err := mask.Add(Circle{Center: mgl64.Vec2{50, 50}, Radius: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	o := NewOracle(constHeight(0.1), Classifier{Width: 100, Height: 100}, mask)
	r := Build(o, 1)
	if r.BiomeAt(mgl64.Vec2{50, 50}) != BiomeGrass {
		t.Fatal("circle centre should be grass")
	}
	if !r.BiomeAt(mgl64.Vec2{70, 50}).IsWater() {
		t.Fatal("outside the circle should stay water")
	}
}
