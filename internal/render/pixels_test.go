package render

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/core"
)

type leftHalf float64

func (l leftHalf) IsLand(p mgl64.Vec2) bool { return p.X() < float64(l) }

func TestLandGridSamplesCellCentres(t *testing.T) {
	g := LandGrid(leftHalf(100), mgl64.Vec2{40, 0}, core.Size{W: 100, H: 30}, 20)
	if g.W != 5 || g.H != 2 {
		t.Fatalf("grid = %dx%d, want 5x2", g.W, g.H)
	}
	// Cell centres sit at x = 50, 70, 90, 110, 130.
	want := []uint8{1, 1, 1, 0, 0}
	for x, v := range want {
		if got := g.At(x, 1); got != v {
			t.Fatalf("cell %d = %d, want %d", x, got, v)
		}
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Transparent)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}
