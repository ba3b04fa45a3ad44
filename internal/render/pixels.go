// Package render draws the world map. The helpers in this file are
// GUI-independent; the ebiten painter lives behind the ebiten build tag.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/core"
)

// LandSurface is the subset of the oracle the debug grid samples.
type LandSurface interface {
	IsLand(p mgl64.Vec2) bool
}

// LandGrid samples s every step pixels across the viewport starting at
// offset. Land cells are 1, water cells 0.
func LandGrid(s LandSurface, offset mgl64.Vec2, viewport core.Size, step int) *core.ByteGrid {
	if step <= 0 {
		step = 1
	}
	w := (viewport.W + step - 1) / step
	h := (viewport.H + step - 1) / step
	g := core.NewByteGrid(w, h)
	half := float64(step) / 2
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := offset.Add(mgl64.Vec2{float64(x*step) + half, float64(y*step) + half})
			if s.IsLand(p) {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Entity colours.
var (
	KingColor    = color.RGBA{R: 255, G: 215, B: 90, A: 255}
	PlayerColor  = color.RGBA{R: 80, G: 150, B: 255, A: 255}
	EnemyColor   = color.RGBA{R: 220, G: 85, B: 85, A: 255}
	PortColor    = color.RGBA{R: 88, G: 54, B: 35, A: 255}
	OutlineColor = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	UIColor      = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)
