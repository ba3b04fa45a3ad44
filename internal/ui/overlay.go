//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"feudal-map/internal/agent"
	"feudal-map/internal/core"
	"feudal-map/internal/game"
	"feudal-map/internal/render"
)

// gridStep is the oracle sampling pitch of the land grid in screen pixels.
const gridStep = 8

// Overlay draws optional debugging visuals on top of the map.
type Overlay struct {
	showIslets bool
	showPorts  bool
	showGrid   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles layers: 1 islets, 2 port radii, 3 land grid.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showIslets = !o.showIslets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPorts = !o.showPorts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled layers for the map scene.
func (o *Overlay) Draw(screen *ebiten.Image, m *game.WorldMap, painter *render.MapPainter, viewport core.Size) {
	if o == nil || m == nil {
		return
	}
	w := m.World()
	offset := m.Offset()
	if o.showGrid && painter != nil {
		painter.DrawLandGrid(screen, w.Oracle, offset, viewport, gridStep)
	}
	if o.showIslets {
		gap := w.Config().Islets.RingGap
		outline := color.RGBA{R: 255, G: 220, B: 80, A: 255}
		ring := color.RGBA{R: 255, G: 120, B: 60, A: 160}
		for _, is := range w.Islets() {
			n := len(is.Boundary)
			for i := 0; i < n; i++ {
				a := agent.WorldToScreen(is.Boundary[i], offset)
				b := agent.WorldToScreen(is.Boundary[(i+1)%n], offset)
				vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 1, outline, true)
			}
			c := agent.WorldToScreen(is.Center, offset)
			vector.StrokeCircle(screen, float32(c.X()), float32(c.Y()), float32(is.Radius+gap), 1, ring, true)
		}
	}
	if o.showPorts {
		for _, pt := range w.Ports() {
			c := agent.WorldToScreen(pt.Pos, offset)
			col := color.RGBA{R: 120, G: 230, B: 255, A: 200}
			if pt.Fallback {
				col = color.RGBA{R: 255, G: 80, B: 80, A: 200}
			}
			vector.StrokeCircle(screen, float32(c.X()), float32(c.Y()), float32(pt.Radius), 1.5, col, true)
		}
	}
}
