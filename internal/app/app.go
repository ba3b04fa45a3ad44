//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"feudal-map/internal/agent"
	"feudal-map/internal/core"
	"feudal-map/internal/game"
	"feudal-map/internal/render"
	"feudal-map/internal/ui"
	"feudal-map/internal/worldgen"
)

// Game adapts the scene stack to the ebiten.Game interface.
type Game struct {
	stack    *core.Stack
	worldMap *game.WorldMap
	clock    *core.FixedStep

	painter    *render.MapPainter
	paintedFor *worldgen.World
	hud        *ui.HUD
	overlay    *ui.Overlay

	viewport core.Size
	logger   *slog.Logger
}

// New generates the world and builds the GUI around it.
func New(cfg *Config, spawn worldgen.Spawn, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		stack:    core.NewStack(),
		clock:    core.NewFixedStep(cfg.TPS),
		overlay:  ui.NewOverlay(),
		viewport: core.Size{W: cfg.Width, H: cfg.Height},
		logger:   logger,
	}
	wcfg := worldgen.DefaultConfig()
	wcfg.Seed = cfg.Seed
	vp := mgl64.Vec2{float64(cfg.Width), float64(cfg.Height)}
	m, err := game.NewWorldMap(g.stack, wcfg, spawn, vp, logger)
	if err != nil {
		return nil, fmt.Errorf("start world map: %w", err)
	}
	g.worldMap = m
	g.stack.Push(m)
	g.hud = ui.NewHUD(m, cfg.HUD, cfg.Height)
	return g, nil
}

// Update handles input for the active scene and advances it by one tick.
func (g *Game) Update() error {
	if g.stack.Quit() {
		return ebiten.Termination
	}
	g.overlay.Update()
	onPanel := g.hud.Update(g.viewport.W)

	switch top := g.stack.Top().(type) {
	case *game.WorldMap:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			top.Quit()
			break
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			top.CancelTravel()
		}
		if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if x < g.viewport.W && y < g.viewport.H {
				top.ClickScreen(mgl64.Vec2{float64(x), float64(y)})
			}
		}
	case *game.Placeholder:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			top.Dismiss()
		}
	}

	if err := g.stack.Update(g.clock.DT()); err != nil {
		return err
	}
	if g.stack.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the map, then any placeholder screen above it.
func (g *Game) Draw(screen *ebiten.Image) {
	m := g.worldMap
	w := m.World()
	if g.paintedFor != w {
		g.painter = render.NewMapPainter(w.Raster)
		g.paintedFor = w
		g.logger.Debug("uploaded terrain raster", "seed", w.Config().Seed)
	}
	offset := m.Offset()
	g.painter.DrawBackground(screen, offset)

	hover := agent.ScreenToWorld(cursor(), offset)
	for _, pt := range w.Ports() {
		g.painter.DrawPort(screen, pt, offset, pt.Contains(hover))
	}
	for i, c := range w.Castles() {
		g.painter.DrawCastle(screen, c, offset, i == m.Selected())
	}
	g.painter.DrawKing(screen, m.King().Pos(), m.King().Mode(), offset)
	g.overlay.Draw(screen, m, g.painter, g.viewport)

	if p, ok := g.stack.Top().(*game.Placeholder); ok {
		g.drawPlaceholder(screen, p)
	}
	g.hud.Draw(screen, g.viewport.W)
}

func (g *Game) drawPlaceholder(screen *ebiten.Image, p *game.Placeholder) {
	shade := ebiten.NewImage(g.viewport.W, g.viewport.H)
	shade.Fill(color.RGBA{A: 180})
	screen.DrawImage(shade, nil)
	shade.Dispose()

	face := basicfont.Face7x13
	heading := p.Title()
	if p.Kind() == game.CastleView {
		heading = "Castle: " + heading
	}
	lines := []string{heading, "", "click or press Esc to return"}
	y := g.viewport.H/2 - len(lines)*8
	for _, line := range lines {
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, (g.viewport.W-b.Dx())/2, y, render.UIColor)
		y += 16
	}
}

// Layout returns the logical screen size: the viewport plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.W + g.hud.Width(), g.viewport.H
}

func cursor() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl64.Vec2{float64(x), float64(y)}
}
