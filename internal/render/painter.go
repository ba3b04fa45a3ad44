//go:build ebiten

package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"feudal-map/internal/agent"
	"feudal-map/internal/core"
	"feudal-map/internal/terrain"
	"feudal-map/internal/worldgen"
)

// MapPainter draws the terrain background and map entities with a camera
// offset applied.
type MapPainter struct {
	bg   *ebiten.Image
	cell int

	grid    *ebiten.Image
	gridBuf []byte
}

// NewMapPainter uploads the raster once; the background never changes for
// the lifetime of a world.
func NewMapPainter(r *terrain.Raster) *MapPainter {
	return &MapPainter{
		bg:   ebiten.NewImageFromImage(r.Image()),
		cell: r.Cell(),
	}
}

// DrawBackground draws the visible part of the raster.
func (p *MapPainter) DrawBackground(dst *ebiten.Image, offset mgl64.Vec2) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.cell), float64(p.cell))
	op.GeoM.Translate(-offset.X(), -offset.Y())
	dst.DrawImage(p.bg, op)
}

// DrawCastle draws a tower with a flag, ringed when selected.
func (p *MapPainter) DrawCastle(dst *ebiten.Image, c worldgen.Castle, offset mgl64.Vec2, selected bool) {
	s := agent.WorldToScreen(c.Pos, offset)
	x, y, r := float32(s.X()), float32(s.Y()), float32(c.Radius)
	col := EnemyColor
	if c.Owner == worldgen.OwnerPlayer {
		col = PlayerColor
	}
	outlinedCircle(dst, x, y, r, col)
	top := y - r - 16
	vector.StrokeLine(dst, x, y-r, x, top, 2, OutlineColor, true)
	var path vector.Path
	path.MoveTo(x, top)
	path.LineTo(x+12, top+4)
	path.LineTo(x, top+8)
	path.Close()
	fillPath(dst, &path, col)
	if selected {
		vector.StrokeCircle(dst, x, y, r+6, 2, UIColor, true)
	}
}

// DrawPort draws an anchor marker at the port position.
func (p *MapPainter) DrawPort(dst *ebiten.Image, pt worldgen.Port, offset mgl64.Vec2, hovered bool) {
	s := agent.WorldToScreen(pt.Pos, offset)
	x, y := float32(s.X()), float32(s.Y())
	vector.DrawFilledCircle(dst, x, y, 6, PortColor, true)
	vector.StrokeCircle(dst, x, y, 6, 1.5, UIColor, true)
	if hovered {
		vector.StrokeCircle(dst, x, y, float32(pt.Radius), 1, UIColor, true)
	}
}

// DrawKing draws the king as a walker or a small boat depending on mode.
func (p *MapPainter) DrawKing(dst *ebiten.Image, pos mgl64.Vec2, mode agent.Mode, offset mgl64.Vec2) {
	s := agent.WorldToScreen(pos, offset)
	x, y := float32(s.X()), float32(s.Y())
	if mode == agent.ModeBoat {
		var hull vector.Path
		hull.MoveTo(x-12, y+3)
		hull.LineTo(x+12, y+3)
		hull.LineTo(x+8, y+6)
		hull.LineTo(x-8, y+6)
		hull.Close()
		fillPath(dst, &hull, color.RGBA{R: 88, G: 54, B: 35, A: 255})
		vector.StrokeLine(dst, x, y+3, x, y-9, 2, color.RGBA{R: 160, G: 160, B: 160, A: 255}, true)
		var sail vector.Path
		sail.MoveTo(x+1, y-8)
		sail.LineTo(x+10, y-3)
		sail.LineTo(x+1, y-3)
		sail.Close()
		fillPath(dst, &sail, color.RGBA{R: 230, G: 230, B: 230, A: 255})
		return
	}
	outlinedCircle(dst, x, y, 12, KingColor)
	vector.StrokeLine(dst, x-8, y-12, x-3, y-4, 3, color.RGBA{R: 35, G: 25, B: 10, A: 255}, true)
	vector.StrokeLine(dst, x-3, y-4, x, y-12, 3, color.RGBA{R: 35, G: 25, B: 10, A: 255}, true)
	vector.StrokeLine(dst, x, y-12, x+3, y-4, 3, color.RGBA{R: 35, G: 25, B: 10, A: 255}, true)
	vector.StrokeLine(dst, x+3, y-4, x+8, y-12, 3, color.RGBA{R: 35, G: 25, B: 10, A: 255}, true)
}

// DrawLandGrid tints oracle samples across the viewport: land green, water blue.
func (p *MapPainter) DrawLandGrid(dst *ebiten.Image, s LandSurface, offset mgl64.Vec2, viewport core.Size, step int) {
	g := LandGrid(s, offset, viewport, step)
	if p.grid == nil || p.grid.Bounds().Dx() != g.W || p.grid.Bounds().Dy() != g.H {
		p.grid = ebiten.NewImage(g.W, g.H)
		p.gridBuf = make([]byte, 4*g.W*g.H)
	}
	fillBinaryRGBA(p.gridBuf, g.Cells(),
		color.RGBA{R: 40, G: 160, B: 60, A: 110},
		color.RGBA{R: 30, G: 80, B: 200, A: 110})
	p.grid.WritePixels(p.gridBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(step), float64(step))
	dst.DrawImage(p.grid, op)
}

func outlinedCircle(dst *ebiten.Image, x, y, r float32, fill color.Color) {
	vector.DrawFilledCircle(dst, x+2, y+2, r, color.RGBA{A: 120}, true)
	vector.DrawFilledCircle(dst, x, y, r, OutlineColor, true)
	vector.DrawFilledCircle(dst, x, y, r-2, fill, true)
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func fillPath(dst *ebiten.Image, path *vector.Path, col color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel, op)
}
