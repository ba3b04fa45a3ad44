package terrain

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/core"
)

// IsletInnerScale is the fraction of an islet polygon painted as grass; the
// remaining outer band is sand.
const IsletInnerScale = 0.72

// Raster is the background image built once per world. Each cell covers
// Cell by Cell world pixels and is classified at its centre.
type Raster struct {
	cell   int
	biomes *core.ByteGrid
	img    *image.RGBA
}

// Build samples o at every cell centre. Cell sizes below 1 are treated as 1.
func Build(o *Oracle, cell int) *Raster {
	if cell < 1 {
		cell = 1
	}
	cls := o.Classifier()
	w := int(math.Ceil(cls.Width / float64(cell)))
	h := int(math.Ceil(cls.Height / float64(cell)))
	r := &Raster{
		cell:   cell,
		biomes: core.NewByteGrid(w, h),
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	cells := r.biomes.Cells()
	shade := make([]float64, len(cells))
	for y := 0; y < r.biomes.H; y++ {
		for x := 0; x < r.biomes.W; x++ {
			p := r.CellCenter(x, y)
			idx := r.biomes.Index(x, y)
			if o.Mask().Contains(p) {
				cells[idx] = uint8(BiomeGrass)
				shade[idx] = 1
				continue
			}
			cells[idx] = uint8(o.Biome(p))
			shade[idx] = 1 + 4*cls.Bias(p.X(), p.Y())
		}
	}
	fillPaletteRGBA(r.img.Pix, cells, shade)
	return r
}

// Cell returns the world size of one raster cell.
func (r *Raster) Cell() int { return r.cell }

// Image exposes the RGBA background.
func (r *Raster) Image() *image.RGBA { return r.img }

// Biomes exposes the per-cell biome grid.
func (r *Raster) Biomes() *core.ByteGrid { return r.biomes }

// CellCenter returns the world coordinate at the centre of cell (x, y).
func (r *Raster) CellCenter(x, y int) mgl64.Vec2 {
	half := float64(r.cell) / 2
	return mgl64.Vec2{float64(x*r.cell) + half, float64(y*r.cell) + half}
}

// BiomeAt returns the rasterized biome under world point p.
func (r *Raster) BiomeAt(p mgl64.Vec2) Biome {
	x := int(math.Floor(p.X() / float64(r.cell)))
	y := int(math.Floor(p.Y() / float64(r.cell)))
	return Biome(r.biomes.At(x, y))
}

// PaintIslet draws a sand band with a grass interior for an islet outline.
func (r *Raster) PaintIslet(boundary Polygon, center mgl64.Vec2) {
	if len(boundary) < 3 {
		return
	}
	inner := boundary.Scaled(center, IsletInnerScale)

	dc := r.context()
	fillPolygon(dc, boundary, Palette[BiomeSand])
	fillPolygon(dc, inner, Palette[BiomeGrass])

	r.markCells(boundary, BiomeSand)
	r.markCells(inner, BiomeGrass)
}

// SavePNG writes the background image to path.
func (r *Raster) SavePNG(path string) error {
	if err := gg.SavePNG(path, r.img); err != nil {
		return fmt.Errorf("save raster %s: %w", path, err)
	}
	return nil
}

// context returns a gg context drawing in world coordinates.
func (r *Raster) context() *gg.Context {
	dc := gg.NewContextForRGBA(r.img)
	dc.Scale(1/float64(r.cell), 1/float64(r.cell))
	return dc
}

// markCells updates the biome grid only; pixels are drawn through gg.
func (r *Raster) markCells(reg Region, b Biome) {
	lo, hi := reg.Bounds()
	x0 := int(math.Floor(lo.X() / float64(r.cell)))
	y0 := int(math.Floor(lo.Y() / float64(r.cell)))
	x1 := int(math.Ceil(hi.X() / float64(r.cell)))
	y1 := int(math.Ceil(hi.Y() / float64(r.cell)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !r.biomes.InBounds(x, y) || !reg.Contains(r.CellCenter(x, y)) {
				continue
			}
			r.biomes.Set(x, y, uint8(b))
		}
	}
}

func fillPolygon(dc *gg.Context, pg Polygon, c color.Color) {
	dc.NewSubPath()
	for i, v := range pg {
		if i == 0 {
			dc.MoveTo(v.X(), v.Y())
			continue
		}
		dc.LineTo(v.X(), v.Y())
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

// fillPaletteRGBA converts biome cells into RGBA pixels, scaling each colour
// by the matching shade factor.
func fillPaletteRGBA(buf []byte, cells []uint8, shade []float64) {
	last := len(Palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := Palette[idx]
		k := 1.0
		if i < len(shade) {
			k = shade[i]
		}
		base := i * 4
		buf[base+0] = scaleChannel(col.R, k)
		buf[base+1] = scaleChannel(col.G, k)
		buf[base+2] = scaleChannel(col.B, k)
		buf[base+3] = col.A
	}
}

func scaleChannel(v uint8, k float64) uint8 {
	s := float64(v)*k + 0.5
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
