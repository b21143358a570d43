package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"vacuum-dfs/internal/room"
)

// GlyphMinScale is the smallest cell size in pixels at which legend glyphs
// are drawn on top of the cell colors.
const GlyphMinScale = 14

var (
	glyphColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	glyphLight = color.RGBA{R: 248, G: 246, B: 240, A: 255}
)

// Snapshot paints rm into an image with scale×scale pixels per cell. Large
// enough cells also carry their legend glyph.
func Snapshot(rm *room.Room, agent room.Pos, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	rows, cols := rm.Rows(), rm.Cols()
	cells := Encode(nil, rm, agent)

	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	fillPaletteRGBA(small.Pix, cells, palette)
	if scale == 1 {
		return small
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	if scale >= GlyphMinScale {
		drawGlyphs(dst, cells, cols, scale)
	}
	return dst
}

func drawGlyphs(dst *image.RGBA, cells []uint8, cols, scale int) {
	face := basicfont.Face7x13
	dark, light := image.NewUniform(glyphColor), image.NewUniform(glyphLight)
	d := &font.Drawer{Dst: dst, Face: face}
	for i, code := range cells {
		d.Src = dark
		if luma(cellFill(code)) < 128 {
			d.Src = light
		}
		x, y := i/cols, i%cols
		left := y*scale + (scale-face.Advance)/2
		baseline := x*scale + (scale-face.Height)/2 + face.Ascent
		d.Dot = fixed.P(left, baseline)
		d.DrawString(glyph(code))
	}
}

// cellFill resolves the fill color behind a display value.
func cellFill(code uint8) color.RGBA {
	if code == AgentCode {
		return AgentColor
	}
	return CellColor(room.Cell(code))
}

// luma approximates perceived brightness on a 0-255 scale.
func luma(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// WritePNG encodes a snapshot of rm as PNG.
func WritePNG(w io.Writer, rm *room.Room, agent room.Pos, scale int) error {
	return png.Encode(w, Snapshot(rm, agent, scale))
}
