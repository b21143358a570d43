package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacuum-dfs/internal/room"
)

func sampleRoom() *room.Room {
	rm := room.New(2, 3)
	rm.SetDirt(0, 1)
	rm.SetObstacle(1, 0)
	rm.Sweep(1, 2)
	return rm
}

func TestToken(t *testing.T) {
	assert.Equal(t, ".", Token(room.Clean))
	assert.Equal(t, "*", Token(room.Dirty))
	assert.Equal(t, "#", Token(room.Obstacle))
	assert.Equal(t, "o", Token(room.Cleaned))
	assert.Equal(t, ".", Token(room.Cell(42)))
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	err := TextRenderer{}.Render(&buf, sampleRoom(), room.Pos{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, "V * . \n# . o \n\n", buf.String())
}

func TestRenderBorder(t *testing.T) {
	var buf bytes.Buffer
	err := TextRenderer{Border: true}.Render(&buf, sampleRoom(), room.Pos{X: 1, Y: 1})
	require.NoError(t, err)
	want := "+------+\n" +
		"|. * . |\n" +
		"|# V o |\n" +
		"+------+\n\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderAgentOffGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextRenderer{}.Render(&buf, sampleRoom(), room.Pos{X: -1, Y: 0}))
	assert.NotContains(t, buf.String(), TokenAgent)
}

func TestANSIStyler(t *testing.T) {
	assert.Equal(t, ". ", ANSI(". ", room.Clean, false))
	assert.Equal(t, ansiRed+"* "+ansiReset, ANSI("* ", room.Dirty, false))
	assert.Equal(t, ansiGreen+"V "+ansiReset, ANSI("V ", room.Dirty, true))

	var buf bytes.Buffer
	require.NoError(t, TextRenderer{Style: ANSI}.Render(&buf, sampleRoom(), room.Pos{X: 0, Y: 0}))
	assert.True(t, strings.Contains(buf.String(), ansiYellow+"# "+ansiReset))
}

func TestEncodeMarksAgent(t *testing.T) {
	rm := sampleRoom()
	cells := Encode(nil, rm, room.Pos{X: 1, Y: 2})
	assert.Equal(t, []uint8{
		uint8(room.Clean), uint8(room.Dirty), uint8(room.Clean),
		uint8(room.Obstacle), uint8(room.Clean), AgentCode,
	}, cells)

	reused := Encode(cells, rm, room.Pos{X: 9, Y: 9})
	assert.Equal(t, uint8(room.Cleaned), reused[5])
	assert.Same(t, &cells[0], &reused[0], "storage should be reused")
}

func TestPalette(t *testing.T) {
	p := Palette()
	require.Len(t, p, int(AgentCode)+1)
	assert.Equal(t, AgentColor, p[AgentCode])
	assert.Equal(t, p[room.Dirty], CellColor(room.Dirty))
	assert.Equal(t, p[room.Clean], CellColor(room.Cell(200)))

	p[0] = color.RGBA{}
	assert.NotEqual(t, p[0], Palette()[0], "Palette must return a copy")
}

func TestMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	tint := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	MaskRGBA(buf, []bool{true, false}, tint)
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, buf)
}

func TestSnapshotColors(t *testing.T) {
	rm := sampleRoom()
	img := Snapshot(rm, room.Pos{X: 0, Y: 0}, 4)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())

	assert.Equal(t, AgentColor, img.RGBAAt(1, 1))
	assert.Equal(t, CellColor(room.Dirty), img.RGBAAt(4+2, 2))
	assert.Equal(t, CellColor(room.Obstacle), img.RGBAAt(1, 4+3))
}

func TestSnapshotDrawsGlyphs(t *testing.T) {
	rm := room.New(1, 1)
	img := Snapshot(rm, room.Pos{X: 5, Y: 5}, GlyphMinScale*2)

	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == glyphColor {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "the clean glyph should be drawn")
}

func TestGlyphInkContrastsWithFill(t *testing.T) {
	assert.Equal(t, AgentColor, cellFill(AgentCode))
	assert.Equal(t, CellColor(room.Obstacle), cellFill(uint8(room.Obstacle)))
	assert.Less(t, luma(cellFill(uint8(room.Dirty))), 128, "dirt is drawn with light glyphs")
	assert.GreaterOrEqual(t, luma(cellFill(uint8(room.Clean))), 128)

	rm := room.New(1, 1)
	rm.SetDirt(0, 0)
	img := Snapshot(rm, room.Pos{X: 5, Y: 5}, GlyphMinScale*2)
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == glyphLight {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "the dirt glyph should use the light ink")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sampleRoom(), room.Pos{}, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
}
