package render

import (
	"image/color"

	"vacuum-dfs/internal/room"
)

// AgentCode is the display value marking the agent's cell. Every other
// display value is the room.Cell stored at that position.
const AgentCode = uint8(room.Cleaned) + 1

// AgentColor is the fill used for the agent's cell.
var AgentColor = color.RGBA{R: 60, G: 200, B: 90, A: 255}

var palette = []color.RGBA{
	room.Clean:    {R: 236, G: 232, B: 222, A: 255},
	room.Dirty:    {R: 200, G: 60, B: 50, A: 255},
	room.Obstacle: {R: 220, G: 180, B: 40, A: 255},
	room.Cleaned:  {R: 80, G: 190, B: 210, A: 255},
	AgentCode:     AgentColor,
}

// CellColor returns the fill color for a cell state.
func CellColor(c room.Cell) color.RGBA {
	if int(c) >= len(palette) || uint8(c) == AgentCode {
		return palette[room.Clean]
	}
	return palette[c]
}

// Palette returns a copy of the palette indexed by display value.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), palette...)
}

// Encode writes the display values of rm into dst, reusing its storage when
// large enough, and marks the agent cell with AgentCode.
func Encode(dst []uint8, rm *room.Room, agent room.Pos) []uint8 {
	cells := rm.Cells()
	if cap(dst) < len(cells) {
		dst = make([]uint8, len(cells))
	}
	dst = dst[:len(cells)]
	copy(dst, cells)
	if rm.InBounds(agent.X, agent.Y) {
		dst[rm.Index(agent.X, agent.Y)] = AgentCode
	}
	return dst
}

// glyph returns the legend token for a display value.
func glyph(code uint8) string {
	if code == AgentCode {
		return TokenAgent
	}
	return Token(room.Cell(code))
}
