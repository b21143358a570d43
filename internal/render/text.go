package render

import (
	"io"
	"strings"

	"vacuum-dfs/internal/room"
)

// Legend glyphs.
const (
	TokenAgent    = "V"
	TokenObstacle = "#"
	TokenDirt     = "*"
	TokenClean    = "."
	TokenCleaned  = "o"
)

// Legend describes the glyphs used by Token.
const Legend = "Legend: V=Vacuum, #=Obstacle, *=Dirt, .=Clean, o=Cleaned"

// ClearScreen moves the cursor home and clears an ANSI terminal.
const ClearScreen = "\033[H\033[2J"

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Token maps a cell state to its legend glyph. Unknown states render clean.
func Token(c room.Cell) string {
	switch c {
	case room.Dirty:
		return TokenDirt
	case room.Obstacle:
		return TokenObstacle
	case room.Cleaned:
		return TokenCleaned
	default:
		return TokenClean
	}
}

// Styler decorates a glyph before it is written. agent is true for the
// agent's own cell, in which case c is the state underneath it.
type Styler func(token string, c room.Cell, agent bool) string

// Plain writes glyphs unchanged.
func Plain(token string, _ room.Cell, _ bool) string { return token }

// ANSI wraps glyphs in terminal color escapes.
func ANSI(token string, c room.Cell, agent bool) string {
	color := ""
	switch {
	case agent:
		color = ansiGreen
	case c == room.Dirty:
		color = ansiRed
	case c == room.Obstacle:
		color = ansiYellow
	case c == room.Cleaned:
		color = ansiCyan
	default:
		return token
	}
	return color + token + ansiReset
}

// TextRenderer prints a room as a character grid.
type TextRenderer struct {
	// Style decorates each glyph; nil means Plain.
	Style Styler
	// Border frames the grid with +--+ and | characters.
	Border bool
}

// Render writes the grid of rm with the agent drawn at agent.
func (tr TextRenderer) Render(w io.Writer, rm *room.Room, agent room.Pos) error {
	style := tr.Style
	if style == nil {
		style = Plain
	}

	var b strings.Builder
	rule := "+" + strings.Repeat("--", rm.Cols()) + "+\n"
	if tr.Border {
		b.WriteString(rule)
	}
	for x := 0; x < rm.Rows(); x++ {
		if tr.Border {
			b.WriteByte('|')
		}
		for y := 0; y < rm.Cols(); y++ {
			c, _ := rm.At(x, y)
			if x == agent.X && y == agent.Y {
				b.WriteString(style(TokenAgent+" ", c, true))
				continue
			}
			b.WriteString(style(Token(c)+" ", c, false))
		}
		if tr.Border {
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	if tr.Border {
		b.WriteString(rule)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
