package core

// ByteGrid stores a rows×cols grid of byte-sized cell values in row-major
// order. X selects the row and Y the column.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// InBounds reports whether (x, y) addresses a cell.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Rows && y >= 0 && y < g.Cols
}

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return x*g.Cols + y }

// Coord converts a linear index back to (x, y).
func (g *ByteGrid) Coord(idx int) (int, int) { return idx / g.Cols, idx % g.Cols }

// Get returns the value at (x, y) and false when out of bounds.
func (g *ByteGrid) Get(x, y int) (uint8, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[g.Index(x, y)], true
}

// Set stores v at (x, y). Out-of-range writes are dropped.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}
