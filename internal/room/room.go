// Package room holds the grid model of a room being cleaned: one Cell per
// position plus a visited mask used by the traversal.
//
// Coordinates follow the row-first convention: X selects the row in
// [0, Rows) and Y the column in [0, Cols). Out-of-range coordinates are never
// an error; mutators ignore them and queries treat them as blocked.
package room

import (
	"fmt"

	"vacuum-dfs/internal/core"
)

// Cell is the state of one grid position.
type Cell uint8

const (
	Clean Cell = iota
	Dirty
	Obstacle
	Cleaned
)

// String returns a lower-case name for the state.
func (c Cell) String() string {
	switch c {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Obstacle:
		return "obstacle"
	case Cleaned:
		return "cleaned"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Pos is a grid coordinate.
type Pos struct {
	X, Y int
}

func (p Pos) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Room is a fixed-size grid of cells with a parallel visited mask.
type Room struct {
	grid    *core.ByteGrid
	visited []bool
}

// New allocates a room of rows×cols Clean cells. Non-positive sizes are
// clamped to 1.
func New(rows, cols int) *Room {
	g := core.NewByteGrid(rows, cols)
	return &Room{grid: g, visited: make([]bool, g.Len())}
}

// Rows returns the number of rows.
func (r *Room) Rows() int { return r.grid.Rows }

// Cols returns the number of columns.
func (r *Room) Cols() int { return r.grid.Cols }

// InBounds reports whether (x, y) lies inside the room.
func (r *Room) InBounds(x, y int) bool { return r.grid.InBounds(x, y) }

// Index returns the row-major index of (x, y).
func (r *Room) Index(x, y int) int { return r.grid.Index(x, y) }

// PosOf converts a row-major index back to a position.
func (r *Room) PosOf(idx int) Pos {
	x, y := r.grid.Coord(idx)
	return Pos{X: x, Y: y}
}

// At returns the cell at (x, y) and false when out of bounds.
func (r *Room) At(x, y int) (Cell, bool) {
	v, ok := r.grid.Get(x, y)
	return Cell(v), ok
}

// Cells exposes the raw cell buffer in row-major order.
func (r *Room) Cells() []uint8 { return r.grid.Cells() }

// SetDirt marks a Clean cell Dirty. Dirt never replaces an obstacle or other
// dirt; it reports whether the cell changed.
func (r *Room) SetDirt(x, y int) bool {
	c, ok := r.At(x, y)
	if !ok || c != Clean {
		return false
	}
	return r.grid.Set(x, y, uint8(Dirty))
}

// SetObstacle marks (x, y) as an obstacle whatever it held before.
func (r *Room) SetObstacle(x, y int) bool {
	return r.grid.Set(x, y, uint8(Obstacle))
}

// HasObstacleAt reports whether (x, y) is an in-bounds obstacle.
func (r *Room) HasObstacleAt(x, y int) bool {
	c, ok := r.At(x, y)
	return ok && c == Obstacle
}

// Passable reports whether the agent may stand on (x, y).
func (r *Room) Passable(x, y int) bool {
	c, ok := r.At(x, y)
	return ok && c != Obstacle
}

// CanMoveTo reports whether (x, y) is passable and not yet visited.
func (r *Room) CanMoveTo(x, y int) bool {
	return r.Passable(x, y) && !r.visited[r.grid.Index(x, y)]
}

// Visited reports whether the traversal has been at (x, y).
func (r *Room) Visited(x, y int) bool {
	if !r.InBounds(x, y) {
		return false
	}
	return r.visited[r.grid.Index(x, y)]
}

// MarkVisited records a visit at (x, y).
func (r *Room) MarkVisited(x, y int) {
	if !r.InBounds(x, y) {
		return
	}
	r.visited[r.grid.Index(x, y)] = true
}

// ResetVisited clears the visited mask without touching cell states.
func (r *Room) ResetVisited() {
	for i := range r.visited {
		r.visited[i] = false
	}
}

// VisitedMask exposes the visited mask in row-major order.
func (r *Room) VisitedMask() []bool { return r.visited }

// Sweep applies the cleaning transition to (x, y): Dirty and Clean cells
// become Cleaned. It returns the state the cell held before.
func (r *Room) Sweep(x, y int) Cell {
	c, ok := r.At(x, y)
	if !ok {
		return c
	}
	if c == Dirty || c == Clean {
		r.grid.Set(x, y, uint8(Cleaned))
	}
	return c
}

// Count returns how many cells hold state c.
func (r *Room) Count(c Cell) int { return r.grid.Count(uint8(c)) }

// TotalDirt counts Dirty cells.
func (r *Room) TotalDirt() int { return r.Count(Dirty) }

// TotalObstacles counts Obstacle cells.
func (r *Room) TotalObstacles() int { return r.Count(Obstacle) }

// Clone returns a deep copy of the room, visited mask included.
func (r *Room) Clone() *Room {
	c := New(r.Rows(), r.Cols())
	copy(c.grid.Cells(), r.grid.Cells())
	copy(c.visited, r.visited)
	return c
}
