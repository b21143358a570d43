package vacuum

import (
	"fmt"
	"sort"

	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/raster"
	"vacuum-dfs/internal/room"
)

// Shape is a named polygon rasterized into obstacles.
type Shape struct {
	Kind     string
	Vertices []raster.Vertex
}

// Rect builds a rectangular furniture shape.
func Rect(x1, y1, x2, y2 int) Shape {
	return Shape{Kind: "rectangle", Vertices: raster.Rectangle(x1, y1, x2, y2)}
}

// Tri builds a triangular furniture shape.
func Tri(x1, y1, x2, y2, x3, y3 int) Shape {
	return Shape{Kind: "triangle", Vertices: raster.Triangle(x1, y1, x2, y2, x3, y3)}
}

// String lists the kind and corners.
func (s Shape) String() string {
	return fmt.Sprintf("%s %v", s.Kind, s.Vertices)
}

// Layout is the static description of a room before cleaning: its size,
// furniture, single-cell walls, dirt and the agent start.
type Layout struct {
	Name  string
	Rows  int
	Cols  int
	Start room.Pos

	Shapes    []Shape
	Obstacles []room.Pos
	Dirt      []room.Pos
}

// Build allocates a room and applies the layout: shapes first, then single
// obstacles, then dirt. Dirt landing on an obstacle is dropped.
func (l Layout) Build() *room.Room {
	rm := room.New(l.Rows, l.Cols)
	for _, s := range l.Shapes {
		raster.FillPolygon(rm, s.Vertices)
	}
	for _, p := range l.Obstacles {
		rm.SetObstacle(p.X, p.Y)
	}
	for _, p := range l.Dirt {
		rm.SetDirt(p.X, p.Y)
	}
	return rm
}

// LayoutFunc produces a layout for cfg. Seeded layouts draw from rng.
type LayoutFunc func(cfg Config, rng *core.RNG) Layout

var layouts = map[string]LayoutFunc{
	"demo":   demoLayout,
	"smart":  smartLayout,
	"basic":  basicLayout,
	"random": randomLayout,
}

// Layouts lists the available layout names in sorted order.
func Layouts() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildLayout resolves name and builds its layout with the given seed.
func BuildLayout(cfg Config, seed int64) (Layout, error) {
	fn, ok := layouts[cfg.Layout]
	if !ok {
		return Layout{}, fmt.Errorf("%w %q (have %v)", ErrUnknownLayout, cfg.Layout, Layouts())
	}
	l := fn(cfg, core.NewRNG(seed))
	if cfg.hasStartOverride() {
		l.Start = cfg.startWithin(l.Rows, l.Cols)
	}
	return l, nil
}

func pts(coords ...int) []room.Pos {
	out := make([]room.Pos, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, room.Pos{X: coords[i], Y: coords[i+1]})
	}
	return out
}

// demoLayout is the 8×10 furnished room with a wall cell next to the start.
func demoLayout(Config, *core.RNG) Layout {
	return Layout{
		Name: "demo",
		Rows: 8,
		Cols: 10,
		Shapes: []Shape{
			Rect(2, 2, 4, 4),
			Tri(6, 1, 7, 1, 6, 3),
			Tri(5, 6, 6, 8, 7, 6),
		},
		Obstacles: pts(1, 5, 1, 7, 2, 6, 2, 7, 0, 1),
		Dirt: pts(
			0, 5, 1, 1, 1, 9, 3, 0, 3, 8, 4, 1, 4, 2,
			4, 9, 5, 0, 5, 2, 6, 9, 7, 0, 7, 5, 7, 9,
		),
	}
}

// smartLayout is the 8×10 room variant with a 2×2 pillar block and an open
// start corner.
func smartLayout(Config, *core.RNG) Layout {
	return Layout{
		Name: "smart",
		Rows: 8,
		Cols: 10,
		Shapes: []Shape{
			Rect(2, 2, 4, 4),
			Tri(6, 1, 7, 1, 6, 3),
			Tri(5, 6, 6, 8, 7, 6),
		},
		Obstacles: pts(1, 6, 1, 7, 2, 6, 2, 7),
		Dirt: pts(
			0, 5, 1, 1, 1, 9, 3, 0, 3, 8, 4, 1,
			4, 9, 5, 0, 5, 2, 6, 9, 7, 0, 7, 5, 7, 9,
		),
	}
}

// basicLayout is the unfurnished 5×5 room.
func basicLayout(Config, *core.RNG) Layout {
	return Layout{
		Name: "basic",
		Rows: 5,
		Cols: 5,
		Dirt: pts(1, 1, 2, 3, 3, 2, 4, 4, 0, 3),
	}
}

// randomLayout scatters rectangles, triangles and dirt over a Rows×Cols room.
// Shapes covering the start cell are redrawn a bounded number of times and
// skipped if they keep covering it.
func randomLayout(cfg Config, rng *core.RNG) Layout {
	l := Layout{Name: "random", Rows: max(cfg.Rows, 1), Cols: max(cfg.Cols, 1)}
	if cfg.hasStartOverride() {
		l.Start = cfg.startWithin(l.Rows, l.Cols)
	}
	p := cfg.Params

	for i := 0; i < p.RectCount; i++ {
		if s, ok := placeShape(l, func() Shape {
			x, y := rng.IntN(l.Rows), rng.IntN(l.Cols)
			return Rect(x, y, x+rng.IntRange(p.ShapeSizeMin, p.ShapeSizeMax), y+rng.IntRange(p.ShapeSizeMin, p.ShapeSizeMax))
		}); ok {
			l.Shapes = append(l.Shapes, s)
		}
	}
	for i := 0; i < p.TriangleCount; i++ {
		if s, ok := placeShape(l, func() Shape {
			x, y := rng.IntN(l.Rows), rng.IntN(l.Cols)
			w := rng.IntRange(p.ShapeSizeMin, p.ShapeSizeMax)
			h := rng.IntRange(p.ShapeSizeMin, p.ShapeSizeMax)
			return Tri(x, y, x+w, y, x, y+h)
		}); ok {
			l.Shapes = append(l.Shapes, s)
		}
	}

	for x := 0; x < l.Rows; x++ {
		for y := 0; y < l.Cols; y++ {
			if rng.Chance(p.DirtChance) {
				l.Dirt = append(l.Dirt, room.Pos{X: x, Y: y})
			}
		}
	}
	return l
}

const placeAttempts = 8

func placeShape(l Layout, gen func() Shape) (Shape, bool) {
	for i := 0; i < placeAttempts; i++ {
		s := gen()
		if !covers(s, l.Start) {
			return s, true
		}
	}
	return Shape{}, false
}

func covers(s Shape, p room.Pos) bool {
	for _, span := range raster.Spans(s.Vertices) {
		if span.Y == p.Y && p.X >= span.X0 && p.X <= span.X1 {
			return true
		}
	}
	return false
}
