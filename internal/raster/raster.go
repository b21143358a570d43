// Package raster fills integer polygons onto a grid with a scan-line pass.
//
// Scan lines run along Y. For each line the crossings with every polygon
// edge are collected, sorted and paired even-odd; each pair is an inclusive
// run of X values. An edge crosses line y when one endpoint lies on or below
// y and the other strictly above it, which skips horizontal edges and counts
// a shared vertex once. Crossing X is interpolated with integer division and
// truncates toward zero; layouts depend on that rounding.
package raster

import "sort"

// Vertex is an integer polygon corner.
type Vertex struct {
	X, Y int
}

// Span is an inclusive run of cells [X0, X1] on scan line Y.
type Span struct {
	Y      int
	X0, X1 int
}

// Len returns the number of cells in the span.
func (s Span) Len() int { return s.X1 - s.X0 + 1 }

// ObstacleSetter receives filled cells. It reports whether the write landed.
type ObstacleSetter interface {
	SetObstacle(x, y int) bool
}

// Spans computes the filled runs of poly. Polygons with fewer than three
// vertices produce nothing.
func Spans(poly []Vertex) []Span {
	if len(poly) < 3 {
		return nil
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var spans []Span
	xs := make([]int, 0, len(poly))
	for y := minY; y <= maxY; y++ {
		xs = crossings(poly, y, xs[:0])
		// An odd trailing crossing has no partner and is dropped.
		for i := 0; i+1 < len(xs); i += 2 {
			spans = append(spans, Span{Y: y, X0: xs[i], X1: xs[i+1]})
		}
	}
	return spans
}

// crossings appends the sorted X intersections of scan line y to dst.
func crossings(poly []Vertex, y int, dst []int) []int {
	n := len(poly)
	for i := 0; i < n; i++ {
		p1, p2 := poly[i], poly[(i+1)%n]
		if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
			x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			dst = append(dst, x)
		}
	}
	sort.Ints(dst)
	return dst
}

// FillPolygon writes every cell of poly to dst and returns how many writes
// dst accepted.
func FillPolygon(dst ObstacleSetter, poly []Vertex) int {
	n := 0
	for _, s := range Spans(poly) {
		for x := s.X0; x <= s.X1; x++ {
			if dst.SetObstacle(x, s.Y) {
				n++
			}
		}
	}
	return n
}

// Rectangle returns the corner sequence of the axis-aligned box spanned by
// (x1, y1) and (x2, y2).
func Rectangle(x1, y1, x2, y2 int) []Vertex {
	return []Vertex{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

// Triangle returns the three corners in the given order.
func Triangle(x1, y1, x2, y2, x3, y3 int) []Vertex {
	return []Vertex{{x1, y1}, {x2, y2}, {x3, y3}}
}

// FillRectangle fills the box spanned by (x1, y1) and (x2, y2).
func FillRectangle(dst ObstacleSetter, x1, y1, x2, y2 int) int {
	return FillPolygon(dst, Rectangle(x1, y1, x2, y2))
}

// FillTriangle fills the triangle with the given corners.
func FillTriangle(dst ObstacleSetter, x1, y1, x2, y2, x3, y3 int) int {
	return FillPolygon(dst, Triangle(x1, y1, x2, y2, x3, y3))
}
