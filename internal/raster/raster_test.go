package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacuum-dfs/internal/room"
)

// recorder collects writes in order and accepts everything inside its bounds.
type recorder struct {
	rows, cols int
	cells      []Vertex
}

func (r *recorder) SetObstacle(x, y int) bool {
	if x < 0 || x >= r.rows || y < 0 || y >= r.cols {
		return false
	}
	r.cells = append(r.cells, Vertex{x, y})
	return true
}

func TestRectangleHalfOpenInY(t *testing.T) {
	spans := Spans(Rectangle(2, 2, 4, 4))
	assert.Equal(t, []Span{
		{Y: 2, X0: 2, X1: 4},
		{Y: 3, X0: 2, X1: 4},
	}, spans, "the top scan line has no crossing edge")

	rm := room.New(8, 10)
	n := FillRectangle(rm, 2, 2, 4, 4)
	assert.Equal(t, 6, n)
	assert.Equal(t, 6, rm.TotalObstacles())
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 3; y++ {
			assert.True(t, rm.HasObstacleAt(x, y), "(%d,%d)", x, y)
		}
		assert.False(t, rm.HasObstacleAt(x, 4), "(%d,4)", x)
	}
}

func TestRectangleCornerOrderDoesNotMatter(t *testing.T) {
	assert.Equal(t, Spans(Rectangle(2, 2, 4, 4)), Spans(Rectangle(4, 4, 2, 2)))
}

func TestTriangleTruncatesTowardZero(t *testing.T) {
	// At y=2 the edge (7,1)-(6,3) crosses at 7 + (1*-1)/2; truncation keeps 7
	// where flooring would give 6.
	spans := Spans(Triangle(6, 1, 7, 1, 6, 3))
	assert.Equal(t, []Span{
		{Y: 1, X0: 6, X1: 7},
		{Y: 2, X0: 6, X1: 7},
	}, spans)

	spans = Spans(Triangle(5, 6, 6, 8, 7, 6))
	assert.Equal(t, []Span{
		{Y: 6, X0: 5, X1: 7},
		{Y: 7, X0: 5, X1: 6},
	}, spans)
}

func TestDegenerateTriangleFillsNothing(t *testing.T) {
	rec := &recorder{rows: 10, cols: 10}
	assert.Empty(t, Spans(Triangle(1, 4, 5, 4, 8, 4)))
	assert.Zero(t, FillTriangle(rec, 1, 4, 5, 4, 8, 4))
	assert.Empty(t, rec.cells)
}

func TestTooFewVerticesIsSkipped(t *testing.T) {
	rec := &recorder{rows: 10, cols: 10}
	assert.Nil(t, Spans(nil))
	assert.Nil(t, Spans([]Vertex{{0, 0}, {5, 5}}))
	assert.Zero(t, FillPolygon(rec, []Vertex{{0, 0}, {5, 5}}))
	assert.Empty(t, rec.cells)
}

func TestConcavePolygonPairsCrossings(t *testing.T) {
	u := []Vertex{{0, 0}, {0, 6}, {2, 6}, {2, 2}, {4, 2}, {4, 6}, {6, 6}, {6, 0}}
	spans := Spans(u)

	want := []Span{
		{Y: 0, X0: 0, X1: 6},
		{Y: 1, X0: 0, X1: 6},
	}
	for y := 2; y <= 5; y++ {
		want = append(want, Span{Y: y, X0: 0, X1: 2}, Span{Y: y, X0: 4, X1: 6})
	}
	assert.Equal(t, want, spans)

	total := 0
	for _, s := range spans {
		total += s.Len()
	}
	rec := &recorder{rows: 10, cols: 10}
	assert.Equal(t, total, FillPolygon(rec, u))
}

func TestFillClipsToReceiver(t *testing.T) {
	rec := &recorder{rows: 3, cols: 3}
	n := FillRectangle(rec, -2, -2, 1, 2)
	require.Equal(t, len(rec.cells), n)
	for _, c := range rec.cells {
		assert.GreaterOrEqual(t, c.X, 0)
		assert.GreaterOrEqual(t, c.Y, 0)
	}
	// rows 0..1 on columns 0..1
	assert.Equal(t, 4, n)
}

func TestFillOrderIsScanOrder(t *testing.T) {
	rec := &recorder{rows: 10, cols: 10}
	FillRectangle(rec, 1, 1, 2, 3)
	assert.Equal(t, []Vertex{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, rec.cells)
}
