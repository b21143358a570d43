package core

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(2, 3)
	require.Equal(t, 6, g.Len())

	assert.True(t, g.Set(1, 2, 7))
	assert.False(t, g.Set(2, 0, 7))
	assert.False(t, g.Set(0, -1, 7))

	v, ok := g.Get(1, 2)
	assert.True(t, ok)
	assert.Equal(t, uint8(7), v)
	assert.Equal(t, 5, g.Index(1, 2))

	x, y := g.Coord(5)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	assert.Equal(t, 1, g.Count(7))
	assert.Equal(t, 5, g.Count(0))
}

func TestRegistry(t *testing.T) {
	Register("", nil)
	Register("test-null", func(map[string]string) (Sim, error) { return nil, nil })
	t.Cleanup(func() { delete(sims, "test-null") })

	assert.Contains(t, Names(), "test-null")

	_, err := NewSim("does-not-exist", nil)
	assert.Error(t, err)

	s, err := NewSim("test-null", nil)
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("rows", "Rows", 8)}},
		{Name: "B", Params: []Parameter{BoolParam("done", "Done", true), StringParam("layout", "Layout", "demo")}},
	}}

	p, ok := snap.Lookup("done")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)
	assert.Equal(t, ParamTypeBool, p.Type)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 10, HasMin: true, HasMax: true}
	assert.Equal(t, 1, c.Clamp(-4))
	assert.Equal(t, 10, c.Clamp(99))
	assert.Equal(t, 5, c.Clamp(5))
	assert.Equal(t, 99, ParameterControl{}.Clamp(99))
}

func TestFixedStepWait(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept time.Duration
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.sleep = func(d time.Duration) {
		slept += d
		clock = clock.Add(d)
	}

	fs.Wait() // first tick is due immediately
	assert.Zero(t, slept)

	fs.Wait()
	assert.Equal(t, 100*time.Millisecond, slept)
	assert.Equal(t, 100*time.Millisecond, fs.Interval())
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Second/60, fs.Interval())
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntRange(3, 9), b.IntRange(3, 9))
	}
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		v := r.IntRange(9, 3)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 9)
	}
	assert.Zero(t, r.IntN(0))
	assert.False(t, r.Chance(0))
}

func TestLoggerDefaultsSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "run", "abc")
	assert.True(t, strings.Contains(buf.String(), "run=abc"))

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
