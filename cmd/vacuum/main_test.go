package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacuum-dfs/internal/app"
)

func quietConfig(layout string) *app.Config {
	cfg := app.NewConfig()
	cfg.Layout = layout
	cfg.Animate = false
	cfg.Color = false
	return cfg
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quietConfig("demo")))

	s := out.String()
	assert.Contains(t, s, "Building the demo room (8x10)")
	assert.Contains(t, s, "Initial dirt count: 13")
	assert.Contains(t, s, "Total obstacles: 20")
	assert.Contains(t, s, "Warning: Obstacle detected at position (0, 1)")
	assert.Contains(t, s, "Cleaning complete!")
	assert.Contains(t, s, "Final dirt count:")
	assert.NotContains(t, s, "Step 1:", "frames are only printed when animating")
}

func TestRunBasicCleansEverything(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, quietConfig("basic")))

	s := out.String()
	assert.Contains(t, s, "Total dirt cleaned: 5 (25 cells visited)")
	assert.Contains(t, s, "Final dirt count: 0")
	assert.Contains(t, s, "All accessible dirt has been cleaned!")
	assert.NotContains(t, s, "Warning:")
}

func TestRunBlockedStartIsNotAnError(t *testing.T) {
	cfg := quietConfig("demo")
	require.NoError(t, cfg.Set.Set("start_x=0"))
	require.NoError(t, cfg.Set.Set("start_y=1"))

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg))
	assert.Contains(t, out.String(), "Error: starting position (0, 1) is blocked by obstacle!")
	assert.Contains(t, out.String(), "Some dirt may be unreachable")
}

func TestRunAnimates(t *testing.T) {
	cfg := quietConfig("basic")
	cfg.Animate = true
	cfg.TPS = 0

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg))
	s := out.String()
	assert.Contains(t, s, "Step 1: MOVING THROUGH at (0, 0)")
	assert.Contains(t, s, "Step 25:")
	assert.Equal(t, 5, strings.Count(s, "CLEANING DIRT"))
}

func TestRunUnknownLayout(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(&out, quietConfig("cellar")))
}

func TestRunWritesSnapshot(t *testing.T) {
	cfg := quietConfig("basic")
	cfg.Scale = 4
	cfg.PNG = filepath.Join(t.TempDir(), "room.png")

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg))

	f, err := os.Open(cfg.PNG)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}
