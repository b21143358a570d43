package vacuum

import (
	"strconv"

	"vacuum-dfs/internal/room"
)

// Params holds the knobs of the seeded random layout.
type Params struct {
	DirtChance    float64
	RectCount     int
	TriangleCount int
	ShapeSizeMin  int
	ShapeSizeMax  int
}

// Config controls which room is built and how fast the agent moves.
type Config struct {
	Layout string

	// Rows and Cols size layouts that do not fix their own dimensions.
	Rows int
	Cols int

	Seed int64

	// StartX/StartY override the layout start when both are non-negative.
	StartX int
	StartY int

	StepsPerTick int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Layout:       "demo",
		Rows:         8,
		Cols:         10,
		Seed:         1337,
		StartX:       -1,
		StartY:       -1,
		StepsPerTick: 1,
		Params: Params{
			DirtChance:    0.2,
			RectCount:     3,
			TriangleCount: 2,
			ShapeSizeMin:  1,
			ShapeSizeMax:  3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["layout"]; ok && v != "" {
		c.Layout = v
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["start_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartX = parsed
		}
	}
	if v, ok := cfg["start_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartY = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["dirt_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DirtChance = parsed
		}
	}
	if v, ok := cfg["rect_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RectCount = parsed
		}
	}
	if v, ok := cfg["triangle_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.TriangleCount = parsed
		}
	}
	if v, ok := cfg["shape_size_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ShapeSizeMin = parsed
		}
	}
	if v, ok := cfg["shape_size_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ShapeSizeMax = parsed
		}
	}
	if c.Params.ShapeSizeMax < c.Params.ShapeSizeMin {
		c.Params.ShapeSizeMax = c.Params.ShapeSizeMin
	}
	return c
}

// hasStartOverride reports whether the config pins the start position.
func (c Config) hasStartOverride() bool {
	return c.StartX >= 0 && c.StartY >= 0
}

// startWithin returns the pinned start when it lies inside a rows×cols room
// and (0, 0) otherwise.
func (c Config) startWithin(rows, cols int) room.Pos {
	if c.StartX < rows && c.StartY < cols {
		return room.Pos{X: c.StartX, Y: c.StartY}
	}
	return room.Pos{}
}
