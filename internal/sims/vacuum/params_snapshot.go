package vacuum

import (
	"vacuum-dfs/internal/core"
)

func (c *Cleaner) Parameters() core.ParameterSnapshot {
	rm := c.room
	groups := []core.ParameterGroup{
		{
			Name: "Room",
			Params: []core.Parameter{
				core.StringParam("layout", "Layout", c.cfg.Layout),
				core.IntParam("rows", "Rows", rm.Rows()),
				core.IntParam("cols", "Cols", rm.Cols()),
				core.Int64Param("seed", "Seed", c.cfg.Seed),
				core.FloatParam("dirt_chance", "Dirt chance", c.cfg.Params.DirtChance),
				core.IntParam("obstacles", "Obstacles", rm.TotalObstacles()),
			},
		},
		{
			Name: "Agent",
			Params: []core.Parameter{
				core.IntParam("pos_x", "Row", c.pos.X),
				core.IntParam("pos_y", "Col", c.pos.Y),
				core.IntParam("steps_per_tick", "Steps per tick", c.cfg.StepsPerTick),
				core.IntParam("frontier", "Stack depth", len(c.stack)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("visited", "Visited", len(c.order)),
				core.IntParam("dirt_cleaned", "Dirt cleaned", c.dirtCleaned),
				core.IntParam("dirt_remaining", "Dirt remaining", rm.TotalDirt()),
				core.BoolParam("done", "Done", c.done),
				core.BoolParam("blocked", "Blocked start", c.err != nil),
			},
		},
	}
	if v, ok := c.Last(); ok {
		groups[2].Params = append(groups[2].Params, core.StringParam("action", "Last action", v.Action.String()))
	}
	return core.ParameterSnapshot{Groups: groups}
}

var controls = []core.ParameterControl{
	{Key: "steps_per_tick", Label: "Steps per tick", Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
}

func (c *Cleaner) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

func (c *Cleaner) SetIntParameter(key string, value int) bool {
	for _, ctl := range controls {
		if ctl.Key != key {
			continue
		}
		v := ctl.Clamp(value)
		switch key {
		case "steps_per_tick":
			if v == c.cfg.StepsPerTick {
				return false
			}
			c.cfg.StepsPerTick = v
			return true
		}
	}
	return false
}
