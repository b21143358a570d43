// Package vacuum simulates a cleaning agent that sweeps a room depth-first.
//
// The agent visits every cell reachable from its start through orthogonal
// moves that avoid obstacles, trying neighbors in the fixed order up, right,
// down, left. The walk keeps an explicit stack of frames, each remembering
// which direction to try next, so the visitation order matches a recursive
// depth-first search without growing the goroutine stack. Each Advance call
// performs exactly one visit, which lets renderers animate the run.
package vacuum

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/render"
	"vacuum-dfs/internal/room"
)

var (
	// ErrBlockedStart is reported when the agent starts on an obstacle.
	ErrBlockedStart = errors.New("vacuum: starting position is blocked by obstacle")
	// ErrUnknownLayout is returned for layout names that are not registered.
	ErrUnknownLayout = errors.New("vacuum: unknown layout")
)

// Action describes what happened at a visited cell.
type Action uint8

const (
	ActionMovedThrough Action = iota
	ActionCleanedDirt
)

func (a Action) String() string {
	if a == ActionCleanedDirt {
		return "CLEANING DIRT"
	}
	return "MOVING THROUGH"
}

// Visit records one step of the walk. Step counts from 1.
type Visit struct {
	Step   int
	Pos    room.Pos
	Action Action
}

// Result summarizes a finished run.
type Result struct {
	DirtCleaned   int
	Visited       int
	DirtRemaining int
	Obstacles     int
	Blocked       bool
}

// directions lists the neighbor order: up, right, down, left.
var directions = [4]room.Pos{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}}

type frame struct {
	idx  int
	next int
}

// Cleaner is the cleaning agent together with the room it works on.
type Cleaner struct {
	cfg    Config
	layout Layout
	// pristine is the caller-supplied room restored by Reset when the
	// cleaner was not built from a layout.
	pristine *room.Room
	start    room.Pos

	room *room.Room
	pos  room.Pos

	stack       []frame
	order       []room.Pos
	last        Visit
	dirtCleaned int
	started     bool
	done        bool
	err         error

	// display mirrors the room with AgentCode at shown. Visits patch it
	// in place; install, Restart and SetStart re-encode it whole.
	display []uint8
	shown   room.Pos
	runID   string
	log     *slog.Logger
}

var (
	_ core.Sim                       = (*Cleaner)(nil)
	_ core.Finisher                  = (*Cleaner)(nil)
	_ core.ParameterProvider         = (*Cleaner)(nil)
	_ core.ParameterControlsProvider = (*Cleaner)(nil)
	_ core.IntParameterSetter        = (*Cleaner)(nil)
)

// New builds a cleaner for the layout named in cfg and resets it with
// cfg.Seed.
func New(cfg Config) (*Cleaner, error) {
	if _, ok := layouts[cfg.Layout]; !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownLayout, cfg.Layout, Layouts())
	}
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	c := &Cleaner{cfg: cfg}
	c.Reset(cfg.Seed)
	return c, nil
}

// NewWithRoom wraps a caller-built room. The agent starts at start when that
// cell lies inside the room and at (0, 0) otherwise. The room is used in place; Reset
// restores the state it had when NewWithRoom was called.
func NewWithRoom(rm *room.Room, start room.Pos) *Cleaner {
	cfg := DefaultConfig()
	cfg.Layout = ""
	cfg.Rows, cfg.Cols = rm.Rows(), rm.Cols()
	c := &Cleaner{cfg: cfg, pristine: rm.Clone(), start: start}
	c.install(rm)
	return c
}

// Name returns the simulation identifier.
func (c *Cleaner) Name() string { return "vacuum" }

// Size reports the grid dimensions.
func (c *Cleaner) Size() core.Size { return core.Size{W: c.room.Cols(), H: c.room.Rows()} }

// Cells exposes the display buffer: room.Cell values with the agent's cell
// set to render.AgentCode. Edits made directly through Room show up after
// the next Restart or Reset.
func (c *Cleaner) Cells() []uint8 { return c.display }

// Palette exposes the colors used to draw Cells.
func (c *Cleaner) Palette() []color.RGBA { return render.Palette() }

// Room exposes the room being cleaned.
func (c *Cleaner) Room() *room.Room { return c.room }

// Layout returns the layout the room was built from. It is the zero Layout
// for rooms passed to NewWithRoom.
func (c *Cleaner) Layout() Layout { return c.layout }

// Position returns the agent position.
func (c *Cleaner) Position() room.Pos { return c.pos }

// DirtCleaned returns how many dirty cells the agent has cleaned.
func (c *Cleaner) DirtCleaned() int { return c.dirtCleaned }

// Done reports whether the walk has finished.
func (c *Cleaner) Done() bool { return c.done }

// Err returns ErrBlockedStart after a blocked run, nil otherwise.
func (c *Cleaner) Err() error { return c.err }

// RunID identifies the current run in log records.
func (c *Cleaner) RunID() string { return c.runID }

// Order returns the visited positions in visitation order.
func (c *Cleaner) Order() []room.Pos { return c.order }

// Last returns the most recent visit.
func (c *Cleaner) Last() (Visit, bool) { return c.last, c.last.Step > 0 }

// Frontier returns the cells on the walk stack, bottom first.
func (c *Cleaner) Frontier() []room.Pos {
	out := make([]room.Pos, len(c.stack))
	for i, f := range c.stack {
		out[i] = c.room.PosOf(f.idx)
	}
	return out
}

// VisitedMask exposes the room's visited mask.
func (c *Cleaner) VisitedMask() []bool { return c.room.VisitedMask() }

// SetStart moves the agent before the walk begins. Out-of-range cells,
// obstacles and calls after the first step are ignored.
func (c *Cleaner) SetStart(x, y int) bool {
	if c.started || !c.room.Passable(x, y) {
		return false
	}
	c.pos = room.Pos{X: x, Y: y}
	c.start = c.pos
	c.refreshDisplay()
	return true
}

// place puts the agent on the configured start without the obstacle check,
// so a start inside furniture surfaces as ErrBlockedStart.
func (c *Cleaner) place() {
	c.pos = room.Pos{}
	if c.room.InBounds(c.start.X, c.start.Y) {
		c.pos = c.start
	}
}

// Reset rebuilds the room and clears the walk. A zero seed falls back to the
// configured one.
func (c *Cleaner) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = c.cfg.Seed
	}
	if c.pristine != nil {
		c.install(c.pristine.Clone())
		return
	}
	l, err := BuildLayout(c.cfg, effective)
	if err != nil {
		// New validated the layout name, so this only trips on a
		// hand-built Cleaner.
		panic(err)
	}
	c.layout = l
	c.start = l.Start
	c.install(l.Build())
}

func (c *Cleaner) install(rm *room.Room) {
	c.room = rm
	c.clearWalk()
	c.newRun()
	c.place()
	c.refreshDisplay()
	c.log.Info("room ready",
		"rows", rm.Rows(), "cols", rm.Cols(),
		"dirt", rm.TotalDirt(), "obstacles", rm.TotalObstacles(),
		"start", c.pos.String())
}

// Restart clears the visited mask and walk state but keeps cell states, so
// the agent can sweep the same room again from its start.
func (c *Cleaner) Restart() {
	c.room.ResetVisited()
	c.clearWalk()
	c.newRun()
	c.place()
	c.refreshDisplay()
}

func (c *Cleaner) clearWalk() {
	c.stack = c.stack[:0]
	c.order = nil
	c.last = Visit{}
	c.dirtCleaned = 0
	c.started = false
	c.done = false
	c.err = nil
}

// Step advances the walk by up to StepsPerTick visits.
func (c *Cleaner) Step() {
	for i := 0; i < c.cfg.StepsPerTick; i++ {
		if !c.Advance() {
			return
		}
	}
}

// Advance performs one visit and reports whether it did. The first call
// checks the start cell; a blocked start finishes the run with
// ErrBlockedStart.
func (c *Cleaner) Advance() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if c.room.HasObstacleAt(c.pos.X, c.pos.Y) {
			c.err = ErrBlockedStart
			c.done = true
			c.log.Warn("starting position is blocked", "start", c.pos.String())
			return false
		}
		c.visit(c.pos.X, c.pos.Y)
		return true
	}

	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		p := c.room.PosOf(top.idx)
		for top.next < len(directions) {
			d := directions[top.next]
			top.next++
			nx, ny := p.X+d.X, p.Y+d.Y
			if c.room.CanMoveTo(nx, ny) {
				c.visit(nx, ny)
				return true
			}
		}
		c.stack = c.stack[:len(c.stack)-1]
	}

	c.done = true
	c.log.Info("cleaning complete",
		"dirt_cleaned", c.dirtCleaned,
		"visited", len(c.order),
		"dirt_remaining", c.room.TotalDirt())
	return false
}

func (c *Cleaner) visit(x, y int) {
	c.room.MarkVisited(x, y)
	action := ActionMovedThrough
	if c.room.Sweep(x, y) == room.Dirty {
		action = ActionCleanedDirt
		c.dirtCleaned++
	}
	c.pos = room.Pos{X: x, Y: y}
	c.stack = append(c.stack, frame{idx: c.room.Index(x, y)})
	c.order = append(c.order, c.pos)
	c.last = Visit{Step: len(c.order), Pos: c.pos, Action: action}
	c.moveDisplay()
	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		c.log.Debug("visit", "step", c.last.Step, "pos", c.pos.String(), "action", action.String())
	}
}

// Clean runs the walk to completion and returns its summary. A blocked
// start yields ErrBlockedStart and a zero DirtCleaned.
func (c *Cleaner) Clean() (Result, error) {
	for c.Advance() {
	}
	return c.Result(), c.err
}

// Result summarizes the run so far.
func (c *Cleaner) Result() Result {
	return Result{
		DirtCleaned:   c.dirtCleaned,
		Visited:       len(c.order),
		DirtRemaining: c.room.TotalDirt(),
		Obstacles:     c.room.TotalObstacles(),
		Blocked:       errors.Is(c.err, ErrBlockedStart),
	}
}

func (c *Cleaner) refreshDisplay() {
	c.display = render.Encode(c.display, c.room, c.pos)
	c.shown = c.pos
}

// moveDisplay redraws the cell the agent left from the room and marks its
// new cell.
func (c *Cleaner) moveDisplay() {
	if c.room.InBounds(c.shown.X, c.shown.Y) {
		i := c.room.Index(c.shown.X, c.shown.Y)
		c.display[i] = c.room.Cells()[i]
	}
	c.display[c.room.Index(c.pos.X, c.pos.Y)] = render.AgentCode
	c.shown = c.pos
}

func (c *Cleaner) newRun() {
	c.runID = uuid.NewString()
	c.log = core.Logger().With("sim", "vacuum", "run", c.runID)
}

func init() {
	core.Register("vacuum", func(cfg map[string]string) (core.Sim, error) {
		c, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
