package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"vacuum-dfs/internal/app"
	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/render"
	"vacuum-dfs/internal/room"
	"vacuum-dfs/internal/sims/vacuum"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(cfg.SetupLogging())

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run builds the configured room, cleans it and reports the outcome on w.
// A blocked start is reported, not returned: every run outcome is a
// successful demo.
func run(w io.Writer, cfg *app.Config) error {
	opts, err := cfg.SimOptions()
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	c, err := vacuum.New(vacuum.FromMap(opts))
	if err != nil {
		return err
	}
	rm := c.Room()
	l := c.Layout()

	tr := render.TextRenderer{Style: render.Plain, Border: true}
	if cfg.Color {
		tr.Style = render.ANSI
	}

	fmt.Fprintf(w, "Building the %s room (%dx%d)...\n", l.Name, rm.Rows(), rm.Cols())
	for _, s := range l.Shapes {
		fmt.Fprintf(w, "Created %s obstacle at %v\n", s.Kind, s.Vertices)
	}
	if n := len(l.Obstacles); n > 0 {
		fmt.Fprintf(w, "Created %d wall obstacles\n", n)
	}
	fmt.Fprintf(w, "Initial dirt count: %d\n", rm.TotalDirt())
	fmt.Fprintf(w, "Total obstacles: %d\n", rm.TotalObstacles())
	for _, p := range blockedNeighbours(rm, c.Position()) {
		fmt.Fprintf(w, "Warning: Obstacle detected at position %s - this may block initial movement!\n", p)
	}

	fmt.Fprintln(w, "\nASCII Room Layout:")
	if err := (render.TextRenderer{}).Render(w, rm, c.Position()); err != nil {
		return err
	}
	fmt.Fprintln(w, render.Legend)
	fmt.Fprintln(w, "\nStarting cleaning process...")

	var pace *core.FixedStep
	if cfg.Animate && cfg.TPS > 0 {
		pace = core.NewFixedStep(cfg.TPS)
	}
	for c.Advance() {
		if !cfg.Animate {
			continue
		}
		if pace != nil {
			pace.Wait()
		}
		if cfg.Color {
			fmt.Fprint(w, render.ClearScreen)
		}
		if err := tr.Render(w, rm, c.Position()); err != nil {
			return err
		}
		v, _ := c.Last()
		fmt.Fprintf(w, "Step %d: %s at %s (cleaned %d)\n", v.Step, v.Action, v.Pos, c.DirtCleaned())
	}

	res, runErr := c.Clean()
	if errors.Is(runErr, vacuum.ErrBlockedStart) {
		fmt.Fprintf(w, "Error: starting position %s is blocked by obstacle!\n", c.Position())
	} else {
		fmt.Fprintln(w, "\nFinal room:")
		if err := tr.Render(w, rm, c.Position()); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleaning complete! Total dirt cleaned: %d (%d cells visited)\n", res.DirtCleaned, res.Visited)
	}
	fmt.Fprintf(w, "Final dirt count: %d\n", res.DirtRemaining)
	if res.DirtRemaining == 0 {
		fmt.Fprintln(w, "\nAll accessible dirt has been cleaned!")
	} else {
		fmt.Fprintln(w, "\nSome dirt may be unreachable due to obstacles.")
	}

	if cfg.PNG != "" {
		if err := writeSnapshot(cfg.PNG, rm, c.Position(), cfg.Scale); err != nil {
			return err
		}
		fmt.Fprintf(w, "Snapshot written to %s\n", cfg.PNG)
	}
	return nil
}

func blockedNeighbours(rm *room.Room, p room.Pos) []room.Pos {
	var out []room.Pos
	for _, d := range []room.Pos{{X: -1}, {Y: 1}, {X: 1}, {Y: -1}} {
		n := room.Pos{X: p.X + d.X, Y: p.Y + d.Y}
		if rm.HasObstacleAt(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

func writeSnapshot(path string, rm *room.Room, agent room.Pos, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.WritePNG(f, rm, agent, scale)
}
