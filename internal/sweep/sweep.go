// Package sweep runs many independent cleaning runs over a seed range and
// collects how much of each room the agent could reach.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/sims/vacuum"
)

// Options configures a sweep.
type Options struct {
	Base      vacuum.Config
	FirstSeed int64
	Count     int
	// Workers bounds the number of concurrent runs. Zero means one per CPU.
	Workers int
}

// Record is the outcome of one run.
type Record struct {
	ID   string
	Seed int64

	Rows, Cols    int
	Obstacles     int
	Visited       int
	DirtTotal     int
	DirtCleaned   int
	DirtRemaining int
	Blocked       bool
}

// Free is the number of cells that are not obstacles.
func (r Record) Free() int { return r.Rows*r.Cols - r.Obstacles }

// Coverage is the share of free cells the agent visited.
func (r Record) Coverage() float64 {
	if r.Free() == 0 {
		return 0
	}
	return float64(r.Visited) / float64(r.Free())
}

func (r Record) String() string {
	return fmt.Sprintf("seed=%d %dx%d obstacles=%d visited=%d/%d dirt=%d/%d blocked=%t",
		r.Seed, r.Rows, r.Cols, r.Obstacles, r.Visited, r.Free(), r.DirtCleaned, r.DirtTotal, r.Blocked)
}

// Run executes opts.Count runs with seeds FirstSeed, FirstSeed+1, ... and
// returns their records ordered by seed. Each run owns its room.
func Run(ctx context.Context, opts Options) ([]Record, error) {
	if opts.Count <= 0 {
		return nil, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	records := make([]Record, opts.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := runOne(opts.Base, opts.FirstSeed+int64(i))
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func runOne(base vacuum.Config, seed int64) (Record, error) {
	cfg := base
	cfg.Seed = seed
	c, err := vacuum.New(cfg)
	if err != nil {
		return Record{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	rm := c.Room()
	rec := Record{
		ID:        uuid.NewString(),
		Seed:      seed,
		Rows:      rm.Rows(),
		Cols:      rm.Cols(),
		DirtTotal: rm.TotalDirt(),
	}
	// A blocked start is an outcome worth recording, not a sweep failure.
	res, _ := c.Clean()
	rec.Obstacles = res.Obstacles
	rec.Visited = res.Visited
	rec.DirtCleaned = res.DirtCleaned
	rec.DirtRemaining = res.DirtRemaining
	rec.Blocked = res.Blocked
	core.Logger().Debug("sweep run", "id", rec.ID, "seed", seed, "coverage", rec.Coverage())
	return rec, nil
}

// Summary aggregates a sweep.
type Summary struct {
	Runs         int
	Blocked      int
	FullyCleaned int
	MeanCoverage float64
	Worst        Record
}

// Summarize folds records into a Summary. Worst is the record with the
// lowest coverage, ties broken by the lower seed.
func Summarize(records []Record) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}
	total := 0.0
	worst := -1
	for i, r := range records {
		if r.Blocked {
			s.Blocked++
		}
		if r.DirtRemaining == 0 {
			s.FullyCleaned++
		}
		cov := r.Coverage()
		total += cov
		if worst < 0 || cov < records[worst].Coverage() ||
			(cov == records[worst].Coverage() && r.Seed < records[worst].Seed) {
			worst = i
		}
	}
	s.MeanCoverage = total / float64(len(records))
	s.Worst = records[worst]
	return s
}
