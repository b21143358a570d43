package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"vacuum-dfs/internal/app"
	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/sims/vacuum"
	"vacuum-dfs/internal/sweep"
)

func main() {
	cfg := app.NewConfig()
	cfg.Layout = "random"
	cfg.Seed = 1
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 200, "number of seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "how many of the least covered rooms to list")
	flag.Parse()

	core.SetLogger(cfg.SetupLogging())

	opts, err := cfg.SimOptions()
	if err != nil {
		log.Fatalf("options: %v", err)
	}
	base := vacuum.FromMap(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d %s rooms of %dx%d from seed %d (%d workers)\n",
		*count, base.Layout, base.Rows, base.Cols, cfg.Seed, *workers)

	start := time.Now()
	records, err := sweep.Run(ctx, sweep.Options{
		Base:      base,
		FirstSeed: cfg.Seed,
		Count:     *count,
		Workers:   *workers,
	})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	sum := sweep.Summarize(records)
	fmt.Printf("\n%d runs in %s: mean coverage %.1f%%, fully cleaned %d, blocked %d\n",
		sum.Runs, elapsed.Round(time.Millisecond), 100*sum.MeanCoverage, sum.FullyCleaned, sum.Blocked)

	sort.SliceStable(records, func(i, j int) bool { return records[i].Coverage() < records[j].Coverage() })
	fmt.Printf("\nLeast covered rooms:\n")
	for i := 0; i < len(records) && i < *top; i++ {
		r := records[i]
		fmt.Printf("%2d) coverage=%.1f%% %s id=%s\n", i+1, 100*r.Coverage(), r, r.ID)
	}
}
