//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"vacuum-dfs/internal/app"
	"vacuum-dfs/internal/core"
	_ "vacuum-dfs/internal/sims/vacuum"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(cfg.SetupLogging())

	opts, err := cfg.SimOptions()
	if err != nil {
		log.Fatalf("options: %v", err)
	}
	sim, err := core.NewSim(cfg.Sim, opts)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("roomviz - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
