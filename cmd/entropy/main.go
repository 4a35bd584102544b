//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"entropy/internal/app"
	"entropy/internal/config"
	"entropy/internal/core"
	_ "entropy/internal/sims/entropy"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	file, err := config.LoadOptional(cfg.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	launch, err := cfg.Resolve(file)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := core.New(launch.Sim, launch.Params)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, launch.Scale, launch.Seed, launch.Interval, cfg.Verbose)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("entropy: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
