//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"gol3d/internal/app"
	"gol3d/internal/platform/otel"
	"gol3d/internal/runner"
	"gol3d/pkg/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown, err := otel.Setup(ctx, "gol3d")
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("flush traces: %v", err)
		}
	}()

	world, err := life3d.NewWithConfig(life3d.Config{Size: cfg.Size, Workers: cfg.Workers})
	if err != nil {
		log.Fatalf("create world: %v", err)
	}
	if err := world.SeedPattern(cfg.Pattern, cfg.PatternConfig()); err != nil {
		log.Fatalf("seed world: %v", err)
	}
	log.Printf("gol3d: size=%d pattern=%s population=%d workers=%d interval=%s",
		cfg.Size, cfg.Pattern, world.Population(), cfg.Workers, cfg.Interval)

	r := runner.New(world, cfg.Interval)
	status := app.NewStatus(world.Name(), r, world.Snapshot())
	go func() {
		if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("runner: %v", err)
		}
	}()

	game := app.New(status, cfg.Width, cfg.Height, cfg.HUDWidth)
	ebiten.SetWindowTitle("gol3d - " + world.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
