// Command gol3d-report runs a world headless for a fixed number of
// generations, logs per-generation statistics and charts the run.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gol3d/internal/app"
	"gol3d/internal/monitoring"
	"gol3d/internal/stats"
	"gol3d/pkg/sims/life3d"
)

func main() {
	fs := flag.NewFlagSet("gol3d-report", flag.ExitOnError)
	generations := fs.Int("generations", 100, "generations to simulate")
	out := fs.String("out", "gol3d-report.png", "chart output path (png, svg or pdf)")
	every := fs.Int("log-every", 10, "log a summary every n generations, 0 logs only the last")

	cfg := app.NewConfig()
	if err := cfg.Load(fs, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *generations < 0 {
		log.Fatalf("generations: must not be negative, got %d", *generations)
	}

	world, err := life3d.NewWithConfig(life3d.Config{Size: cfg.Size, Workers: cfg.Workers})
	if err != nil {
		log.Fatalf("create world: %v", err)
	}
	if err := world.SeedPattern(cfg.Pattern, cfg.PatternConfig()); err != nil {
		log.Fatalf("seed world: %v", err)
	}

	start := time.Now()
	var rec stats.Recorder
	last := simulate(world, *generations, *every, &rec)
	log.Printf("simulated %d generations of a %d-cube in %s (workers=%d)",
		*generations, cfg.Size, time.Since(start).Round(time.Millisecond), cfg.Workers)
	log.Printf("final: %s", last)

	if err := rec.WritePlot(*out); err != nil {
		log.Fatalf("write chart: %v", err)
	}
	log.Printf("chart written to %s", *out)
}

// simulate records generation 0 and the next n generations of w, logging a
// summary every `every` generations.
func simulate(w *life3d.World, n, every int, rec *stats.Recorder) stats.Sample {
	sample := rec.Record(w.Snapshot())
	for i := 1; i <= n; i++ {
		w.Advance()
		sample = rec.Record(w.Snapshot())
		if every > 0 && i%every == 0 {
			monitoring.Logf("%s", sample)
		}
		if sample.Population == 0 {
			monitoring.Logf("population died out at generation %d", sample.Generation)
			break
		}
	}
	return sample
}
