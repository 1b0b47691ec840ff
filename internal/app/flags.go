package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config represents the startup parameters for the application.
type Config struct {
	Size     int           `env:"GOL3D_SIZE"`
	Interval time.Duration `env:"GOL3D_INTERVAL"`
	Width    int           `env:"GOL3D_WIDTH"`
	Height   int           `env:"GOL3D_HEIGHT"`
	Pattern  string        `env:"GOL3D_PATTERN"`
	Seed     int64         `env:"GOL3D_SEED"`
	Density  float64       `env:"GOL3D_DENSITY"`
	Workers  int           `env:"GOL3D_WORKERS"`
	HUDWidth int           `env:"GOL3D_HUD_WIDTH"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:     25,
		Interval: 500 * time.Millisecond,
		Width:    1000,
		Height:   800,
		Pattern:  "demo",
		Seed:     42,
		Density:  0.2,
		Workers:  1,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "edge length of the cube")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern (demo, soup)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.Float64Var(&c.Density, "density", c.Density, "live fraction for random patterns")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines sweeping each generation")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
}

// Load applies the environment over the defaults and then parses args,
// so flags win over GOL3D_* variables.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return c.Validate()
}

// Validate reports the first field holding an unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Size < 3:
		return fmt.Errorf("size: must be at least 3, got %d", c.Size)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window: width and height must be positive, got %dx%d", c.Width, c.Height)
	case c.Interval < 0:
		return fmt.Errorf("interval: must not be negative, got %s", c.Interval)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density: must be within [0,1], got %g", c.Density)
	case c.Workers < 1:
		return fmt.Errorf("workers: must be at least 1, got %d", c.Workers)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud: must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// PatternConfig returns the key/value settings handed to pattern generators.
func (c *Config) PatternConfig() map[string]string {
	return map[string]string{
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
