package life3d

import (
	"strconv"

	"github.com/pkg/errors"

	"gol3d/pkg/core"
)

// ErrUnknownPattern is returned by SeedPattern for names nobody registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Seed writes the demo pattern into buffer 0.
func (w *World) Seed() {
	w.SeedPositions(DemoPattern(w.size, nil))
}

// SeedPattern seeds buffer 0 with the registered pattern called name.
func (w *World) SeedPattern(name string, cfg map[string]string) error {
	pattern, ok := core.Patterns()[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	w.SeedPositions(pattern(w.size, cfg))
	return nil
}

// SeedPositions marks every listed position alive with age 1 in buffer 0.
// Positions outside the cube are skipped. Call it before the first Advance.
func (w *World) SeedPositions(ps []core.Position) {
	for _, p := range ps {
		if !w.Contains(p) {
			continue
		}
		w.Write(p, 0, 1)
	}
}

// DemoPattern returns the eight cells of the unit cube at the origin plus
// (2,2,2).
func DemoPattern(size int, _ map[string]string) []core.Position {
	out := make([]core.Position, 0, 9)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				out = append(out, core.Position{X: x, Y: y, Z: z})
			}
		}
	}
	return append(out, core.Position{X: 2, Y: 2, Z: 2})
}

const defaultSoupDensity = 0.2

// SoupPattern fills the cube at random with the "density" probability using
// a generator seeded from the "seed" key, so equal settings give equal soups.
func SoupPattern(size int, cfg map[string]string) []core.Position {
	seed := int64(1)
	density := defaultSoupDensity
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			density = parsed
		}
	}
	return core.NewRNG(seed).FillCube(size, density)
}

func init() {
	core.RegisterPattern("demo", DemoPattern)
	core.RegisterPattern("soup", SoupPattern)
}
