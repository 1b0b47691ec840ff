// Package life3d implements a three-dimensional Game of Life on a bounded cube.
//
// Cells carry an age instead of a plain alive flag: a birth sets the age to 1
// and every further generation of survival increments it. A cell is alive next
// generation when it has between 2 and 4 live neighbours inclusive, counted
// over the 26-cell Moore neighbourhood clipped at the cube faces.
//
// The grid is double buffered. Advance reads only the active buffer, writes
// only the inactive one and flips the two once the sweep is complete.
package life3d

import (
	"github.com/pkg/errors"

	icore "gol3d/internal/core"
	"gol3d/pkg/core"
)

// MinSize is the smallest supported edge length.
const MinSize = 3

// ErrInvalidSize is returned by New when the requested edge length is below
// MinSize.
var ErrInvalidSize = errors.New("invalid grid size")

var _ icore.Sim = (*World)(nil)

// Config controls the world dimensions and sweep parallelism.
type Config struct {
	Size int
	// Workers bounds the goroutines used by Advance. Values below 2 sweep
	// sequentially.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 25, Workers: 1}
}

// World is the double-buffered age grid.
type World struct {
	size       int
	workers    int
	buffers    [2]*icore.AgeCube
	active     int
	generation uint64
}

// New returns an empty world with the given edge length.
func New(size int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world configured from cfg.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Size < MinSize {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d is below the minimum of %d", cfg.Size, MinSize)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &World{
		size:    cfg.Size,
		workers: workers,
		buffers: [2]*icore.AgeCube{icore.NewAgeCube(cfg.Size), icore.NewAgeCube(cfg.Size)},
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life3d" }

// Size returns the cube edge length.
func (w *World) Size() int { return w.size }

// Generation returns the number of completed Advance calls.
func (w *World) Generation() uint64 { return w.generation }

// ActiveBuffer returns the index of the buffer holding the current generation.
func (w *World) ActiveBuffer() int { return w.active }

// InactiveBuffer returns the index of the buffer the next sweep writes to.
func (w *World) InactiveBuffer() int { return 1 - w.active }

func (w *World) toggle() { w.active = 1 - w.active }

// Read returns the age at p in the given buffer. p must lie inside the cube.
func (w *World) Read(p core.Position, buf int) uint32 {
	return w.buffers[buf].At(p)
}

// Write stores age at p in the given buffer. p must lie inside the cube.
func (w *World) Write(p core.Position, buf int, age uint32) {
	w.buffers[buf].Set(p, age)
}

// Contains reports whether p lies inside the cube.
func (w *World) Contains(p core.Position) bool {
	return w.buffers[0].Contains(p)
}

// Snapshot returns an independent copy of the active buffer.
func (w *World) Snapshot() core.Snapshot {
	ages := make([]uint32, w.size*w.size*w.size)
	w.buffers[w.active].CopyTo(ages)
	return core.Snapshot{Size: w.size, Generation: w.generation, Ages: ages}
}

// Each calls fn for every position with its age in the active buffer.
func (w *World) Each(fn func(p core.Position, age uint32)) {
	cells := w.buffers[w.active].Cells()
	i := 0
	for x := 0; x < w.size; x++ {
		for y := 0; y < w.size; y++ {
			for z := 0; z < w.size; z++ {
				fn(core.Position{X: x, Y: y, Z: z}, cells[i])
				i++
			}
		}
	}
}

// Population counts live cells in the active buffer.
func (w *World) Population() int {
	n := 0
	for _, a := range w.buffers[w.active].Cells() {
		if a > 0 {
			n++
		}
	}
	return n
}
