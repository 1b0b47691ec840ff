package life3d

import (
	icore "gol3d/internal/core"
	"gol3d/pkg/core"
)

const (
	minNeighbours = 2
	maxNeighbours = 4
)

// IsAlive reports whether p has a non-zero age in the active buffer.
func (w *World) IsAlive(p core.Position) bool {
	return w.Read(p, w.active) > 0
}

// LiveNeighbours counts neighbours of p alive in the active buffer.
func (w *World) LiveNeighbours(p core.Position) int {
	cur := w.buffers[w.active]
	count := 0
	w.eachNeighbour(p, func(n core.Position) {
		if cur.At(n) > 0 {
			count++
		}
	})
	return count
}

// WillLive reports whether p is alive in the next generation.
func (w *World) WillLive(p core.Position) bool {
	n := w.LiveNeighbours(p)
	return n >= minNeighbours && n <= maxNeighbours
}

// NextAge returns the age p will have after the next Advance: 1 on birth,
// the current age plus one on survival and 0 otherwise.
func (w *World) NextAge(p core.Position) uint32 {
	if !w.WillLive(p) {
		return 0
	}
	age := w.Read(p, w.active)
	if age == 0 {
		return 1
	}
	return icore.IncAge(age)
}
