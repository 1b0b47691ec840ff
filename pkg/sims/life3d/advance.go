package life3d

import (
	"golang.org/x/sync/errgroup"

	"gol3d/pkg/core"
)

// Advance computes the next generation into the inactive buffer and then makes
// it the active one.
func (w *World) Advance() {
	if w.workers <= 1 {
		w.sweep(0, w.size)
	} else {
		var (
			eg   errgroup.Group
			slab = (w.size + w.workers - 1) / w.workers
		)
		eg.SetLimit(w.workers)
		for x0 := 0; x0 < w.size; x0 += slab {
			x1 := min(x0+slab, w.size)
			eg.Go(func() error {
				w.sweep(x0, x1)
				return nil
			})
		}
		// sweep never fails; Wait only joins the slabs.
		_ = eg.Wait()
	}
	w.toggle()
	w.generation++
}

// sweep writes NextAge for every position with x in [x0, x1).
func (w *World) sweep(x0, x1 int) {
	dst := w.buffers[w.InactiveBuffer()]
	for x := x0; x < x1; x++ {
		for y := 0; y < w.size; y++ {
			for z := 0; z < w.size; z++ {
				p := core.Position{X: x, Y: y, Z: z}
				dst.Set(p, w.NextAge(p))
			}
		}
	}
}
