package life3d

import "gol3d/pkg/core"

// axisBounds clips {v-1, v, v+1} to [0, size).
func (w *World) axisBounds(v int) (lo, hi int) {
	return max(v-1, 0), min(v+1, w.size-1)
}

// AxisRange returns the coordinates one axis contributes to a neighbourhood
// centred on v, in ascending order.
func (w *World) AxisRange(v int) []int {
	lo, hi := w.axisBounds(v)
	out := make([]int, 0, 3)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return out
}

// eachNeighbour visits the clipped Moore neighbourhood of p in x-major,
// then y, then z ascending order. p itself is skipped.
func (w *World) eachNeighbour(p core.Position, fn func(n core.Position)) {
	x0, x1 := w.axisBounds(p.X)
	y0, y1 := w.axisBounds(p.Y)
	z0, z1 := w.axisBounds(p.Z)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				n := core.Position{X: x, Y: y, Z: z}
				if n == p {
					continue
				}
				fn(n)
			}
		}
	}
}

// Neighbours returns the neighbours of p inside the cube. A fresh slice is
// built on every call.
func (w *World) Neighbours(p core.Position) []core.Position {
	out := make([]core.Position, 0, 26)
	w.eachNeighbour(p, func(n core.Position) {
		out = append(out, n)
	})
	return out
}
