package ui

// sliceCursor tracks which z-layer the overlay shows.
type sliceCursor struct {
	n       int
	z       int
	visible bool
}

func newSliceCursor(n int) sliceCursor {
	return sliceCursor{n: n, z: n / 2}
}

// step moves the layer by delta, wrapping around the cube.
func (c *sliceCursor) step(delta int) {
	if c.n <= 0 {
		return
	}
	c.z = ((c.z+delta)%c.n + c.n) % c.n
}

func (c *sliceCursor) toggle() { c.visible = !c.visible }
