package render

import (
	"image/color"

	"gol3d/pkg/core"
)

// fillSliceRGBA converts the z-layer of snap into RGBA pixels in buf, one
// pixel per cell with x across and y down. When the palette is empty or z is
// outside the cube the buffer is cleared to transparent black.
func fillSliceRGBA(buf []byte, snap core.Snapshot, z int, palette []color.RGBA) {
	n := snap.Size
	if len(palette) == 0 || z < 0 || z >= n {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			col := paletteColor(palette, snap.Ages[snap.Index(core.Position{X: x, Y: y, Z: z})])
			base := (y*n + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
