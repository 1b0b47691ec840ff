package render

import "image/color"

// AgePalette maps cell ages to colours: dead cells are black and older cells
// run hotter from red towards pale yellow.
var AgePalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 128, B: 0, A: 255},
	{R: 255, G: 179, B: 0, A: 255},
	{R: 255, G: 230, B: 0, A: 255},
	{R: 255, G: 242, B: 0, A: 255},
}

// ColorOf returns the palette colour for age, clamped to the last bucket.
func ColorOf(age uint32) color.RGBA {
	return paletteColor(AgePalette, age)
}

func paletteColor(palette []color.RGBA, age uint32) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	last := uint32(len(palette) - 1)
	if age > last {
		age = last
	}
	return palette[age]
}

// shade darkens c by factor in [0,1].
func shade(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R)*factor + 0.5),
		G: uint8(float64(c.G)*factor + 0.5),
		B: uint8(float64(c.B)*factor + 0.5),
		A: c.A,
	}
}
