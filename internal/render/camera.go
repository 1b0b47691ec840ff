package render

import (
	"math"

	"gol3d/pkg/core"
)

const maxPitch = 1.4

// Camera orbits the centre of the cube. Y is up.
type Camera struct {
	Yaw   float64
	Pitch float64
	// Zoom is the on-screen length of one cell in pixels.
	Zoom float64

	CenterX, CenterY float64
	target           float64
}

// NewCamera frames a cube of the given size in a w×h viewport.
func NewCamera(size, w, h int) Camera {
	span := float64(size) * 1.8
	if span <= 0 {
		span = 1
	}
	return Camera{
		Yaw:     math.Pi / 4,
		Pitch:   0.6,
		Zoom:    math.Min(float64(w), float64(h)) / span,
		CenterX: float64(w) / 2,
		CenterY: float64(h) / 2,
		target:  float64(size-1) / 2,
	}
}

// Project maps p to screen coordinates. depth grows away from the viewer.
func (c Camera) Project(p core.Position) (sx, sy, depth float64) {
	dx := float64(p.X) - c.target
	dy := float64(p.Y) - c.target
	dz := float64(p.Z) - c.target

	sinY, cosY := math.Sincos(c.Yaw)
	x1 := dx*cosY - dz*sinY
	z1 := dx*sinY + dz*cosY

	sinP, cosP := math.Sincos(c.Pitch)
	y2 := dy*cosP - z1*sinP
	z2 := dy*sinP + z1*cosP

	return c.CenterX + x1*c.Zoom, c.CenterY - y2*c.Zoom, z2
}

// Orbit rotates the camera, clamping pitch short of the poles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
}

// ZoomBy scales the zoom by factor.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.Zoom = math.Max(1, c.Zoom*factor)
}

// Resize recentres the camera on a new viewport.
func (c *Camera) Resize(w, h int) {
	c.CenterX = float64(w) / 2
	c.CenterY = float64(h) / 2
}
