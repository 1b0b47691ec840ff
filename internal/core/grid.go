package core

import (
	"math"

	pcore "gol3d/pkg/core"
)

// AgeCube stores a size³ grid of cell ages in x-major order.
type AgeCube struct {
	N    int
	data []uint32
}

// NewAgeCube allocates a zeroed cube with the given edge length.
func NewAgeCube(n int) *AgeCube {
	if n <= 0 {
		n = 1
	}
	return &AgeCube{N: n, data: make([]uint32, n*n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (c *AgeCube) Cells() []uint32 { return c.data }

// Index returns the linear slice index for p.
func (c *AgeCube) Index(p pcore.Position) int { return (p.X*c.N+p.Y)*c.N + p.Z }

// Contains reports whether p addresses a cell of the cube.
func (c *AgeCube) Contains(p pcore.Position) bool {
	return p.X >= 0 && p.X < c.N && p.Y >= 0 && p.Y < c.N && p.Z >= 0 && p.Z < c.N
}

// At returns the age at p.
func (c *AgeCube) At(p pcore.Position) uint32 { return c.data[c.Index(p)] }

// Set stores age at p.
func (c *AgeCube) Set(p pcore.Position, age uint32) { c.data[c.Index(p)] = age }

// CopyTo copies the ages into dst, which must have length N³.
func (c *AgeCube) CopyTo(dst []uint32) { copy(dst, c.data) }

// Clear fills the cube with zeros.
func (c *AgeCube) Clear() {
	for i := range c.data {
		c.data[i] = 0
	}
}

// IncAge returns age+1, saturating at math.MaxUint32.
func IncAge(age uint32) uint32 {
	if age == math.MaxUint32 {
		return age
	}
	return age + 1
}
