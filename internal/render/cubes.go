package render

import (
	"image/color"
	"sort"

	"gol3d/pkg/core"
)

const cubeFill = 0.7

// Cube is the drawable handle of one live cell.
type Cube struct {
	Pos   core.Position
	Age   uint32
	Color color.RGBA
}

// Quad is a projected cube ready to draw.
type Quad struct {
	X, Y, Size float64
	Depth      float64
	Fill       color.RGBA
	Edge       color.RGBA
}

// CubeSet is the Backend used by the GUI. It owns the cube handles; drawing
// happens through DrawList.
type CubeSet struct {
	cubes map[*Cube]struct{}
}

// NewCubeSet returns an empty set.
func NewCubeSet() *CubeSet {
	return &CubeSet{cubes: map[*Cube]struct{}{}}
}

// Add creates a cube for a newly live cell.
func (s *CubeSet) Add(p core.Position, age uint32) *Cube {
	c := &Cube{Pos: p, Age: age, Color: ColorOf(age)}
	s.cubes[c] = struct{}{}
	return c
}

// Update recolours c for its new age.
func (s *CubeSet) Update(c *Cube, age uint32) {
	c.Age = age
	c.Color = ColorOf(age)
}

// Remove forgets c.
func (s *CubeSet) Remove(c *Cube) {
	delete(s.cubes, c)
}

// Len returns the number of cubes.
func (s *CubeSet) Len() int { return len(s.cubes) }

// DrawList projects every cube through cam and orders them far to near.
func (s *CubeSet) DrawList(cam Camera) []Quad {
	quads := make([]Quad, 0, len(s.cubes))
	size := cam.Zoom * cubeFill
	for c := range s.cubes {
		x, y, depth := cam.Project(c.Pos)
		quads = append(quads, Quad{
			X:     x - size/2,
			Y:     y - size/2,
			Size:  size,
			Depth: depth,
			Fill:  c.Color,
			Edge:  shade(c.Color, 0.45),
		})
	}
	sort.Slice(quads, func(i, j int) bool {
		if quads[i].Depth != quads[j].Depth {
			return quads[i].Depth > quads[j].Depth
		}
		if quads[i].Y != quads[j].Y {
			return quads[i].Y < quads[j].Y
		}
		return quads[i].X < quads[j].X
	})
	return quads
}
