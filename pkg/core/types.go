package core

// Position addresses a single cell of a cubic grid.
type Position struct {
	X, Y, Z int
}

// Snapshot is an independent copy of one generation of a cubic grid. Ages are
// stored x-major: index = (x*size+y)*size + z.
type Snapshot struct {
	Size       int
	Generation uint64
	Ages       []uint32
}

// Index returns the linear slice index for p.
func (s Snapshot) Index(p Position) int { return (p.X*s.Size+p.Y)*s.Size + p.Z }

// Contains reports whether p lies inside the cube.
func (s Snapshot) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Size && p.Y >= 0 && p.Y < s.Size && p.Z >= 0 && p.Z < s.Size
}

// At returns the age stored at p, or 0 when p is outside the cube.
func (s Snapshot) At(p Position) uint32 {
	if !s.Contains(p) {
		return 0
	}
	return s.Ages[s.Index(p)]
}

// Each calls fn for every position in x-major order together with its age.
func (s Snapshot) Each(fn func(p Position, age uint32)) {
	i := 0
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			for z := 0; z < s.Size; z++ {
				fn(Position{X: x, Y: y, Z: z}, s.Ages[i])
				i++
			}
		}
	}
}

// Population counts cells with a non-zero age.
func (s Snapshot) Population() int {
	n := 0
	for _, a := range s.Ages {
		if a > 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Ages = append([]uint32(nil), s.Ages...)
	return out
}

// Pattern produces the live cells of an initial condition for a cube of the
// given size. cfg carries optional flag-style settings.
type Pattern func(size int, cfg map[string]string) []Position

var patterns = map[string]Pattern{}

// RegisterPattern adds a seeding pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available seeding patterns.
func Patterns() map[string]Pattern {
	return patterns
}
