package render

import "gol3d/pkg/core"

// Backend creates and mutates drawable handles for live cells.
type Backend[H any] interface {
	Add(p core.Position, age uint32) H
	Update(h H, age uint32)
	Remove(h H)
}

type node[H any] struct {
	handle H
	age    uint32
}

// Scene keeps one drawable handle per live cell, keyed by position.
type Scene[H any] struct {
	backend Backend[H]
	nodes   map[core.Position]node[H]
}

// NewScene constructs an empty scene drawing through backend.
func NewScene[H any](backend Backend[H]) *Scene[H] {
	return &Scene[H]{backend: backend, nodes: map[core.Position]node[H]{}}
}

// Sync brings the scene in line with snap: a handle is added when a cell
// becomes alive, updated when its age changes and removed when it dies.
func (s *Scene[H]) Sync(snap core.Snapshot) {
	snap.Each(func(p core.Position, age uint32) {
		n, ok := s.nodes[p]
		switch {
		case age == 0:
			if ok {
				s.backend.Remove(n.handle)
				delete(s.nodes, p)
			}
		case !ok:
			s.nodes[p] = node[H]{handle: s.backend.Add(p, age), age: age}
		case n.age != age:
			s.backend.Update(n.handle, age)
			n.age = age
			s.nodes[p] = n
		}
	})
}

// Len returns the number of live handles.
func (s *Scene[H]) Len() int { return len(s.nodes) }

// Handle returns the handle for p, if p is alive in the scene.
func (s *Scene[H]) Handle(p core.Position) (H, bool) {
	n, ok := s.nodes[p]
	return n.handle, ok
}
