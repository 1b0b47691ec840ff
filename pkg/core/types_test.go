package core

import (
	"slices"
	"testing"
)

func TestSnapshotIndexIsXMajor(t *testing.T) {
	s := Snapshot{Size: 3, Ages: make([]uint32, 27)}
	if got := s.Index(Position{X: 0, Y: 0, Z: 1}); got != 1 {
		t.Fatalf("index of (0,0,1) = %d, want 1", got)
	}
	if got := s.Index(Position{X: 0, Y: 1, Z: 0}); got != 3 {
		t.Fatalf("index of (0,1,0) = %d, want 3", got)
	}
	if got := s.Index(Position{X: 1, Y: 0, Z: 0}); got != 9 {
		t.Fatalf("index of (1,0,0) = %d, want 9", got)
	}
	if got := s.Index(Position{X: 2, Y: 2, Z: 2}); got != 26 {
		t.Fatalf("index of (2,2,2) = %d, want 26", got)
	}
}

func TestSnapshotEachVisitsEveryCellInOrder(t *testing.T) {
	s := Snapshot{Size: 3, Ages: make([]uint32, 27)}
	s.Ages[s.Index(Position{X: 1, Y: 2, Z: 0})] = 5

	visited := 0
	s.Each(func(p Position, age uint32) {
		if s.Index(p) != visited {
			t.Fatalf("visit %d got position %+v", visited, p)
		}
		if p == (Position{X: 1, Y: 2, Z: 0}) && age != 5 {
			t.Fatalf("age at %+v = %d, want 5", p, age)
		}
		visited++
	})
	if visited != 27 {
		t.Fatalf("visited %d cells, want 27", visited)
	}
}

func TestSnapshotAtOutsideIsZero(t *testing.T) {
	s := Snapshot{Size: 3, Ages: make([]uint32, 27)}
	for i := range s.Ages {
		s.Ages[i] = 1
	}
	for _, p := range []Position{{X: -1}, {X: 3}, {Y: 3}, {Z: -1}} {
		if got := s.At(p); got != 0 {
			t.Fatalf("At(%+v) = %d, want 0", p, got)
		}
	}
	if got := s.Population(); got != 27 {
		t.Fatalf("population = %d, want 27", got)
	}
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	s := Snapshot{Size: 3, Generation: 4, Ages: make([]uint32, 27)}
	c := s.Clone()
	c.Ages[0] = 9
	if s.Ages[0] != 0 {
		t.Fatal("clone shares backing storage with the original")
	}
	if c.Generation != 4 || c.Size != 3 {
		t.Fatalf("clone metadata = %+v", c)
	}
}

func TestFillCubeDeterministic(t *testing.T) {
	a := NewRNG(7).FillCube(6, 0.3)
	b := NewRNG(7).FillCube(6, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("FillCube not deterministic for equal seeds")
	}
	if len(NewRNG(7).FillCube(4, 0)) != 0 {
		t.Fatal("density 0 must not produce cells")
	}
	if got := len(NewRNG(7).FillCube(4, 1)); got != 64 {
		t.Fatalf("density 1 produced %d cells, want 64", got)
	}
}

func TestRegisterPatternIgnoresInvalid(t *testing.T) {
	before := len(Patterns())
	RegisterPattern("", func(int, map[string]string) []Position { return nil })
	RegisterPattern("nil-pattern", nil)
	if len(Patterns()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
