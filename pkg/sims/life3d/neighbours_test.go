package life3d

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gol3d/pkg/core"
)

func TestNeighboursOfCorner(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Position{
		pos(0, 0, 1), pos(0, 1, 0), pos(0, 1, 1),
		pos(1, 0, 0), pos(1, 0, 1), pos(1, 1, 0), pos(1, 1, 1),
	}
	if diff := cmp.Diff(want, w.Neighbours(pos(0, 0, 0))); diff != "" {
		t.Fatalf("corner neighbours mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighboursOfEdgeKeepsOrder(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Position{
		pos(0, 0, 0), pos(0, 0, 2),
		pos(0, 1, 0), pos(0, 1, 1), pos(0, 1, 2),
		pos(1, 0, 0), pos(1, 0, 1), pos(1, 0, 2),
		pos(1, 1, 0), pos(1, 1, 1), pos(1, 1, 2),
	}
	if diff := cmp.Diff(want, w.Neighbours(pos(0, 0, 1))); diff != "" {
		t.Fatalf("edge neighbours mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighboursOfCentreCoverCube(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	var want []core.Position
	w.Each(func(p core.Position, _ uint32) {
		if p != pos(1, 1, 1) {
			want = append(want, p)
		}
	})
	if diff := cmp.Diff(want, w.Neighbours(pos(1, 1, 1))); diff != "" {
		t.Fatalf("centre neighbours mismatch (-want +got):\n%s", diff)
	}
}

// boundaryAxes counts coordinates of p that sit on a face of the cube.
func boundaryAxes(p core.Position, size int) int {
	n := 0
	for _, v := range []int{p.X, p.Y, p.Z} {
		if v == 0 || v == size-1 {
			n++
		}
	}
	return n
}

func TestNeighboursAreTotal(t *testing.T) {
	wantByClass := map[int]int{0: 26, 1: 17, 2: 11, 3: 7}
	for size := MinSize; size <= 6; size++ {
		w, err := New(size)
		if err != nil {
			t.Fatal(err)
		}
		w.Each(func(p core.Position, _ uint32) {
			ns := w.Neighbours(p)
			if want := wantByClass[boundaryAxes(p, size)]; len(ns) != want {
				t.Fatalf("size %d: %+v has %d neighbours, want %d", size, p, len(ns), want)
			}
			seen := map[core.Position]bool{}
			for _, n := range ns {
				if n == p {
					t.Fatalf("size %d: %+v listed as its own neighbour", size, p)
				}
				if !w.Contains(n) {
					t.Fatalf("size %d: neighbour %+v of %+v is outside the cube", size, n, p)
				}
				if seen[n] {
					t.Fatalf("size %d: neighbour %+v of %+v repeated", size, n, p)
				}
				seen[n] = true
			}
		})
	}
}

func TestAdvanceOnFullCubeStaysInBounds(t *testing.T) {
	for size := MinSize; size <= 5; size++ {
		w, err := NewWithConfig(Config{Size: size, Workers: 2})
		if err != nil {
			t.Fatal(err)
		}
		var all []core.Position
		w.Each(func(p core.Position, _ uint32) { all = append(all, p) })
		w.SeedPositions(all)

		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("size %d: Advance panicked: %v", size, r)
				}
			}()
			w.Advance()
			w.Advance()
		}()
	}
}

func TestNeighboursFreshSlice(t *testing.T) {
	w, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	a := w.Neighbours(pos(1, 1, 1))
	a[0] = pos(9, 9, 9)
	b := w.Neighbours(pos(1, 1, 1))
	if b[0] == pos(9, 9, 9) {
		t.Fatal("Neighbours reused a previously returned slice")
	}
}

func TestAxisRangeClips(t *testing.T) {
	w := newWorld(t, 4)
	cases := map[int][]int{
		0: {0, 1},
		1: {0, 1, 2},
		2: {1, 2, 3},
		3: {2, 3},
	}
	for v, want := range cases {
		if diff := cmp.Diff(want, w.AxisRange(v)); diff != "" {
			t.Fatalf("AxisRange(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}
