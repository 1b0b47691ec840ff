package ui

import "testing"

func TestSliceCursorWraps(t *testing.T) {
	c := newSliceCursor(5)
	if c.z != 2 || c.visible {
		t.Fatalf("unexpected initial cursor %+v", c)
	}
	c.step(1)
	c.step(1)
	c.step(1)
	if c.z != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.z)
	}
	c.step(-1)
	if c.z != 4 {
		t.Fatalf("expected wrap to 4, got %d", c.z)
	}
	c.step(-11)
	if c.z != 3 {
		t.Fatalf("expected 3 after a large negative step, got %d", c.z)
	}
	c.toggle()
	if !c.visible {
		t.Fatal("toggle did not show the overlay")
	}
}

func TestSliceCursorEmptyCube(t *testing.T) {
	var c sliceCursor
	c.step(3)
	if c.z != 0 {
		t.Fatalf("empty cube must not move the cursor, got %d", c.z)
	}
}
