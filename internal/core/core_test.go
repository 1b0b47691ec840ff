package core

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	pcore "gol3d/pkg/core"
)

func TestAgeCubeIndexMatchesSnapshot(t *testing.T) {
	c := NewAgeCube(4)
	s := pcore.Snapshot{Size: 4}
	for _, p := range []pcore.Position{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}, {X: 3, Y: 3, Z: 3}} {
		if c.Index(p) != s.Index(p) {
			t.Fatalf("cube index %d differs from snapshot index %d for %+v", c.Index(p), s.Index(p), p)
		}
	}
	if len(c.Cells()) != 64 {
		t.Fatalf("cube has %d cells, want 64", len(c.Cells()))
	}
}

func TestAgeCubeSetClear(t *testing.T) {
	c := NewAgeCube(3)
	p := pcore.Position{X: 2, Y: 1, Z: 0}
	c.Set(p, 7)
	if c.At(p) != 7 {
		t.Fatalf("At = %d, want 7", c.At(p))
	}
	dst := make([]uint32, 27)
	c.CopyTo(dst)
	if dst[c.Index(p)] != 7 {
		t.Fatal("CopyTo did not copy ages")
	}
	c.Clear()
	if c.At(p) != 0 {
		t.Fatal("Clear left a non-zero age")
	}
	if c.Contains(pcore.Position{X: 3}) || !c.Contains(p) {
		t.Fatal("Contains reported wrong bounds")
	}
}

func TestIncAgeSaturates(t *testing.T) {
	if IncAge(1) != 2 {
		t.Fatal("IncAge(1) != 2")
	}
	if IncAge(math.MaxUint32) != math.MaxUint32 {
		t.Fatal("IncAge must saturate at MaxUint32")
	}
}

func TestIntervalWaitZeroReturnsImmediately(t *testing.T) {
	iv := NewInterval(-time.Second)
	if iv.Get() != 0 {
		t.Fatalf("negative interval stored as %v", iv.Get())
	}
	if err := iv.Wait(context.Background()); err != nil {
		t.Fatalf("Wait returned %v", err)
	}
}

func TestIntervalWaitHonoursCancel(t *testing.T) {
	iv := NewInterval(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := iv.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait error = %v, want context.Canceled", err)
	}
}

func TestIntervalSetShortensPendingWait(t *testing.T) {
	iv := NewInterval(time.Hour)
	done := make(chan error, 1)
	go func() { done <- iv.Wait(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	iv.Set(time.Millisecond)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Wait returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Set did not wake the pending Wait")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "size", Value: "3"}}},
		{Name: "Runner", Params: []Parameter{{Key: "interval_ms", Value: "500"}}},
	}}
	p, ok := snap.Lookup("interval_ms")
	if !ok || p.Value != "500" {
		t.Fatalf("Lookup = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
