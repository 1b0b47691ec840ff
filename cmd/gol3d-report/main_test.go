package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol3d/internal/monitoring"
	"gol3d/internal/stats"
	"gol3d/pkg/core"
	"gol3d/pkg/sims/life3d"
)

func TestSimulateRecordsEveryGeneration(t *testing.T) {
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = orig })
	var logged int
	monitoring.SetLogger(func(string, ...interface{}) { logged++ })

	w, err := life3d.New(5)
	require.NoError(t, err)
	w.Seed()

	var rec stats.Recorder
	last := simulate(w, 4, 2, &rec)

	samples := rec.Samples()
	require.Len(t, samples, 5)
	assert.Equal(t, uint64(0), samples[0].Generation)
	assert.Equal(t, 9, samples[0].Population)
	assert.Equal(t, samples[4], last)
	assert.Equal(t, 2, logged)
}

func TestSimulateStopsWhenExtinct(t *testing.T) {
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = orig })
	monitoring.SetLogger(nil)

	w, err := life3d.New(3)
	require.NoError(t, err)
	w.SeedPositions([]core.Position{{X: 1, Y: 1, Z: 1}})

	var rec stats.Recorder
	last := simulate(w, 50, 0, &rec)
	assert.Zero(t, last.Population)
	assert.Len(t, rec.Samples(), 2)
}
