package app

import (
	"strconv"

	icore "gol3d/internal/core"
	"gol3d/internal/runner"
	"gol3d/pkg/core"
)

// Status is what the render loop knows about the simulation: the last
// snapshot received from the runner plus the runner's own settings. It is the
// HUD's parameter source, so the HUD never touches the live world.
type Status struct {
	name   string
	runner *runner.Runner
	snap   core.Snapshot
}

// NewStatus starts from initial, usually the seeded generation 0.
func NewStatus(name string, r *runner.Runner, initial core.Snapshot) *Status {
	return &Status{name: name, runner: r, snap: initial}
}

// Refresh takes the newest published snapshot, if any, and reports whether
// one arrived.
func (s *Status) Refresh() bool {
	snap, ok := runner.Poll(s.runner.Snapshots())
	if ok {
		s.snap = snap
	}
	return ok
}

// Snapshot returns the generation currently on screen.
func (s *Status) Snapshot() core.Snapshot { return s.snap }

// Name implements core.ParameterSource.
func (s *Status) Name() string { return s.name }

// Parameters implements core.ParameterSource.
func (s *Status) Parameters() icore.ParameterSnapshot {
	pop := s.snap.Population()
	var density float64
	if n := len(s.snap.Ages); n > 0 {
		density = float64(pop) / float64(n)
	}
	world := icore.ParameterGroup{
		Name: "World",
		Params: []icore.Parameter{
			{Key: "size", Label: "Size", Type: icore.ParamTypeInt, Value: strconv.Itoa(s.snap.Size)},
			{Key: "generation", Label: "Generation", Type: icore.ParamTypeInt, Value: strconv.FormatUint(s.snap.Generation, 10)},
			{Key: "population", Label: "Population", Type: icore.ParamTypeInt, Value: strconv.Itoa(pop)},
			{Key: "density", Label: "Density", Type: icore.ParamTypeFloat, Value: strconv.FormatFloat(density, 'f', 3, 64)},
		},
	}
	return icore.ParameterSnapshot{Groups: []icore.ParameterGroup{world, s.runner.Parameters()}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Status) ParameterControls() []icore.ParameterControl {
	return s.runner.ParameterControls()
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Status) SetIntParameter(key string, value int) bool {
	return s.runner.SetIntParameter(key, value)
}
