// Package runner drives a simulation on its own goroutine and hands finished
// generations to the render loop.
//
// The handoff channel holds at most one snapshot. When the renderer falls
// behind, the older unread snapshot is dropped in favour of the newer one, so
// memory stays bounded and the renderer always sees the latest generation.
package runner

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	icore "gol3d/internal/core"
	"gol3d/internal/monitoring"
	"gol3d/pkg/core"
)

// ErrAlreadyRunning is returned when Run is called on a runner that is
// already looping.
var ErrAlreadyRunning = errors.New("runner already running")

const (
	intervalKey   = "interval_ms"
	maxIntervalMS = 10_000
)

// Runner advances a Sim, waits the configured interval and publishes a
// snapshot of the result, forever or until its context is cancelled.
type Runner struct {
	sim      icore.Sim
	interval *icore.Interval
	out      chan core.Snapshot
	tracer   trace.Tracer
	id       string
	running  atomic.Bool
}

// New constructs a Runner for sim with the given pause between generations.
func New(sim icore.Sim, interval time.Duration) *Runner {
	return &Runner{
		sim:      sim,
		interval: icore.NewInterval(interval),
		out:      make(chan core.Snapshot, 1),
		tracer:   otel.Tracer("gol3d/runner"),
		id:       uuid.New().String(),
	}
}

// ID identifies this runner in logs and spans.
func (r *Runner) ID() string { return r.id }

// Interval exposes the adjustable pause between generations.
func (r *Runner) Interval() *icore.Interval { return r.interval }

// Snapshots returns the receive side of the handoff channel.
func (r *Runner) Snapshots() <-chan core.Snapshot { return r.out }

// Run loops until ctx is done and returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.running.Store(false)

	monitoring.Logf("runner %s: started, interval %s", r.id, r.interval.Get())
	for {
		if err := r.step(ctx); err != nil {
			monitoring.Logf("runner %s: stopped: %v", r.id, err)
			return err
		}
	}
}

func (r *Runner) step(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "life3d.advance",
		trace.WithAttributes(attribute.String("gol3d.run_id", r.id)))
	r.sim.Advance()
	// Nothing else mutates the sim, so copying now equals copying after the wait.
	snap := r.sim.Snapshot()
	span.SetAttributes(
		attribute.Int64("gol3d.generation", int64(snap.Generation)),
		attribute.Int("gol3d.population", snap.Population()),
	)
	span.End()

	if err := r.interval.Wait(ctx); err != nil {
		return err
	}
	r.publish(snap)
	return nil
}

// publish hands snap to the consumer, replacing an unread older snapshot.
// Only the runner goroutine sends, so the second send cannot block.
func (r *Runner) publish(snap core.Snapshot) {
	select {
	case r.out <- snap:
		return
	default:
	}
	select {
	case <-r.out:
	default:
	}
	select {
	case r.out <- snap:
	default:
	}
}

// Poll performs a non-blocking receive on ch.
func Poll(ch <-chan core.Snapshot) (core.Snapshot, bool) {
	select {
	case s, ok := <-ch:
		return s, ok
	default:
		return core.Snapshot{}, false
	}
}

// ParameterControls exposes the interval as a HUD control.
func (r *Runner) ParameterControls() []icore.ParameterControl {
	return []icore.ParameterControl{{
		Key:    intervalKey,
		Label:  "Interval (ms)",
		Type:   icore.ParamTypeInt,
		Step:   50,
		Min:    0,
		Max:    maxIntervalMS,
		HasMin: true,
		HasMax: true,
	}}
}

// Parameters reports the runner settings for the HUD.
func (r *Runner) Parameters() icore.ParameterGroup {
	return icore.ParameterGroup{
		Name: "Runner",
		Params: []icore.Parameter{{
			Key:   intervalKey,
			Label: "Interval (ms)",
			Type:  icore.ParamTypeInt,
			Value: strconv.FormatInt(r.interval.Get().Milliseconds(), 10),
		}},
	}
}

// SetIntParameter updates the interval from the HUD.
func (r *Runner) SetIntParameter(key string, value int) bool {
	if key != intervalKey || value < 0 || value > maxIntervalMS {
		return false
	}
	r.interval.Set(time.Duration(value) * time.Millisecond)
	return true
}
