package core

import (
	"context"
	"sync"
	"time"
)

// Interval is the pause between simulation generations. It may be changed
// from the render loop while a runner is sleeping on it.
type Interval struct {
	mu      sync.Mutex
	d       time.Duration
	changed chan struct{}
}

// NewInterval constructs an Interval. Negative durations are treated as zero.
func NewInterval(d time.Duration) *Interval {
	if d < 0 {
		d = 0
	}
	return &Interval{d: d, changed: make(chan struct{})}
}

// Get returns the current duration.
func (i *Interval) Get() time.Duration {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.d
}

// Set changes the duration and wakes any pending Wait so the new value takes
// effect immediately.
func (i *Interval) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}
	i.mu.Lock()
	i.d = d
	close(i.changed)
	i.changed = make(chan struct{})
	i.mu.Unlock()
}

// Wait sleeps for the current duration. A Set during the sleep restarts it
// with the new value, measured from the original start.
func (i *Interval) Wait(ctx context.Context) error {
	start := time.Now()
	for {
		i.mu.Lock()
		d, changed := i.d, i.changed
		i.mu.Unlock()

		remaining := d - time.Since(start)
		if remaining <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-changed:
			timer.Stop()
		case <-timer.C:
			return nil
		}
	}
}
