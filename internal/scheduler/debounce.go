// Package scheduler provides the cancellable scheduled-task abstraction used
// for debounced input handling: scheduling again cancels and replaces the
// pending task, so only the last event in a burst triggers the action.
package scheduler

import (
	"sync"
	"time"
)

// Default delays for the two debounced pipelines.
const (
	SuggestDelay  = 150 * time.Millisecond
	AutosaveDelay = 1500 * time.Millisecond
)

// Debouncer defers an action behind a timer. Schedule cancels any pending
// action and restarts the timer, giving last-write-wins semantics with no
// queueing of intermediate states.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// NewDebouncer creates an idle debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Schedule replaces any pending action with fn, to run after delay.
func (d *Debouncer) Schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		run := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()
		if run != nil {
			run()
		}
	})
}

// Stop cancels the pending action, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs the pending action immediately instead of waiting out the timer.
// A no-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	run := d.pending
	d.pending = nil
	d.mu.Unlock()
	if run != nil {
		run()
	}
}

// Pending reports whether an action is waiting on the timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
