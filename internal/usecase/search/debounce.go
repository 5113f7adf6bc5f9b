package search

import (
	"sync"
	"time"
)

// DefaultDebounceDelay matches the input delay used by search boxes.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer delivers only the last value submitted within the delay window.
// Safe for concurrent use.
type Debouncer[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(T)
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a trailing-edge debouncer. A non-positive delay uses DefaultDebounceDelay.
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Submit schedules fn(v), cancelling any pending call.
func (d *Debouncer[T]) Submit(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := d.gen == gen
		d.mu.Unlock()
		if current {
			d.fn(v)
		}
	})
}

// Stop cancels a pending call. It reports whether a call was pending.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
