package utils

import (
	"sync"
	"time"
)

// Debouncer delays a call until delay has elapsed without another call.
//
// Only the most recently supplied function runs, exactly once per quiet
// period. Flush runs the pending function immediately, Cancel drops it.
// A Debouncer is safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	timer   Timer
	pending func()
	gen     uint64
}

// NewDebouncer returns a Debouncer that waits delay on clock. A nil clock
// means [RealClock].
func NewDebouncer(delay time.Duration, clock Clock) *Debouncer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Debouncer{delay: delay, clock: clock}
}

// Call replaces the pending function with fn and restarts the wait.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs the pending function if no newer Call, Flush or Cancel
// superseded the timer that scheduled it.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.take()
	d.mu.Unlock()

	fn()
}

// Flush runs the pending function now, on the caller's goroutine, and
// reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.take()
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending function without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.take()
	d.mu.Unlock()
}

// Pending reports whether a call is waiting for its quiet period.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// take must be called with mu held.
func (d *Debouncer) take() func() {
	fn := d.pending
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return fn
}

// Debounced is a typed wrapper that remembers the argument of the latest
// call and passes it to fn once the quiet period ends.
type Debounced[T any] struct {
	d  *Debouncer
	fn func(T)
}

// Debounce wraps fn so bursts of calls collapse into one call carrying the
// last argument.
func Debounce[T any](delay time.Duration, clock Clock, fn func(T)) *Debounced[T] {
	return &Debounced[T]{d: NewDebouncer(delay, clock), fn: fn}
}

func (f *Debounced[T]) Call(arg T) {
	f.d.Call(func() { f.fn(arg) })
}

func (f *Debounced[T]) Flush() bool {
	return f.d.Flush()
}

func (f *Debounced[T]) Cancel() {
	f.d.Cancel()
}

func (f *Debounced[T]) Pending() bool {
	return f.d.Pending()
}
