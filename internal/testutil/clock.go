// Package testutil holds deterministic stand-ins for time and identifiers
// shared by tests across the module.
package testutil

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/summarium/internal/utils"
)

// FixedTime is the instant every StubClock created by FixedClock starts at.
var FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// StubClock is a manually driven utils.Clock. Timers scheduled with
// AfterFunc only fire from Advance, on the goroutine calling it, in
// deadline order.
type StubClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*stubTimer
}

type stubTimer struct {
	clock   *StubClock
	at      time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

func FixedClock() *StubClock {
	return NewStubClock(FixedTime)
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock without firing timers.
func (c *StubClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *StubClock) AfterFunc(d time.Duration, f func()) utils.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &stubTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers as it passes
// their deadlines. Timers scheduled by a firing callback fire in the same
// Advance if they fall inside the window.
func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// PendingTimers reports how many timers have neither fired nor been stopped.
func (c *StubClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// nextDue must be called with mu held.
func (c *StubClock) nextDue(limit time.Time) *stubTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].at.Equal(live[j].at) {
			return live[i].seq < live[j].seq
		}
		return live[i].at.Before(live[j].at)
	})
	if len(live) == 0 || live[0].at.After(limit) {
		return nil
	}
	return live[0]
}

func (t *stubTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// StubIDGenerator returns "id-1", "id-2", ... in order.
type StubIDGenerator struct {
	mu      sync.Mutex
	counter int
}

func (g *StubIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("id-%d", g.counter)
}
