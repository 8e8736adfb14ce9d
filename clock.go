package talkie

import (
	"sort"
	"time"
)

// Scheduler runs deferred callbacks. All timeouts in talkie (speech
// auto-clear, session expiry) go through a Scheduler so that tests can drive
// time deterministically.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// AfterFunc schedules fn to run once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a callback scheduled with AfterFunc.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer, false if it had already fired or been stopped.
	Stop() bool
}

// Clock is a Scheduler whose time only moves when Advance is called. The
// Scene advances it from its Update with the wall-clock time elapsed since the
// previous frame, so callbacks run on the frame loop and never concurrently
// with Update or Draw.
//
// Clock is not safe for concurrent use.
type Clock struct {
	now     time.Time
	seq     uint64
	pending []*clockTimer
}

type clockTimer struct {
	clock *Clock
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewClock returns a Clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	return c.now
}

// AfterFunc schedules fn to run once d has elapsed. A non-positive d fires on
// the next Advance call, even Advance(0).
func (c *Clock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{clock: c, due: c.now.Add(d), seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Pending returns the number of scheduled callbacks that have not yet fired
// or been stopped.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock forward by d and runs every callback that became
// due, in due-time order (ties in scheduling order). Callbacks scheduled by a
// running callback fire in the same Advance call if they fall due within it.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := c.now.Add(d)
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.remove(t)
		t.done = true
		if t.due.After(c.now) {
			c.now = t.due
		}
		t.fn()
	}
	c.now = target
}

// nextDue returns the earliest pending timer due at or before target.
func (c *Clock) nextDue(target time.Time) *clockTimer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	t := c.pending[0]
	if t.due.After(target) {
		return nil
	}
	return t
}

func (c *Clock) remove(t *clockTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

func (t *clockTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
