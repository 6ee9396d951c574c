package navigation

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer that Deferred needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d
type AfterFunc func(d time.Duration, f func()) Timer

// SystemAfterFunc schedules on the runtime timer
func SystemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Deferred is a single-slot delayed callback. Scheduling replaces whatever
// was pending. A callback that lost its slot must not act: it receives its
// ticket and has to Take it before doing anything.
type Deferred struct {
	mu      sync.Mutex
	after   AfterFunc
	current uint64
	timer   Timer
	closed  bool
}

// NewDeferred returns an empty slot; a nil after uses SystemAfterFunc
func NewDeferred(after AfterFunc) *Deferred {
	if after == nil {
		after = SystemAfterFunc
	}
	return &Deferred{after: after}
}

// Schedule cancels the pending callback and arranges for f to be called
// with a new ticket after delay. It returns false once closed.
func (d *Deferred) Schedule(delay time.Duration, f func(ticket uint64)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.stopLocked()
	ticket := d.current
	d.timer = d.after(delay, func() { f(ticket) })
	return true
}

// Take claims ticket. It succeeds only for the pending, uncancelled callback.
func (d *Deferred) Take(ticket uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.timer == nil || ticket != d.current {
		return false
	}
	d.timer = nil
	d.current++
	return true
}

// Cancel drops the pending callback, if any
func (d *Deferred) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a callback is waiting
func (d *Deferred) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close cancels the pending callback and refuses new ones
func (d *Deferred) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.closed = true
}

func (d *Deferred) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.current++
}
