// Package timer provides a self-correcting periodic scheduler. It ticks
// at a configured cadence and, independently, repairs itself when the
// cadence timer was suspended with the process (a laptop going to sleep
// stops coarse timers; wall-clock time keeps going).
package timer

import (
	"log"
	"sync"
	"time"
)

const (
	// checkEvery is the cadence of the liveness-repair check.
	checkEvery = 2 * time.Second
	// grace is how much later than the configured interval the last
	// acknowledged tick may be before the repair check forces one.
	grace = 1 * time.Second
)

// ManagedTimer drives periodic work. It knows nothing about the work
// itself: the handler receives an acknowledgement callback and must invoke
// it once its (possibly asynchronous) work completes.
//
// Two timers run while started: the cadence timer fires the handler every
// interval, and the repair timer checks every 2 seconds whether the last
// acknowledged tick is older than interval + 1s, forcing an out-of-cadence
// tick when it is. A single long suspension therefore produces exactly one
// catch-up tick, not a burst. The flip side: a handler that never
// acknowledges is indistinguishable from a stalled timer, and the repair
// check will keep re-firing it every 2 seconds.
type ManagedTimer struct {
	fn func(ack func())

	mu       sync.Mutex
	interval time.Duration
	stop     chan struct{}
	running  bool
	acked    bool
	lastAck  time.Time
	// overridden in tests to compress the repair cycle.
	checkEvery time.Duration
	grace      time.Duration
}

// New returns a stopped timer driving fn.
func New(fn func(ack func())) *ManagedTimer {
	return &ManagedTimer{fn: fn, checkEvery: checkEvery, grace: grace}
}

// Start starts (or restarts) the timer with the given interval and fires
// one tick synchronously before the periodic timers begin: consumers get
// an immediate first result, not one after a full interval.
func (t *ManagedTimer) Start(interval time.Duration) {
	t.mu.Lock()
	if t.running {
		t.stopLocked()
	}
	t.interval = interval
	t.running = true
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go t.cadence(interval, stop)
	go t.repair(stop)

	t.run()
}

// Stop cancels both timers. A tick already dispatched completes on its
// own; its acknowledgement is simply no longer observed.
func (t *ManagedTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.stopLocked()
	}
}

func (t *ManagedTimer) stopLocked() {
	close(t.stop)
	t.running = false
	t.acked = false
	t.lastAck = time.Time{}
}

func (t *ManagedTimer) cadence(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.run()
		}
	}
}

func (t *ManagedTimer) repair(stop chan struct{}) {
	t.mu.Lock()
	every := t.checkEvery
	t.mu.Unlock()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if t.overdue() {
				t.run()
			}
		}
	}
}

// overdue measures wall-clock time since the last *acknowledged* tick, so
// a handler still in flight is not treated as late mid-flight.
func (t *ManagedTimer) overdue() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return false
	}
	if !t.acked {
		return true
	}
	return time.Since(t.lastAck) > t.interval+t.grace
}

// run invokes the handler, recovering a panic so that a failing tick never
// stops the cadence.
func (t *ManagedTimer) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick handler panicked: %v", r)
		}
	}()
	t.fn(t.ack)
}

func (t *ManagedTimer) ack() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.acked = true
	t.lastAck = time.Now()
}
