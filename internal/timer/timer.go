// Package timer implements the per-game countdown / count-up clock.
package timer

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period.
const DefaultInterval = time.Second

// Thresholds for the countdown presentation hints.
const (
	UrgentSeconds   = 10
	CriticalSeconds = 5
)

// Options configures a Timer.
type Options struct {
	// InitialTime is the starting value in seconds.
	InitialTime int

	// CountDown selects countdown mode; otherwise the timer counts up.
	CountDown bool

	// OnTimeUp is called once when a countdown reaches zero.
	OnTimeUp func()

	// AutoStart starts ticking immediately from New.
	AutoStart bool

	// Scheduler drives ticks. Defaults to TickerScheduler.
	Scheduler Scheduler

	// Interval between ticks. Defaults to one second.
	Interval time.Duration
}

// Timer is a one-second game clock.
type Timer struct {
	mu      sync.Mutex
	opts    Options
	time    int
	running bool
	fired   bool // OnTimeUp already delivered for this countdown cycle
	cancel  func()
	gen     uint64 // bumped on every stop; stale scheduler ticks are dropped
}

// New creates a timer set to opts.InitialTime.
func New(opts Options) *Timer {
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.InitialTime < 0 {
		opts.InitialTime = 0
	}
	t := &Timer{opts: opts, time: opts.InitialTime}
	if opts.AutoStart {
		t.Start()
	}
	return t
}

// Start begins ticking. Starting a countdown already at zero does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	if t.opts.CountDown && t.time <= 0 {
		return
	}
	t.running = true
	if t.cancel == nil {
		gen := t.gen
		t.cancel = t.opts.Scheduler.Every(t.opts.Interval, func() { t.tick(gen, true) })
	}
}

// Resume is Start under the name the pause menu uses.
func (t *Timer) Resume() { t.Start() }

// Pause stops ticking and keeps the current time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Reset stops the timer and sets it to *newTime, or InitialTime when nil.
func (t *Timer) Reset(newTime *int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	if newTime != nil {
		t.time = max(*newTime, 0)
	} else {
		t.time = t.opts.InitialTime
	}
	t.fired = false
}

// ResetTo is Reset with an explicit value.
func (t *Timer) ResetTo(seconds int) { t.Reset(&seconds) }

// AddTime adjusts the clock by seconds, never below zero.
func (t *Timer) AddTime(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.time = max(t.time+seconds, 0)
	if t.time > 0 {
		t.fired = false
	}
}

// Tick advances the clock by one step. It is a no-op while stopped.
func (t *Timer) Tick() { t.tick(0, false) }

// tick advances the clock. Scheduled ticks carry the generation they were
// started with and are ignored once the timer has been stopped since.
func (t *Timer) tick(gen uint64, scheduled bool) {
	t.mu.Lock()

	if !t.running || (scheduled && gen != t.gen) {
		t.mu.Unlock()
		return
	}

	fire := false
	if t.opts.CountDown {
		if t.time <= 1 {
			t.time = 0
			t.stopLocked()
			fire = !t.fired
			t.fired = true
		} else {
			t.time--
		}
	} else {
		t.time++
	}
	cb := t.opts.OnTimeUp
	t.mu.Unlock()

	if fire && cb != nil {
		cb()
	}
}

// Time returns the current value in seconds.
func (t *Timer) Time() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.time
}

// IsRunning reports whether the timer is ticking.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// IsUrgent reports a countdown in the (5, 10] second band.
func (t *Timer) IsUrgent() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.CountDown && t.time > CriticalSeconds && t.time <= UrgentSeconds
}

// IsCritical reports a countdown at or below 5 seconds.
func (t *Timer) IsCritical() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.CountDown && t.time <= CriticalSeconds
}

// CountDown reports the timer mode.
func (t *Timer) CountDown() bool { return t.opts.CountDown }

// Stop releases the scheduler. Equivalent to Pause.
func (t *Timer) Stop() { t.Pause() }

func (t *Timer) stopLocked() {
	t.running = false
	t.gen++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
