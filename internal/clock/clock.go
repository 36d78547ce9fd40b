package clock

import (
	"sync"
	"time"
)

// DateLayout is the local calendar-date format used for day-scoped state.
const DateLayout = "2006-01-02"

// Clock is the time source used by the stores that care about "now" and "today".
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a settable clock for tests and replays.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// DateString returns the local calendar date of t.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of c.Now().
func Today(c Clock) string {
	return DateString(c.Now())
}

// IsDayBefore reports whether prev is exactly the calendar day before day.
// Both arguments use DateLayout; unparsable input never matches.
func IsDayBefore(prev, day string) bool {
	p, err := time.Parse(DateLayout, prev)
	if err != nil {
		return false
	}
	d, err := time.Parse(DateLayout, day)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Equal(d)
}
