package play

import "time"

// tickMsg is sent every second to advance the countdown. It carries the
// session ID so ticks scheduled by a finished game are dropped.
type tickMsg struct {
	sessionID string
	at        time.Time
}

// finishMsg triggers the end-of-game flow.
type finishMsg struct{}
