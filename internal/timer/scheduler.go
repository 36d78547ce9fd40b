package timer

import (
	"sync"
	"time"
)

// Scheduler invokes fn every d until the returned cancel func is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs fn on its own goroutine from a time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	t := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				select {
				case <-done:
					return
				default:
					fn()
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
			close(done)
		})
	}
}

// ManualScheduler never fires. The owner drives the timer with Tick,
// typically from an event loop's own tick message.
type ManualScheduler struct{}

func (ManualScheduler) Every(time.Duration, func()) func() { return func() {} }
