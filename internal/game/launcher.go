package game

import (
	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/quiz"
)

// Launcher starts games that share one set of collaborators, so the
// adaptive history carries over from one game to the next.
type Launcher struct {
	Deps       Deps
	Seconds    int
	BasePoints int
}

// NewLauncher creates a launcher, filling in the clock and an in-memory
// adaptive service when deps leaves them unset.
func NewLauncher(deps Deps, seconds, basePoints int) *Launcher {
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Adaptive == nil {
		deps.Adaptive = adaptive.NewService(nil, deps.Clock)
	}
	return &Launcher{Deps: deps, Seconds: seconds, BasePoints: basePoints}
}

// New creates a ready session for mode and subject.
func (l *Launcher) New(mode Mode, subject quiz.Subject) *Session {
	return NewSession(Options{
		Mode:       mode,
		Subject:    subject,
		Seconds:    l.Seconds,
		BasePoints: l.BasePoints,
	}, l.Deps)
}
