// Package adaptive tracks recent answer performance and nudges question
// difficulty up or down, globally and per subject.
package adaptive

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/cramgames/internal/clock"
)

const (
	// WindowSize bounds the rolling performance window.
	WindowSize = 20

	// SubjectWindow is how many of the newest entries drive subject modifiers.
	SubjectWindow = 10

	// EasierWindow is how many of the newest entries decide ShouldShowEasierQuestion.
	EasierWindow = 5

	MinModifier = -2.0
	MaxModifier = 2.0
)

// Difficulty is the band questions are drawn from.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Entry is one answer in the performance window.
type Entry struct {
	Timestamp      time.Time `json:"timestamp"`
	Correct        bool      `json:"correct"`
	ResponseTimeMs int       `json:"responseTimeMs"`
}

// State is the persisted form of a Tracker.
type State struct {
	RecentPerformance  []Entry            `json:"recentPerformance"`
	DifficultyModifier float64            `json:"difficultyModifier"`
	SubjectModifiers   map[string]float64 `json:"subjectModifiers"`
	ConfidenceScore    float64            `json:"confidenceScore"`
}

// Tracker holds the adaptive difficulty state.
type Tracker struct {
	clock clock.Clock
	state State
}

// NewTracker returns an empty tracker. A nil clock uses the system clock.
func NewTracker(c clock.Clock) *Tracker {
	if c == nil {
		c = clock.System{}
	}
	return &Tracker{
		clock: c,
		state: State{SubjectModifiers: make(map[string]float64)},
	}
}

// RecordAnswer appends an answer to the window and re-evaluates the
// global and subject modifiers. An empty subject skips the subject rule.
func (t *Tracker) RecordAnswer(correct bool, responseTimeMs int, subject string) {
	entry := Entry{
		Timestamp:      t.clock.Now(),
		Correct:        correct,
		ResponseTimeMs: max(responseTimeMs, 0),
	}
	window := append(t.state.RecentPerformance, entry)
	if len(window) > WindowSize {
		window = window[len(window)-WindowSize:]
	}
	t.state.RecentPerformance = window

	n := len(window)
	acc := accuracy(window)
	avgMs := float64(lo.SumBy(window, func(e Entry) int { return e.ResponseTimeMs })) / float64(n)

	mod := t.state.DifficultyModifier
	switch {
	case acc > 0.85 && avgMs < 3000 && n >= 10:
		mod += 0.2
	case acc < 0.5 && n >= 5:
		mod -= 0.3
	case acc >= 0.5 && acc < 0.6 && n >= 8:
		mod -= 0.1
	}
	t.state.DifficultyModifier = clampModifier(mod)

	if subject != "" {
		subjectAcc := accuracy(lastN(window, SubjectWindow))
		sm := t.state.SubjectModifiers[subject]
		switch {
		case subjectAcc < 0.5:
			sm -= 0.2
		case subjectAcc > 0.85:
			sm += 0.1
		}
		t.state.SubjectModifiers[subject] = clampModifier(sm)
	}

	t.state.ConfidenceScore = math.Min(1, float64(n)/WindowSize)
}

// DifficultyForSubject combines the global and subject modifiers.
// Unknown subjects contribute 0.
func (t *Tracker) DifficultyForSubject(subject string) Difficulty {
	return band(t.state.DifficultyModifier + t.state.SubjectModifiers[subject])
}

// OverallDifficulty uses the global modifier alone.
func (t *Tracker) OverallDifficulty() Difficulty {
	return band(t.state.DifficultyModifier)
}

// ShouldShowEasierQuestion reports a struggling player: at least five
// answers recorded and under 40% of the last five correct.
func (t *Tracker) ShouldShowEasierQuestion() bool {
	w := t.state.RecentPerformance
	if len(w) < EasierWindow {
		return false
	}
	return accuracy(lastN(w, EasierWindow)) < 0.4
}

// Reset clears all performance history and modifiers.
func (t *Tracker) Reset() {
	t.state = State{SubjectModifiers: make(map[string]float64)}
}

// Accuracy is the fraction correct over the whole window (0 when empty).
func (t *Tracker) Accuracy() float64 { return accuracy(t.state.RecentPerformance) }

func (t *Tracker) DifficultyModifier() float64 { return t.state.DifficultyModifier }

// SubjectModifier returns the modifier for subject, 0 when unseen.
func (t *Tracker) SubjectModifier(subject string) float64 {
	return t.state.SubjectModifiers[subject]
}

func (t *Tracker) ConfidenceScore() float64 { return t.state.ConfidenceScore }

// WindowLen returns the number of entries in the window.
func (t *Tracker) WindowLen() int { return len(t.state.RecentPerformance) }

// Snapshot returns a deep copy of the tracker state for persistence.
func (t *Tracker) Snapshot() State {
	s := State{
		RecentPerformance:  append([]Entry(nil), t.state.RecentPerformance...),
		DifficultyModifier: t.state.DifficultyModifier,
		SubjectModifiers:   make(map[string]float64, len(t.state.SubjectModifiers)),
		ConfidenceScore:    t.state.ConfidenceScore,
	}
	for k, v := range t.state.SubjectModifiers {
		s.SubjectModifiers[k] = v
	}
	return s
}

// Restore replaces the tracker state, re-applying the window and clamp
// bounds in case the stored copy was edited by hand.
func (t *Tracker) Restore(s State) {
	window := append([]Entry(nil), s.RecentPerformance...)
	if len(window) > WindowSize {
		window = window[len(window)-WindowSize:]
	}
	mods := make(map[string]float64, len(s.SubjectModifiers))
	for k, v := range s.SubjectModifiers {
		mods[k] = clampModifier(v)
	}
	t.state = State{
		RecentPerformance:  window,
		DifficultyModifier: clampModifier(s.DifficultyModifier),
		SubjectModifiers:   mods,
		ConfidenceScore:    math.Min(1, float64(len(window))/WindowSize),
	}
}

func band(total float64) Difficulty {
	switch {
	case total <= -1:
		return Easy
	case total >= 1:
		return Hard
	default:
		return Medium
	}
}

func accuracy(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	correct := lo.CountBy(entries, func(e Entry) bool { return e.Correct })
	return float64(correct) / float64(len(entries))
}

func lastN(entries []Entry, n int) []Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

// clampModifier bounds v to [MinModifier, MaxModifier] and rounds to two
// decimals so repeated ±0.1 steps land exactly on the band thresholds.
func clampModifier(v float64) float64 {
	v = math.Round(v*100) / 100
	return lo.Clamp(v, MinModifier, MaxModifier)
}
