// Package game composes the scoring, timer, state machine, adaptive,
// mission and progression components into one playable session.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/gamestate"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/scoring"
	"github.com/abhisek/cramgames/internal/store"
	"github.com/abhisek/cramgames/internal/timer"
)

var (
	// ErrNotPlaying is returned when answering outside the playing state.
	ErrNotPlaying = errors.New("game is not in progress")

	// ErrNoQuestion is returned when answering before NextQuestion.
	ErrNoQuestion = errors.New("no question pending")
)

// DefaultSeconds is the QuickFire clock when Options.Seconds is unset.
const DefaultSeconds = 60

// Options configures one game.
type Options struct {
	Mode       Mode
	Subject    quiz.Subject
	Seconds    int
	BasePoints int

	// Source overrides the subject's default question source.
	Source quiz.Source
}

// Deps are the long-lived collaborators shared across games. Nil fields
// are skipped, except Adaptive which falls back to an in-memory service.
type Deps struct {
	Adaptive  *adaptive.Service
	Missions  *missions.Tracker
	Progress  *progression.Service
	Events    store.EventRepo
	Clock     clock.Clock
	Scheduler timer.Scheduler
	Rand      *rand.Rand

	// Warnings receives non-fatal persistence failures. Defaults to stderr.
	Warnings io.Writer
}

// AnswerResult reports the effect of one answer.
type AnswerResult struct {
	Question   quiz.Question
	Correct    bool
	Points     int
	TimeBonus  int
	Combo      int
	Multiplier float64
	ResponseMs int

	// Missions lists missions completed by this answer.
	Missions []missions.Mission
}

// Summary is the end-of-game report.
type Summary struct {
	SessionID    string
	Mode         Mode
	Subject      quiz.Subject
	State        scoring.State
	Accuracy     int
	Grade        scoring.Grade
	XP           int
	Perfect      bool
	DurationSecs int
	Outcome      progression.Outcome

	// Missions lists missions completed by finishing the game.
	Missions []missions.Mission
}

// Session is a single game from ready to finished.
type Session struct {
	id      string
	opts    Options
	deps    Deps
	score   *scoring.Tracker
	timer   *timer.Timer
	machine *gamestate.Machine
	source  quiz.Source

	current   *quiz.Question
	askedAt   time.Time
	startedAt time.Time
	timeUp    atomic.Bool
}

// NewSession creates a session in the ready state.
func NewSession(opts Options, deps Deps) *Session {
	if opts.Mode == "" {
		opts.Mode = QuickFire
	}
	if opts.Subject == "" {
		opts.Subject = quiz.Maths
	}
	if opts.Seconds <= 0 {
		opts.Seconds = DefaultSeconds
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Adaptive == nil {
		deps.Adaptive = adaptive.NewService(nil, deps.Clock)
	}
	if deps.Warnings == nil {
		deps.Warnings = os.Stderr
	}
	if opts.Source == nil {
		opts.Source = quiz.SourceFor(opts.Subject, deps.Rand)
	}

	s := &Session{
		id:      uuid.NewString(),
		opts:    opts,
		deps:    deps,
		score:   scoring.NewTracker(scoring.Options{BasePoints: opts.BasePoints}),
		machine: gamestate.New(),
		source:  opts.Source,
	}
	s.timer = timer.New(timer.Options{
		InitialTime: opts.Mode.Seconds(opts.Seconds),
		CountDown:   true,
		OnTimeUp:    func() { s.timeUp.Store(true) },
		Scheduler:   deps.Scheduler,
	})
	s.machine.OnChange(s.syncTimer)
	return s
}

// syncTimer keeps the clock running only while playing.
func (s *Session) syncTimer(_, to gamestate.State) {
	switch to {
	case gamestate.Playing:
		s.timer.Start()
	default:
		s.timer.Pause()
	}
}

// Start begins play and deals the first question.
func (s *Session) Start() (quiz.Question, error) {
	if err := s.machine.Start(); err != nil {
		return quiz.Question{}, err
	}
	s.startedAt = s.deps.Clock.Now()
	return s.NextQuestion(), nil
}

// NextQuestion deals a question at the current adaptive difficulty and
// sets the score multiplier to match.
func (s *Session) NextQuestion() quiz.Question {
	d := s.Difficulty()
	s.score.SetDifficultyMultiplier(scoring.DifficultyMultiplier(string(d)))

	q := s.source.Next(d)
	s.current = &q
	s.askedAt = s.deps.Clock.Now()
	return q
}

// Difficulty is the band the next question will be drawn from.
func (s *Session) Difficulty() adaptive.Difficulty {
	t := s.deps.Adaptive.Tracker()
	if t.ShouldShowEasierQuestion() {
		return adaptive.Easy
	}
	return t.DifficultyForSubject(string(s.opts.Subject))
}

// Answer checks typed input (text or a 1-based choice) against the
// pending question.
func (s *Session) Answer(ctx context.Context, input string) (AnswerResult, error) {
	if s.current == nil {
		return AnswerResult{}, s.answerErr()
	}
	return s.record(ctx, s.current.Check(input))
}

// AnswerChoice answers with a 0-based choice index.
func (s *Session) AnswerChoice(ctx context.Context, idx int) (AnswerResult, error) {
	if s.current == nil {
		return AnswerResult{}, s.answerErr()
	}
	return s.record(ctx, s.current.CheckChoice(idx))
}

func (s *Session) answerErr() error {
	if !s.machine.IsActive() {
		return ErrNotPlaying
	}
	return ErrNoQuestion
}

func (s *Session) record(ctx context.Context, correct bool) (AnswerResult, error) {
	if !s.machine.IsActive() {
		return AnswerResult{}, ErrNotPlaying
	}

	q := *s.current
	s.current = nil
	ms := int(s.deps.Clock.Now().Sub(s.askedAt).Milliseconds())

	res := AnswerResult{Question: q, Correct: correct, ResponseMs: ms}
	if correct {
		res.TimeBonus = s.opts.Mode.TimeBonus(ms)
		res.Points = s.score.RecordCorrect(res.TimeBonus)
		if s.opts.Mode == SpeedRound {
			s.timer.AddTime(SpeedRoundCorrectSeconds)
		}
	} else {
		s.score.RecordWrong()
		if s.opts.Mode == SpeedRound {
			s.timer.AddTime(SpeedRoundWrongSeconds)
			if s.timer.Time() == 0 {
				s.timeUp.Store(true)
			}
		}
	}
	res.Combo = s.score.Combo()
	res.Multiplier = s.score.ComboMultiplier()

	if err := s.deps.Adaptive.RecordAnswer(ctx, correct, ms, string(q.Subject)); err != nil {
		s.warnf("failed to save adaptive difficulty: %v", err)
	}

	if correct {
		match := s.match()
		res.Missions = append(res.Missions, s.progress(ctx, missions.AnswerCorrect, 1, match)...)
		res.Missions = append(res.Missions, s.progress(ctx, missions.SubjectCorrect, 1, match)...)
	}
	return res, nil
}

// Current returns the pending question.
func (s *Session) Current() (quiz.Question, bool) {
	if s.current == nil {
		return quiz.Question{}, false
	}
	return *s.current, true
}

// Pause freezes the clock.
func (s *Session) Pause() error { return s.machine.Pause() }

// Resume restarts the clock.
func (s *Session) Resume() error { return s.machine.Resume() }

// Tick advances the clock by one step when driven by a manual scheduler.
// It reports whether time has run out.
func (s *Session) Tick() bool {
	s.timer.Tick()
	return s.TimeUp()
}

// TimeUp reports whether the countdown reached zero.
func (s *Session) TimeUp() bool { return s.timeUp.Load() }

// Finish ends the game, appends it to the event log and folds it into
// progression and missions. Persistence failures are reported as warnings.
func (s *Session) Finish(ctx context.Context) (Summary, error) {
	if s.machine.State() == gamestate.Paused {
		if err := s.machine.Resume(); err != nil {
			return Summary{}, err
		}
	}
	if err := s.machine.Finish(); err != nil {
		return Summary{}, err
	}
	s.current = nil

	st := s.score.State()
	sum := Summary{
		SessionID:    s.id,
		Mode:         s.opts.Mode,
		Subject:      s.opts.Subject,
		State:        st,
		Accuracy:     s.score.Accuracy(),
		Grade:        s.score.Grade(),
		XP:           s.score.XP(),
		Perfect:      s.score.IsPerfect(),
		DurationSecs: int(s.deps.Clock.Now().Sub(s.startedAt).Seconds()),
	}

	if s.deps.Events != nil {
		err := s.deps.Events.AppendGameEvent(ctx, store.GameEventData{
			SessionID:    sum.SessionID,
			GameMode:     string(sum.Mode),
			Subject:      string(sum.Subject),
			Score:        st.Score,
			MaxCombo:     st.MaxCombo,
			Correct:      st.CorrectAnswers,
			Wrong:        st.WrongAnswers,
			Accuracy:     sum.Accuracy,
			Grade:        string(sum.Grade),
			XP:           sum.XP,
			DurationSecs: sum.DurationSecs,
			Perfect:      sum.Perfect,
		})
		if err != nil {
			s.warnf("failed to log game event: %v", err)
		}
	}

	if s.deps.Progress != nil {
		out, err := s.deps.Progress.RecordGame(ctx, progression.GameResult{
			GameMode: string(sum.Mode),
			Subject:  string(sum.Subject),
			Score:    st.Score,
			XP:       sum.XP,
			Correct:  st.CorrectAnswers,
			Total:    s.score.Total(),
		})
		if err != nil {
			s.warnf("failed to save progression: %v", err)
		}
		sum.Outcome = out
	}

	match := s.match()
	sum.Missions = append(sum.Missions, s.progress(ctx, missions.PlayGames, 1, match)...)
	sum.Missions = append(sum.Missions, s.progress(ctx, missions.PlayMode, 1, match)...)
	sum.Missions = append(sum.Missions, s.progress(ctx, missions.ScorePoints, st.Score, match)...)
	if sum.Perfect {
		sum.Missions = append(sum.Missions, s.progress(ctx, missions.PerfectGame, 1, match)...)
	}
	if s.deps.Missions != nil {
		u, err := s.deps.Missions.ReachProgress(ctx, missions.ReachCombo, st.MaxCombo, match)
		if err != nil {
			s.warnf("failed to update mission: %v", err)
		} else if u.JustCompleted {
			sum.Missions = append(sum.Missions, u.Mission)
		}
	}
	return sum, nil
}

// Restart returns a finished session to ready with a fresh score and clock.
func (s *Session) Restart() error {
	if err := s.machine.Reset(); err != nil {
		return err
	}
	s.id = uuid.NewString()
	s.score.Reset()
	s.timer.Reset(nil)
	s.timeUp.Store(false)
	s.current = nil
	return nil
}

// Close releases the timer.
func (s *Session) Close() { s.timer.Stop() }

func (s *Session) ID() string                  { return s.id }
func (s *Session) Mode() Mode                  { return s.opts.Mode }
func (s *Session) Subject() quiz.Subject       { return s.opts.Subject }
func (s *Session) State() gamestate.State      { return s.machine.State() }
func (s *Session) Score() scoring.State        { return s.score.State() }
func (s *Session) Scoring() *scoring.Tracker   { return s.score }
func (s *Session) Timer() *timer.Timer         { return s.timer }
func (s *Session) Adaptive() *adaptive.Tracker { return s.deps.Adaptive.Tracker() }
func (s *Session) Missions() *missions.Tracker { return s.deps.Missions }

func (s *Session) match() missions.Match {
	return missions.Match{Subject: string(s.opts.Subject), GameMode: string(s.opts.Mode)}
}

// progress applies a mission update and returns the mission if it just
// completed.
func (s *Session) progress(ctx context.Context, typ missions.MissionType, amount int, match missions.Match) []missions.Mission {
	if s.deps.Missions == nil {
		return nil
	}
	u, err := s.deps.Missions.UpdateProgress(ctx, typ, amount, match)
	if err != nil {
		s.warnf("failed to update mission: %v", err)
		return nil
	}
	if u.JustCompleted {
		return []missions.Mission{u.Mission}
	}
	return nil
}

func (s *Session) warnf(format string, args ...any) {
	fmt.Fprintf(s.deps.Warnings, "warning: "+format+"\n", args...)
}
