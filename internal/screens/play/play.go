package play

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/gamestate"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/screens/summary"
	"github.com/abhisek/cramgames/internal/ui/components"
	"github.com/abhisek/cramgames/internal/ui/layout"
)

// PlayScreen runs one game: countdown, questions and answer feedback.
type PlayScreen struct {
	launcher *game.Launcher
	session  *game.Session
	question quiz.Question
	choices  components.MultiChoice
	input    components.TextInput
	typed    bool
	last     *game.AnswerResult
	confirm  bool
	finished bool
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscapeHandler = (*PlayScreen)(nil)

// New creates a play screen for a fresh game of mode and subject.
func New(l *game.Launcher, mode game.Mode, subject quiz.Subject) *PlayScreen {
	return &PlayScreen{
		launcher: l,
		session:  l.New(mode, subject),
		input:    components.NewTextInput("Type your answer...", true, 12),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	q, err := s.session.Start()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.setQuestion(q)
	return tea.Batch(s.tick(), s.input.Init())
}

func (s *PlayScreen) Title() string {
	return s.session.Mode().DisplayName() + " · " + string(s.session.Subject())
}

func (s *PlayScreen) HandlesEscape() bool { return !s.finished && s.errMsg == "" }

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	case s.session.State() == gamestate.Paused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	case s.typed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Choices"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "P", Description: "Pause"},
	}
	if s.numeric() {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Type"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case finishMsg:
		return s.handleFinish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typed {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if s.finished || msg.sessionID != s.session.ID() {
		return s, nil
	}
	if s.session.Tick() {
		return s, finish
	}
	return s, s.tick()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finished {
		return s, nil
	}

	if s.confirm {
		switch key {
		case "y", "Y":
			s.confirm = false
			return s, finish
		case "n", "N", "esc":
			s.confirm = false
			_ = s.session.Resume()
		}
		return s, nil
	}

	if key == "esc" {
		if s.session.State() == gamestate.Playing {
			_ = s.session.Pause()
		}
		s.confirm = true
		return s, nil
	}

	if s.session.State() == gamestate.Paused {
		if key == "p" || key == "P" {
			_ = s.session.Resume()
		}
		return s, nil
	}

	switch key {
	case "p", "P":
		_ = s.session.Pause()
		return s, nil
	case "tab":
		if s.numeric() {
			s.typed = !s.typed
			s.input.Clear()
		}
		return s, nil
	}

	if s.typed {
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.submit(func(ctx context.Context) (game.AnswerResult, error) {
				return s.session.Answer(ctx, s.input.Value())
			})
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	s.choices, _ = s.choices.Update(msg)
	if s.choices.Submitted() {
		idx := s.choices.Chosen
		return s.submit(func(ctx context.Context) (game.AnswerResult, error) {
			return s.session.AnswerChoice(ctx, idx)
		})
	}
	return s, nil
}

func (s *PlayScreen) submit(answer func(context.Context) (game.AnswerResult, error)) (screen.Screen, tea.Cmd) {
	res, err := answer(context.Background())
	if err != nil {
		if errors.Is(err, game.ErrNotPlaying) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}
	s.last = &res

	if s.session.TimeUp() {
		return s, finish
	}
	s.setQuestion(s.session.NextQuestion())
	return s, nil
}

func (s *PlayScreen) handleFinish() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	s.finished = true
	defer s.session.Close()

	sum, err := s.session.Finish(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	mode, subject := s.session.Mode(), s.session.Subject()
	l := s.launcher
	next := summary.New(sum, s.session.Adaptive().DifficultyForSubject(string(subject)), func() screen.Screen {
		return New(l, mode, subject)
	})

	cmds := []tea.Cmd{func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }}
	if l.Deps.Progress != nil {
		p := sum.Outcome.Profile
		stats := layout.HeaderStats{Level: p.Level(), XP: p.TotalXP, Streak: p.CurrentStreak}
		cmds = append(cmds, func() tea.Msg { return screen.StatsChangedMsg{Stats: stats} })
	}
	return s, tea.Batch(cmds...)
}

func (s *PlayScreen) setQuestion(q quiz.Question) {
	s.question = q
	s.choices = components.NewMultiChoice(q.Choices)
	s.input.Clear()
	if !s.numeric() {
		s.typed = false
	}
}

func (s *PlayScreen) numeric() bool {
	return s.question.AnswerType == quiz.AnswerTypeInteger || s.question.AnswerType == quiz.AnswerTypeDecimal
}

func (s *PlayScreen) tick() tea.Cmd {
	id := s.session.ID()
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{sessionID: id, at: t}
	})
}

func finish() tea.Msg { return finishMsg{} }
