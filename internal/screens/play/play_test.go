package play

import (
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/gamestate"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/random"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/screens/summary"
	"github.com/abhisek/cramgames/internal/store"
	"github.com/abhisek/cramgames/internal/timer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLauncher() *game.Launcher {
	c := clock.NewManual(time.Date(2026, 10, 18, 17, 0, 0, 0, time.Local))
	repo := store.NewMemoryStateRepo()
	return game.NewLauncher(game.Deps{
		Adaptive:  adaptive.NewService(repo, c),
		Missions:  missions.NewTracker(repo, c, random.New(5), nil),
		Progress:  progression.NewService(repo, c),
		Clock:     c,
		Scheduler: timer.ManualScheduler{},
		Rand:      random.New(9),
		Warnings:  &strings.Builder{},
	}, 30, 0)
}

func startedScreen(t *testing.T, subject quiz.Subject) *PlayScreen {
	t.Helper()
	s := New(testLauncher(), game.QuickFire, subject)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected Init to schedule the first tick")
	}
	t.Cleanup(s.session.Close)
	return s
}

// collect runs cmd and flattens any batch into its messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func TestPlayScreen_InitStartsGame(t *testing.T) {
	s := startedScreen(t, quiz.Maths)

	if s.session.State() != gamestate.Playing {
		t.Errorf("state = %v, want Playing", s.session.State())
	}
	if len(s.question.Choices) != 4 {
		t.Errorf("choices = %d, want 4", len(s.question.Choices))
	}
	if s.Title() != "Quick Fire · Maths" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestPlayScreen_NumberKeyAnswers(t *testing.T) {
	s := startedScreen(t, quiz.Biology)
	first := s.question

	s.Update(keyPress(rune('1' + first.CorrectIndex())))

	if s.last == nil || !s.last.Correct {
		t.Fatal("expected a correct answer to be recorded")
	}
	if s.session.Score().Score != 100 {
		t.Errorf("score = %d, want 100", s.session.Score().Score)
	}
	if !strings.Contains(s.View(100, 30), "+100") {
		t.Error("expected feedback line with points")
	}
}

func TestPlayScreen_WrongAnswerShowsCorrection(t *testing.T) {
	s := startedScreen(t, quiz.Physics)
	q := s.question
	wrong := (q.CorrectIndex() + 1) % len(q.Choices)

	s.Update(keyPress(rune('1' + wrong)))

	if s.last == nil || s.last.Correct {
		t.Fatal("expected a wrong answer to be recorded")
	}
	if !strings.Contains(s.View(120, 30), q.Answer) {
		t.Errorf("expected the correct answer %q in the feedback", q.Answer)
	}
}

func TestPlayScreen_TypedAnswer(t *testing.T) {
	s := startedScreen(t, quiz.Maths)
	s.Update(specialKey(tea.KeyTab))
	if !s.typed {
		t.Fatal("expected Tab to switch a maths question to typed input")
	}

	answer := s.question.Answer
	for _, r := range answer {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.last == nil || !s.last.Correct {
		t.Fatalf("expected typed answer %q to be correct", answer)
	}
	if s.input.Value() != "" {
		t.Error("expected the input to clear for the next question")
	}
}

func TestPlayScreen_TabIgnoredForTextQuestions(t *testing.T) {
	s := startedScreen(t, quiz.English)
	s.Update(specialKey(tea.KeyTab))
	if s.typed {
		t.Error("expected text questions to stay multiple choice")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s := startedScreen(t, quiz.Maths)

	if !s.HandlesEscape() {
		t.Fatal("expected the play screen to handle Esc")
	}
	s.Update(specialKey(tea.KeyEscape))
	if !s.confirm || s.session.State() != gamestate.Paused {
		t.Fatal("expected Esc to pause and ask for confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirm || s.session.State() != gamestate.Playing {
		t.Error("expected N to resume the game")
	}
}

func TestPlayScreen_QuitConfirmYes(t *testing.T) {
	s := startedScreen(t, quiz.Maths)
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))

	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(finishMsg); !ok {
		t.Errorf("expected finishMsg, got %T", msgs[0])
	}
}

func TestPlayScreen_PauseFreezesClock(t *testing.T) {
	s := startedScreen(t, quiz.Maths)
	id := s.session.ID()

	s.Update(keyPress('p'))
	if s.session.State() != gamestate.Paused {
		t.Fatal("expected P to pause")
	}
	s.Update(tickMsg{sessionID: id})
	if got := s.session.Timer().Time(); got != 30 {
		t.Errorf("clock = %d while paused, want 30", got)
	}
	if !strings.Contains(s.View(100, 30), "PAUSED") {
		t.Error("expected paused banner")
	}

	s.Update(keyPress('p'))
	s.Update(tickMsg{sessionID: id})
	if got := s.session.Timer().Time(); got != 29 {
		t.Errorf("clock = %d after resume, want 29", got)
	}
}

func TestPlayScreen_TimeUpFinishes(t *testing.T) {
	s := startedScreen(t, quiz.Maths)
	id := s.session.ID()

	var cmd tea.Cmd
	for i := range 30 {
		_, cmd = s.Update(tickMsg{sessionID: id})
		if i < 29 && s.session.TimeUp() {
			t.Fatalf("time ran out early at tick %d", i+1)
		}
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(finishMsg); !ok {
		t.Fatalf("expected finishMsg, got %T", msgs[0])
	}

	_, cmd = s.Update(finishMsg{})
	if s.session.State() != gamestate.Finished {
		t.Errorf("state = %v, want Finished", s.session.State())
	}
	if s.HandlesEscape() {
		t.Error("expected Esc to fall through once finished")
	}

	var replaced, stats bool
	for _, msg := range collect(cmd) {
		switch m := msg.(type) {
		case router.ReplaceScreenMsg:
			_, replaced = m.Screen.(*summary.SummaryScreen)
		case screen.StatsChangedMsg:
			stats = m.Stats.Level == 1 && m.Stats.Streak == 1
		}
	}
	if !replaced {
		t.Error("expected the summary screen to replace the game")
	}
	if !stats {
		t.Error("expected header stats for a first game")
	}
}

func TestPlayScreen_StaleTickIgnored(t *testing.T) {
	s := startedScreen(t, quiz.Maths)
	_, cmd := s.Update(tickMsg{sessionID: "previous-game"})
	if cmd != nil {
		t.Error("expected a tick from another game to be dropped")
	}
	if got := s.session.Timer().Time(); got != 30 {
		t.Errorf("clock = %d, want 30", got)
	}
}

func TestPlayScreen_StatusLine(t *testing.T) {
	s := startedScreen(t, quiz.Biology)
	for range 3 {
		s.Update(keyPress(rune('1' + s.question.CorrectIndex())))
	}
	view := s.View(100, 30)
	for _, want := range []string{"SCORE " + strconv.Itoa(s.session.Score().Score), "COMBO x3", "0:30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
