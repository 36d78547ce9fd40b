package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/scoring"
	"github.com/abhisek/cramgames/internal/screen"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "stub" }

func testSummary() game.Summary {
	return game.Summary{
		SessionID: "s-1",
		Mode:      game.SpeedRound,
		Subject:   quiz.Chemistry,
		State: scoring.State{
			Score:          1240,
			MaxCombo:       7,
			CorrectAnswers: 9,
			WrongAnswers:   1,
		},
		Accuracy:     90,
		Grade:        scoring.GradeAPlus,
		XP:           130,
		DurationSecs: 74,
		Outcome: progression.Outcome{
			Profile:       progression.Profile{TotalXP: 130},
			PreviousLevel: 1,
			NewBest:       true,
		},
		Missions: []missions.Mission{{Title: "Combo Master", XPReward: 60}},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), adaptive.Medium, nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), adaptive.Hard, nil)
	view := s.View(100, 30)

	for _, want := range []string{"Speed Round complete!", "GRADE A+", "Score 1240", "+130 XP", "LEVEL UP", "New best score", "Combo Master", "hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_PerfectGame(t *testing.T) {
	sum := testSummary()
	sum.Perfect = true
	view := New(sum, adaptive.Medium, nil).View(100, 30)
	if !strings.Contains(view, "perfect game +50") {
		t.Error("expected perfect game bonus in view")
	}
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	built := 0
	s := New(testSummary(), adaptive.Medium, func() screen.Screen {
		built++
		return stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected Enter to replace the summary with a new game")
	}
	if built != 1 {
		t.Errorf("again called %d times, want 1", built)
	}
}

func TestSummaryScreen_PlayAgainDisabled(t *testing.T) {
	s := New(testSummary(), adaptive.Medium, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command when rematch is disabled")
	}
}

func TestSummaryScreen_Home(t *testing.T) {
	s := New(testSummary(), adaptive.Medium, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected q to pop back home")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), adaptive.Medium, func() screen.Screen { return stubScreen{} })
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
