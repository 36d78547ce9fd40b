package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/scoring"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/ui/layout"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

// SummaryScreen displays the end-of-game report.
type SummaryScreen struct {
	summary    game.Summary
	difficulty adaptive.Difficulty
	again      func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. again builds the screen for a rematch; nil
// disables it.
func New(sum game.Summary, difficulty adaptive.Difficulty, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: sum, difficulty: difficulty, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.again == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			if s.again == nil {
				return s, nil
			}
			next := s.again()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "q", "h":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	st := sum.State

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title, width, fmt.Sprintf("%s complete!", sum.Mode.DisplayName())))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Subject(string(sum.Subject)), width, string(sum.Subject)))
	b.WriteString("\n\n")

	grade := lipgloss.NewStyle().Foreground(gradeColor(sum.Grade)).Bold(true).Render("GRADE " + string(sum.Grade))
	b.WriteString(layout.Centered(lipgloss.NewStyle(), width, grade))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), width,
		fmt.Sprintf("Score %d", st.Score)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text), width,
		fmt.Sprintf("Correct: %d        Wrong: %d        Accuracy: %d%%        Best combo: %d",
			st.CorrectAnswers, st.WrongAnswers, sum.Accuracy, st.MaxCombo)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		fmt.Sprintf("Time played %d:%02d    Next difficulty: %s", sum.DurationSecs/60, sum.DurationSecs%60, s.difficulty)))
	b.WriteString("\n\n")

	xp := fmt.Sprintf("+%d XP", sum.XP)
	if sum.Perfect {
		xp += fmt.Sprintf("  (perfect game +%d)", scoring.PerfectBonusXP)
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true), width, xp))
	b.WriteString("\n")

	out := sum.Outcome
	if out.LeveledUp() {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), width,
			fmt.Sprintf("LEVEL UP! You reached level %d", out.Profile.Level())))
		b.WriteString("\n")
	}
	if out.NewBest {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true), width,
			"New best score for "+sum.Mode.DisplayName()+"!"))
		b.WriteString("\n")
	}

	if len(sum.Missions) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Missions"))
		b.WriteString("\n")
		b.WriteString(layout.Divider(width))
		b.WriteString("\n")
		for _, m := range sum.Missions {
			b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), width,
				fmt.Sprintf("★ %s complete, claim %d XP from the home screen", m.Title, m.XPReward)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// gradeColor returns the theme color for a letter grade.
func gradeColor(g scoring.Grade) color.Color {
	switch g {
	case scoring.GradeS, scoring.GradeAPlus:
		return theme.ArcadeYellow
	case scoring.GradeA, scoring.GradeB:
		return theme.Success
	case scoring.GradeC, scoring.GradeD:
		return theme.Warning
	default:
		return theme.Error
	}
}
