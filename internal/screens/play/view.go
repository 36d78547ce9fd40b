package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/gamestate"
	"github.com/abhisek/cramgames/internal/ui/layout"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirm {
		return renderQuitConfirm(width)
	}
	if s.finished {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "\n\n\n  Tallying your score...")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.session.State() == gamestate.Paused {
		b.WriteString(layout.Centered(theme.Title, width, "PAUSED"))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Hint, width, "The clock is stopped. Press P to resume."))
		return b.String()
	}

	subject := theme.Subject(string(s.question.Subject)).Render(string(s.question.Subject))
	b.WriteString(layout.Centered(lipgloss.NewStyle(), width, subject+theme.Hint.Render("  ·  "+string(s.question.Difficulty))))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, s.question.Prompt))
	b.WriteString("\n\n")

	if s.typed {
		b.WriteString(layout.Centered(lipgloss.NewStyle(), width, "Answer: "+s.input.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	}
	b.WriteString("\n\n")
	b.WriteString(s.renderFeedback(width))
	return b.String()
}

// renderStatusLine shows the score and combo on the left and the clock on
// the right.
func (s *PlayScreen) renderStatusLine(width int) string {
	st := s.session.Score()
	left := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("  SCORE %d", st.Score))
	if st.Combo >= 2 {
		left += theme.Combo(st.Combo).Render(fmt.Sprintf("   COMBO x%d  (%.1fx)", st.Combo, s.session.Scoring().ComboMultiplier()))
	}

	t := s.session.Timer()
	secs := t.Time()
	timerStyle := theme.TimerCalm
	switch {
	case t.IsCritical():
		timerStyle = theme.TimerCritical
	case t.IsUrgent():
		timerStyle = theme.TimerUrgent
	}
	right := timerStyle.Render(fmt.Sprintf("⏱ %d:%02d", secs/60, secs%60))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderFeedback reports the previous answer on one line, plus any missions
// it completed.
func (s *PlayScreen) renderFeedback(width int) string {
	r := s.last
	if r == nil {
		return ""
	}

	var line string
	if r.Correct {
		line = theme.Correct.Render(fmt.Sprintf("✓ +%d", r.Points))
		if r.TimeBonus > 0 {
			line += theme.Hint.Render(fmt.Sprintf("  (speed bonus %d)", r.TimeBonus))
		}
	} else {
		line = theme.Incorrect.Render("✗ " + r.Question.Prompt + "  →  " + r.Question.Answer)
	}

	var b strings.Builder
	b.WriteString(layout.Centered(lipgloss.NewStyle(), width, line))
	for _, m := range r.Missions {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), width,
			fmt.Sprintf("★ Mission complete: %s (+%d XP to claim)", m.Title, m.XPReward)))
	}
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, "End this game now?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Your score so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), width, "[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width, "[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
