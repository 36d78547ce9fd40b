// Package subjects is the subject picker shown before a game starts.
package subjects

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/screens/play"
	"github.com/abhisek/cramgames/internal/ui/components"
	"github.com/abhisek/cramgames/internal/ui/layout"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

// SubjectsScreen lets the player pick a subject for a game mode.
type SubjectsScreen struct {
	launcher *game.Launcher
	mode     game.Mode
	menu     components.Menu
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New creates a picker that starts a game of mode.
func New(l *game.Launcher, mode game.Mode) *SubjectsScreen {
	s := &SubjectsScreen{launcher: l, mode: mode}

	var items []components.MenuItem
	for _, subj := range quiz.AllSubjects() {
		items = append(items, components.MenuItem{
			Label: string(subj),
			Hint:  s.hint(subj),
			Action: func() tea.Cmd {
				next := play.New(l, mode, subj)
				return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

// hint names the difficulty the player will start the subject at.
func (s *SubjectsScreen) hint(subj quiz.Subject) string {
	if s.launcher.Deps.Adaptive == nil {
		return ""
	}
	d := s.launcher.Deps.Adaptive.Tracker().DifficultyForSubject(string(subj))
	return fmt.Sprintf("starts at %s", d)
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Title() string {
	return s.mode.DisplayName()
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Subject"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), cw,
		strings.ToUpper(s.mode.DisplayName())))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Hint, cw, s.mode.Description()))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Subtitle, cw, "Pick a subject"))
	b.WriteString("\n\n")
	b.WriteString(components.ArcadeMenu(s.menu, cw, layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight)))

	return components.CabinetFrame(b.String(), width, height)
}
