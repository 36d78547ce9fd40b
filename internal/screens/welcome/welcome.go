package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

const (
	frameInterval = 250 * time.Millisecond
	autoAdvance   = 3 * time.Second
)

const bannerArt = ` ██████╗██████╗  █████╗ ███╗   ███╗
██╔════╝██╔══██╗██╔══██╗████╗ ████║
██║     ██████╔╝███████║██╔████╔██║
██║     ██╔══██╗██╔══██║██║╚██╔╝██║
╚██████╗██║  ██║██║  ██║██║ ╚═╝ ██║
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝`

const bannerCompact = "C R A M"

type frameMsg struct{}

// WelcomeScreen is the splash shown at launch. Any key, or the auto-advance
// timeout, replaces it with the screen from next.
type WelcomeScreen struct {
	next     func() screen.Screen
	elapsed  time.Duration
	advanced bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.advanced {
			return w, nil
		}
		w.elapsed += frameInterval
		if w.elapsed >= autoAdvance {
			return w, w.advance()
		}
		return w, nextFrame()

	case tea.KeyPressMsg:
		return w, w.advance()
	}
	return w, nil
}

func (w *WelcomeScreen) advance() tea.Cmd {
	if w.advanced {
		return nil
	}
	w.advanced = true
	s := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

// RenderBanner returns the CRAM banner, or a one-line version under 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("✎  G A M E S"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Revise fast. Score big."),
		"",
		theme.Hint.Render("press any key to start"),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
