package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/store"
	"github.com/abhisek/cramgames/internal/ui/layout"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

// pageSize is the number of games listed.
const pageSize = 50

type historyLoadedMsg struct {
	mode   game.Mode
	games  []store.GameEventRecord
	totals store.GameTotals
	err    error
}

// HistoryScreen lists past games, newest first, optionally filtered by mode.
type HistoryScreen struct {
	events store.EventRepo
	mode   game.Mode // empty for every mode

	games   []store.GameEventRecord
	totals  store.GameTotals
	cursor  int
	open    map[int64]bool
	loading bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events, open: make(map[int64]bool), loading: true}
}

func (s *HistoryScreen) Init() tea.Cmd { return s.load(s.mode) }

// load fetches the page and the totals for mode.
func (s *HistoryScreen) load(mode game.Mode) tea.Cmd {
	events := s.events
	return func() tea.Msg {
		ctx := context.Background()
		opts := store.QueryOpts{GameMode: string(mode)}

		totals, err := events.GameTotals(ctx, opts)
		if err != nil {
			return historyLoadedMsg{mode: mode, err: fmt.Errorf("load totals: %w", err)}
		}
		opts.Limit = pageSize
		games, err := events.QueryGameEvents(ctx, opts)
		if err != nil {
			return historyLoadedMsg{mode: mode, err: fmt.Errorf("load games: %w", err)}
		}
		return historyLoadedMsg{mode: mode, games: games, totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	if s.mode == "" {
		return "History"
	}
	return "History · " + s.mode.DisplayName()
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "m", Description: "Mode"},
		{Key: "Esc", Description: "Back"},
	}
}

// nextMode cycles all → each mode → all.
func nextMode(m game.Mode) game.Mode {
	modes := game.AllModes()
	if m == "" {
		return modes[0]
	}
	for i, mode := range modes {
		if mode == m && i+1 < len(modes) {
			return modes[i+1]
		}
	}
	return ""
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.mode != s.mode {
			return s, nil
		}
		s.loading = false
		s.errMsg = ""
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.games, s.totals = msg.games, msg.totals
		s.cursor = min(s.cursor, max(len(s.games)-1, 0))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "m":
			s.mode = nextMode(s.mode)
			s.loading = true
			s.cursor = 0
			return s, s.load(s.mode)
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = max(min(s.cursor+1, len(s.games)-1), 0)
		case "enter":
			if s.cursor < len(s.games) {
				seq := s.games[s.cursor].Sequence
				s.open[seq] = !s.open[seq]
			}
		}
	}
	return s, nil
}

func notice(width int, style lipgloss.Style, text string) string {
	return "\n\n" + layout.Centered(style, width, text)
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return notice(width, lipgloss.NewStyle().Foreground(theme.Error), "Error: "+s.errMsg)
	case s.loading:
		return notice(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Loading history...")
	case len(s.games) == 0 && s.mode != "":
		return notice(width, theme.Hint, "No "+s.mode.DisplayName()+" games yet. Press m to change mode.")
	case len(s.games) == 0:
		return notice(width, theme.Hint, "No games yet. Go play one!")
	}

	rows := []string{"", s.totalsLine(width), layout.Divider(width), ""}
	for i, g := range s.games {
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.row(i, g)))
		if s.open[g.Sequence] {
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, details(g)))
		}
	}
	return strings.Join(rows, "\n")
}

func (s *HistoryScreen) row(i int, g store.GameEventRecord) string {
	marker, style := "  ", theme.Body
	if i == s.cursor {
		marker, style = "▸ ", theme.Selected
	}

	line := fmt.Sprintf("%s%s  %-11s  %-9s  %6d pts  %-2s  %3d%%",
		marker, g.Timestamp.Local().Format("Jan 02 15:04"),
		game.Mode(g.GameMode).DisplayName(), g.Subject, g.Score, g.Grade, g.Accuracy)
	if g.Perfect {
		line += "  ★"
	}
	return style.Render(line)
}

func details(g store.GameEventRecord) string {
	text := fmt.Sprintf("    %d correct, %d wrong, best combo %d, +%d XP, %d:%02d played",
		g.Correct, g.Wrong, g.MaxCombo, g.XP, g.DurationSecs/60, g.DurationSecs%60)
	return theme.Hint.Render(text)
}

func (s *HistoryScreen) totalsLine(width int) string {
	t := s.totals
	line := fmt.Sprintf("%d games   best %d   total %d pts   %d XP   %d perfect",
		t.Games, t.BestScore, t.TotalScore, t.TotalXP, t.Perfect)
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true), width, line)
}
