package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: exam-hall navy with arcade highlights
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FDE047")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Subject colours, keyed by subject name.
var SubjectColors = map[string]lipgloss.Style{
	"Maths":     lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true),
	"Biology":   lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")).Bold(true),
	"Chemistry": lipgloss.NewStyle().Foreground(lipgloss.Color("#C084FC")).Bold(true),
	"Physics":   lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Bold(true),
	"English":   lipgloss.NewStyle().Foreground(lipgloss.Color("#F472B6")).Bold(true),
}

// Subject returns the style for a subject, falling back to Body.
func Subject(name string) lipgloss.Style {
	if s, ok := SubjectColors[name]; ok {
		return s
	}
	return Body
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Countdown
var (
	TimerCalm = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	TimerUrgent = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	TimerCritical = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Blink(true)
)

// Combo returns the style for a combo count; hotter colours for longer runs.
func Combo(combo int) lipgloss.Style {
	switch {
	case combo >= 15:
		return lipgloss.NewStyle().Foreground(Error).Bold(true)
	case combo >= 10:
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	case combo >= 5:
		return lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
