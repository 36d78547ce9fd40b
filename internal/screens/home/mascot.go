package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default indigo
	MascotCelebrating                      // Gold, star eyes: mission reward waiting
	MascotAlert                            // Orange, exclamation: streak at risk
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ A+✎ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A+✎ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ A+✎ │
└─────┘`

var mascots = map[MascotVariant]struct {
	art string
	fg  color.Color
}{
	MascotIdle:        {mascotIdle, theme.Primary},
	MascotCelebrating: {mascotCelebrating, theme.ArcadeYellow},
	MascotAlert:       {mascotAlert, theme.Accent},
}

// RenderMascot returns the mascot art for v, coloured to match its mood.
func RenderMascot(v MascotVariant) string {
	m, ok := mascots[v]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}
