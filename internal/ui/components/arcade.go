package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/ui/theme"
)

// ButtonWidth is the fixed width for arcade menu buttons.
const ButtonWidth = 24

// ContentWidth returns the uniform inner width used for all arcade sections.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(content)
}

// ArcadeMenu renders each menu item as a fixed-width button. In compact
// mode items are plain lines so they fit short terminals.
func ArcadeMenu(m Menu, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow)

	normalBtn := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var rows []string
	for i, item := range m.Items {
		switch {
		case compact && i == m.Selected:
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+item.Label+" "))
		case compact:
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if item.Disabled {
				style = style.Foreground(theme.TextDim)
			}
			rows = append(rows, style.Render("   "+item.Label))
		case item.Disabled:
			rows = append(rows, disabledBtn.Render(item.Label))
		case i == m.Selected:
			rows = append(rows, selectedBtn.Render("▸ "+item.Label))
		default:
			rows = append(rows, normalBtn.Render(item.Label))
		}
	}

	block := strings.Join(rows, "\n")
	if m.Selected >= 0 && m.Selected < len(m.Items) && m.Items[m.Selected].Hint != "" {
		hint := m.Items[m.Selected].Hint
		block += "\n\n" + theme.Hint.Render(hint)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
