package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/ui/components"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ██████╗██████╗  █████╗ ███╗   ███╗
██╔════╝██╔══██╗██╔══██╗████╗ ████║
██║     ██████╔╝███████║██╔████╔██║
██║     ██╔══██╗██╔══██║██║╚██╔╝██║
╚██████╗██║  ██║██║  ██║██║ ╚═╝ ██║
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝
          G  A  M  E  S`

const arcadeTitleCompact = "C · R · A · M · G · A · M · E · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders level, XP and streaks in a bordered box matching
// content width.
func renderStatsBar(p progression.Profile, ms missions.Stats, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	missionStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	level, into, span := progression.LevelProgress(p.TotalXP)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(fmt.Sprintf("★%d", level)),
			xpStyle.Render(fmt.Sprintf("◆%d", p.TotalXP)),
			streakStyle.Render(fmt.Sprintf("🔥%d", p.CurrentStreak)),
			missionStyle.Render(fmt.Sprintf("⚑%d", ms.CurrentMissionStreak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render(fmt.Sprintf("★ LEVEL %d", level)),
			xpStyle.Render(fmt.Sprintf("◆ %d/%d XP", into, span)),
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY", p.CurrentStreak)),
			missionStyle.Render(fmt.Sprintf("⚑ %d MISSION", ms.CurrentMissionStreak)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMissionCard shows today's mission with its progress.
func renderMissionCard(m *missions.Mission, cw int) string {
	if m == nil {
		return components.ArcadeCard(theme.Hint.Render("No mission today"), cw)
	}

	head := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("DAILY MISSION  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Title)

	bar := components.NewProgressBar("", m.Fraction(), cw-8)
	bar.Caption = fmt.Sprintf("%d/%d", m.Progress, m.Target)

	var status string
	switch {
	case m.Claimed():
		status = theme.Hint.Render(fmt.Sprintf("Claimed ✓  +%d XP", m.XPReward))
	case m.Claimable():
		bar.Fill = theme.Success
		status = theme.Correct.Render(fmt.Sprintf("READY TO CLAIM  +%d XP", m.XPReward))
	default:
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Reward  +%d XP", m.XPReward))
	}

	body := head + "\n" + theme.Hint.Render(m.Description) + "\n" + bar.View() + "\n" + status
	return components.ArcadeCard(body, cw)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
