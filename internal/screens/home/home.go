package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/screens/history"
	"github.com/abhisek/cramgames/internal/screens/subjects"
	"github.com/abhisek/cramgames/internal/ui/components"
	"github.com/abhisek/cramgames/internal/ui/layout"
	"github.com/abhisek/cramgames/internal/ui/theme"
)

// Menu positions.
const (
	itemQuickFire = iota
	itemSpeedRound
	itemClaim
	itemHistory
	itemExit
)

type homeLoadedMsg struct {
	Profile progression.Profile
	Mission *missions.Mission
	Stats   missions.Stats
	Err     error
}

type rewardClaimedMsg struct {
	XP      int
	Profile progression.Profile
	Err     error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	launcher *game.Launcher
	menu     components.Menu
	profile  progression.Profile
	mission  *missions.Mission
	mstats   missions.Stats
	notice   string
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(l *game.Launcher) *HomeScreen {
	h := &HomeScreen{launcher: l}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	l := h.launcher
	return []components.MenuItem{
		itemQuickFire: {Label: "QUICK FIRE", Hint: game.QuickFire.Description(), Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: subjects.New(l, game.QuickFire)} }
		}},
		itemSpeedRound: {Label: "SPEED ROUND", Hint: game.SpeedRound.Description(), Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: subjects.New(l, game.SpeedRound)} }
		}},
		itemClaim: {Label: "CLAIM REWARD", Disabled: h.mission == nil || !h.mission.Claimable(), Action: h.claim},
		itemHistory: {Label: "HISTORY", Disabled: l.Deps.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(l.Deps.Events)} }
		}},
		itemExit: {Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// load reads the profile and today's mission.
func (h *HomeScreen) load() tea.Cmd {
	deps := h.launcher.Deps
	return func() tea.Msg {
		ctx := context.Background()
		var msg homeLoadedMsg
		if deps.Progress != nil {
			p, err := deps.Progress.Profile(ctx)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			msg.Profile = p
		}
		if deps.Missions != nil {
			m, err := deps.Missions.Mission(ctx)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			st, err := deps.Missions.Stats(ctx)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			msg.Mission = &m
			msg.Stats = st
		}
		return msg
	}
}

// claim pays out the mission reward into the profile.
func (h *HomeScreen) claim() tea.Cmd {
	deps := h.launcher.Deps
	return func() tea.Msg {
		ctx := context.Background()
		if deps.Missions == nil {
			return rewardClaimedMsg{}
		}
		xp, err := deps.Missions.ClaimReward(ctx)
		if err != nil || xp == 0 {
			return rewardClaimedMsg{Err: err}
		}
		msg := rewardClaimedMsg{XP: xp}
		if deps.Progress != nil {
			msg.Profile, msg.Err = deps.Progress.AddBonusXP(ctx, xp)
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.profile = msg.Profile
		h.mission = msg.Mission
		h.mstats = msg.Stats
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		if !h.menu.Items[selected].Disabled {
			h.menu.Selected = selected
		}
		return h, nil

	case rewardClaimedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, h.load()
		}
		if msg.XP == 0 {
			return h, h.load()
		}
		h.notice = fmt.Sprintf("+%d XP claimed!", msg.XP)
		stats := layout.HeaderStats{Level: msg.Profile.Level(), XP: msg.Profile.TotalXP, Streak: msg.Profile.CurrentStreak}
		return h, tea.Batch(h.load(), func() tea.Msg { return screen.StatsChangedMsg{Stats: stats} })

	case screen.StatsChangedMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// mascotVariant celebrates a waiting reward and warns when yesterday's
// streak has not been extended today.
func (h *HomeScreen) mascotVariant() MascotVariant {
	if h.mission != nil && h.mission.Claimable() {
		return MascotCelebrating
	}
	c := h.launcher.Deps.Clock
	if c == nil {
		c = clock.System{}
	}
	if h.profile.CurrentStreak > 0 && clock.IsDayBefore(h.profile.LastPlayedDate, clock.Today(c)) {
		return MascotAlert
	}
	return MascotIdle
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight)

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections, renderStatsBar(h.profile, h.mstats, cw, compact))
	sections = append(sections, renderMissionCard(h.mission, cw))

	if h.errMsg != "" {
		sections = append(sections, layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), cw, "⚠ "+h.errMsg))
	} else if h.notice != "" {
		sections = append(sections, layout.Centered(theme.Correct, cw, h.notice))
	}

	sections = append(sections, components.ArcadeMenu(h.menu, cw, compact))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
