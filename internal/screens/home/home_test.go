package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cramgames/internal/clock"
	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/missions"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/random"
	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
	"github.com/abhisek/cramgames/internal/screens/subjects"
	"github.com/abhisek/cramgames/internal/store"
)

var playOne = missions.Template{
	Type:        missions.PlayGames,
	Title:       "Warm Up",
	Description: "Play 1 game",
	Target:      1,
	XPReward:    40,
}

func testHome(t *testing.T) (*HomeScreen, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local))
	repo := store.NewMemoryStateRepo()
	l := game.NewLauncher(game.Deps{
		Missions: missions.NewTracker(repo, c, random.New(1), []missions.Template{playOne}),
		Progress: progression.NewService(repo, c),
		Clock:    c,
	}, 60, 0)

	h := New(l)
	h.Update(h.Init()())
	return h, c
}

func press(h *HomeScreen, code rune) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// collect runs cmd and flattens any batch into its messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func TestHomeScreen_LoadsMission(t *testing.T) {
	h, _ := testHome(t)

	if h.mission == nil || h.mission.Title != "Warm Up" {
		t.Fatalf("mission = %+v, want Warm Up", h.mission)
	}
	if !h.menu.Items[itemClaim].Disabled {
		t.Error("expected claim to be disabled before the mission is done")
	}
	if !h.menu.Items[itemHistory].Disabled {
		t.Error("expected history to be disabled without an event log")
	}

	view := h.View(120, 40)
	for _, want := range []string{"DAILY MISSION", "Warm Up", "0/1", "LEVEL 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHomeScreen_QuickFireOpensPicker(t *testing.T) {
	h, _ := testHome(t)
	cmd := press(h, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push")
	}
	if _, ok := push.Screen.(*subjects.SubjectsScreen); !ok {
		t.Errorf("pushed %T, want subject picker", push.Screen)
	}
}

func TestHomeScreen_ClaimReward(t *testing.T) {
	h, _ := testHome(t)
	deps := h.launcher.Deps

	_, err := deps.Missions.UpdateProgress(context.Background(), missions.PlayGames, 1, missions.Match{})
	if err != nil {
		t.Fatal(err)
	}
	h.Update(screen.StatsChangedMsg{})
	h.Update(h.load()())

	if h.menu.Items[itemClaim].Disabled {
		t.Fatal("expected claim to be enabled once the mission is complete")
	}
	if h.mascotVariant() != MascotCelebrating {
		t.Error("expected the mascot to celebrate a waiting reward")
	}

	press(h, tea.KeyDown)
	press(h, tea.KeyDown)
	if h.menu.Selected != itemClaim {
		t.Fatalf("selected = %d, want claim", h.menu.Selected)
	}
	cmd := press(h, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a claim command")
	}
	claimed, ok := cmd().(rewardClaimedMsg)
	if !ok || claimed.XP != 40 {
		t.Fatalf("claim = %+v, want 40 XP", claimed)
	}

	_, cmd = h.Update(claimed)
	if !strings.Contains(h.View(120, 40), "+40 XP claimed!") {
		t.Error("expected claim notice")
	}
	var gotStats bool
	for _, msg := range collect(cmd) {
		switch m := msg.(type) {
		case screen.StatsChangedMsg:
			gotStats = m.Stats.XP == 40
		case homeLoadedMsg:
			h.Update(m)
		}
	}
	if !gotStats {
		t.Error("expected header stats with the bonus XP")
	}
	if !h.menu.Items[itemClaim].Disabled {
		t.Error("expected claim to be disabled after claiming")
	}

	p, err := deps.Progress.Profile(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalXP != 40 {
		t.Errorf("TotalXP = %d, want 40", p.TotalXP)
	}
}

func TestHomeScreen_StreakAtRisk(t *testing.T) {
	h, c := testHome(t)
	deps := h.launcher.Deps

	c.Set(time.Date(2026, 10, 17, 19, 0, 0, 0, time.Local))
	if _, err := deps.Progress.RecordGame(context.Background(), progression.GameResult{GameMode: "quick_fire", Subject: "Maths", Score: 300, XP: 20, Correct: 3, Total: 3}); err != nil {
		t.Fatal(err)
	}
	c.Set(time.Date(2026, 10, 18, 8, 0, 0, 0, time.Local))
	h.Update(h.load()())

	if h.mascotVariant() != MascotAlert {
		t.Error("expected the mascot to warn about yesterday's streak")
	}
}
