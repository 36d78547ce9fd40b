package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cramgames/internal/router"
	"github.com/abhisek/cramgames/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendFrames(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestViewShowsTagline(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(100, 30)
	for _, want := range []string{"Score big", "press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNoAdvanceBeforeTimeout(t *testing.T) {
	w, calls := newTestWelcome()
	cmd := sendFrames(w, int(autoAdvance/frameInterval)-1)
	if cmd == nil {
		t.Fatal("expected the next frame to be scheduled")
	}
	if *calls != 0 {
		t.Errorf("next called %d times before the timeout", *calls)
	}
}

func TestKeypressReplacesScreen(t *testing.T) {
	w, calls := newTestWelcome()
	sendFrames(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a command from keypress")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("expected next to be called once, got %d", *calls)
	}
}

func TestAutoAdvance(t *testing.T) {
	w, calls := newTestWelcome()

	cmd := sendFrames(w, int(autoAdvance/frameInterval))
	if cmd == nil {
		t.Fatal("expected auto-advance command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg after the timeout")
	}
	if *calls != 1 {
		t.Errorf("expected next to be called once, got %d", *calls)
	}
}

func TestAdvanceOnlyOnce(t *testing.T) {
	w, calls := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if _, cmd := w.Update(frameMsg{}); cmd != nil {
		t.Error("frames after advancing should stop")
	}
	if *calls != 1 {
		t.Errorf("expected next to be called once, got %d", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(30); !strings.Contains(got, "C R A M") {
		t.Errorf("expected compact banner, got %q", got)
	}
}
