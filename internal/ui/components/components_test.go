package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestMenuSkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Play", Action: func() tea.Cmd { fired = "play"; return nil }},
		{Label: "Claim", Disabled: true},
		{Label: "Exit", Action: func() tea.Cmd { fired = "exit"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down: Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up: Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up past disabled head: Selected = %d, want 1", m.Selected)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "play" {
		t.Errorf("enter fired %q, want play", fired)
	}
	if got := m.DisabledSet(); !got[0] || !got[2] || got[1] {
		t.Errorf("DisabledSet = %v", got)
	}
}

func TestMultiChoiceNumberKeys(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	if m.Submitted() {
		t.Fatal("new selector should not be submitted")
	}

	m, _ = m.Update(key('9'))
	if m.Submitted() {
		t.Error("out of range number key should be ignored")
	}

	m, _ = m.Update(key('3'))
	if !m.Submitted() || m.Chosen != 2 {
		t.Errorf("Chosen = %d, want 2", m.Chosen)
	}

	m, _ = m.Update(key('1'))
	if m.Chosen != 2 {
		t.Error("choice should be locked once submitted")
	}
}

func TestMultiChoiceArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want clamped 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Chosen != 1 {
		t.Errorf("Chosen = %d, want 1", m.Chosen)
	}
}
