package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEnter_SubmitsTrimmedValue(t *testing.T) {
	m := New(false)
	m = typeString(m, "  https://bsky.app/profile/alice.bsky.social/post/abc  ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter must emit a message")
	}
	msg, ok := cmd().(DoneMsg)
	if !ok {
		t.Fatalf("expected DoneMsg, got %#v", cmd())
	}
	if msg.Cancelled {
		t.Fatal("submit must not be cancelled")
	}
	if msg.Value != "https://bsky.app/profile/alice.bsky.social/post/abc" {
		t.Fatalf("value must be trimmed: %q", msg.Value)
	}
}

func TestEnter_EmptyInputShowsHint(t *testing.T) {
	m := New(false)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty input must not submit")
	}
	if !strings.Contains(m.View(), "Enter a bsky.app post URL") {
		t.Fatal("empty input must show a hint")
	}
}

func TestEsc_CancelsOnlyWhenAllowed(t *testing.T) {
	m := New(true)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc must cancel when allowed")
	}
	if msg, ok := cmd().(DoneMsg); !ok || !msg.Cancelled {
		t.Fatalf("expected cancelled DoneMsg, got %#v", cmd())
	}

	m = New(false)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatal("esc must be inert without a previous post")
	}
}

func TestWithStatus_ShowsMessage(t *testing.T) {
	m := New(false).WithStatus("Could not resolve that handle to an account.")
	if !strings.Contains(m.View(), "Could not resolve that handle") {
		t.Fatal("status must appear in the view")
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m := New(false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c must quit")
	}
	if cmd() != tea.Quit() {
		t.Fatalf("expected quit message, got %#v", cmd())
	}
}
