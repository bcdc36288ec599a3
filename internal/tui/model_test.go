package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/skim/internal/model"
	"github.com/verte-zerg/skim/internal/playback"
)

func newTestModel(focus bool) *Model {
	m := NewModel(model.Config{WPM: 250, Focus: focus}, nil, []string{"one", "keyboard", "three"}, "test")
	m.width = 40
	m.height = 10
	return m
}

func pressKey(m *Model, key string) {
	var msg tea.KeyMsg
	if key == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, _ = m.Update(msg)
}

func TestSpaceTogglesPause(t *testing.T) {
	m := newTestModel(false)
	pressKey(m, " ")
	if m.state.Paused {
		t.Fatalf("space did not unpause")
	}
	pressKey(m, " ")
	if !m.state.Paused {
		t.Fatalf("second space did not pause")
	}
}

func TestStepKeys(t *testing.T) {
	m := newTestModel(false)
	pressKey(m, "n")
	if m.state.Index != 1 {
		t.Fatalf("index = %d after n, want 1", m.state.Index)
	}
	pressKey(m, "p")
	if m.state.Index != 0 {
		t.Fatalf("index = %d after p, want 0", m.state.Index)
	}
	pressKey(m, "p")
	if m.state.Index != 0 {
		t.Fatalf("p at index 0 moved to %d", m.state.Index)
	}
}

func TestRateKeys(t *testing.T) {
	m := newTestModel(false)
	pressKey(m, "u")
	if m.state.Rate != 275 {
		t.Fatalf("rate = %d after u, want 275", m.state.Rate)
	}
	pressKey(m, "d")
	pressKey(m, "d")
	if m.state.Rate != 225 {
		t.Fatalf("rate = %d after d d, want 225", m.state.Rate)
	}
}

func TestUnrecognizedKeyIgnored(t *testing.T) {
	m := newTestModel(false)
	before := m.state
	pressKey(m, "x")
	if m.state != before {
		t.Fatalf("unrecognized key mutated state")
	}
}

func TestQuitKeysReturnQuit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := newTestModel(false)
		var msg tea.KeyMsg
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q did not produce a command", key)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Fatalf("%q produced %T, want quit", key, msg)
		}
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(false)
	pressKey(m, " ")
	seq := m.tickSeq
	before := m.state
	_, _ = m.Update(tickMsg{seq: seq - 1})
	if m.state != before {
		t.Fatalf("stale tick mutated state")
	}
	if m.tickSeq != seq {
		t.Fatalf("stale tick rescheduled")
	}
}

func TestViewShowsWordAndFooter(t *testing.T) {
	m := newTestModel(false)
	out := m.View()
	if !strings.Contains(out, "one") {
		t.Fatalf("view missing current word:\n%s", out)
	}
	if !strings.Contains(out, "WPM: 250 | Word: 1/3 | Paused") {
		t.Fatalf("view missing footer:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != m.height-1 {
		t.Fatalf("view has %d newlines, want %d", got, m.height-1)
	}
}

func TestViewFinished(t *testing.T) {
	m := newTestModel(false)
	m.state.Index = m.state.Words()
	m.state.Paused = true
	out := m.View()
	if !strings.Contains(out, "Finished!") {
		t.Fatalf("finished view missing banner:\n%s", out)
	}
	if !strings.Contains(out, "Word: 3/3 | Finished") {
		t.Fatalf("finished view footer wrong:\n%s", out)
	}
}

func TestViewFocusMarker(t *testing.T) {
	m := newTestModel(true)
	m.state.Index = 1 // "keyboard", ORP bucket index 2
	out := m.View()
	lines := strings.Split(out, "\n")
	wordRow := m.height / 2
	if !strings.Contains(lines[wordRow], "keyboard") {
		t.Fatalf("word row wrong: %q", lines[wordRow])
	}
	marker := lines[wordRow+1]
	if strings.TrimSpace(marker) != "^" {
		t.Fatalf("marker row wrong: %q", marker)
	}
	// The ORP rune column and the marker column must line up on the
	// center column.
	if strings.Index(marker, "^") != m.width/2 {
		t.Fatalf("marker at column %d, want %d", strings.Index(marker, "^"), m.width/2)
	}
	prefix := lines[wordRow][:strings.Index(lines[wordRow], "keyboard")]
	if len(prefix) != m.width/2-playback.ORPIndex(len("keyboard")) {
		t.Fatalf("word padding %d, want %d", len(prefix), m.width/2-playback.ORPIndex(len("keyboard")))
	}
}

func TestSpaceAtFinishedStaysFinished(t *testing.T) {
	m := newTestModel(false)
	m.state.Index = m.state.Words()
	m.state.Paused = true
	pressKey(m, " ")
	if !m.state.Paused || !m.state.Finished() {
		t.Fatalf("space at finished changed state: %+v", m.state)
	}
	pressKey(m, "p")
	if m.state.Finished() {
		t.Fatalf("p did not leave finished")
	}
	if m.state.Index != m.state.Words()-1 || !m.state.Paused {
		t.Fatalf("expected paused at last word, got %+v", m.state)
	}
}
