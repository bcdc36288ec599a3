// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/skim/internal/model"
	"github.com/verte-zerg/skim/internal/playback"
	"github.com/verte-zerg/skim/internal/store"
)

var (
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	orpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea reader UI. It owns the playback
// state; key dispatch and ticks mutate it only through its operations.
type Model struct {
	config      model.Config
	store       *store.Store
	words       []string
	sourceLabel string

	state playback.State

	width  int
	height int

	tickSeq   int
	startedAt time.Time
	maxIndex  int
}

type tickMsg struct {
	seq int
}

// NewModel constructs a reader model over an acquired word sequence.
// The store may be nil, in which case no session history is recorded.
func NewModel(cfg model.Config, st *store.Store, words []string, sourceLabel string) *Model {
	return &Model{
		config:      cfg,
		store:       st,
		words:       words,
		sourceLabel: sourceLabel,
		state:       playback.NewState(len(words), cfg.WPM),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.dispatchKey(msg)
	case tickMsg:
		if msg.seq != m.tickSeq {
			// A newer wait superseded this tick.
			return m, nil
		}
		if m.state.Tick(time.Now()) {
			m.trackProgress()
		}
		return m, m.scheduleTick()
	default:
		return m, nil
	}
}

// dispatchKey maps one key press to exactly one playback command.
// Unrecognized keys are ignored. Bubble Tea delivers press and repeat
// events only, so release filtering needs no handling here.
func (m *Model) dispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.recordSession(now)
		return m, tea.Quit
	case " ":
		m.state.TogglePause(now)
		if !m.state.Paused {
			m.markStarted(now)
		}
	case "n":
		m.state.StepForward(now)
		m.trackProgress()
	case "p":
		m.state.StepBackward(now)
	case "u":
		m.state.IncreaseRate()
	case "d":
		m.state.DecreaseRate()
	default:
		return m, nil
	}
	return m, m.scheduleTick()
}

// scheduleTick arms the single bounded wait that serves both input
// latency and the auto-advance schedule. The sequence number invalidates
// waits that were superseded by a key press.
func (m *Model) scheduleTick() tea.Cmd {
	m.tickSeq++
	seq := m.tickSeq
	wait := m.state.WaitBudget(time.Now())
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func (m *Model) markStarted(now time.Time) {
	if m.startedAt.IsZero() {
		m.startedAt = now
	}
}

func (m *Model) trackProgress() {
	if m.state.Index > m.maxIndex {
		m.maxIndex = m.state.Index
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	frame := newFrame(m.width, m.height)
	if m.state.Finished() {
		frame.setCentered(m.height/2, doneStyle.Render("Finished!"))
	} else {
		word := m.words[m.state.Index]
		line, anchor := styleWord(word, m.config.Focus)
		frame.setAnchored(m.height/2, line, anchor)
		if m.config.Focus {
			frame.setAnchored(m.height/2+1, orpStyle.Render("^"), 0)
		}
	}
	frame.setLine(m.height-1, footerStyle.Render(m.footer()))
	return frame.String()
}

func (m *Model) footer() string {
	position := m.state.Index + 1
	if m.state.Finished() {
		position = m.state.Words()
	}
	return fmt.Sprintf("WPM: %d | Word: %d/%d | %s | [space] pause [n/p] step [u/d] wpm [q] quit",
		m.state.Rate, position, m.state.Words(), m.state.Status())
}

// recordSession persists the run. Failures must not block quitting.
func (m *Model) recordSession(now time.Time) {
	if m.store == nil || m.startedAt.IsZero() || m.maxIndex == 0 {
		return
	}
	stats := model.SessionStats{
		StartedAt:  m.startedAt,
		EndedAt:    now,
		Source:     m.sourceLabel,
		WPM:        m.state.Rate,
		WordsTotal: m.state.Words(),
		WordsRead:  m.maxIndex,
		DurationMs: now.Sub(m.startedAt).Milliseconds(),
	}
	if _, err := m.store.InsertSession(context.Background(), stats); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
