// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/skim/internal/model"
	"github.com/verte-zerg/skim/internal/stats"
	"github.com/verte-zerg/skim/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	trendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	sessions []model.SessionAggregate
	errMsg   string

	sessionTable table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
	}
	m.initTable()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.sessionTable, cmd = m.sessionTable.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if len(m.sessions) == 0 {
		return headerStyle.Render("No sessions yet. Finish a reading run first.")
	}
	sections := []string{
		m.renderCards(),
		m.renderTrend(),
		m.sessionTable.View(),
		headerStyle.Render("[j/k] scroll  [r] reload  [q] quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) refresh() {
	sessions, err := m.store.ListSessions(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	m.errMsg = ""
	m.sessions = sessions
	m.fillTable()
}

func (m *Model) initTable() {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Source", Width: 24},
		{Title: "WPM", Width: 5},
		{Title: "Words", Width: 6},
		{Title: "Read", Width: 6},
		{Title: "Eff. WPM", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#8C8C8C")).Bold(false)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#3A3A3A"))
	t.SetStyles(styles)
	m.sessionTable = t
}

func (m *Model) fillTable() {
	rows := make([]table.Row, 0, len(m.sessions))
	for i := len(m.sessions) - 1; i >= 0; i-- {
		s := m.sessions[i]
		wpm, _ := stats.SessionMetrics(s)
		rows = append(rows, table.Row{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Source,
			fmt.Sprintf("%d", s.WPM),
			fmt.Sprintf("%d", s.WordsTotal),
			fmt.Sprintf("%d", s.WordsRead),
			fmt.Sprintf("%.1f", wpm),
		})
	}
	m.sessionTable.SetRows(rows)
}

func (m *Model) updateLayout() {
	tableHeight := m.height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.sessionTable.SetHeight(tableHeight)
}

func (m *Model) renderCards() string {
	var totalWPM, bestWPM, totalCompletion float64
	for _, s := range m.sessions {
		wpm, completion := stats.SessionMetrics(s)
		totalWPM += wpm
		totalCompletion += completion
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(m.sessions))
	cards := []string{
		renderCard("Sessions", fmt.Sprintf("%d", len(m.sessions))),
		renderCard("Avg WPM", fmt.Sprintf("%.1f", totalWPM/count)),
		renderCard("Best WPM", fmt.Sprintf("%.1f", bestWPM)),
		renderCard("Completion", fmt.Sprintf("%.0f%%", (totalCompletion/count)*100)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(title, value string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(content)
}

func (m *Model) renderTrend() string {
	wpms := make([]float64, len(m.sessions))
	for i, s := range m.sessions {
		wpms[i], _ = stats.SessionMetrics(s)
	}
	wpms = stats.MovingAverage(wpms, m.cfg.Window)
	return trendStyle.Render("WPM trend [" + stats.Sparkline(wpms) + "]")
}
