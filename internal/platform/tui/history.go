package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/serpientes/internal/storage"
)

const maxVictories = 50 // Max victories loaded into the table

// VictoryLister is the part of the store the history view reads.
type VictoryLister interface {
	RecentVictories(ctx context.Context, player string, limit int) ([]storage.VictoryEntry, error)
}

// HistoryModel shows a player's finished games in a table.
type HistoryModel struct {
	source  VictoryLister
	player  string
	entries []storage.VictoryEntry
	err     error
	table   table.Model
	width   int
	height  int
}

// NewHistoryModel creates the history view. source may be nil.
func NewHistoryModel(source VictoryLister, player string, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		player: player,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Fecha", Width: 14},
		{Title: "Tiros", Width: 6},
		{Title: "Versos", Width: 7},
		{Title: "Partida", Width: 10},
	}

	// Give the id column whatever is left
	if extra := m.width - 4 - 51; extra > 0 {
		columns[4].Width += min(extra, 26)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load reads the latest victories from the source.
func (m *HistoryModel) Load(ctx context.Context) {
	m.entries, m.err = nil, nil
	if m.source != nil {
		m.entries, m.err = m.source.RecentVictories(ctx, m.player, maxVictories)
	}
	m.updateTableRows()
}

// Len returns how many victories are shown.
func (m HistoryModel) Len() int {
	return len(m.entries)
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%d", e.Rolls),
			fmt.Sprintf("%d", len(e.Verses)),
			e.GameID.String(),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Resize refits the table to a new window size.
func (m *HistoryModel) Resize(width, height int) {
	m.width, m.height = width, height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update passes navigation keys to the table.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table or an empty message.
func (m HistoryModel) View() string {
	var b strings.Builder

	title := "VICTORIAS"
	if m.player != "" {
		title = fmt.Sprintf("VICTORIAS - %s", m.player)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("No se pudo leer el historial: " + m.err.Error()))
	case len(m.entries) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("Aún no hay victorias.\nLlega a la meta para estrenar el historial."))
	default:
		b.WriteString(m.table.View())
	}

	return panelStyle.Render(b.String())
}
