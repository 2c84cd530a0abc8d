package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bio-runner/internal/storage"
)

// History layout constants
const (
	historyChrome = 8  // Title, stats, borders and help
	maxHistory    = 50 // Max runs to load
)

// historyOrder selects which runs the history table lists.
type historyOrder int

const (
	orderRecent historyOrder = iota
	orderTop
)

// History is the run log view shown over the card.
type History struct {
	store  *storage.Store
	theme  Theme
	order  historyOrder
	runs   []storage.RunRecord
	stats  *storage.RunStats
	err    error
	table  table.Model
	width  int
	height int
}

// NewHistory creates a history view backed by store. store may be nil.
func NewHistory(store *storage.Store, theme Theme, width, height int) History {
	h := History{
		store:  store,
		theme:  theme,
		width:  width,
		height: height,
	}
	h.table = h.createTable()
	return h
}

// createTable creates a new table sized to the view.
func (h *History) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Cleared", Width: 8},
		{Title: "Top speed", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Played", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(h.theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = h.theme.Selected
	t.SetStyles(s)

	return t
}

// SetSize resizes the view.
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

// ToggleOrder switches between recent and best runs.
func (h *History) ToggleOrder() {
	if h.order == orderRecent {
		h.order = orderTop
	} else {
		h.order = orderRecent
	}
	h.Reload()
}

// Reload queries the run log again.
func (h *History) Reload() {
	h.runs, h.stats, h.err = nil, nil, nil
	if h.store == nil {
		h.updateTableRows()
		return
	}

	if h.order == orderTop {
		h.runs, h.err = h.store.TopRuns(maxHistory)
	} else {
		h.runs, h.err = h.store.RecentRuns(maxHistory)
	}
	if h.err == nil {
		h.stats, h.err = h.store.Stats()
	}
	h.updateTableRows()
}

func (h *History) updateTableRows() {
	rows := make([]table.Row, len(h.runs))
	for i, r := range h.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Obstacles),
			fmt.Sprintf("%.2f", r.MaxSpeed),
			r.Duration.Round(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// Update scrolls the table.
func (h History) Update(msg tea.Msg) (History, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View renders the history view.
func (h History) View() string {
	var b strings.Builder

	title := "RUN HISTORY - recent"
	if h.order == orderTop {
		title = "RUN HISTORY - best"
	}
	b.WriteString(h.theme.Title.Render(centerText(title, h.width)))
	b.WriteString("\n")

	if h.stats != nil && h.stats.Runs > 0 {
		line := fmt.Sprintf("%d runs  ·  best %d  ·  avg %.1f  ·  top speed %.2f",
			h.stats.Runs, h.stats.HighScore, h.stats.AvgScore, h.stats.BestSpeed)
		b.WriteString(h.theme.Help.Render(centerText(line, h.width)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.Border).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(h.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (h History) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case h.err != nil:
		return emptyStyle.Render("Run history unavailable:\n" + h.err.Error())
	case len(h.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPress Space to play!")
	}
	return h.table.View()
}

// centerText pads s so it is centered in width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
