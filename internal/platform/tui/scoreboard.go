package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crypto-flap/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns       = 50 // Max runs to load
	boardMinWidth = 40 // Below this the table is not drawn
	boardMargin   = 6  // Rows taken by title, borders and hint
)

// Scoreboard is the top runs table shown over the playfield.
type Scoreboard struct {
	runs   []storage.RunResult
	table  table.Model
	width  int
	height int
	err    error
}

// NewScoreboard creates an empty scoreboard for the given terminal size.
func NewScoreboard(width, height int) Scoreboard {
	s := Scoreboard{width: width, height: height}
	s.table = s.createTable()
	return s
}

// createTable builds the table for the current size.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Hit", Width: 9},
		{Title: "Time", Width: 7},
		{Title: "Ended", Width: 9},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // Cell padding
	}
	if spare := s.width - 4 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(s.height-boardMargin, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("220")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// Load reads the top runs from the ledger.
func (s *Scoreboard) Load(ledger *storage.Ledger) {
	s.runs, s.err = nil, nil
	if ledger != nil {
		s.runs, s.err = ledger.TopRuns(maxRuns)
	}
	s.updateRows()
}

// Resize rebuilds the table for a new terminal size.
func (s *Scoreboard) Resize(width, height int) {
	s.width, s.height = width, height
	s.table = s.createTable()
	s.updateRows()
}

func (s *Scoreboard) updateRows() {
	rows := make([]table.Row, len(s.runs))
	for i, r := range s.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			r.Cause,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.EndedAt.Format("15:04:05"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// Update scrolls the table.
func (s *Scoreboard) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return cmd
}

// Runs returns the loaded runs, best first.
func (s Scoreboard) Runs() []storage.RunResult {
	return s.runs
}

// View renders the scoreboard to fill the playfield.
func (s Scoreboard) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)

	var content string
	switch {
	case s.err != nil:
		content = mutedStyle.Render("Top runs are unavailable.")
	case len(s.runs) == 0:
		content = mutedStyle.Render("No runs yet.\nFly through a gate to make the board!")
	case s.width < boardMinWidth:
		best := s.runs[0]
		content = fmt.Sprintf("#1 %s %d", best.Player, best.Score)
	default:
		content = boxStyle.Render(s.table.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("TOP RUNS"))
	b.WriteString("\n\n")
	b.WriteString(content)

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, b.String())
}
