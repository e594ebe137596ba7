package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-catcher/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40 // Narrower tables drop the time column
	maxGames      = 100
)

// Scoreboard shows the session's best games and round totals over the game
// screen. It is a component of Model, not a program of its own.
type Scoreboard struct {
	store  *storage.Store
	games  []storage.GameEntry
	stats  storage.SessionStats
	err    error
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard sized for the given terminal.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	sb := Scoreboard{store: store, width: width, height: height}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table with columns fitted to the width.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Rounds", Width: 8},
	}
	if sb.width-4 >= tableMinWidth {
		columns = append(columns, table.Column{Title: "Ended", Width: 16})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(sb.height-10, 3)), // Leave room for title, stats and help
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

// Refresh reloads games and totals from the store.
func (sb *Scoreboard) Refresh() {
	sb.games, sb.stats, sb.err = nil, storage.SessionStats{}, nil
	if sb.store != nil {
		if sb.games, sb.err = sb.store.TopGames(maxGames); sb.err == nil {
			var stats *storage.SessionStats
			if stats, sb.err = sb.store.Stats(); sb.err == nil {
				sb.stats = *stats
			}
		}
	}
	sb.updateTableRows()
}

// updateTableRows updates the table with current games.
func (sb *Scoreboard) updateTableRows() {
	withTime := len(sb.table.Columns()) > 3
	rows := make([]table.Row, len(sb.games))
	for i, g := range sb.games {
		rounds := fmt.Sprintf("%d", g.RoundsPlayed)
		if !g.Finished {
			rounds += "*"
		}
		row := table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", g.Score), rounds}
		if withTime {
			row = append(row, g.CreatedAt.Format("Jan 02 15:04:05"))
		}
		rows[i] = row
	}
	sb.table.SetRows(rows)

	// Reset cursor to top
	sb.table.GotoTop()
}

// Resize refits the table to a new terminal size.
func (sb *Scoreboard) Resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// Update scrolls the table.
func (sb Scoreboard) Update(msg tea.KeyMsg, keys KeyMap) (Scoreboard, tea.Cmd) {
	if key.Matches(msg, keys.Up) || key.Matches(msg, keys.Down) {
		var cmd tea.Cmd
		sb.table, cmd = sb.table.Update(msg)
		return sb, cmd
	}
	return sb, nil
}

// View renders the scoreboard.
func (sb Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SESSION SCORES"), sb.width))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("Games %d   Best %d   Won %d   Overshot %d   Timed out %d",
		sb.stats.Games, sb.stats.BestScore, sb.stats.RoundsWon, sb.stats.Overshoots, sb.stats.Timeouts)
	b.WriteString(centerText(statsStyle.Render(stats), sb.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(sb.renderTableContent()), sb.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (sb Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case sb.err != nil:
		return emptyStyle.Render("Scores unavailable:\n" + sb.err.Error())
	case sb.store == nil:
		return emptyStyle.Render("Scores are disabled for this session.")
	case len(sb.games) == 0:
		return emptyStyle.Render("No games finished yet.\nLose all your lives to post a score!")
	}
	return sb.table.View()
}

// centerText pads each line of text so it sits centered in width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		pad := (width - lipgloss.Width(l)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return strings.Join(lines, "\n")
}
