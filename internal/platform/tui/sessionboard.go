package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/storage"
)

// Session board layout constants
const (
	boardRuns  = 5  // Runs shown in the table
	boardWidth = 34 // Total width including border
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SessionBoard shows the best runs of the current session.
type SessionBoard struct {
	store *storage.Store
	table table.Model
	stats storage.Stats
	err   error
}

// NewSessionBoard creates a board backed by store, which may be nil.
func NewSessionBoard(store *storage.Store) SessionBoard {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Wave", Width: 5},
		{Title: "Time", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(boardRuns+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	b := SessionBoard{store: store, table: t}
	b.Refresh(60)
	return b
}

// Refresh reloads the board. fps converts frame counts to play time.
func (b *SessionBoard) Refresh(fps int) {
	if b.store == nil {
		return
	}

	runs, err := b.store.TopRuns(boardRuns)
	if err != nil {
		b.err = err
		return
	}
	stats, err := b.store.Stats()
	if err != nil {
		b.err = err
		return
	}
	b.err = nil
	b.stats = stats

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Wave),
			formatFrames(r.Frames, fps),
		})
	}
	b.table.SetRows(rows)
}

// Clear forgets every run recorded so far and reloads the board.
func (b *SessionBoard) Clear(fps int) error {
	if b.store == nil {
		return nil
	}
	if err := b.store.Clear(); err != nil {
		return err
	}
	b.stats = storage.Stats{}
	b.Refresh(fps)
	return nil
}

// Best returns the session's best score.
func (b *SessionBoard) Best() int {
	return b.stats.Best
}

// View renders the board.
func (b SessionBoard) View() string {
	title := boardTitleStyle.Render("SESSION")

	var body string
	switch {
	case b.store == nil:
		body = boardDimStyle.Render("scoreboard unavailable")
	case b.err != nil:
		body = boardDimStyle.Render("error: " + b.err.Error())
	case b.stats.Runs == 0:
		body = boardDimStyle.Render("no runs yet")
	default:
		summary := boardDimStyle.Render(fmt.Sprintf(
			"runs %d  best %d  avg %.0f", b.stats.Runs, b.stats.Best, b.stats.AvgScore,
		))
		body = lipgloss.JoinVertical(lipgloss.Left, b.table.View(), "", summary)
	}

	return boardBoxStyle.Width(boardWidth - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body),
	)
}

// formatFrames renders a frame count as m:ss.
func formatFrames(frames uint64, fps int) string {
	if fps <= 0 {
		fps = 60
	}
	secs := frames / uint64(fps) //#nosec G115 -- fps is positive
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
