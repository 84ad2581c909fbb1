package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/registry"
)

// statusRows is the space reserved under the framebuffer.
const statusRows = 3

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model for running the console.
type Model struct {
	console  *console.Console
	renderer *Renderer
	keys     KeyMap
	latch    *Latch
	help     help.Model
	board    SessionBoard

	scale      int // 0 = auto
	cellScale  int // scale in effect
	width      int
	height     int
	showBoard  bool
	notice     string
	noticeTill int // frame at which notice disappears
	quitting   bool
}

// NewModel creates a new Bubble Tea model for c. scale 0 picks the
// resolution from the terminal size.
func NewModel(c *console.Console, scale int) Model {
	h := help.New()
	h.ShowAll = false

	cellScale := scale
	if cellScale == 0 {
		cellScale = 2
	}

	return Model{
		console:   c,
		renderer:  NewRenderer(c.Palette()),
		keys:      DefaultKeyMap(),
		latch:     NewLatch(),
		help:      h,
		board:     NewSessionBoard(c.Store()),
		scale:     scale,
		cellScale: cellScale,
	}
}

// Init boots the cartridge and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.console.Boot()
	return tickCmd(m.console.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, m.latch)
		return m, nil

	case tea.BlurMsg:
		m.latch.Release()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Board):
		m.showBoard = !m.showBoard
		return m, nil
	case key.Matches(msg, m.keys.ClearBoard):
		if err := m.board.Clear(m.console.TickRate()); err != nil {
			m.console.Logger().Warn("clear session board", "error", err)
			m.setNotice("clear failed")
			return m, nil
		}
		m.setNotice("session board cleared")
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.keys.MapKey(msg, m.latch)
	return m, nil
}

// handleResize picks the cell scale for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if m.scale == 0 {
		m.cellScale = AutoScale(msg.Width, msg.Height, statusRows)
	}
	return m, nil
}

// handleTick runs one console frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.console.Tick(m.latch.Frame())
	if res.Has(invaders.EventPlayerDied) {
		m.board.Refresh(m.console.TickRate())
	}

	// Continue ticking
	return m, tickCmd(m.console.TickRate())
}

// saveScreenshot writes the framebuffer as PNG under ~/.invaders/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.setNotice("screenshot failed: " + err.Error())
		return
	}

	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setNotice("screenshot failed: " + err.Error())
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("invaders_%s.png", timestamp))

	if err := m.console.SaveScreenshot(path); err != nil {
		m.console.Logger().Warn("screenshot failed", "error", err)
		m.setNotice("screenshot failed")
		return
	}
	m.console.Logger().Info("screenshot saved", "path", path)
	m.setNotice("saved " + path)
}

// setNotice shows msg in the status line for two seconds.
func (m *Model) setNotice(msg string) {
	m.notice = msg
	m.noticeTill = int(m.console.Frames()) + 2*m.console.TickRate() //#nosec G115 -- frame counter
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.renderer.Render(m.console.Screen(), m.cellScale)
	if m.showBoard {
		screen = lipgloss.JoinHorizontal(lipgloss.Top, screen, " ", m.board.View())
	}

	st := m.console.State()
	status := statusStyle.Render(fmt.Sprintf("SCORE %d  WAVE %d  BEST %d",
		st.Score, st.Wave, max(m.board.Best(), st.Score)))
	if m.notice != "" && int(m.console.Frames()) < m.noticeTill { //#nosec G115 -- frame counter
		status += "  " + noticeStyle.Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left, screen, status, m.help.View(m.keys))
}

// Frontend runs the console in the terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (half-block pixels)" }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	model := NewModel(s.Console, s.Config.Terminal.Scale)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks start the game
		tea.WithReportFocus(),     // Drop held keys on focus loss
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
