package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

// holdFrames is how long a key press keeps its button down. Terminals
// report presses and auto-repeats but never releases.
const holdFrames = 8

// KeyMap defines the key bindings for the console.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Alt        key.Binding
	Screenshot key.Binding
	Board      key.Binding
	ClearBoard key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Board, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Alt},
		{k.Screenshot, k.Board, k.ClearBoard, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "x", "enter"),
			key.WithHelp("space/x", "fire / start"),
		),
		Alt: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "button 2"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session board"),
		),
		ClearBoard: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear session board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Latch turns discrete terminal key events into held gamepad buttons.
type Latch struct {
	hold  map[core.Button]int
	mouse core.MouseButton
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{hold: make(map[core.Button]int)}
}

// Press holds b for the next holdFrames frames. Opposite directions
// cancel each other.
func (l *Latch) Press(b core.Button) {
	switch b {
	case core.ButtonLeft:
		delete(l.hold, core.ButtonRight)
	case core.ButtonRight:
		delete(l.hold, core.ButtonLeft)
	}
	l.hold[b] = holdFrames
}

// Click registers a mouse press for the next frame only.
func (l *Latch) Click(m core.MouseButton) {
	l.mouse |= m
}

// Frame returns the input for the next frame and ages every held button.
func (l *Latch) Frame() core.InputFrame {
	var in core.InputFrame
	for b, n := range l.hold {
		in.Set(b)
		if n <= 1 {
			delete(l.hold, b)
		} else {
			l.hold[b] = n - 1
		}
	}
	in.Mouse = l.mouse
	l.mouse = 0
	return in
}

// Release drops every held button. Called when the terminal loses focus,
// since no key-up will follow.
func (l *Latch) Release() {
	clear(l.hold)
	l.mouse = 0
}

// MapKey latches the gamepad button bound to msg.
// Returns false if the key is not a gamepad key.
func (k KeyMap) MapKey(msg tea.KeyMsg, l *Latch) bool {
	switch {
	case key.Matches(msg, k.Left):
		l.Press(core.ButtonLeft)
	case key.Matches(msg, k.Right):
		l.Press(core.ButtonRight)
	case key.Matches(msg, k.Fire):
		l.Press(core.Button1)
	case key.Matches(msg, k.Alt):
		l.Press(core.Button2)
	default:
		return false
	}
	return true
}

// MapMouse latches a left or right button press.
// Returns false for motion, release and wheel events.
func MapMouse(msg tea.MouseMsg, l *Latch) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		l.Click(core.MouseLeft)
	case tea.MouseButtonRight:
		l.Click(core.MouseRight)
	case tea.MouseButtonMiddle:
		l.Click(core.MouseMiddle)
	default:
		return false
	}
	return true
}
