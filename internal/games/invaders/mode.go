package invaders

import (
	"fmt"

	"github.com/vovakirdan/invaders/internal/core"
)

// Mode is the top-level game state.
type Mode uint8

// Game modes.
const (
	ModeMenu Mode = iota
	ModePlaying
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Title screen copy.
const (
	titleText = "INVADERS"
	titleY    = 50
	promptY   = 80
	promptGap = 10
)

var promptLines = [...]string{"Press space", "or click to", "start"}

// centerX returns the x that horizontally centers s on the screen.
func centerX(s string) int {
	return (core.ScreenW - core.TextWidth(s)) / 2
}

// updateMenu draws the title screen and starts a run on Button1 or a
// left click.
func (g *Game) updateMenu(in core.InputFrame, cv core.Canvas) {
	cv.Text(core.Color4, titleText, centerX(titleText), titleY)
	for i, line := range promptLines {
		cv.Text(core.Color3, line, centerX(line), promptY+i*promptGap)
	}

	if in.Has(core.Button1) || in.Clicked(core.MouseLeft) {
		g.mode = ModePlaying
		g.resetRun()
		g.emit(Event{Kind: EventGameStarted, Wave: g.world.Wave.Number})
	}
}

// drawHUD prints the score and wave counters.
func (g *Game) drawHUD(cv core.Canvas) {
	cv.Text(core.Color4, fmt.Sprintf("SCORE:%d", g.world.Score), 5, 5)
	cv.Text(core.Color4, fmt.Sprintf("WAVE:%d", g.world.Wave.Number), 100, 5)
}
