// Package window runs the console in a desktop window with Ebitengine.
package window

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/registry"
)

// binding maps host keys to one gamepad button.
type binding struct {
	button core.Button
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.Button1, []ebiten.Key{ebiten.KeyX, ebiten.KeySpace, ebiten.KeyEnter}},
	{core.Button2, []ebiten.Key{ebiten.KeyZ}},
	{core.ButtonLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ButtonRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ButtonUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ButtonDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

var mouseBindings = []struct {
	button core.MouseButton
	host   ebiten.MouseButton
}{
	{core.MouseLeft, ebiten.MouseButtonLeft},
	{core.MouseRight, ebiten.MouseButtonRight},
	{core.MouseMiddle, ebiten.MouseButtonMiddle},
}

// readInput builds an input frame from key and mouse predicates.
func readInput(key func(ebiten.Key) bool, mouse func(ebiten.MouseButton) bool) core.InputFrame {
	var in core.InputFrame
	for _, b := range bindings {
		for _, k := range b.keys {
			if key(k) {
				in.Set(b.button)
				break
			}
		}
	}
	for _, m := range mouseBindings {
		if mouse(m.host) {
			in.Press(m.button)
		}
	}
	return in
}

// cabinet implements ebiten.Game around a console.
type cabinet struct {
	ctx     context.Context
	console *console.Console
	pixels  []byte
}

func newCabinet(ctx context.Context, c *console.Console) *cabinet {
	return &cabinet{
		ctx:     ctx,
		console: c,
		pixels:  make([]byte, core.ScreenW*core.ScreenH*4),
	}
}

// Update runs one console frame per Ebitengine tick.
func (g *cabinet) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}

	g.console.Tick(readInput(ebiten.IsKeyPressed, ebiten.IsMouseButtonPressed))
	return nil
}

// Draw copies the framebuffer to the window.
func (g *cabinet) Draw(screen *ebiten.Image) {
	g.console.Screen().RGBA(g.console.Palette(), g.pixels)
	screen.WritePixels(g.pixels)
}

// Layout keeps the logical resolution fixed; Ebitengine scales it.
func (g *cabinet) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenW, core.ScreenH
}

func (g *cabinet) screenshot() {
	name := fmt.Sprintf("invaders_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), name)
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".invaders", "screenshots")
		if os.MkdirAll(dir, 0o755) == nil {
			path = filepath.Join(dir, name)
		}
	}

	if err := g.console.SaveScreenshot(path); err != nil {
		g.console.Logger().Warn("screenshot failed", "error", err)
		return
	}
	g.console.Logger().Info("screenshot saved", "path", path)
}

// Frontend runs the console in a native window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window" }

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	scale := max(s.Config.Window.Scale, 1)

	ebiten.SetWindowSize(core.ScreenW*scale, core.ScreenH*scale)
	ebiten.SetWindowTitle(s.Console.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(s.Console.TickRate())

	s.Console.Boot()
	err := ebiten.RunGame(newCabinet(ctx, s.Console))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
