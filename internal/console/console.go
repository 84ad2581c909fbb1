// Package console is the fantasy-console shell around the cartridge. It
// owns the framebuffer and the speaker, runs the load hook exactly once,
// and turns gameplay events into logs and session records.
package console

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/storage"
)

// Options configures the peripherals. Zero values are safe: no sound, no
// scoreboard and a discarding logger.
type Options struct {
	Speaker core.Speaker
	Store   *storage.Store
	Logger  *log.Logger
}

// Console runs the cartridge one frame at a time. Frontends call Tick
// from a single goroutine; Screenshot may be called between ticks.
type Console struct {
	cfg     core.RuntimeConfig
	game    *invaders.Game
	screen  *core.Screen
	speaker core.Speaker
	store   *storage.Store
	logger  *log.Logger

	boot     sync.Once
	runStart uint64
}

// New creates a console for cfg. The cartridge is not loaded until Boot
// or the first Tick.
func New(cfg core.RuntimeConfig, opts Options) *Console {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	c := &Console{
		cfg:     cfg,
		game:    invaders.New(cfg),
		screen:  core.NewScreen(core.ScreenW, core.ScreenH),
		speaker: opts.Speaker,
		store:   opts.Store,
		logger:  opts.Logger,
	}
	if c.speaker == nil {
		c.speaker = core.NopSpeaker{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Boot runs the cartridge's load hook. Later calls do nothing.
func (c *Console) Boot() {
	c.boot.Do(func() {
		c.game.Load()
		c.logger.Info("cartridge loaded",
			"title", c.game.Title(),
			"seed", c.cfg.Seed,
			"fps", c.cfg.TickRate,
		)
	})
}

// Tick clears the framebuffer and runs one frame of the cartridge.
func (c *Console) Tick(in core.InputFrame) invaders.FrameResult {
	c.Boot()

	c.screen.Clear()
	res := c.game.Frame(in, c.screen, c.speaker)
	for _, e := range res.Events {
		c.handle(e)
	}

	return res
}

func (c *Console) handle(e invaders.Event) {
	frame := c.game.Frames()

	switch e.Kind {
	case invaders.EventGameStarted:
		c.runStart = frame
		c.logger.Info("run started", "frame", frame)

	case invaders.EventAlienKilled:
		c.logger.Debug("alien killed", "score", e.Score, "x", e.X, "y", e.Y)

	case invaders.EventWaveCleared:
		c.logger.Info("wave cleared", "wave", e.Wave, "score", e.Score)

	case invaders.EventPlayerDied:
		played := frame - c.runStart
		c.logger.Info("player died", "score", e.Score, "wave", e.Wave, "frames", played)
		if c.store == nil {
			return
		}
		run := storage.Run{Score: e.Score, Wave: e.Wave, Frames: played}
		if _, err := c.store.SaveRun(run); err != nil {
			c.logger.Warn("could not record run", "error", err)
		}
	}
}

// Screen returns the framebuffer. It is valid until the next Tick.
func (c *Console) Screen() *core.Screen {
	return c.screen
}

// Palette returns the palette installed by the cartridge.
func (c *Console) Palette() core.Palette {
	return c.game.Palette()
}

// Title returns the cartridge name.
func (c *Console) Title() string {
	return c.game.Title()
}

// TickRate returns the frame rate the cartridge expects.
func (c *Console) TickRate() int {
	return c.cfg.TickRate
}

// State returns the cartridge status after the last frame.
func (c *Console) State() core.GameState {
	return c.game.State()
}

// Game exposes the cartridge for input providers such as the autopilot.
func (c *Console) Game() *invaders.Game {
	return c.game
}

// Frames returns the number of frames run since boot.
func (c *Console) Frames() uint64 {
	return c.game.Frames()
}

// Store returns the session scoreboard, or nil when none is attached.
func (c *Console) Store() *storage.Store {
	return c.store
}

// Logger returns the console logger.
func (c *Console) Logger() *log.Logger {
	return c.logger
}

// Screenshot encodes the current framebuffer as PNG.
func (c *Console) Screenshot(w io.Writer) error {
	if err := png.Encode(w, c.screen.Image(c.Palette())); err != nil {
		return fmt.Errorf("console: encode screenshot: %w", err)
	}
	return nil
}

// SaveScreenshot writes the framebuffer to path as PNG.
func (c *Console) SaveScreenshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("console: create %s: %w", path, err)
	}
	if err := c.Screenshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("console: close %s: %w", path, err)
	}
	return nil
}
