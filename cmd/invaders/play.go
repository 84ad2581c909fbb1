package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/registry"
	"github.com/vovakirdan/invaders/internal/storage"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the cartridge on the selected frontend.

Controls:
  Left/Right, A/D   - Move the ship
  Space/X/Enter     - Fire, start a run from the title screen
  Mouse click       - Start a run from the title screen
  Tab               - Session board (terminal)
  Ctrl+S / F12      - Screenshot
  Q/Esc             - Quit

Examples:
  invaders play
  invaders play --frontend window
  invaders play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to run (see 'invaders list')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("%w: %q (run 'invaders list')", registry.ErrUnknownFrontend, flagFrontend)
	}

	// The terminal frontend needs a real terminal, and its logs must not
	// draw over the alternate screen.
	logOut := io.Writer(os.Stderr)
	if flagFrontend == "tui" {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("play: stdout is not a terminal; try --frontend window or 'invaders sim'")
		}
		logOut = io.Discard
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log.Level, logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		logger.Debug("terminal", "cols", w, "rows", h)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, cfg, flagFrontend, logger)
}

// play wires the console for one session and hands it to a frontend.
func play(ctx context.Context, cfg config.Config, frontendID string, logger *log.Logger) error {
	rt, err := cfg.Runtime()
	if err != nil {
		return err
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		// Continue without a session board
		logger.Warn("session store unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	speaker := newSpeaker(cfg, rt, logger)
	if closer, ok := speaker.(interface{ Close() }); ok {
		defer closer.Close()
	}

	c := console.New(rt, console.Options{
		Speaker: speaker,
		Store:   store,
		Logger:  logger,
	})

	logger.Info("starting", "frontend", frontend.ID(), "fps", rt.TickRate, "seed", rt.Seed)
	if err := frontend.Run(ctx, registry.Session{Console: c, Config: cfg, Logger: logger}); err != nil {
		return err
	}

	if store != nil {
		if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
			logger.Info("session", "runs", stats.Runs, "best", stats.Best, "best_wave", stats.BestWave)
		}
	}
	return nil
}

// newSpeaker opens the audio device, falling back to silence when audio
// is disabled or unavailable.
func newSpeaker(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) core.Speaker {
	if !cfg.Audio.Enabled {
		return core.NopSpeaker{}
	}

	synth := audio.NewSynth(rt.TickRate, cfg.Audio.Volume)
	if err := synth.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return core.NopSpeaker{}
	}
	return synth
}
