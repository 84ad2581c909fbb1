// Package headless runs the console without a display, as fast as the CPU
// allows. It backs the sim command and golden-output checks.
package headless

import (
	"context"
	"fmt"

	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/registry"
)

// DefaultFrames is one minute of game time at 60 fps.
const DefaultFrames = 3600

// Options controls a headless run.
type Options struct {
	Frames  int  // Frames to simulate; <= 0 means DefaultFrames
	Restart bool // Start a new run from the title screen after each death
}

// Report summarizes a headless run.
type Report struct {
	Frames       uint64
	Score        int // Score on the last frame
	Wave         int // Wave on the last frame
	Best         int // Highest score reached by any run
	Kills        int
	WavesCleared int
	Deaths       int
	Hash         uint64 // Snapshot hash after the last frame
}

// String formats the report for terminal output.
func (r Report) String() string {
	return fmt.Sprintf(
		"frames=%d score=%d wave=%d best=%d kills=%d waves_cleared=%d deaths=%d hash=%016x",
		r.Frames, r.Score, r.Wave, r.Best, r.Kills, r.WavesCleared, r.Deaths, r.Hash,
	)
}

// Run drives c with the autopilot for opts.Frames frames.
// The context is checked once per simulated second.
func Run(ctx context.Context, c *console.Console, opts Options) (Report, error) {
	frames := opts.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}

	c.Boot()
	ap := &invaders.Autopilot{Restart: opts.Restart}
	var rep Report

	for i := 0; i < frames; i++ {
		if i%60 == 0 {
			if err := ctx.Err(); err != nil {
				return rep, fmt.Errorf("headless: interrupted at frame %d: %w", i, err)
			}
		}

		res := c.Tick(ap.Input(c.Game()))
		for _, e := range res.Events {
			switch e.Kind {
			case invaders.EventAlienKilled:
				rep.Kills++
				rep.Best = core.Max(rep.Best, e.Score)
			case invaders.EventWaveCleared:
				rep.WavesCleared++
			case invaders.EventPlayerDied:
				rep.Deaths++
			}
		}
	}

	snap := c.Game().Snapshot()
	rep.Frames = c.Frames()
	rep.Score = snap.Score
	rep.Wave = snap.Wave
	rep.Hash = snap.Hash()
	return rep, nil
}

// Frontend exposes the headless runner through the registry.
type Frontend struct {
	Options Options
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return &Frontend{Options: Options{Restart: true}}
	})
}

// ID returns the frontend identifier.
func (f *Frontend) ID() string { return "headless" }

// Title returns the display name.
func (f *Frontend) Title() string { return "Headless (autopilot)" }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, s registry.Session) error {
	rep, err := Run(ctx, s.Console, f.Options)
	if err != nil {
		return err
	}
	s.Console.Logger().Info("simulation finished",
		"frames", rep.Frames,
		"score", rep.Score,
		"wave", rep.Wave,
		"best", rep.Best,
		"deaths", rep.Deaths,
		"hash", fmt.Sprintf("%016x", rep.Hash),
	)
	return nil
}
