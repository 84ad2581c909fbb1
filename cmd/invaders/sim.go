package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/console"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/headless"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	flagFrames     int
	flagRestart    bool
	flagScreenshot string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a display",
	Long: `Run the cartridge headless with a simple autopilot and print a report.
The report hash fingerprints the final simulation state, so two runs with
the same seed and frame count print the same hash.

Examples:
  invaders sim
  invaders sim --frames 20000 --seed 3
  invaders sim --screenshot last.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", headless.DefaultFrames, "Frames to simulate")
	simCmd.Flags().BoolVar(&flagRestart, "restart", true, "Start a new run after each death")
	simCmd.Flags().StringVar(&flagScreenshot, "screenshot", "", "Save the final frame as PNG")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rt, err := cfg.Runtime()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log.Level, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	c := console.New(rt, console.Options{
		Speaker: core.NopSpeaker{},
		Store:   store,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := headless.Run(ctx, c, headless.Options{Frames: flagFrames, Restart: flagRestart})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rep.String())

	runs, err := store.TopRuns(5)
	if err == nil && len(runs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %s\n", "Rank", "Score", "Wave", "Frames")
		fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %s\n", "----", "-----", "----", "------")
		for i, r := range runs {
			fmt.Fprintf(out, "  %-4d  %-8d  %-4d  %d\n", i+1, r.Score, r.Wave, r.Frames)
		}
	}

	if flagScreenshot != "" {
		if err := c.SaveScreenshot(flagScreenshot); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nScreenshot saved to %s\n", flagScreenshot)
	}
	return nil
}
