// invaders runs the space invaders cartridge on a virtual fantasy console.
//
// Usage:
//
//	invaders play              - Play in the terminal (default frontend)
//	invaders play -f window    - Play in a desktop window
//	invaders sim               - Run the autopilot headless and print a report
//	invaders list              - List available frontends
//	invaders palettes          - List built-in palettes
//	invaders config <path>     - Write the default config to a file
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Override the RNG seed
//	--palette <name>    - Override the palette
//	--mute              - Disable audio
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/invaders/internal/platform/headless"
	_ "github.com/vovakirdan/invaders/internal/platform/tui"
	_ "github.com/vovakirdan/invaders/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     uint32
	flagPalette  string
	flagMute     bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - a fantasy console shoot-'em-up",
	Long: `Invaders runs a 160x160, four-color space invaders cartridge in your
terminal or in a desktop window.

Available commands:
  play      - Play the game
  sim       - Run the autopilot without a display
  list      - Show available frontends
  palettes  - Show built-in palettes
  config    - Write the default configuration

Examples:
  invaders play
  invaders play --frontend window --palette purple
  invaders sim --frames 10000 --seed 7
  invaders config ~/.invaders/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed override")
	rootCmd.PersistentFlags().StringVar(&flagPalette, "palette", "", "Palette override (see 'invaders palettes')")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config file and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("palette") {
		cfg.Palette = config.PaletteSpec{Name: flagPalette}
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. fallback is used when no log file
// is configured. The returned closer releases the log file, if any.
func newLogger(level string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			closer()
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           lvl,
	})
	return logger, closer, nil
}
