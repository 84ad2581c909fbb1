package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available frontends",
	Long:  `Shows every frontend the console can run on.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()
	out := cmd.OutOrStdout()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'invaders play --frontend <id>' to use one.")
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List built-in palettes",
	Args:  cobra.NoArgs,
	RunE:  runPalettes,
}

func runPalettes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range config.PaletteNames() {
		p, err := config.BuiltinPalette(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s", name)
		for i := range p {
			fmt.Fprintf(out, "  %s", p.Hex(i))
		}
		fmt.Fprintln(out)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Write the default configuration",
	Long: `Writes the built-in configuration to path as a starting point for
customization. Global overrides such as --palette and --fps are applied.

Examples:
  invaders config ~/.invaders/config.yaml
  invaders config ./configs/invaders.yaml --palette purple`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", args[0])
	return nil
}
