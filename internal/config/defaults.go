package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Palette: PaletteSpec{Name: "green"},
		Game: GameConfig{
			FPS:  60,
			Seed: 1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Window: WindowConfig{
			Scale: 4,
		},
		Terminal: TerminalConfig{
			Scale: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
