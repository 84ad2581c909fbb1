// Package config provides YAML-based configuration loading for the
// console and its frontends.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/invaders/internal/core"
)

// Sentinel errors returned by validation.
var (
	ErrUnknownPalette = errors.New("config: unknown palette")
	ErrBadColor       = errors.New("config: bad color")
)

// Config contains all user-tunable settings.
type Config struct {
	Palette  PaletteSpec    `yaml:"palette"`
	Game     GameConfig     `yaml:"game"`
	Audio    AudioConfig    `yaml:"audio"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
}

// GameConfig defines the simulation clock and random seed.
type GameConfig struct {
	FPS  int    `yaml:"fps"`
	Seed uint32 `yaml:"seed"`
}

// AudioConfig defines speaker output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// WindowConfig defines the desktop window frontend.
type WindowConfig struct {
	Scale int `yaml:"scale"`
}

// TerminalConfig defines the terminal frontend.
type TerminalConfig struct {
	Scale int `yaml:"scale"` // 0 = auto
}

// LogConfig defines logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// PaletteSpec is either a built-in palette name or four explicit colors.
type PaletteSpec struct {
	Name   string
	Colors []string
}

// UnmarshalYAML accepts a scalar name or a sequence of colors.
func (p *PaletteSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		p.Name = value.Value
		p.Colors = nil
		return nil
	case yaml.SequenceNode:
		p.Name = ""
		return value.Decode(&p.Colors)
	default:
		return fmt.Errorf("config: palette must be a name or a list of colors (line %d)", value.Line)
	}
}

// MarshalYAML writes the name when set, otherwise the color list.
func (p PaletteSpec) MarshalYAML() (any, error) {
	if len(p.Colors) > 0 {
		return p.Colors, nil
	}
	return p.Name, nil
}

// builtinPalettes maps names to the cartridge's palettes.
var builtinPalettes = map[string]core.Palette{
	"green":  core.PaletteGreen,
	"purple": core.PalettePurple,
}

// PaletteNames returns the built-in palette names in display order.
func PaletteNames() []string {
	return []string{"green", "purple"}
}

// BuiltinPalette returns a named palette.
func BuiltinPalette(name string) (core.Palette, error) {
	p, ok := builtinPalettes[strings.ToLower(name)]
	if !ok {
		return core.Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// Resolve turns the spec into a palette.
func (p PaletteSpec) Resolve() (core.Palette, error) {
	if len(p.Colors) == 0 {
		if p.Name == "" {
			return core.PaletteGreen, nil
		}
		return BuiltinPalette(p.Name)
	}

	if len(p.Colors) != len(core.Palette{}) {
		return core.Palette{}, fmt.Errorf("%w: need 4 colors, got %d", ErrBadColor, len(p.Colors))
	}

	var out core.Palette
	for i, c := range p.Colors {
		v, err := parseHex(c)
		if err != nil {
			return core.Palette{}, err
		}
		out[i] = v
	}
	return out, nil
}

// parseHex parses "#rrggbb" or "rrggbb".
func parseHex(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return uint32(v), nil
}

// Validate checks ranges and the palette.
func (c Config) Validate() error {
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		return fmt.Errorf("config: game.fps %d out of range [1, 240]", c.Game.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f out of range [0, 1]", c.Audio.Volume)
	}
	if c.Window.Scale < 1 || c.Window.Scale > 8 {
		return fmt.Errorf("config: window.scale %d out of range [1, 8]", c.Window.Scale)
	}
	if c.Terminal.Scale < 0 || c.Terminal.Scale > 2 {
		return fmt.Errorf("config: terminal.scale %d out of range [0, 2]", c.Terminal.Scale)
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}

// Runtime builds the game's runtime configuration.
func (c Config) Runtime() (core.RuntimeConfig, error) {
	pal, err := c.Palette.Resolve()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	return core.RuntimeConfig{
		TickRate: c.Game.FPS,
		Seed:     c.Game.Seed,
		Palette:  pal,
	}, nil
}
