package core

import (
	"fmt"
	"image/color"
)

// DrawColor selects one of the four palette entries for a draw call.
// 1..4 map to palette entries 0..3; 0 means transparent (nothing is drawn).
type DrawColor uint8

// Draw colors as used by the game's draw calls.
const (
	ColorNone DrawColor = iota
	Color1              // background
	Color2
	Color3
	Color4 // highlight
)

// Index returns the palette entry for this draw color, or -1 when transparent.
func (c DrawColor) Index() int {
	if c == ColorNone || c > Color4 {
		return -1
	}
	return int(c) - 1
}

// Palette holds four 0xRRGGBB colors. Entry 0 is the clear color.
type Palette [4]uint32

// Built-in palettes.
var (
	// PaletteGreen is the default cabinet palette.
	PaletteGreen = Palette{0x191b1a, 0x294257, 0x579c9a, 0x99c9b3}
	// PalettePurple is the alternate palette.
	PalettePurple = Palette{0x051f39, 0x051f39, 0xc53a9d, 0xff8e80}
)

// RGBA returns entry i as a color.RGBA.
func (p Palette) RGBA(i int) color.RGBA {
	v := p[i&3]
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

// Hex returns entry i formatted as #rrggbb.
func (p Palette) Hex(i int) string {
	return fmt.Sprintf("#%06x", p[i&3]&0xffffff)
}

// ColorModel returns the palette as an image/color.Palette.
func (p Palette) ColorModel() color.Palette {
	cp := make(color.Palette, len(p))
	for i := range p {
		cp[i] = p.RGBA(i)
	}
	return cp
}
