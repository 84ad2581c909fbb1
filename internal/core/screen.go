package core

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textFace is the console's built-in glyph set.
var textFace font.Face = basicfont.Face7x13

// Screen is a paletted pixel framebuffer. Each pixel stores a palette
// entry (0..3). It implements Canvas, decoupling game rendering from the
// frontend that finally shows the pixels.
type Screen struct {
	width  int
	height int
	pixels []uint8
}

// NewScreen creates a new framebuffer with the given dimensions,
// cleared to palette entry 0.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		pixels: make([]uint8, width*height),
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a Rect.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with palette entry 0.
func (s *Screen) Clear() {
	s.Fill(0)
}

// Fill fills the entire screen with palette entry idx.
func (s *Screen) Fill(idx uint8) {
	for i := range s.pixels {
		s.pixels[i] = idx & 3
	}
}

// Set stores palette entry idx at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, idx uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = idx & 3
}

// Get returns the palette entry at (x, y), or 0 when out of bounds.
func (s *Screen) Get(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pixels[y*s.width+x]
}

// Rect implements Canvas. The rectangle is clipped to the screen.
func (s *Screen) Rect(c DrawColor, r Rect) {
	idx := c.Index()
	if idx < 0 {
		return
	}
	r = r.Clip(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.pixels[y*s.width : (y+1)*s.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = uint8(idx)
		}
	}
}

// Blit implements Canvas.
func (s *Screen) Blit(c DrawColor, sp Sprite, x, y int) {
	idx := c.Index()
	if idx < 0 {
		return
	}
	for sy := 0; sy < sp.H; sy++ {
		for sx := 0; sx < sp.W; sx++ {
			if sp.At(sx, sy) {
				s.Set(x+sx, y+sy, uint8(idx))
			}
		}
	}
}

// Text implements Canvas. Glyphs come from the built-in 7x13 face;
// runes the face lacks are drawn as '?'.
func (s *Screen) Text(c DrawColor, str string, x, y int) {
	idx := c.Index()
	if idx < 0 {
		return
	}

	dot := fixed.P(x, y+textFace.Metrics().Ascent.Ceil())
	prev := rune(-1)
	for _, r := range str {
		if prev >= 0 {
			dot.X += textFace.Kern(prev, r)
		}
		dr, mask, mp, advance, ok := textFace.Glyph(dot, r)
		if !ok {
			dr, mask, mp, advance, _ = textFace.Glyph(dot, '?')
		}
		for py := dr.Min.Y; py < dr.Max.Y; py++ {
			for px := dr.Min.X; px < dr.Max.X; px++ {
				_, _, _, a := mask.At(mp.X+px-dr.Min.X, mp.Y+py-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					s.Set(px, py, uint8(idx))
				}
			}
		}
		dot.X += advance
		prev = r
	}
}

// TextWidth returns the advance width of str in pixels.
func TextWidth(str string) int {
	return font.MeasureString(textFace, str).Ceil()
}

// Image returns the framebuffer as a paletted image using palette p.
func (s *Screen) Image(p Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, s.width, s.height), p.ColorModel())
	copy(img.Pix, s.pixels)
	return img
}

// RGBA writes the framebuffer into dst as RGBA bytes (4 per pixel).
// dst must hold at least Width*Height*4 bytes.
func (s *Screen) RGBA(p Palette, dst []byte) {
	var lut [4][4]byte
	for i := range lut {
		c := p.RGBA(i)
		lut[i] = [4]byte{c.R, c.G, c.B, c.A}
	}
	for i, idx := range s.pixels {
		copy(dst[i*4:i*4+4], lut[idx][:])
	}
}

// String dumps the framebuffer as rows of palette digits ('0'..'3').
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as palette digits.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat("0", s.width)
	}
	b := make([]byte, s.width)
	for x := range b {
		b[x] = '0' + s.pixels[y*s.width+x]
	}
	return string(b)
}
