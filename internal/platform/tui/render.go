package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/core"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color.
const upperHalf = "▀"

// Renderer converts the framebuffer to styled half-block text.
type Renderer struct {
	palette core.Palette
	styles  [4][4]lipgloss.Style // [top][bottom]
}

// NewRenderer creates a renderer for palette p.
func NewRenderer(p core.Palette) *Renderer {
	r := &Renderer{palette: p}
	for top := range 4 {
		for bottom := range 4 {
			r.styles[top][bottom] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.Hex(top))).
				Background(lipgloss.Color(p.Hex(bottom)))
		}
	}
	return r
}

// Size returns the terminal cells needed for screen s at scale.
func Size(s *core.Screen, scale int) (cols, rows int) {
	scale = max(scale, 1)
	cols = s.Width() / scale
	rows = s.Height() / scale / 2
	return cols, rows
}

// AutoScale picks the largest resolution that fits a terminal of
// width x height cells, leaving reserve rows for the status line.
func AutoScale(width, height, reserve int) int {
	if width >= core.ScreenW && height-reserve >= core.ScreenH/2 {
		return 1
	}
	return 2
}

// sample returns the palette entry for the cell pixel (x, y) at scale.
// Downsampled blocks keep their brightest entry so thin bullets and
// stars survive.
func sample(s *core.Screen, x, y, scale int) uint8 {
	if scale <= 1 {
		return s.Get(x, y)
	}
	var best uint8
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			best = max(best, s.Get(x*scale+dx, y*scale+dy))
		}
	}
	return best
}

// Render converts screen s to a styled string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen, scale int) string {
	scale = max(scale, 1)
	cols, rows := Size(s, scale)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			top := sample(s, x, row*2, scale)
			bottom := sample(s, x, row*2+1, scale)

			// Collect consecutive cells with the same pair
			n := 1
			for x+n < cols &&
				sample(s, x+n, row*2, scale) == top &&
				sample(s, x+n, row*2+1, scale) == bottom {
				n++
			}

			sb.WriteString(r.styles[top][bottom].Render(strings.Repeat(upperHalf, n)))
			x += n
		}
	}
	return sb.String()
}
