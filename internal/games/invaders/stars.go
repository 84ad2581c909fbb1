package invaders

import "github.com/vovakirdan/invaders/internal/core"

// initStars scatters the background. RNG order per star: x, y, speed.
func (g *Game) initStars() {
	for i := range g.world.Stars {
		g.world.Stars[i] = Star{
			X:     g.rng.Intn(0, core.ScreenW-1),
			Y:     g.rng.Intn(0, core.ScreenH-1),
			Speed: g.rng.Intn(1, 3),
		}
	}
}

// updateStars scrolls and draws the parallax background.
// Faster stars get brighter colors; descent is capped at maxStarSpeed.
func (g *Game) updateStars(cv core.Canvas) {
	for i := range g.world.Stars {
		s := &g.world.Stars[i]
		s.Y += core.Min(s.Speed, maxStarSpeed)

		if s.Y > core.ScreenH {
			s.Y = 0
			s.X = g.rng.Intn(0, core.ScreenW-1)
		}

		cv.Rect(core.DrawColor(s.Speed+1), core.NewRect(s.X, s.Y, 1, 1))
	}
}
