package invaders

import "github.com/vovakirdan/invaders/internal/core"

// spawnExplosion claims the first free slot. When every slot is burning
// the explosion is dropped.
func (g *Game) spawnExplosion(x, y int) {
	for i := range g.world.Explosions {
		e := &g.world.Explosions[i]
		if e.Active {
			continue
		}
		*e = Explosion{X: x, Y: y, Life: explosionLife, Active: true}
		return
	}
}

// updateExplosions ages every active explosion by one frame.
func (g *Game) updateExplosions() {
	for i := range g.world.Explosions {
		e := &g.world.Explosions[i]
		if !e.Active {
			continue
		}
		e.Life--
		if e.Life <= 0 {
			e.Active = false
		}
	}
}

// burst is one jittered rectangle of an explosion frame.
type burst struct {
	color  core.DrawColor
	size   int
	jitter int
}

var explosionBursts = [...]burst{
	{color: core.Color4, size: 2, jitter: 2},
	{color: core.Color4, size: 3, jitter: 3},
	{color: core.Color3, size: 2, jitter: 1},
}

// drawExplosions renders each active explosion as three jittered
// rectangles around the alien's top-left corner. RNG order per rectangle: x, y.
func (g *Game) drawExplosions(cv core.Canvas) {
	for i := range g.world.Explosions {
		e := &g.world.Explosions[i]
		if !e.Active {
			continue
		}

		for _, b := range explosionBursts {
			x := e.X + g.rng.Intn(-b.jitter, b.jitter)
			y := e.Y + g.rng.Intn(-b.jitter, b.jitter)
			cv.Rect(b.color, core.NewRect(x, y, b.size, b.size))
		}
	}
}
