package invaders

import "github.com/vovakirdan/invaders/internal/core"

// resolveBulletHit kills the first living alien, in grid order, that the
// bullet overlaps. At most one alien dies per frame.
func (g *Game) resolveBulletHit(sp core.Speaker) {
	w := &g.world
	if !w.Bullet.Active {
		return
	}

	shot := w.Bullet.Bounds()
	for i := range w.Aliens {
		a := &w.Aliens[i]
		if !a.Alive || !shot.Intersects(a.Bounds()) {
			continue
		}

		a.Alive = false
		g.spawnExplosion(a.X, a.Y)
		w.Bullet.Active = false
		w.Score += killScore
		w.AliensLeft--
		sp.Tone(toneKill)
		g.emit(Event{Kind: EventAlienKilled, Score: w.Score, Wave: w.Wave.Number, X: a.X, Y: a.Y})
		return
	}
}

// resolvePlayerHit ends the run when any living alien touches the ship.
// The score and wave reached are reported before the world is reset.
func (g *Game) resolvePlayerHit(sp core.Speaker) {
	w := &g.world
	ship := w.Player.Bounds()
	for i := range w.Aliens {
		if !w.Aliens[i].Alive || !ship.Intersects(w.Aliens[i].Bounds()) {
			continue
		}

		g.emit(Event{Kind: EventPlayerDied, Score: w.Score, Wave: w.Wave.Number, X: w.Player.X, Y: w.Player.Y})
		g.mode = ModeMenu
		sp.Tone(toneDeath)
		g.resetRun()
		return
	}
}
