package invaders

import "github.com/vovakirdan/invaders/internal/core"

// MoveDelay returns the frames between formation steps for wave n.
// Wave 1 keeps the cabinet's starting pace; later waves follow 20-3n,
// floored at 4.
func MoveDelay(n int) int {
	if n <= 1 {
		return initialMoveDelay
	}
	return core.Max(minMoveDelay, initialMoveDelay-3*n)
}

// RowsForWave returns the formation height for wave n: ceil((n+1)/2),
// capped at MaxRows.
func RowsForWave(n int) int {
	return core.Min(MaxRows, (n+2)/2)
}

// configureWave sets the wave parameters for wave n without touching the grid.
func (g *Game) configureWave(n int) {
	w := &g.world.Wave
	w.Number = n
	w.Rows = RowsForWave(n)
	w.Cols = MaxCols
	w.MoveDelay = MoveDelay(n)
	w.Timer = w.MoveDelay
	w.Direction = 1
}

// populate fills the Rows x Cols rectangle with living aliens and marks
// every other slot dead. AliensLeft is recomputed from the new layout.
func (g *Game) populate() {
	w := &g.world
	for i := range w.Aliens {
		w.Aliens[i].Alive = false
	}

	w.AliensLeft = 0
	for row := 0; row < w.Wave.Rows; row++ {
		for col := 0; col < w.Wave.Cols; col++ {
			w.Aliens[alienIndex(row, col)] = Alien{
				X:     gridLeft + col*gridStride,
				Y:     gridTop + row*gridStride,
				Alive: true,
			}
			w.AliensLeft++
		}
	}
}

// atEdge reports whether any living alien's next horizontal step would
// leave the playfield. The first alien found decides for the whole group.
// Looking one step ahead turns the formation at x=149 on the right where
// an at-or-past test would let it reach 154, so every alien stays within
// [0, playerMaxX].
func (g *Game) atEdge() bool {
	dir := g.world.Wave.Direction
	for i := range g.world.Aliens {
		a := &g.world.Aliens[i]
		if !a.Alive {
			continue
		}
		next := a.X + dir*formationStep
		if (dir > 0 && next > playerMaxX) || (dir < 0 && next < 0) {
			return true
		}
	}
	return false
}

// updateFormation advances the move timer and, when it fires, either
// shifts the formation sideways or flips it and drops it one step.
// Living aliens are drawn afterwards.
func (g *Game) updateFormation(cv core.Canvas) {
	w := &g.world
	w.Wave.Timer--
	if w.Wave.Timer <= 0 {
		w.Wave.Timer = w.Wave.MoveDelay

		if g.atEdge() {
			w.Wave.Direction = -w.Wave.Direction
			for i := range w.Aliens {
				if w.Aliens[i].Alive {
					w.Aliens[i].Y += descendStep
				}
			}
		} else {
			dx := w.Wave.Direction * formationStep
			for i := range w.Aliens {
				if w.Aliens[i].Alive {
					w.Aliens[i].X += dx
				}
			}
		}
	}

	for i := range w.Aliens {
		if w.Aliens[i].Alive {
			cv.Blit(core.Color4, alienSprite, w.Aliens[i].X, w.Aliens[i].Y)
		}
	}
}

// nextWave scales difficulty, rebuilds the grid and starts the jingle.
func (g *Game) nextWave() {
	g.configureWave(g.world.Wave.Number + 1)
	g.populate()
	g.world.Jingle.Start()
	g.emit(Event{Kind: EventWaveCleared, Score: g.world.Score, Wave: g.world.Wave.Number})
}
