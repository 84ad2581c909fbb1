package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Autopilot produces inputs for unattended runs. It chases the lowest
// living alien and fires while the shot would line up with it.
type Autopilot struct {
	// Restart presses start on the title screen after a death.
	Restart bool
	started bool
}

// Input returns the input frame for the next call to g.Frame.
func (ap *Autopilot) Input(g *Game) core.InputFrame {
	var in core.InputFrame

	if g.Mode() == ModeMenu {
		if !ap.started || ap.Restart {
			ap.started = true
			in.Set(core.Button1)
		}
		return in
	}

	w := &g.world
	target, ok := lowestAlien(w)
	if !ok {
		return in
	}

	// Shot spans [x+3, x+5); it overlaps the alien when x is within
	// [target.X-4, target.X+4].
	shotX := w.Player.X + bulletOffset
	switch {
	case shotX+bulletW <= target.X+2:
		in.Set(core.ButtonRight)
	case shotX >= target.X+spriteSize-2:
		in.Set(core.ButtonLeft)
	}

	if !w.Bullet.Active && shotX+bulletW > target.X && shotX < target.X+spriteSize {
		in.Set(core.Button1)
	}

	return in
}

// lowestAlien returns the living alien closest to the ship, preferring the
// lowest grid index on ties.
func lowestAlien(w *World) (Alien, bool) {
	best := -1
	for i := range w.Aliens {
		if !w.Aliens[i].Alive {
			continue
		}
		if best < 0 || w.Aliens[i].Y > w.Aliens[best].Y {
			best = i
		}
	}
	if best < 0 {
		return Alien{}, false
	}
	return w.Aliens[best], true
}
