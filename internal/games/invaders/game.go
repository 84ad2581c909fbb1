// Package invaders implements the space invaders cartridge: a 160x160
// fixed-step simulation driven one frame at a time by a console frontend.
package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Game owns the world and the random stream. It is not safe for
// concurrent use; frontends drive it from a single loop.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *RNG
	world  World
	mode   Mode
	frame  uint64
	loaded bool
	events []Event
}

// New creates an unloaded game. A zero seed falls back to 1.
func New(cfg core.RuntimeConfig) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return &Game{cfg: cfg}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Palette returns the palette the cartridge installs on load.
func (g *Game) Palette() core.Palette {
	return g.cfg.Palette
}

// Load performs one-time initialization. It must be called exactly once,
// before the first Frame.
func (g *Game) Load() {
	if g.loaded {
		panic("invaders: Load called twice")
	}
	g.loaded = true

	g.rng = NewRNG(g.cfg.Seed)
	g.frame = 0
	g.mode = ModeMenu
	g.world = World{Jingle: NewJingle(waveJingle)}

	g.initStars()
	g.configureWave(1)
	g.populate()
	g.world.Player = Player{X: playerStartX, Y: playerY}
}

// resetRun returns the world to the start of wave 1. Stars and the random
// stream are left untouched.
func (g *Game) resetRun() {
	w := &g.world
	g.configureWave(1)
	g.populate()
	w.Player = Player{X: playerStartX, Y: playerY}
	w.Bullet = Bullet{}
	w.Score = 0
	w.Explosions = [maxAliens]Explosion{}
	w.Jingle.Stop()
}

// Frame advances the simulation by one tick, issuing draw calls to cv and
// tones to sp. The returned events are valid until the next call.
func (g *Game) Frame(in core.InputFrame, cv core.Canvas, sp core.Speaker) FrameResult {
	if !g.loaded {
		panic("invaders: Frame called before Load")
	}

	g.events = g.events[:0]
	g.frame++

	g.updateStars(cv)

	switch g.mode {
	case ModeMenu:
		g.updateMenu(in, cv)
	case ModePlaying:
		g.updatePlaying(in, cv, sp)
	}

	return FrameResult{
		Mode:   g.mode,
		Score:  g.world.Score,
		Wave:   g.world.Wave.Number,
		Events: g.events,
	}
}

// updatePlaying runs one gameplay frame. The order is observable through
// the shared random stream and must not change.
func (g *Game) updatePlaying(in core.InputFrame, cv core.Canvas, sp core.Speaker) {
	g.updatePlayer(in, cv, sp)
	g.updateBullet(cv)
	g.updateFormation(cv)
	g.resolveBulletHit(sp)
	g.resolvePlayerHit(sp)
	g.drawHUD(cv)
	g.world.Jingle.Advance(sp)
	g.updateExplosions()
	g.drawExplosions(cv)

	if g.world.AliensLeft <= 0 {
		g.nextWave()
	}
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.world.Score,
		Wave:    g.world.Wave.Number,
		Playing: g.mode == ModePlaying,
	}
}

// Mode returns the current top-level state.
func (g *Game) Mode() Mode {
	return g.mode
}

// World returns a copy of the simulation context.
func (g *Game) World() World {
	return g.world
}

// Frames returns the number of frames simulated since Load.
func (g *Game) Frames() uint64 {
	return g.frame
}
