package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Playfield and entity constants.
const (
	spriteSize = 8

	playerStartX = 76
	playerY      = 140
	playerSpeed  = 2
	playerMaxX   = core.ScreenW - spriteSize

	bulletW      = 2
	bulletH      = 4
	bulletSpeed  = 4
	bulletOffset = 3 // from player.x

	starCount    = 50
	maxStarSpeed = 2 // per-frame descent cap

	// MaxRows and MaxCols bound the formation grid.
	MaxRows    = 6
	MaxCols    = 8
	maxAliens  = MaxRows * MaxCols
	gridLeft   = 20
	gridTop    = 20
	gridStride = 12

	formationStep = 5
	descendStep   = 5

	initialMoveDelay = 20
	minMoveDelay     = 4

	explosionLife = 10
	killScore     = 10
)

// Star is one background parallax point.
type Star struct {
	X, Y  int
	Speed int // 1..3, fixed for the star's lifetime
}

// Player is the ship. Y never changes.
type Player struct {
	X, Y int
}

// Bounds returns the player's hit box.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, spriteSize, spriteSize)
}

// Bullet is the player's single shot.
type Bullet struct {
	X, Y   int
	Active bool
}

// Bounds returns the bullet's hit box.
func (b Bullet) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, bulletW, bulletH)
}

// Alien is one cell of the formation grid.
type Alien struct {
	X, Y  int
	Alive bool
}

// Bounds returns the alien's hit box.
func (a Alien) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, spriteSize, spriteSize)
}

// Explosion is a short-lived burst left by a dead alien.
type Explosion struct {
	X, Y   int
	Life   int // frames remaining
	Active bool
}

// WaveState tracks difficulty and formation movement for the current wave.
type WaveState struct {
	Number    int
	Rows      int
	Cols      int
	MoveDelay int // frames between formation steps
	Timer     int // frames until the next step
	Direction int // +1 right, -1 left
}

// World is the complete simulation context. All subsystems mutate it in
// place; there is exactly one per game.
type World struct {
	Stars      [starCount]Star
	Player     Player
	Bullet     Bullet
	Aliens     [maxAliens]Alien
	AliensLeft int
	Explosions [maxAliens]Explosion
	Wave       WaveState
	Jingle     Jingle
	Score      int
}

// alienIndex maps a grid cell to its slot in World.Aliens.
// Cells outside the grid capacity are a programming error.
func alienIndex(row, col int) int {
	if row < 0 || row >= MaxRows || col < 0 || col >= MaxCols {
		panic("invaders: alien cell out of grid capacity")
	}
	return row*MaxCols + col
}

// CountAlive counts living aliens by scanning the grid.
func (w *World) CountAlive() int {
	n := 0
	for i := range w.Aliens {
		if w.Aliens[i].Alive {
			n++
		}
	}
	return n
}

// ActiveExplosions counts explosions still burning.
func (w *World) ActiveExplosions() int {
	n := 0
	for i := range w.Explosions {
		if w.Explosions[i].Active {
			n++
		}
	}
	return n
}
