package invaders

import "github.com/vovakirdan/invaders/internal/core"

// updatePlayer moves the ship, fires when the single bullet is free and
// draws the ship.
func (g *Game) updatePlayer(in core.InputFrame, cv core.Canvas, sp core.Speaker) {
	p := &g.world.Player

	if in.Has(core.ButtonLeft) {
		p.X -= playerSpeed
	}
	if in.Has(core.ButtonRight) {
		p.X += playerSpeed
	}
	p.X = core.Clamp(p.X, 0, playerMaxX)

	if in.Has(core.Button1) && !g.world.Bullet.Active {
		g.world.Bullet = Bullet{X: p.X + bulletOffset, Y: p.Y, Active: true}
		sp.Tone(toneFire)
	}

	cv.Blit(core.Color3, playerSprite, p.X, p.Y)
}

// updateBullet moves the shot upward and retires it once it leaves the top.
func (g *Game) updateBullet(cv core.Canvas) {
	b := &g.world.Bullet
	if !b.Active {
		return
	}

	b.Y -= bulletSpeed
	if b.Y < 0 {
		b.Active = false
		return
	}

	cv.Rect(core.Color3, b.Bounds())
}
