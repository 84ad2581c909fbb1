package invaders

import (
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

// rig drives a game with recording devices.
type rig struct {
	g     *Game
	draw  *core.DrawRecorder
	sound *core.ToneRecorder
}

func newRig(t *testing.T, seed uint32) *rig {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g := New(cfg)
	g.Load()
	return &rig{g: g, draw: &core.DrawRecorder{}, sound: &core.ToneRecorder{}}
}

// step runs one frame with fresh recorders.
func (r *rig) step(in core.InputFrame) FrameResult {
	r.draw.Reset()
	r.sound.Reset()
	return r.g.Frame(in, r.draw, r.sound)
}

// idle runs n frames with no input.
func (r *rig) idle(n int) {
	for i := 0; i < n; i++ {
		r.step(core.InputFrame{})
	}
}

// start leaves the title screen.
func (r *rig) start(t *testing.T) {
	t.Helper()
	var in core.InputFrame
	in.Set(core.Button1)
	res := r.step(in)
	if res.Mode != ModePlaying {
		t.Fatalf("start: mode = %v, want playing", res.Mode)
	}
}

func press(b core.Button) core.InputFrame {
	var in core.InputFrame
	in.Set(b)
	return in
}

// checkInvariants verifies the world-level properties that hold after
// every frame.
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	w := &g.world

	if n := w.CountAlive(); w.AliensLeft != n {
		t.Fatalf("frame %d: AliensLeft = %d, living = %d", g.frame, w.AliensLeft, n)
	}
	if w.Player.X < 0 || w.Player.X > playerMaxX {
		t.Fatalf("frame %d: player x = %d out of [0, %d]", g.frame, w.Player.X, playerMaxX)
	}
	if w.Player.Y != playerY {
		t.Fatalf("frame %d: player y = %d", g.frame, w.Player.Y)
	}
	if w.Bullet.Active && w.Bullet.Y < 0 {
		t.Fatalf("frame %d: active bullet at y = %d", g.frame, w.Bullet.Y)
	}
	for i, a := range w.Aliens {
		if a.Alive && (a.X < 0 || a.X > playerMaxX) {
			t.Fatalf("frame %d: alien %d at x = %d", g.frame, i, a.X)
		}
	}
	initial := initialStars(g)
	for i, s := range w.Stars {
		if s.Speed != initial[i].Speed {
			t.Fatalf("frame %d: star %d speed %d, loaded with %d", g.frame, i, s.Speed, initial[i].Speed)
		}
		if s.X < 0 || s.X >= core.ScreenW {
			t.Fatalf("star %d x = %d", i, s.X)
		}
	}
	for i, e := range w.Explosions {
		if e.Active && (e.Life < 1 || e.Life > explosionLife) {
			t.Fatalf("frame %d: explosion %d life = %d", g.frame, i, e.Life)
		}
	}
}

// initialStars returns the star field g had right after Load.
func initialStars(g *Game) [starCount]Star {
	ref := New(g.cfg)
	ref.Load()
	return ref.world.Stars
}
