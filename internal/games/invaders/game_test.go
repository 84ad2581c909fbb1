package invaders

import (
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestLoadColdBoot(t *testing.T) {
	r := newRig(t, 1)
	g := r.g
	w := &g.world

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
	if w.Wave.Number != 1 || w.Wave.Rows != 1 || w.Wave.Cols != MaxCols {
		t.Errorf("wave = %+v", w.Wave)
	}
	if w.Wave.MoveDelay != initialMoveDelay || w.Wave.Timer != initialMoveDelay || w.Wave.Direction != 1 {
		t.Errorf("wave timing = %+v", w.Wave)
	}
	if w.AliensLeft != MaxCols {
		t.Errorf("AliensLeft = %d, want %d", w.AliensLeft, MaxCols)
	}
	if w.Player.X != playerStartX || w.Player.Y != playerY {
		t.Errorf("player = %+v", w.Player)
	}
	if w.Bullet.Active || w.ActiveExplosions() != 0 || w.Jingle.Playing() {
		t.Error("cold boot should have no bullet, explosions or jingle")
	}
	if w.Stars[0] != (Star{X: 70, Y: 135, Speed: 2}) {
		t.Errorf("first star = %+v", w.Stars[0])
	}
	checkInvariants(t, g)
}

func TestZeroSeedFallsBackToOne(t *testing.T) {
	a := newRig(t, 0)
	b := newRig(t, 1)
	if a.g.world.Stars != b.g.world.Stars {
		t.Error("seed 0 should behave like seed 1")
	}
}

func TestFrameBeforeLoadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(core.DefaultConfig()).Frame(core.InputFrame{}, &core.DrawRecorder{}, core.NopSpeaker{})
}

func TestMenuWaitsForStart(t *testing.T) {
	r := newRig(t, 1)

	for i := 0; i < 30; i++ {
		res := r.step(press(core.ButtonLeft))
		if res.Mode != ModeMenu {
			t.Fatalf("frame %d: left pad should not start the game", i)
		}
	}

	texts := r.draw.Texts()
	want := append([]string{titleText}, promptLines[:]...)
	if len(texts) != len(want) {
		t.Fatalf("menu texts = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, texts[i], want[i])
		}
	}
	if len(r.sound.Tones) != 0 {
		t.Errorf("menu played %d tones", len(r.sound.Tones))
	}
}

func TestMouseClickStarts(t *testing.T) {
	r := newRig(t, 1)

	var in core.InputFrame
	in.Press(core.MouseLeft)
	res := r.step(in)

	if res.Mode != ModePlaying || !r.g.State().Playing {
		t.Fatalf("mode = %v, want playing", res.Mode)
	}
	if !res.Has(EventGameStarted) {
		t.Errorf("events = %+v, want game_started", res.Events)
	}
}

func TestRightClickDoesNotStart(t *testing.T) {
	r := newRig(t, 1)

	var in core.InputFrame
	in.Press(core.MouseRight)
	if res := r.step(in); res.Mode != ModeMenu {
		t.Fatalf("mode = %v, want menu", res.Mode)
	}
}

func TestPlayingFrameDraws(t *testing.T) {
	r := newRig(t, 1)
	r.start(t)
	r.step(press(core.Button1))

	var stars, ships, aliens, shots int
	for _, c := range r.draw.Cmds {
		switch {
		case c.Kind == core.DrawRect && c.Rect.W == 1:
			stars++
		case c.Kind == core.DrawBlit && c.Color == core.Color3:
			ships++
		case c.Kind == core.DrawBlit && c.Color == core.Color4:
			aliens++
		case c.Kind == core.DrawRect && c.Color == core.Color3 && c.Rect.W == bulletW:
			shots++
		}
	}

	if stars != starCount {
		t.Errorf("stars drawn = %d, want %d", stars, starCount)
	}
	if ships != 1 || aliens != MaxCols || shots != 1 {
		t.Errorf("ships=%d aliens=%d shots=%d", ships, aliens, shots)
	}

	texts := r.draw.Texts()
	if len(texts) != 2 || texts[0] != "SCORE:0" || texts[1] != "WAVE:1" {
		t.Errorf("hud = %q", texts)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	r := newRig(t, 1)
	r.start(t)

	for i := 0; i < 100; i++ {
		r.step(press(core.ButtonLeft))
	}
	if x := r.g.world.Player.X; x != 0 {
		t.Errorf("player x = %d after holding left, want 0", x)
	}

	for i := 0; i < 100; i++ {
		r.step(press(core.ButtonRight))
	}
	if x := r.g.world.Player.X; x != playerMaxX {
		t.Errorf("player x = %d after holding right, want %d", x, playerMaxX)
	}
}

func TestWaveClear(t *testing.T) {
	r := newRig(t, 1)
	r.start(t)

	w := &r.g.world
	for i := 1; i < MaxCols; i++ {
		w.Aliens[i].Alive = false
	}
	w.AliensLeft = 1

	res := fireAtFirstAlien(t, r)

	if !res.Has(EventWaveCleared) {
		t.Fatalf("events = %+v, want wave_cleared", res.Events)
	}
	if w.Wave.Number != 2 || w.Wave.Rows != 2 || w.Wave.Cols != MaxCols {
		t.Errorf("wave = %+v, want wave 2 with 2x8", w.Wave)
	}
	if w.Wave.MoveDelay != 14 || w.Wave.Timer != 14 || w.Wave.Direction != 1 {
		t.Errorf("wave timing = %+v, want delay 14", w.Wave)
	}
	if w.AliensLeft != 16 {
		t.Errorf("AliensLeft = %d, want 16", w.AliensLeft)
	}
	if w.Score != killScore {
		t.Errorf("score = %d, want %d carried over", w.Score, killScore)
	}
	if !w.Jingle.Playing() {
		t.Fatal("jingle should start on wave clear")
	}
	checkInvariants(t, r.g)

	// First note on the next frame; no second wave clear.
	res = r.step(core.InputFrame{})
	want := core.Tone{Freq: noteC5, Duration: durEighth, Volume: jingleVolume, Wave: core.WaveTriangle}
	if last, _ := r.sound.Last(); last != want {
		t.Errorf("jingle tone = %+v, want %+v", last, want)
	}

	for i := 0; i < 100; i++ {
		if res.Has(EventWaveCleared) {
			t.Fatalf("wave cleared again %d frames later", i)
		}
		res = r.step(core.InputFrame{})
	}
	if w.Wave.Number != 2 {
		t.Errorf("wave = %d, want 2", w.Wave.Number)
	}
}

func TestExplosionExpires(t *testing.T) {
	r := newRig(t, 1)
	r.start(t)

	fireAtFirstAlien(t, r)
	r.g.world.Player.X = 0 // keep clear of the formation

	for i := 0; i < explosionLife-2; i++ {
		r.step(core.InputFrame{})
	}
	if r.g.world.ActiveExplosions() != 1 {
		t.Fatal("explosion expired early")
	}

	r.step(core.InputFrame{})
	if r.g.world.ActiveExplosions() != 0 {
		t.Errorf("explosion still active after %d frames", explosionLife)
	}
}

func TestExplosionSlotsFull(t *testing.T) {
	r := newRig(t, 1)
	g := r.g

	for i := 0; i < maxAliens+5; i++ {
		g.spawnExplosion(i, i)
	}
	if n := g.world.ActiveExplosions(); n != maxAliens {
		t.Errorf("active = %d, want %d", n, maxAliens)
	}
	if e := g.world.Explosions[maxAliens-1]; e.X != maxAliens-1 {
		t.Errorf("last slot = %+v", e)
	}
}

func TestExplosionDrawConsumesRNG(t *testing.T) {
	r := newRig(t, 1)
	g := r.g

	g.spawnExplosion(50, 50)
	before := g.rng.State()

	rec := &core.DrawRecorder{}
	g.drawExplosions(rec)

	if len(rec.Cmds) != len(explosionBursts) {
		t.Fatalf("drew %d rects, want %d", len(rec.Cmds), len(explosionBursts))
	}
	if g.rng.State() == before {
		t.Error("explosion jitter should draw from the shared stream")
	}

	check := NewRNG(before)
	for i, b := range explosionBursts {
		c := rec.Cmds[i]
		wantX := 50 + check.Intn(-b.jitter, b.jitter)
		wantY := 50 + check.Intn(-b.jitter, b.jitter)
		if c.Color != b.color || c.Rect != core.NewRect(wantX, wantY, b.size, b.size) {
			t.Errorf("rect %d = %+v, want color %d at (%d,%d) size %d", i, c, b.color, wantX, wantY, b.size)
		}
	}
}

func TestStarWrap(t *testing.T) {
	r := newRig(t, 1)
	g := r.g

	g.world.Stars[0] = Star{X: 10, Y: 159, Speed: 3}
	before := g.rng.State()

	rec := &core.DrawRecorder{}
	g.updateStars(rec)

	s := g.world.Stars[0]
	if s.Y != 0 {
		t.Errorf("star y = %d, want 0 after wrap", s.Y)
	}
	if want := NewRNG(before).Intn(0, core.ScreenW-1); s.X != want {
		t.Errorf("star x = %d, want %d", s.X, want)
	}
	if c := rec.Cmds[0]; c.Color != core.Color4 || c.Rect != core.NewRect(s.X, 0, 1, 1) {
		t.Errorf("star draw = %+v", c)
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed uint32) (uint64, Snapshot) {
		r := newRig(t, seed)
		ap := &Autopilot{Restart: true}
		for i := 0; i < 3000; i++ {
			r.step(ap.Input(r.g))
			checkInvariants(t, r.g)
		}
		snap := r.g.Snapshot()
		return snap.Hash(), snap
	}

	h1, s1 := run(12345)
	h2, s2 := run(12345)
	if h1 != h2 {
		t.Errorf("hash mismatch: %d vs %d", h1, h2)
	}
	if s1.Score != s2.Score || s1.Wave != s2.Wave || s1.RNGState != s2.RNGState {
		t.Errorf("snapshot mismatch: %+v vs %+v", s1, s2)
	}

	h3, _ := run(54321)
	if h1 == h3 {
		t.Error("different seeds produced the same hash")
	}
}

func TestAutopilotScores(t *testing.T) {
	r := newRig(t, 1)
	ap := &Autopilot{}

	kills := 0
	for i := 0; i < 2000; i++ {
		res := r.step(ap.Input(r.g))
		for _, e := range res.Events {
			if e.Kind == EventAlienKilled {
				kills++
			}
		}
	}
	if kills == 0 {
		t.Error("autopilot never hit anything")
	}
}

// traceDevice records draws and tones in one ordered log.
type traceDevice struct {
	ops []traceOp
}

type traceOp struct {
	draw   core.DrawCmd
	tone   core.Tone
	isTone bool
}

func (d *traceDevice) Rect(c core.DrawColor, r core.Rect) {
	d.ops = append(d.ops, traceOp{draw: core.DrawCmd{Kind: core.DrawRect, Color: c, Rect: r}})
}

func (d *traceDevice) Blit(c core.DrawColor, s core.Sprite, x, y int) {
	d.ops = append(d.ops, traceOp{draw: core.DrawCmd{Kind: core.DrawBlit, Color: c, Rect: core.NewRect(x, y, s.W, s.H)}})
}

func (d *traceDevice) Text(c core.DrawColor, s string, x, y int) {
	d.ops = append(d.ops, traceOp{draw: core.DrawCmd{Kind: core.DrawText, Color: c, Rect: core.Rect{X: x, Y: y}, Text: s}})
}

func (d *traceDevice) Tone(t core.Tone) {
	d.ops = append(d.ops, traceOp{tone: t, isTone: true})
}

// label names an op by the subsystem that issued it.
func (op traceOp) label() string {
	if op.isTone {
		return "tone"
	}
	c := op.draw
	switch {
	case c.Kind == core.DrawText:
		return "text:" + c.Text
	case c.Kind == core.DrawBlit && c.Color == core.Color3:
		return "ship"
	case c.Kind == core.DrawBlit:
		return "alien"
	case c.Rect.W == 1 && c.Rect.H == 1:
		return "star"
	case c.Rect.W == bulletW && c.Rect.H == bulletH:
		return "bullet"
	default:
		return "burst"
	}
}

func TestPlayingFrameOrder(t *testing.T) {
	r := newRig(t, 1)
	r.start(t)
	r.step(press(core.Button1))

	g := r.g
	g.world.Jingle.Start()
	g.spawnExplosion(60, 60)
	g.world.Stars[0].Y = core.ScreenH // wraps this frame
	stars := g.world.Stars
	stream := *g.rng

	dev := &traceDevice{}
	g.Frame(core.InputFrame{}, dev, dev)

	var want []string
	for range starCount {
		want = append(want, "star")
	}
	want = append(want, "ship", "bullet")
	for range MaxCols {
		want = append(want, "alien")
	}
	want = append(want, "text:SCORE:0", "text:WAVE:1", "tone", "burst", "burst", "burst")

	var got []string
	for _, op := range dev.ops {
		got = append(got, op.label())
	}
	if len(got) != len(want) {
		t.Fatalf("frame issued %d ops, want %d:\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("op %d = %s, want %s:\n%q", i, got[i], want[i], got)
		}
	}

	// Replay the shared stream: star wraps draw before explosion jitter.
	for i, s := range stars {
		y := s.Y + core.Min(s.Speed, maxStarSpeed)
		x := s.X
		if y > core.ScreenH {
			y, x = 0, stream.Intn(0, core.ScreenW-1)
		}
		if rect := dev.ops[i].draw.Rect; rect.X != x || rect.Y != y {
			t.Errorf("star %d drawn at (%d,%d), want (%d,%d)", i, rect.X, rect.Y, x, y)
		}
	}
	bursts := dev.ops[len(dev.ops)-len(explosionBursts):]
	for i, b := range explosionBursts {
		x := 60 + stream.Intn(-b.jitter, b.jitter)
		y := 60 + stream.Intn(-b.jitter, b.jitter)
		if c := bursts[i].draw; c.Color != b.color || c.Rect != core.NewRect(x, y, b.size, b.size) {
			t.Errorf("burst %d = %+v, want color %d at (%d,%d)", i, c, b.color, x, y)
		}
	}
	if g.rng.State() != stream.State() {
		t.Errorf("rng state = %d after frame, replay reached %d", g.rng.State(), stream.State())
	}

	if tone := dev.ops[len(want)-4].tone; tone.Freq != noteC5 {
		t.Errorf("jingle tone = %+v, want C5", tone)
	}
}

func TestMenuFrameOrder(t *testing.T) {
	r := newRig(t, 1)

	dev := &traceDevice{}
	r.g.Frame(core.InputFrame{}, dev, dev)

	if len(dev.ops) != starCount+1+len(promptLines) {
		t.Fatalf("menu frame issued %d ops", len(dev.ops))
	}
	for i, op := range dev.ops[:starCount] {
		if op.label() != "star" {
			t.Fatalf("op %d = %s, stars must draw first", i, op.label())
		}
	}
	if got := dev.ops[starCount].label(); got != "text:"+titleText {
		t.Errorf("first menu text = %s, want the title", got)
	}
}
