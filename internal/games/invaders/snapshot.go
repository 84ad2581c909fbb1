package invaders

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame      uint64
	Mode       Mode
	Score      int
	Wave       int
	Rows       int
	Cols       int
	MoveDelay  int
	Timer      int
	Direction  int
	AliensLeft int
	PlayerX    int
	Bullet     Bullet

	JingleIndex   int
	JingleTimer   int
	JinglePlaying bool

	// Flattened entity state
	AlienData     []int // x, y, alive per slot
	ExplosionData []int // x, y, life, active per slot
	StarData      []int // x, y, speed per star

	RNGState uint32
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	idx, timer := w.Jingle.Position()

	snap := Snapshot{
		Frame:         g.frame,
		Mode:          g.mode,
		Score:         w.Score,
		Wave:          w.Wave.Number,
		Rows:          w.Wave.Rows,
		Cols:          w.Wave.Cols,
		MoveDelay:     w.Wave.MoveDelay,
		Timer:         w.Wave.Timer,
		Direction:     w.Wave.Direction,
		AliensLeft:    w.AliensLeft,
		PlayerX:       w.Player.X,
		Bullet:        w.Bullet,
		JingleIndex:   idx,
		JingleTimer:   timer,
		JinglePlaying: w.Jingle.Playing(),
		AlienData:     make([]int, 0, len(w.Aliens)*3),
		ExplosionData: make([]int, 0, len(w.Explosions)*4),
		StarData:      make([]int, 0, len(w.Stars)*3),
	}

	for _, a := range w.Aliens {
		snap.AlienData = append(snap.AlienData, a.X, a.Y, boolToInt(a.Alive))
	}
	for _, e := range w.Explosions {
		snap.ExplosionData = append(snap.ExplosionData, e.X, e.Y, e.Life, boolToInt(e.Active))
	}
	for _, s := range w.Stars {
		snap.StarData = append(snap.StarData, s.X, s.Y, s.Speed)
	}

	if g.rng != nil {
		snap.RNGState = g.rng.State()
	}

	return snap
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Mode)
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rows)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cols)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveDelay)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timer)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AliensLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bullet.X)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bullet.Y)   //#nosec G115 -- hash computation
	h = h*31 + uint64(boolToInt(snap.Bullet.Active))
	h = h*31 + uint64(snap.JingleIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.JingleTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(boolToInt(snap.JinglePlaying))

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ExplosionData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.StarData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.RNGState)

	return h
}
