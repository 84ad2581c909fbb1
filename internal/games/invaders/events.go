package invaders

// EventKind identifies a gameplay event reported to the platform.
type EventKind uint8

// Gameplay events.
const (
	EventGameStarted EventKind = iota
	EventAlienKilled
	EventWaveCleared
	EventPlayerDied
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game_started"
	case EventAlienKilled:
		return "alien_killed"
	case EventWaveCleared:
		return "wave_cleared"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// Event is something that happened during a frame.
// Score and Wave are the values at the moment of the event; for
// EventWaveCleared, Wave is the wave that just started.
type Event struct {
	Kind  EventKind
	Score int
	Wave  int
	X, Y  int // Where it happened, when meaningful
}

// FrameResult is returned by every Frame call.
type FrameResult struct {
	Mode   Mode
	Score  int
	Wave   int
	Events []Event // Valid until the next Frame call
}

// Has reports whether an event of kind k happened this frame.
func (r FrameResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
