package invaders

import "github.com/vovakirdan/invaders/internal/core"

// One-shot cues fired by gameplay events.
var (
	toneFire  = core.Tone{Freq: 1000, Duration: 10, Volume: 50, Wave: core.WavePulse1}
	toneKill  = core.Tone{Freq: 200, Duration: 15, Volume: 80, Wave: core.WaveNoise}
	toneDeath = core.Tone{Freq: 50, Duration: 60, Volume: 100, Wave: core.WaveTriangle}
	toneStop  = core.Tone{}
)

// Note frequencies in Hz.
const (
	noteC5   = 523
	noteE5   = 659
	noteG5   = 784
	noteC6   = 1047
	noteRest = 0
)

// Note lengths in frames.
const (
	durHalf    = 30
	durQuarter = 15
	durEighth  = 7
)

const jingleVolume = 100

// waveJingle is the wave-clear melody as flattened (frequency, frames) pairs.
var waveJingle = []int{
	noteC5, durEighth,
	noteE5, durEighth,
	noteG5, durQuarter,
	noteC6, durHalf,
	noteRest, durEighth,
}
