package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Jingle is a stepped melody sequencer. It is advanced once per frame and
// never blocks the simulation.
type Jingle struct {
	melody  []int // flattened (frequency, frames) pairs
	index   int
	timer   int
	playing bool
}

// NewJingle creates a stopped sequencer for melody.
// melody must hold an even number of entries.
func NewJingle(melody []int) Jingle {
	if len(melody)%2 != 0 {
		panic("invaders: melody must be (frequency, frames) pairs")
	}
	return Jingle{melody: melody}
}

// Start restarts playback from the first note.
func (j *Jingle) Start() {
	j.index = 0
	j.timer = 0
	j.playing = true
}

// Stop halts playback without emitting anything.
func (j *Jingle) Stop() {
	j.playing = false
	j.index = 0
	j.timer = 0
}

// Playing reports whether the melody is still running.
func (j *Jingle) Playing() bool {
	return j.playing
}

// Advance runs one frame of the sequencer, emitting at most one tone.
func (j *Jingle) Advance(sp core.Speaker) {
	if !j.playing {
		return
	}

	if j.timer > 0 {
		j.timer--
		return
	}

	if j.index >= len(j.melody) {
		j.playing = false
		sp.Tone(toneStop)
		return
	}

	freq, frames := j.melody[j.index], j.melody[j.index+1]
	if freq != noteRest {
		sp.Tone(core.Tone{Freq: freq, Duration: frames, Volume: jingleVolume, Wave: core.WaveTriangle})
	}
	j.timer = frames
	j.index += 2
}

// Position returns the melody offset and the frames left on the current note.
func (j *Jingle) Position() (index, timer int) {
	return j.index, j.timer
}
