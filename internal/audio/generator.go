package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/invaders/internal/core"
)

const (
	pulseDuty  = 0.125                // console default duty cycle
	releaseLen = 4 * time.Millisecond // fade-out to avoid clicks
	headroom   = 0.25                 // per-channel gain so four channels never clip
	noiseSeed  = uint16(0x0001)       // LFSR start state
)

// toneGenerator renders one console tone. It ends after its duration.
type toneGenerator struct {
	wave    core.Waveform
	step    float64 // phase advance per sample
	phase   float64
	pos     int
	total   int
	release int
	lfsr    uint16
	level   float64 // current noise output
}

// NewToneStreamer builds a streamer for t, converting the frame-based
// duration with fps. It returns nil for tones that cannot sound.
func NewToneStreamer(t core.Tone, rate beep.SampleRate, fps int, master float64) beep.Streamer {
	if t.Freq <= 0 || t.Duration <= 0 || t.Volume <= 0 || fps <= 0 {
		return nil
	}

	total := int(rate) * t.Duration / fps
	gen := &toneGenerator{
		wave:    t.Wave,
		step:    float64(t.Freq) / float64(rate),
		total:   total,
		release: min(rate.N(releaseLen), total),
		lfsr:    noiseSeed,
		level:   1,
	}

	vol := float64(min(t.Volume, 100)) / 100 * master * headroom
	return newVolume(gen, vol)
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}

		v := g.sample()
		if left := g.total - g.pos; left < g.release {
			v *= float64(left) / float64(g.release)
		}

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// sample returns the next raw value in [-1, 1] and advances the phase.
func (g *toneGenerator) sample() float64 {
	var v float64
	switch g.wave {
	case core.WavePulse1, core.WavePulse2:
		v = -1
		if g.phase < pulseDuty {
			v = 1
		}
	case core.WaveTriangle:
		v = 4*math.Abs(g.phase-0.5) - 1
	case core.WaveNoise:
		v = g.level
	}

	g.phase += g.step
	if g.phase >= 1 {
		g.phase -= math.Floor(g.phase)
		if g.wave == core.WaveNoise {
			g.clockNoise()
		}
	}
	return v
}

// clockNoise shifts the 15-bit LFSR once per period.
func (g *toneGenerator) clockNoise() {
	bit := (g.lfsr ^ (g.lfsr >> 1)) & 1
	g.lfsr = (g.lfsr >> 1) | (bit << 14)
	g.level = 1
	if g.lfsr&1 == 1 {
		g.level = -1
	}
}

// newVolume wraps s with a linear gain. Zero gain is silent since
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
