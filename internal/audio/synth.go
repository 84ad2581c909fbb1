// Package audio renders console tones through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/invaders/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	channels   = 4
)

// Synth is a four-channel tone player. Each waveform owns one channel and
// a new tone on a channel cuts off the previous one. It implements
// core.Speaker and is safe for concurrent use.
type Synth struct {
	mu          sync.Mutex
	fps         int
	master      float64
	mixer       *beep.Mixer
	voices      [channels]*beep.Ctrl
	initialized bool
}

// NewSynth creates a synth that converts tone durations at fps frames per
// second and scales every tone by master (0..1).
func NewSynth(fps int, master float64) *Synth {
	if fps <= 0 {
		fps = 60
	}
	return &Synth{
		fps:    fps,
		master: master,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the audio device. Tones sent before a successful
// Initialize are dropped.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Tone implements core.Speaker. The zero Tone silences every channel.
func (s *Synth) Tone(t core.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if t.IsStop() {
		for i := range s.voices {
			s.silence(i)
		}
		return
	}

	ch := int(t.Wave)
	if ch < 0 || ch >= channels {
		return
	}

	st := NewToneStreamer(t, sampleRate, s.fps, s.master)
	if st == nil {
		return
	}

	s.silence(ch)
	ctrl := &beep.Ctrl{Streamer: st}
	s.voices[ch] = ctrl
	s.mixer.Add(ctrl)
}

// silence detaches channel ch. The mixer drops a Ctrl with no streamer on
// its next pass. Callers hold speaker.Lock.
func (s *Synth) silence(ch int) {
	if v := s.voices[ch]; v != nil {
		v.Streamer = nil
		s.voices[ch] = nil
	}
}

// Close stops all sound.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	for i := range s.voices {
		s.silence(i)
	}
	s.mixer.Clear()
	speaker.Unlock()

	s.initialized = false
}
