package invaders

import (
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestJingleSchedule(t *testing.T) {
	j := NewJingle(waveJingle)
	j.Start()

	type cue struct {
		frame int
		tone  core.Tone
	}
	want := []cue{
		{1, core.Tone{Freq: noteC5, Duration: durEighth, Volume: jingleVolume, Wave: core.WaveTriangle}},
		{9, core.Tone{Freq: noteE5, Duration: durEighth, Volume: jingleVolume, Wave: core.WaveTriangle}},
		{17, core.Tone{Freq: noteG5, Duration: durQuarter, Volume: jingleVolume, Wave: core.WaveTriangle}},
		{33, core.Tone{Freq: noteC6, Duration: durHalf, Volume: jingleVolume, Wave: core.WaveTriangle}},
		{72, toneStop},
	}

	var got []cue
	rec := &core.ToneRecorder{}
	for frame := 1; frame <= 100; frame++ {
		rec.Reset()
		j.Advance(rec)
		for _, tn := range rec.Tones {
			got = append(got, cue{frame, tn})
		}
	}

	if len(got) != len(want) {
		t.Fatalf("got %d cues, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cue %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if j.Playing() {
		t.Error("jingle should stop after the last note")
	}
}

func TestJingleAtMostOneTonePerFrame(t *testing.T) {
	j := NewJingle([]int{100, 0, 200, 0, 300, 0})
	j.Start()

	rec := &core.ToneRecorder{}
	for i := 0; i < 10; i++ {
		rec.Reset()
		j.Advance(rec)
		if len(rec.Tones) > 1 {
			t.Fatalf("frame %d emitted %d tones", i, len(rec.Tones))
		}
	}
}

func TestJingleStop(t *testing.T) {
	j := NewJingle(waveJingle)
	j.Start()

	rec := &core.ToneRecorder{}
	j.Advance(rec)
	j.Stop()
	rec.Reset()

	for i := 0; i < 50; i++ {
		j.Advance(rec)
	}
	if len(rec.Tones) != 0 {
		t.Errorf("stopped jingle emitted %d tones", len(rec.Tones))
	}
	if idx, timer := j.Position(); idx != 0 || timer != 0 {
		t.Errorf("Position() = (%d, %d), want (0, 0)", idx, timer)
	}
}

func TestNewJingleOddMelodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for odd melody length")
		}
	}()
	NewJingle([]int{noteC5})
}
