package core

// Canvas is the display half of the console contract.
// Every primitive carries its own draw color, so routines never depend on
// a color selected by an earlier call.
type Canvas interface {
	// Rect fills r with color c.
	Rect(c DrawColor, r Rect)
	// Blit draws the set bits of a 1bpp sprite with its top-left at (x, y).
	// Clear bits are transparent.
	Blit(c DrawColor, s Sprite, x, y int)
	// Text draws s with its top-left at (x, y).
	Text(c DrawColor, s string, x, y int)
}

// Speaker is the audio half of the console contract. Tones are
// fire-and-forget; Tone{} stops all channels.
type Speaker interface {
	Tone(t Tone)
}

// Sprite is a 1bpp bitmap. Rows are packed MSB-first, (W+7)/8 bytes per row.
type Sprite struct {
	W, H int
	Bits []byte
}

// At reports whether the pixel at (x, y) is set.
func (s Sprite) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return false
	}
	stride := (s.W + 7) / 8
	b := s.Bits[y*stride+x/8]
	return b&(0x80>>(x%8)) != 0
}

// Waveform selects the tone generator and channel.
type Waveform uint8

// Waveforms, one per console channel.
const (
	WavePulse1 Waveform = iota
	WavePulse2
	WaveTriangle
	WaveNoise
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WavePulse1:
		return "pulse1"
	case WavePulse2:
		return "pulse2"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// Tone describes a single fire-and-forget sound.
type Tone struct {
	Freq     int      // Frequency in Hz
	Duration int      // Length in frames
	Volume   int      // 0..100
	Wave     Waveform // Generator / channel
}

// IsStop reports whether t is the silence signal.
func (t Tone) IsStop() bool {
	return t == Tone{}
}

// NopSpeaker discards every tone.
type NopSpeaker struct{}

// Tone implements Speaker.
func (NopSpeaker) Tone(Tone) {}
