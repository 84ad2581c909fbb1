package core

// DrawKind identifies the primitive of a recorded draw call.
type DrawKind uint8

// Draw call kinds.
const (
	DrawRect DrawKind = iota
	DrawBlit
	DrawText
)

// DrawCmd is one recorded draw call: the color travels with the primitive.
type DrawCmd struct {
	Kind   DrawKind
	Color  DrawColor
	Rect   Rect   // Target area; for text only X/Y are set
	Sprite Sprite // DrawBlit only
	Text   string // DrawText only
}

// DrawRecorder is a Canvas that records calls instead of rasterizing them.
// Useful for tests and for frontends that translate commands themselves.
type DrawRecorder struct {
	Cmds []DrawCmd
}

// Rect implements Canvas.
func (r *DrawRecorder) Rect(c DrawColor, rect Rect) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: DrawRect, Color: c, Rect: rect})
}

// Blit implements Canvas.
func (r *DrawRecorder) Blit(c DrawColor, s Sprite, x, y int) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: DrawBlit, Color: c, Rect: NewRect(x, y, s.W, s.H), Sprite: s})
}

// Text implements Canvas.
func (r *DrawRecorder) Text(c DrawColor, s string, x, y int) {
	r.Cmds = append(r.Cmds, DrawCmd{Kind: DrawText, Color: c, Rect: Rect{X: x, Y: y}, Text: s})
}

// Reset drops recorded calls, keeping capacity.
func (r *DrawRecorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

// Texts returns the strings drawn, in call order.
func (r *DrawRecorder) Texts() []string {
	var out []string
	for _, c := range r.Cmds {
		if c.Kind == DrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// ToneRecorder is a Speaker that records tones.
type ToneRecorder struct {
	Tones []Tone
}

// Tone implements Speaker.
func (r *ToneRecorder) Tone(t Tone) {
	r.Tones = append(r.Tones, t)
}

// Reset drops recorded tones.
func (r *ToneRecorder) Reset() {
	r.Tones = r.Tones[:0]
}

// Last returns the most recent tone and whether there was one.
func (r *ToneRecorder) Last() (Tone, bool) {
	if len(r.Tones) == 0 {
		return Tone{}, false
	}
	return r.Tones[len(r.Tones)-1], true
}
