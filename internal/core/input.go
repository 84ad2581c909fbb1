package core

// Button is a gamepad bit mask. The bit layout follows the console's
// GAMEPAD register.
type Button uint8

// Gamepad buttons.
const (
	Button1     Button = 1 << 0 // primary: fire / start
	Button2     Button = 1 << 1
	ButtonLeft  Button = 1 << 4
	ButtonRight Button = 1 << 5
	ButtonUp    Button = 1 << 6
	ButtonDown  Button = 1 << 7
)

// String returns a human-readable name for a single button.
func (b Button) String() string {
	switch b {
	case Button1:
		return "X"
	case Button2:
		return "Z"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// MouseButton is a pointer-device button mask.
type MouseButton uint8

// Mouse buttons.
const (
	MouseLeft   MouseButton = 1 << 0
	MouseRight  MouseButton = 1 << 1
	MouseMiddle MouseButton = 1 << 2
)

// InputFrame is the per-frame snapshot of the gamepad and pointer device.
type InputFrame struct {
	Gamepad Button
	Mouse   MouseButton
}

// Has returns true if every bit of b is held this frame.
func (f InputFrame) Has(b Button) bool {
	return b != 0 && f.Gamepad&b == b
}

// Set marks b as held for this frame.
func (f *InputFrame) Set(b Button) {
	f.Gamepad |= b
}

// Clicked returns true if mouse button m is held this frame.
func (f InputFrame) Clicked(m MouseButton) bool {
	return m != 0 && f.Mouse&m == m
}

// Press marks mouse button m as held for this frame.
func (f *InputFrame) Press(m MouseButton) {
	f.Mouse |= m
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Gamepad = 0
	f.Mouse = 0
}

// Empty reports whether nothing is held.
func (f InputFrame) Empty() bool {
	return f.Gamepad == 0 && f.Mouse == 0
}
