package core

// Console dimensions shared by the game and every frontend.
const (
	ScreenW = 160 // Framebuffer width in pixels
	ScreenH = 160 // Framebuffer height in pixels
)

// RuntimeConfig contains configuration passed to the game at load time.
type RuntimeConfig struct {
	TickRate int     // Frames per second (default 60)
	Seed     uint32  // RNG seed; 0 means the cartridge default of 1
	Palette  Palette // Palette installed on load
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     1,
		Palette:  PaletteGreen,
	}
}

// GameState reports the game's status to the platform after each frame.
type GameState struct {
	Score   int  // Current score
	Wave    int  // Current wave number
	Playing bool // False while the title menu is shown
}
