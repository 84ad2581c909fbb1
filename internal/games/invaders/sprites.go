package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Set bits are drawn; clear bits are transparent.
var (
	playerSprite = core.Sprite{W: 8, H: 8, Bits: []byte{
		0b00011000,
		0b00011000,
		0b00011000,
		0b00111100,
		0b01111110,
		0b01111110,
		0b01100110,
		0b01000010,
	}}

	alienSprite = core.Sprite{W: 8, H: 8, Bits: []byte{
		0b00111100,
		0b01111110,
		0b11011011,
		0b11111111,
		0b01111110,
		0b00100100,
		0b01000010,
		0b00000000,
	}}
)
