package invaders

import "fmt"

// LCG constants (31-bit state).
const (
	lcgMul  = 1103515245
	lcgInc  = 12345
	lcgMask = 0x7fffffff
)

// RNG is the single deterministic random stream shared by the whole
// simulation. Every draw advances the same state, so call order across a
// frame is part of the observable behavior.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded with seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Intn returns a value in [min, max] inclusive.
// max < min is a programming error and panics.
func (r *RNG) Intn(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("invaders: rng range [%d, %d] is empty", min, max))
	}
	r.state = (r.state*lcgMul + lcgInc) & lcgMask
	return min + int(r.state%uint32(max-min+1))
}

// State returns the current seed value.
func (r *RNG) State() uint32 {
	return r.state
}
