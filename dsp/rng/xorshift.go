package rng

// Xorshift32 is Marsaglia's 32-bit xorshift generator with shifts 13, 17, 5.
//
// Zero is an absorbing state: a generator seeded with 0 returns 0 forever.
// The type does not correct this; callers must seed with a nonzero value.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 returns a generator seeded with seed.
func NewXorshift32(seed uint32) *Xorshift32 {
	return &Xorshift32{state: seed}
}

// Seed replaces the generator state. A zero seed makes the generator
// degenerate.
func (x *Xorshift32) Seed(seed uint32) {
	x.state = seed
}

// State returns the current state word.
func (x *Xorshift32) State() uint32 {
	return x.state
}

// Uint32 advances the state and returns it.
func (x *Xorshift32) Uint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s

	return s
}

// Uint64 implements math/rand/v2.Source from two consecutive draws.
func (x *Xorshift32) Uint64() uint64 {
	return uint64From(x)
}
