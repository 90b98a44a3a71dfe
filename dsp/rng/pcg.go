package rng

import "math/bits"

const pcgMultiplier = 6364136223846793005

// PCG32 is the 64-bit-state permuted congruential generator producing
// 32-bit outputs (XSH-RR). The increment is always odd.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a generator seeded with initState on stream initSeq.
func NewPCG32(initState, initSeq uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(initState, initSeq)

	return p
}

// Seed resets the generator. Two streams with the same initState but
// different initSeq are decorrelated by the double advance.
func (p *PCG32) Seed(initState, initSeq uint64) {
	p.state = 0
	p.inc = initSeq<<1 | 1
	p.Uint32()
	p.state += initState
	p.Uint32()
}

// Uint32 advances the state and returns the permuted output of the old state.
func (p *PCG32) Uint32() uint32 {
	old := p.state
	p.state = old*pcgMultiplier + p.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)

	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 implements math/rand/v2.Source from two consecutive draws.
func (p *PCG32) Uint64() uint64 {
	return uint64From(p)
}

// Inc returns the stream increment.
func (p *PCG32) Inc() uint64 {
	return p.inc
}
