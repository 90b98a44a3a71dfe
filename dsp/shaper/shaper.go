package shaper

import (
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/rng"
)

// Renderer fills int16 buffers with shaped noise.
type Renderer interface {
	// Render overwrites every sample of dst and returns how many output
	// samples were clamped by the final clip.
	Render(dst []int16) int

	// Saturations returns the running count of clamps inside the chain.
	Saturations() uint64
}

// Shaper draws from a sampler, runs the chain, applies the fade-in and the
// final clip.
type Shaper[T Sample] struct {
	sampler *rng.Sampler
	chain   *Chain[T]
	clip    *Clipper
	fader   *Fader
	block   []float64
}

// New assembles a Shaper. A nil fader disables the fade-in.
func New[T Sample](sampler *rng.Sampler, chain *Chain[T], clip *Clipper, fader *Fader) *Shaper[T] {
	if fader == nil {
		fader = NewFader(0)
	}
	return &Shaper[T]{
		sampler: sampler,
		chain:   chain,
		clip:    clip,
		fader:   fader,
	}
}

// Render implements Renderer.
func (s *Shaper[T]) Render(dst []int16) int {
	s.block = core.EnsureLen(s.block, len(dst))

	for i := range s.block {
		x := T(s.sampler.Next())
		s.block[i] = float64(s.chain.ProcessSample(x))
	}

	s.fader.Apply(s.block)

	return s.clip.ProcessBlock(dst, s.block)
}

// Saturations implements Renderer.
func (s *Shaper[T]) Saturations() uint64 {
	return s.chain.Saturations()
}

// Silence renders zeros. It never touches a sampler.
type Silence struct{}

// Render implements Renderer.
func (Silence) Render(dst []int16) int {
	clear(dst)
	return 0
}

// Saturations implements Renderer.
func (Silence) Saturations() uint64 { return 0 }
