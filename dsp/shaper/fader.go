package shaper

import "github.com/cwbudde/algo-vecmath"

// Fader ramps gain linearly from 0 to 1 over a fixed number of samples at
// the start of the stream. Once the ramp has finished it is a no-op.
type Fader struct {
	length int
	pos    int
	env    []float64
}

// NewFader returns a fader ramping over length samples. A length <= 0
// disables it.
func NewFader(length int) *Fader {
	return &Fader{length: max(length, 0)}
}

// Active reports whether the ramp is still in progress.
func (f *Fader) Active() bool { return f.pos < f.length }

// Apply multiplies block by the next part of the ramp.
func (f *Fader) Apply(block []float64) {
	if !f.Active() || len(block) == 0 {
		return
	}

	if len(f.env) < len(block) {
		f.env = make([]float64, len(block))
	}
	env := f.env[:len(block)]

	for i := range env {
		n := f.pos + i + 1
		if n >= f.length {
			env[i] = 1
			continue
		}
		env[i] = float64(n) / float64(f.length)
	}
	vecmath.MulBlockInPlace(block, env)

	f.pos = min(f.pos+len(block), f.length)
}
