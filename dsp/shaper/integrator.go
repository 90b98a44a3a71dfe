package shaper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// MaxIntegratorShift bounds the input attenuation of the integrators.
const MaxIntegratorShift = 16

// Integrator accumulates scaled input into a running sum clamped to the
// int16 range after every step, giving a red/brown spectral tilt.
//
// The per-step clamp keeps the state bounded no matter how long the walk
// drifts in one direction. Near the rails it flattens the walk, so the
// spectrum is only approximately 1/f^2 at high levels.
type Integrator struct {
	scale       float64
	state       float64
	saturations uint64
}

// NewIntegrator scales input by 2^-shift before accumulating.
func NewIntegrator(shift uint) (*Integrator, error) {
	if shift > MaxIntegratorShift {
		return nil, fmt.Errorf("shaper: integrator shift must be <= %d: %d", MaxIntegratorShift, shift)
	}
	return &Integrator{scale: math.Ldexp(1, -int(shift))}, nil
}

// ProcessSample integrates one sample.
func (g *Integrator) ProcessSample(x float64) float64 {
	s := g.state + x*g.scale
	if s > core.MaxInt16Sample || s < core.MinInt16Sample {
		s = core.Clamp(s, core.MinInt16Sample, core.MaxInt16Sample)
		g.saturations++
	}
	g.state = s
	return s
}

// State returns the accumulator.
func (g *Integrator) State() float64 { return g.state }

// Saturations returns how many steps hit the clamp.
func (g *Integrator) Saturations() uint64 { return g.saturations }

// Reset clears the accumulator.
func (g *Integrator) Reset() { g.state = 0 }

// IntegratorFixed is the integer counterpart of Integrator. Input is
// divided by 2^shift with truncation toward zero so the walk has no bias.
type IntegratorFixed struct {
	div         int32
	state       int32
	saturations uint64
}

// NewIntegratorFixed divides input by 2^shift before accumulating.
func NewIntegratorFixed(shift uint) (*IntegratorFixed, error) {
	if shift > MaxIntegratorShift {
		return nil, fmt.Errorf("shaper: integrator shift must be <= %d: %d", MaxIntegratorShift, shift)
	}
	return &IntegratorFixed{div: 1 << shift}, nil
}

// ProcessSample integrates one sample.
func (g *IntegratorFixed) ProcessSample(x int32) int32 {
	s := g.state + x/g.div
	if sat := core.Saturate16(s); sat != s {
		s = sat
		g.saturations++
	}
	g.state = s
	return s
}

// State returns the accumulator.
func (g *IntegratorFixed) State() int32 { return g.state }

// Saturations returns how many steps hit the clamp.
func (g *IntegratorFixed) Saturations() uint64 { return g.saturations }

// Reset clears the accumulator.
func (g *IntegratorFixed) Reset() { g.state = 0 }
