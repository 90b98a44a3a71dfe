package shaper

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/filter/onepole"
	"github.com/cwbudde/algo-noise/dsp/rng"
)

// Color names a stage preset.
type Color int

const (
	// ColorWhite passes sampler output straight to the clip.
	ColorWhite Color = iota
	// ColorBrown integrates and then low-passes.
	ColorBrown
	// ColorPink high-passes and then low-passes, a band-shaped noise.
	ColorPink
	// ColorSilence emits zeros.
	ColorSilence

	colorCount // sentinel for validation
)

var colorNames = [colorCount]string{"white", "brown", "pink", "silence"}

// String returns the preset name.
func (c Color) String() string {
	if c >= 0 && c < colorCount {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", c)
}

// Valid reports whether c is a known preset.
func (c Color) Valid() bool {
	return c >= 0 && c < colorCount
}

// ParseColor maps a preset name to a Color. "red" is accepted for brown.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "red" {
		return ColorBrown, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("shaper: unknown color %q", name)
}

// Representation selects the numeric domain of the chain.
type Representation int

const (
	// RepresentationFloat runs the chain in float64.
	RepresentationFloat Representation = iota
	// RepresentationFixed runs the chain on int32 samples with Q31 coefficients.
	RepresentationFixed
)

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case RepresentationFloat:
		return "float"
	case RepresentationFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Representation(%d)", r)
	}
}

// ParseRepresentation maps "float" or "fixed" to a Representation.
func ParseRepresentation(name string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float", "float64":
		return RepresentationFloat, nil
	case "fixed", "q31":
		return RepresentationFixed, nil
	default:
		return 0, fmt.Errorf("shaper: unknown representation %q", name)
	}
}

// Params configures Build. Zero cutoffs and gain take the preset defaults
// from DefaultParams. IntegratorShift is used as given, so start from
// DefaultParams to get the preset shift.
type Params struct {
	Color          Color
	Representation Representation
	SampleRate     float64

	LowPassHz       float64
	HighPassHz      float64
	Gain            float64
	IntegratorShift uint
	FadeInSamples   int
}

// DefaultParams returns the preset defaults for c at 48 kHz.
func DefaultParams(c Color) Params {
	p := Params{
		Color:      c,
		SampleRate: 48000,
		Gain:       1,
	}

	switch c {
	case ColorWhite:
		p.Gain = 0.5
	case ColorBrown:
		p.IntegratorShift = 8
		p.LowPassHz = 1000
	case ColorPink:
		p.HighPassHz = 100
		p.LowPassHz = 2000
		p.Gain = 2
	}

	return p
}

func (p Params) withDefaults() Params {
	def := DefaultParams(p.Color)
	if p.SampleRate <= 0 {
		p.SampleRate = def.SampleRate
	}
	if p.LowPassHz == 0 {
		p.LowPassHz = def.LowPassHz
	}
	if p.HighPassHz == 0 {
		p.HighPassHz = def.HighPassHz
	}
	if p.Gain == 0 {
		p.Gain = def.Gain
	}
	return p
}

// Build returns the Renderer for p drawing from sampler. Coefficients are
// derived once here and never change afterwards.
func Build(sampler *rng.Sampler, p Params) (Renderer, error) {
	if !p.Color.Valid() {
		return nil, fmt.Errorf("shaper: invalid color: %d", p.Color)
	}
	if p.Color == ColorSilence {
		return Silence{}, nil
	}
	if sampler == nil {
		return nil, fmt.Errorf("shaper: %s noise needs a sampler", p.Color)
	}

	p = p.withDefaults()

	clip, err := NewClipper(p.Gain)
	if err != nil {
		return nil, err
	}
	fader := NewFader(p.FadeInSamples)

	switch p.Representation {
	case RepresentationFloat:
		chain, err := floatChain(p)
		if err != nil {
			return nil, err
		}
		return New(sampler, chain, clip, fader), nil
	case RepresentationFixed:
		chain, err := fixedChain(p)
		if err != nil {
			return nil, err
		}
		return New(sampler, chain, clip, fader), nil
	default:
		return nil, fmt.Errorf("shaper: invalid representation: %d", p.Representation)
	}
}

func floatChain(p Params) (*Chain[float64], error) {
	switch p.Color {
	case ColorBrown:
		integ, err := NewIntegrator(p.IntegratorShift)
		if err != nil {
			return nil, err
		}
		lp, err := onepole.NewLowPass(p.LowPassHz, p.SampleRate)
		if err != nil {
			return nil, err
		}
		return NewChain[float64](integ, lp), nil
	case ColorPink:
		hp, err := onepole.NewHighPass(p.HighPassHz, p.SampleRate)
		if err != nil {
			return nil, err
		}
		lp, err := onepole.NewLowPass(p.LowPassHz, p.SampleRate)
		if err != nil {
			return nil, err
		}
		return NewChain[float64](hp, lp), nil
	default:
		return NewChain[float64](), nil
	}
}

func fixedChain(p Params) (*Chain[int32], error) {
	rate := math.Round(p.SampleRate)
	if rate != p.SampleRate || rate > math.MaxUint32 {
		return nil, fmt.Errorf("shaper: fixed representation needs an integral sample rate: %f", p.SampleRate)
	}
	sr := uint32(rate)

	switch p.Color {
	case ColorBrown:
		integ, err := NewIntegratorFixed(p.IntegratorShift)
		if err != nil {
			return nil, err
		}
		lp, err := onepole.NewLowPassFixed(p.LowPassHz, sr)
		if err != nil {
			return nil, err
		}
		return NewChain[int32](integ, lp), nil
	case ColorPink:
		hp, err := onepole.NewHighPassFixed(p.HighPassHz, sr)
		if err != nil {
			return nil, err
		}
		lp, err := onepole.NewLowPassFixed(p.LowPassHz, sr)
		if err != nil {
			return nil, err
		}
		return NewChain[int32](hp, lp), nil
	default:
		return NewChain[int32](), nil
	}
}
