package shaper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Clipper is the final stage: multiply by gain, round toward zero and
// saturate to [-32768, 32767].
type Clipper struct {
	gain  float64
	gains []float64
}

// NewClipper returns a clipper with the given linear gain.
func NewClipper(gain float64) (*Clipper, error) {
	if gain < 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return nil, fmt.Errorf("shaper: gain must be >= 0 and finite: %f", gain)
	}
	return &Clipper{gain: gain}, nil
}

// Gain returns the linear gain.
func (c *Clipper) Gain() float64 { return c.gain }

// ProcessSample scales and saturates one sample.
func (c *Clipper) ProcessSample(x float64) int16 {
	return core.Clip16(core.TruncToInt(x * c.gain))
}

// ProcessBlock scales src in place and writes the saturated result to dst.
// It returns how many samples were clamped. len(dst) must be >= len(src).
func (c *Clipper) ProcessBlock(dst []int16, src []float64) int {
	if c.gain != 1 {
		if len(c.gains) < len(src) {
			c.gains = make([]float64, len(src))
			core.Fill(c.gains, c.gain)
		}
		vecmath.MulBlockInPlace(src, c.gains[:len(src)])
	}

	clipped := 0
	for i, x := range src {
		v := core.TruncToInt(x)
		if v > core.MaxInt16Sample || v < core.MinInt16Sample {
			clipped++
		}
		dst[i] = core.Clip16(v)
	}
	return clipped
}
