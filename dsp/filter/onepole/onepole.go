package onepole

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/fixed"
)

// LowPass is a float64 one-pole low-pass:
//
//	y = alpha*x + (1-alpha)*y[n-1]
type LowPass struct {
	alpha float64
	state float64
}

// NewLowPass designs a low-pass for cutoff at sampleRate.
func NewLowPass(cutoff, sampleRate float64) (*LowPass, error) {
	alpha, err := LowPassAlpha(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return &LowPass{alpha: alpha}, nil
}

// NewLowPassAlpha builds a low-pass from a raw coefficient in (0, 1).
func NewLowPassAlpha(alpha float64) (*LowPass, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("onepole: alpha must be in (0, 1): %f", alpha)
	}
	return &LowPass{alpha: alpha}, nil
}

// Alpha returns the filter coefficient.
func (f *LowPass) Alpha() float64 { return f.alpha }

// State returns the previous output.
func (f *LowPass) State() float64 { return f.state }

// SetState overrides the previous output.
func (f *LowPass) SetState(y float64) { f.state = y }

// ProcessSample filters one sample.
func (f *LowPass) ProcessSample(x float64) float64 {
	y := f.alpha*x + (1-f.alpha)*f.state
	f.state = core.FlushDenormals(y)
	return y
}

// ProcessBlock filters buf in place.
func (f *LowPass) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *LowPass) Reset() { f.state = 0 }

// HighPass is a float64 one-pole high-pass:
//
//	y = alpha*(y[n-1] + x - x[n-1])
type HighPass struct {
	alpha float64
	state float64
	prev  float64
}

// NewHighPass designs a high-pass for cutoff at sampleRate.
func NewHighPass(cutoff, sampleRate float64) (*HighPass, error) {
	alpha, err := HighPassAlpha(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return &HighPass{alpha: alpha}, nil
}

// Alpha returns the filter coefficient.
func (f *HighPass) Alpha() float64 { return f.alpha }

// ProcessSample filters one sample.
func (f *HighPass) ProcessSample(x float64) float64 {
	y := f.alpha * (f.state + x - f.prev)
	f.state = core.FlushDenormals(y)
	f.prev = x
	return y
}

// ProcessBlock filters buf in place.
func (f *HighPass) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *HighPass) Reset() {
	f.state = 0
	f.prev = 0
}

// LowPassFixed is the Q31 counterpart of LowPass operating on integer
// samples. The state keeps 31 fractional bits so small inputs are not lost
// to truncation.
type LowPassFixed struct {
	alpha fixed.Q31
	state int64
}

// NewLowPassFixed designs a fixed-point low-pass for cutoff at sampleRate.
func NewLowPassFixed(cutoff float64, sampleRate uint32) (*LowPassFixed, error) {
	alpha, err := LowPassAlphaFixed(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return &LowPassFixed{alpha: alpha}, nil
}

// NewLowPassFixedAlpha builds a fixed-point low-pass from a raw coefficient.
func NewLowPassFixedAlpha(alpha fixed.Q31) (*LowPassFixed, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("onepole: alpha must be in (0, 1): %v", alpha.Float())
	}
	return &LowPassFixed{alpha: alpha}, nil
}

// Alpha returns the filter coefficient.
func (f *LowPassFixed) Alpha() fixed.Q31 { return f.alpha }

// SetState overrides the previous output.
func (f *LowPassFixed) SetState(y int32) { f.state = fixed.ToState(y) }

// StateWord returns the Q32.31 state.
func (f *LowPassFixed) StateWord() int64 { return f.state }

// ProcessSample filters one sample. y += alpha*(x - y) is the same
// recurrence as alpha*x + (1-alpha)*y with one multiply.
func (f *LowPassFixed) ProcessSample(x int32) int32 {
	f.state += fixed.MulQ31(fixed.ToState(x)-f.state, f.alpha)
	return fixed.FromState(f.state)
}

// ProcessBlock filters buf in place.
func (f *LowPassFixed) ProcessBlock(buf []int32) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *LowPassFixed) Reset() { f.state = 0 }

// HighPassFixed is the Q31 counterpart of HighPass.
type HighPassFixed struct {
	alpha fixed.Q31
	state int64
	prev  int32
}

// NewHighPassFixed designs a fixed-point high-pass for cutoff at sampleRate.
func NewHighPassFixed(cutoff float64, sampleRate uint32) (*HighPassFixed, error) {
	alpha, err := HighPassAlphaFixed(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}
	return &HighPassFixed{alpha: alpha}, nil
}

// Alpha returns the filter coefficient.
func (f *HighPassFixed) Alpha() fixed.Q31 { return f.alpha }

// ProcessSample filters one sample.
func (f *HighPassFixed) ProcessSample(x int32) int32 {
	f.state = fixed.MulQ31(f.state+fixed.ToState(x-f.prev), f.alpha)
	f.prev = x
	return fixed.FromState(f.state)
}

// ProcessBlock filters buf in place.
func (f *HighPassFixed) ProcessBlock(buf []int32) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *HighPassFixed) Reset() {
	f.state = 0
	f.prev = 0
}
