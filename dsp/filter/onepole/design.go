package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/fixed"
)

// Fixed-point design constants. 2*pi is held in Q28 and the cutoff in Q12,
// so the angular term lands in Q40.
const (
	twoPiQ28       = 1686629713
	cutoffFracBits = 12
	omegaFracBits  = 28 + cutoffFracBits

	// MaxFixedSampleRate keeps omega + sampleRate<<omegaFracBits inside uint64.
	MaxFixedSampleRate = 1 << 20
)

func validate(cutoff, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("onepole: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if !(cutoff > 0 && cutoff < sampleRate/2) {
		return fmt.Errorf("onepole: cutoff must be in (0, %g): %f", sampleRate/2, cutoff)
	}
	return nil
}

func rcdt(cutoff, sampleRate float64) (rc, dt float64) {
	return 1 / (2 * math.Pi * cutoff), 1 / sampleRate
}

// interior clamps alpha into the open unit interval.
func interior(alpha float64) float64 {
	if alpha <= 0 {
		return math.SmallestNonzeroFloat64
	}
	if alpha >= 1 {
		return math.Nextafter(1, 0)
	}
	return alpha
}

// LowPassAlpha returns the float low-pass coefficient dt/(rc+dt).
func LowPassAlpha(cutoff, sampleRate float64) (float64, error) {
	if err := validate(cutoff, sampleRate); err != nil {
		return 0, err
	}
	rc, dt := rcdt(cutoff, sampleRate)
	return interior(dt / (rc + dt)), nil
}

// HighPassAlpha returns the float high-pass coefficient rc/(rc+dt).
func HighPassAlpha(cutoff, sampleRate float64) (float64, error) {
	if err := validate(cutoff, sampleRate); err != nil {
		return 0, err
	}
	rc, dt := rcdt(cutoff, sampleRate)
	return interior(rc / (rc + dt)), nil
}

// omegaTerms returns 2*pi*cutoff and sampleRate, both in Q40.
func omegaTerms(cutoff float64, sampleRate uint32) (omega, rate uint64, err error) {
	if sampleRate == 0 || sampleRate > MaxFixedSampleRate {
		return 0, 0, fmt.Errorf("onepole: fixed sample rate must be in (0, %d]: %d", MaxFixedSampleRate, sampleRate)
	}
	if err := validate(cutoff, float64(sampleRate)); err != nil {
		return 0, 0, err
	}

	cutoffQ := uint64(math.Round(cutoff * (1 << cutoffFracBits)))
	omega = twoPiQ28 * cutoffQ
	rate = uint64(sampleRate) << omegaFracBits

	return omega, rate, nil
}

// interiorQ31 clamps a into [1, MaxQ31], the Q31 image of (0, 1).
func interiorQ31(a fixed.Q31) fixed.Q31 {
	if a < 1 {
		return 1
	}
	return a
}

// LowPassAlphaFixed derives the low-pass coefficient with integer
// arithmetic: 2*pi*f / (2*pi*f + fs), which equals dt/(rc+dt).
func LowPassAlphaFixed(cutoff float64, sampleRate uint32) (fixed.Q31, error) {
	omega, rate, err := omegaTerms(cutoff, sampleRate)
	if err != nil {
		return 0, err
	}
	return interiorQ31(fixed.Ratio(omega, omega+rate)), nil
}

// HighPassAlphaFixed derives the high-pass coefficient with integer
// arithmetic: fs / (2*pi*f + fs), which equals rc/(rc+dt).
func HighPassAlphaFixed(cutoff float64, sampleRate uint32) (fixed.Q31, error) {
	omega, rate, err := omegaTerms(cutoff, sampleRate)
	if err != nil {
		return 0, err
	}
	return interiorQ31(fixed.Ratio(rate, omega+rate)), nil
}
