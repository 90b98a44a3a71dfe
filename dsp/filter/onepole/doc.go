// Package onepole provides one-pole low-pass and high-pass filters in two
// interchangeable numeric representations.
//
// Coefficient design follows the RC analogy:
//
//	rc = 1 / (2*pi*cutoff)
//	dt = 1 / sampleRate
//	low-pass  alpha = dt / (rc + dt)
//	high-pass alpha = rc / (rc + dt)
//
// [LowPass] and [HighPass] run in float64. [LowPassFixed] and
// [HighPassFixed] take Q31 coefficients and keep Q32.31 state; their
// coefficients are derived with integer arithmetic only
// ([LowPassAlphaFixed], [HighPassAlphaFixed]).
//
// Every derived alpha lies strictly inside (0, 1). Cutoffs so extreme that
// the exact value would round onto a boundary are clamped silently to the
// nearest interior value; continuity of the output is preferred over
// exactness at the extremes.
//
// Filter state persists across ProcessBlock calls, so splitting a stream
// into blocks never changes the output.
package onepole
