// Package shaper turns raw random values into colored 16-bit noise.
//
// A [Chain] runs an ordered list of [Stage] values once per sample. The
// order is fixed when the chain is built. Stages are generic over the sample
// representation: float64 chains use the float one-pole filters and
// [Integrator]; int32 chains use the Q31 filters and [IntegratorFixed].
// Both feed the same [Clipper], which scales, truncates toward zero and
// saturates to int16.
//
// Presets ([Color]) pick the stage list:
//
//	white:   sampler only
//	brown:   integrator -> low-pass
//	pink:    high-pass -> low-pass (band-shaped)
//	silence: zeros, sampler untouched
//
// All stage state persists across Render calls, so the output is
// independent of how the stream is cut into buffers.
//
// Overflow is never reported as an error. The integrator clamps its
// accumulator to the int16 range on every step and the clipper saturates
// its output. Both trade spectral purity at extreme levels for bounded,
// uninterrupted audio; the clamp counts are available for monitoring.
package shaper
