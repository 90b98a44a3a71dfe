package testutil

import "github.com/cwbudde/algo-noise/dsp/rng"

// Noise32 returns length uniform samples in [-amplitude, amplitude] drawn
// from a xorshift32 stream seeded with seed. A zero seed yields silence.
func Noise32(seed uint32, amplitude int32, length int) []int32 {
	out := make([]int32, length)
	if amplitude <= 0 {
		return out
	}

	src := rng.NewXorshift32(seed)
	span := 2*uint64(amplitude) + 1
	for i := range out {
		out[i] = int32(uint64(src.Uint32())%span) - amplitude
	}
	return out
}

// Constant returns length copies of value.
func Constant[T any](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}
