package core

import "math"

const defaultEpsilon = 1e-12

// Signed 16-bit sample range.
const (
	MinInt16Sample = math.MinInt16
	MaxInt16Sample = math.MaxInt16
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// Clip16 saturates x to the signed 16-bit range [-32768, 32767].
func Clip16(x int64) int16 {
	if x < MinInt16Sample {
		return MinInt16Sample
	}

	if x > MaxInt16Sample {
		return MaxInt16Sample
	}

	return int16(x)
}

// Saturate16 is Clip16 for int32 accumulators that stay in int32.
func Saturate16(x int32) int32 {
	if x < MinInt16Sample {
		return MinInt16Sample
	}

	if x > MaxInt16Sample {
		return MaxInt16Sample
	}

	return x
}

// TruncToInt rounds x toward zero. NaN maps to 0 and values beyond the
// int64 range saturate, so the result is always safe to pass to Clip16.
func TruncToInt(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}

	return int64(x)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
