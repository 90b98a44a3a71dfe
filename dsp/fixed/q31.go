package fixed

import (
	"math"
	"math/bits"
)

// FracBits is the number of fractional bits in Q31 values and Q32.31 state words.
const FracBits = 31

const scale = 1 << FracBits

// Q31 is a signed fixed-point value with 31 fractional bits.
type Q31 int32

// Range limits of Q31.
const (
	MaxQ31 Q31 = math.MaxInt32 // 1 - 2^-31
	MinQ31 Q31 = math.MinInt32 // -1
)

// FromFloat converts f to Q31, rounding to nearest and saturating at the
// representable range. NaN maps to 0.
func FromFloat(f float64) Q31 {
	if math.IsNaN(f) {
		return 0
	}

	v := math.Round(f * scale)
	if v >= math.MaxInt32 {
		return MaxQ31
	}
	if v <= math.MinInt32 {
		return MinQ31
	}

	return Q31(v)
}

// Float returns q as a float64.
func (q Q31) Float() float64 {
	return float64(q) / scale
}

// ToState converts an integer sample into a Q32.31 state word.
func ToState(sample int32) int64 {
	return int64(sample) << FracBits
}

// FromState converts a Q32.31 state word back to an integer sample,
// rounding toward zero so positive and negative decays are symmetric.
func FromState(state int64) int32 {
	return int32(state / scale)
}

// MulQ31 returns a*c with c interpreted as Q31, rounded to nearest with
// ties away from zero. The product is formed at 128-bit width.
func MulQ31(a int64, c Q31) int64 {
	neg := false

	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a)
		neg = true
	}

	uc := uint64(c)
	if c < 0 {
		uc = uint64(-int64(c))
		neg = !neg
	}

	hi, lo := bits.Mul64(ua, uc)
	lo, carry := bits.Add64(lo, 1<<(FracBits-1), 0)
	hi += carry

	r := int64(hi<<(64-FracBits) | lo>>FracBits)
	if neg {
		return -r
	}

	return r
}

// Ratio returns num/den as Q31, truncated. It requires num < den; larger
// ratios saturate to MaxQ31 and a zero den yields 0.
func Ratio(num, den uint64) Q31 {
	if den == 0 {
		return 0
	}
	if num >= den {
		return MaxQ31
	}

	q, _ := bits.Div64(num>>(64-FracBits), num<<FracBits, den)

	return Q31(q)
}
