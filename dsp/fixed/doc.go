// Package fixed provides the Q31 fixed-point arithmetic used by the
// integer filter stages.
//
// A [Q31] coefficient stores a value in [-1, 1) with 31 fractional bits.
// Filter state is kept in int64 words with the same 31 fractional bits
// ("Q32.31"), which leaves 32 integer bits of headroom for 16-bit audio.
// Products are formed at 128-bit width so no intermediate can wrap.
package fixed
