// Package rng provides the small, deterministic pseudo-random engines that
// drive the noise generator.
//
// Two interchangeable algorithms implement [Source]:
//
//   - [Xorshift32]: one 32-bit word, shift-XOR sequence 13/17/5.
//   - [PCG32]: the classic 64-bit-state permuted congruential generator
//     (XSH-RR output, 32-bit results).
//
// Both are plain values owned by the caller. There is no process-wide
// generator; independent streams are simply independent values.
//
// [Normal] derives an approximately bell-shaped, zero-mean integer from
// several uniform draws (Irwin–Hall). It is a cheap audio-rate shaping
// source, not a precise Gaussian.
//
// Both engines also satisfy math/rand/v2.Source, so they can be wrapped
// with rand.New when general-purpose helpers are needed.
package rng
