// Package entropy assembles generator seeds from noisy input readings.
//
// A [Collector] reads a [Channel] one low-order bit (or byte) at a time and
// shifts the bits into a 64-bit word. [Mix] combines that word with a
// monotonic clock reading so that devices with correlated input noise still
// diverge across power cycles.
//
// Reads never fail from the collector's point of view: a channel that cannot
// be read reports a constant, which degrades entropy but not correctness.
package entropy
