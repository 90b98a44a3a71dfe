package entropy

import "time"

// Channel is a noise-bearing input, typically a floating ADC pin.
type Channel interface {
	Read() uint16
}

// ChannelFunc adapts a plain function to Channel.
type ChannelFunc func() uint16

// Read calls f.
func (f ChannelFunc) Read() uint16 { return f() }

// Collector gathers raw seed material from a Channel.
type Collector struct {
	ch Channel
}

// NewCollector returns a Collector reading ch.
func NewCollector(ch Channel) *Collector {
	return &Collector{ch: ch}
}

// CollectSeed reads 64 samples and keeps the least significant bit of each,
// first read in the most significant position.
func (c *Collector) CollectSeed() uint64 {
	var seed uint64
	for range 64 {
		seed = seed<<1 | uint64(c.ch.Read()&1)
	}

	return seed
}

// CollectSeedBytes reads 8 samples and keeps the low byte of each. It is
// faster than CollectSeed but trusts more bits per reading.
func (c *Collector) CollectSeedBytes() uint64 {
	var seed uint64
	for range 8 {
		seed = seed<<8 | uint64(c.ch.Read()&0xFF)
	}

	return seed
}

// Clock returns a high-resolution monotonic reading.
type Clock func() uint64

var processStart = time.Now()

// MonotonicClock reports nanoseconds since process start using the
// runtime's monotonic clock.
func MonotonicClock() uint64 {
	return uint64(time.Since(processStart).Nanoseconds())
}

// Mix combines raw channel material with a clock reading.
func Mix(raw, clock uint64) uint64 {
	return raw ^ clock
}

// Seed collects from c and mixes in clock. A nil clock uses MonotonicClock.
func Seed(c *Collector, clock Clock) uint64 {
	if clock == nil {
		clock = MonotonicClock
	}

	return Mix(c.CollectSeed(), clock())
}
