package core

import (
	"fmt"
	"math"
)

const (
	minBufferCount = 2
	maxBufferCount = 8
)

// ProcessorConfig defines the stream geometry shared by the generator,
// the buffer streamer and the output sink.
type ProcessorConfig struct {
	SampleRate  float64
	BlockSize   int // samples per audio buffer
	BufferCount int // buffers cycling between producer and consumer
}

// ProcessorOption sets one field of a ProcessorConfig, rejecting values the
// stream cannot run with.
type ProcessorOption func(*ProcessorConfig) error

// DefaultProcessorConfig returns the appliance defaults: 48 kHz, three
// buffers of 512 samples.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  48000,
		BlockSize:   512,
		BufferCount: 3,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("core: sample rate must be > 0 and finite: %f", sampleRate)
		}

		cfg.SampleRate = sampleRate

		return nil
	}
}

// WithBlockSize sets the number of samples per buffer.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) error {
		if blockSize <= 0 {
			return fmt.Errorf("core: block size must be > 0: %d", blockSize)
		}

		cfg.BlockSize = blockSize

		return nil
	}
}

// WithBufferCount sets how many buffers cycle through the pool.
func WithBufferCount(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) error {
		if n < minBufferCount || n > maxBufferCount {
			return fmt.Errorf("core: buffer count must be in [%d, %d]: %d", minBufferCount, maxBufferCount, n)
		}

		cfg.BufferCount = n

		return nil
	}
}

// NewProcessorConfig applies opts to the defaults and validates the result.
func NewProcessorConfig(opts ...ProcessorOption) (ProcessorConfig, error) {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports whether cfg describes a usable stream.
func (cfg ProcessorConfig) Validate() error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("core: sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.BlockSize <= 0 {
		return fmt.Errorf("core: block size must be > 0: %d", cfg.BlockSize)
	}
	if cfg.BufferCount < minBufferCount || cfg.BufferCount > maxBufferCount {
		return fmt.Errorf("core: buffer count must be in [%d, %d]: %d", minBufferCount, maxBufferCount, cfg.BufferCount)
	}
	return nil
}

// BlockSeconds returns the playback duration of one buffer.
func (cfg ProcessorConfig) BlockSeconds() float64 {
	return float64(cfg.BlockSize) / cfg.SampleRate
}
