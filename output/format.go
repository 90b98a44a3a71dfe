package output

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-noise/dsp/buffer"
)

// Format describes the PCM stream handed to the device.
type Format struct {
	SampleRate int
	Channels   int
	// Period is the number of samples the device consumes per transfer.
	Period int
}

// DefaultFormat returns 48 kHz mono signed 16-bit with 512-sample periods.
func DefaultFormat() Format {
	return Format{
		SampleRate: 48000,
		Channels:   1,
		Period:     512,
	}
}

// Validate reports whether f can be played.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("output: sample rate must be > 0: %d", f.SampleRate)
	}
	if f.Channels != 1 {
		return fmt.Errorf("output: only mono is supported: %d channels", f.Channels)
	}
	if f.Period <= 0 {
		return fmt.Errorf("output: period must be > 0: %d", f.Period)
	}
	return nil
}

// Stride returns the bytes per frame.
func (f Format) Stride() int {
	return f.Channels * buffer.BytesPerSample
}

// PeriodBytes returns the size of one transfer in bytes.
func (f Format) PeriodBytes() int {
	return f.Period * f.Stride()
}

// PeriodDuration returns the playback time of one transfer.
func (f Format) PeriodDuration() time.Duration {
	return time.Duration(f.Period) * time.Second / time.Duration(f.SampleRate)
}

// DeviceConfig carries board-level routing for the playback engine. The
// values are passed through to the device layer unexamined.
type DeviceConfig struct {
	DataPin      int
	ClockPinBase int
	DMAChannel   int
	StateMachine int
}

// DefaultDeviceConfig returns the reference board wiring: data on pin 9,
// bit and word clocks from pin 10, DMA channel 0, state machine 0.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		DataPin:      9,
		ClockPinBase: 10,
		DMAChannel:   0,
		StateMachine: 0,
	}
}
