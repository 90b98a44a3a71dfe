// Package output drains the buffer streamer into a playback device.
//
// A Sink is configured in three steps: Setup opens the device with a PCM
// Format and an opaque DeviceConfig, Connect attaches the consumer side of a
// stream.Streamer, and Enable starts playback. Sinks never block the
// real-time path: when no filled buffer is ready they emit silence and
// report an underrun.
//
// OtoSink plays through the host audio stack with ebitengine/oto. Builds
// tagged headless replace it with a stub that reports ErrDeviceUnavailable.
// ClockSink drains at the nominal sample rate without a device and can copy
// the PCM stream to an io.Writer.
package output
