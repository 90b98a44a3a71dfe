package output

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/stream"
)

var (
	// ErrDeviceUnavailable is returned by Setup when the playback device cannot be opened.
	ErrDeviceUnavailable = errors.New("output: device unavailable")
	// ErrConnect is returned when a sink cannot be attached to a streamer.
	ErrConnect = errors.New("output: connect failed")
)

// Sink is the audio output collaborator of the generator.
type Sink interface {
	// Setup opens the device.
	Setup(cfg DeviceConfig, f Format) error
	// Connect attaches the consumer side of s. The streamer capacity must
	// match the format period.
	Connect(s *stream.Streamer) error
	// Enable starts playback. It does not block; playback stops when ctx is
	// done, the streamer is closed or Close is called.
	Enable(ctx context.Context) error
	// Close stops playback and hands any buffer in flight back to the streamer.
	Close() error
}

// Kind selects a Sink implementation.
type Kind string

const (
	// KindDevice plays through the host audio device.
	KindDevice Kind = "device"
	// KindClock drains at the nominal rate without a device.
	KindClock Kind = "clock"
)

// ParseKind maps a flag value to a Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindDevice, KindClock:
		return k, nil
	default:
		return "", fmt.Errorf("output: unknown sink %q", name)
	}
}

// Open returns an unconfigured sink of the given kind. logger may be nil.
func Open(kind Kind, logger *zap.Logger, obs UnderrunObserver) (Sink, error) {
	switch kind {
	case KindDevice:
		return NewOtoSink(logger, obs), nil
	case KindClock:
		return NewClockSink(logger, obs), nil
	default:
		return nil, fmt.Errorf("output: unknown sink %q", kind)
	}
}

func connectReader(s *stream.Streamer, f Format, obs UnderrunObserver) (*Reader, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil streamer", ErrConnect)
	}
	if f.Period == 0 {
		return nil, fmt.Errorf("%w: sink not set up", ErrConnect)
	}
	if s.Capacity() != f.Period {
		return nil, fmt.Errorf("%w: buffer capacity %d does not match period %d", ErrConnect, s.Capacity(), f.Period)
	}
	return NewReader(s, obs), nil
}

// underrunLogger forwards underruns and logs the first one and every
// hundredth after it.
type underrunLogger struct {
	next   UnderrunObserver
	logger *zap.Logger
	count  uint64
}

func (u *underrunLogger) Underrun() {
	u.count++
	if u.count == 1 || u.count%100 == 0 {
		u.logger.Warn("output underrun, playing silence", zap.Uint64("underruns", u.count))
	}
	if u.next != nil {
		u.next.Underrun()
	}
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
