//go:build headless

package output

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/stream"
)

// OtoSink is unavailable in headless builds. Setup always fails.
type OtoSink struct {
	logger *zap.Logger
}

// NewOtoSink returns a sink whose Setup reports ErrDeviceUnavailable.
func NewOtoSink(logger *zap.Logger, obs UnderrunObserver) *OtoSink {
	return &OtoSink{logger: nopIfNil(logger)}
}

// Setup implements Sink.
func (o *OtoSink) Setup(cfg DeviceConfig, f Format) error {
	return fmt.Errorf("%w: built without audio device support", ErrDeviceUnavailable)
}

// Connect implements Sink.
func (o *OtoSink) Connect(s *stream.Streamer) error {
	return fmt.Errorf("%w: device not set up", ErrConnect)
}

// Enable implements Sink.
func (o *OtoSink) Enable(ctx context.Context) error {
	return fmt.Errorf("%w: device not set up", ErrConnect)
}

// Close implements Sink.
func (o *OtoSink) Close() error { return nil }
