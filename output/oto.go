//go:build !headless

package output

import (
	"context"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/stream"
)

// OtoSink plays the stream through the host audio device. oto allows one
// context per process, so at most one OtoSink may be set up.
type OtoSink struct {
	logger *zap.Logger
	obs    UnderrunObserver

	format Format
	ctx    *oto.Context
	player *oto.Player
	reader *Reader

	mu      sync.Mutex
	started bool
}

// NewOtoSink returns an unconfigured device sink.
func NewOtoSink(logger *zap.Logger, obs UnderrunObserver) *OtoSink {
	logger = nopIfNil(logger)
	return &OtoSink{
		logger: logger,
		obs:    &underrunLogger{next: obs, logger: logger},
	}
}

// Setup implements Sink. The device buffer holds one period.
func (o *OtoSink) Setup(cfg DeviceConfig, f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}

	op := &oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   f.PeriodDuration(),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	<-ready

	o.ctx = ctx
	o.format = f
	o.logger.Info("audio device ready",
		zap.Int("sample_rate", f.SampleRate),
		zap.Int("period", f.Period),
		zap.Int("data_pin", cfg.DataPin),
		zap.Int("clock_pin_base", cfg.ClockPinBase),
		zap.Int("dma_channel", cfg.DMAChannel),
		zap.Int("state_machine", cfg.StateMachine))
	return nil
}

// Connect implements Sink.
func (o *OtoSink) Connect(s *stream.Streamer) error {
	if o.ctx == nil {
		return fmt.Errorf("%w: device not set up", ErrConnect)
	}

	r, err := connectReader(s, o.format, o.obs)
	if err != nil {
		return err
	}
	r.SetErrorHandler(func(err error) {
		o.logger.Warn("buffer ownership violated", zap.Error(err))
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	o.reader = r
	o.player = o.ctx.NewPlayer(r)
	o.player.SetBufferSize(o.format.PeriodBytes())
	return nil
}

// Enable implements Sink. Playback stops when ctx is done.
func (o *OtoSink) Enable(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return fmt.Errorf("%w: enable before connect", ErrConnect)
	}
	if o.started {
		return nil
	}

	o.player.Play()
	o.started = true

	go func() {
		<-ctx.Done()
		o.stop()
	}()
	return nil
}

func (o *OtoSink) stop() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.started && o.player != nil {
		o.player.Pause()
		o.started = false
	}
}

// Close implements Sink.
func (o *OtoSink) Close() error {
	o.stop()

	o.mu.Lock()
	defer o.mu.Unlock()

	var err error
	if o.player != nil {
		err = o.player.Close()
		o.player = nil
	}
	if o.reader != nil {
		if rerr := o.reader.Close(); err == nil {
			err = rerr
		}
	}
	return err
}
