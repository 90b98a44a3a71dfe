package output

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/stream"
)

// ClockSink consumes one period every period duration, the way a DMA-driven
// device would, and optionally copies the PCM bytes to a writer.
type ClockSink struct {
	logger *zap.Logger
	obs    UnderrunObserver
	w      io.Writer

	format Format
	reader *Reader

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	err    error
}

// NewClockSink returns a ClockSink that discards the stream.
func NewClockSink(logger *zap.Logger, obs UnderrunObserver) *ClockSink {
	logger = nopIfNil(logger)
	return &ClockSink{
		logger: logger,
		obs:    &underrunLogger{next: obs, logger: logger},
		w:      io.Discard,
	}
}

// SetWriter copies every played period to w. It must be called before Enable.
func (c *ClockSink) SetWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.w = w
}

// Setup implements Sink. cfg is ignored.
func (c *ClockSink) Setup(cfg DeviceConfig, f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	c.format = f
	c.logger.Info("clock sink ready",
		zap.Int("sample_rate", f.SampleRate),
		zap.Int("period", f.Period),
		zap.Duration("period_duration", f.PeriodDuration()))
	return nil
}

// Connect implements Sink.
func (c *ClockSink) Connect(s *stream.Streamer) error {
	r, err := connectReader(s, c.format, c.obs)
	if err != nil {
		return err
	}
	c.reader = r
	r.SetErrorHandler(func(err error) {
		c.logger.Warn("buffer ownership violated", zap.Error(err))
	})
	return nil
}

// Enable implements Sink.
func (c *ClockSink) Enable(ctx context.Context) error {
	if c.reader == nil {
		return fmt.Errorf("%w: enable before connect", ErrConnect)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return nil
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	go c.run(ctx)
	return nil
}

func (c *ClockSink) run(ctx context.Context) {
	defer c.wg.Done()

	period := make([]byte, c.format.PeriodBytes())
	ticker := time.NewTicker(c.format.PeriodDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		n, err := c.reader.Read(period)
		if err == io.EOF {
			return
		}
		if _, err := c.w.Write(period[:n]); err != nil {
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			c.logger.Error("clock sink write failed", zap.Error(err))
			return
		}
	}
}

// Close implements Sink. It returns the first write error, if any.
func (c *ClockSink) Close() error {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()

	var err error
	if c.reader != nil {
		err = c.reader.Close()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	return err
}

// Reader returns the connected reader, or nil before Connect.
func (c *ClockSink) Reader() *Reader {
	return c.reader
}
