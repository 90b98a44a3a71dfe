// Command noisemask streams colored noise to the audio device, for use as a
// sound-masking appliance.
//
// Usage:
//
//	noisemask [flags]
//
// Examples:
//
//	noisemask
//	noisemask -color pink -repr fixed
//	noisemask -headless -pcm-out - | aplay -f S16_LE -r 48000 -c 1
//	noisemask -rng pcg -seed 42 -metrics-addr :9100
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/rng"
	"github.com/cwbudde/algo-noise/dsp/stream"
	"github.com/cwbudde/algo-noise/internal/metrics"
	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/output"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "noisemask: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(cfg.debug)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("noisemask failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	features := cpu.DetectFeatures()
	logger.Info("noisemask starting",
		zap.Stringer("color", cfg.color),
		zap.Stringer("representation", cfg.repr),
		zap.Stringer("rng", cfg.algorithm),
		zap.Float64("sample_rate", cfg.proc.SampleRate),
		zap.Int("block", cfg.proc.BlockSize),
		zap.Int("buffers", cfg.proc.BufferCount),
		zap.Any("cpu", features),
	)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	streamer, err := stream.New(cfg.proc.BufferCount, cfg.proc.BlockSize, stream.WithObserver(m))
	if err != nil {
		return err
	}

	seed, source := resolveSeed(cfg, logger)
	src := rng.New(cfg.algorithm, seed, cfg.seq)
	logger.Info("random source seeded", zap.String("seed_source", source), zap.Uint64("seq", cfg.seq))

	gen, err := noise.New(streamer, cfg.generatorOptions(rng.NewSampler(src, cfg.draws), logger, m)...)
	if err != nil {
		return err
	}
	logger.Info("generator configured",
		zap.Float64("level_db", core.LinearToDB(gen.Params().Gain)),
		zap.Float64("lowpass_hz", gen.Params().LowPassHz),
		zap.Float64("highpass_hz", gen.Params().HighPassHz),
		zap.Uint("integrator_shift", gen.Params().IntegratorShift))

	sink, closePCM, err := openSink(cfg, logger, m)
	if err != nil {
		return err
	}
	defer closePCM()
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("closing sink", zap.Error(err))
		}
	}()

	if err := setupSink(sink, cfg, streamer); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer streamer.Close()
		return gen.Run(ctx)
	})

	g.Go(func() error {
		if err := sink.Enable(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		streamer.Close()
		return nil
	})

	if cfg.metricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("metrics listening", zap.String("addr", cfg.metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	st := streamer.Stats()
	logger.Info("shutting down",
		zap.Uint64("blocks", gen.Blocks()),
		zap.Uint64("released", st.Released),
		zap.Uint64("returned", st.Returned))
	return err
}

// setupSink opens the device and attaches the streamer. Failures are
// returned wrapped around output.ErrDeviceUnavailable or output.ErrConnect.
func setupSink(sink output.Sink, cfg config, streamer *stream.Streamer) error {
	format := output.Format{
		SampleRate: int(cfg.proc.SampleRate),
		Channels:   1,
		Period:     cfg.proc.BlockSize,
	}
	if err := sink.Setup(cfg.device, format); err != nil {
		if !errors.Is(err, output.ErrDeviceUnavailable) {
			err = fmt.Errorf("%w: %w", output.ErrDeviceUnavailable, err)
		}
		return fmt.Errorf("audio output setup: %w", err)
	}
	if err := sink.Connect(streamer); err != nil {
		return fmt.Errorf("audio output connect: %w", err)
	}
	return nil
}

// openSink returns the configured sink and a func closing the PCM copy file.
func openSink(cfg config, logger *zap.Logger, m *metrics.Metrics) (output.Sink, func(), error) {
	sink, err := output.Open(cfg.sink, logger, m)
	if err != nil {
		return nil, nil, err
	}

	clock, ok := sink.(*output.ClockSink)
	if !ok || cfg.pcmOut == "" {
		return sink, func() {}, nil
	}
	if cfg.pcmOut == "-" {
		clock.SetWriter(os.Stdout)
		return sink, func() {}, nil
	}

	f, err := os.Create(cfg.pcmOut)
	if err != nil {
		return nil, nil, fmt.Errorf("open pcm output: %w", err)
	}
	clock.SetWriter(f)
	return sink, func() { _ = f.Close() }, nil
}
