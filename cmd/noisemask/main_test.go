package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/rng"
	"github.com/cwbudde/algo-noise/dsp/shaper"
	"github.com/cwbudde/algo-noise/dsp/stream"
	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/output"
)

func parse(t *testing.T, args ...string) (config, error) {
	t.Helper()
	fs := flag.NewFlagSet("noisemask", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlags(fs, args)
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.color != shaper.ColorBrown || cfg.repr != shaper.RepresentationFloat {
		t.Fatalf("color=%v repr=%v", cfg.color, cfg.repr)
	}
	if cfg.algorithm != rng.AlgorithmXorshift32 || cfg.sink != output.KindDevice {
		t.Fatalf("rng=%v sink=%v", cfg.algorithm, cfg.sink)
	}
	if cfg.proc.SampleRate != 48000 || cfg.proc.BlockSize != 512 || cfg.proc.BufferCount != 3 {
		t.Fatalf("proc = %+v", cfg.proc)
	}
	if cfg.device != output.DefaultDeviceConfig() {
		t.Fatalf("device = %+v", cfg.device)
	}
	if !math.IsNaN(cfg.levelDB) {
		t.Fatalf("level = %v, want unset", cfg.levelDB)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, err := parse(t,
		"-color", "pink", "-repr", "fixed", "-rng", "pcg", "-seed", "42", "-seq", "54",
		"-headless", "-buffers", "2", "-block", "256", "-fade", "10ms", "-dma", "3",
	)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.color != shaper.ColorPink || cfg.repr != shaper.RepresentationFixed || cfg.algorithm != rng.AlgorithmPCG32 {
		t.Fatalf("color=%v repr=%v rng=%v", cfg.color, cfg.repr, cfg.algorithm)
	}
	if cfg.sink != output.KindClock {
		t.Fatalf("-headless sink = %v, want clock", cfg.sink)
	}
	if cfg.seed != 42 || cfg.seq != 54 || cfg.device.DMAChannel != 3 {
		t.Fatalf("seed=%d seq=%d dma=%d", cfg.seed, cfg.seq, cfg.device.DMAChannel)
	}
	if got := cfg.fadeInSamples(); got != 480 {
		t.Fatalf("fadeInSamples() = %d, want 480", got)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{"-color", "blue"},
		{"-repr", "double"},
		{"-rng", "mt19937"},
		{"-sink", "alsa"},
		{"-buffers", "1"},
		{"-buffers", "9"},
		{"-block", "0"},
		{"-rate", "44100.5"},
		{"-draws", "0"},
		{"-fade", "-1s"},
	}

	for _, args := range tests {
		if _, err := parse(t, args...); err == nil {
			t.Fatalf("parseFlags(%v) accepted", args)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	logger := zap.NewNop()

	cfg := config{seed: 0x32B71700, algorithm: rng.AlgorithmXorshift32}
	if seed, src := resolveSeed(cfg, logger); seed != 0x32B71700 || src != "flag" {
		t.Fatalf("resolveSeed = %#x, %q", seed, src)
	}

	cfg.seed = 0x0000000100000001
	seed, src := resolveSeed(cfg, logger)
	if uint32(seed^seed>>32) == 0 || src != "clock" {
		t.Fatalf("zero-folding seed not replaced: %#x, %q", seed, src)
	}

	cfg.algorithm = rng.AlgorithmPCG32
	if seed, _ := resolveSeed(cfg, logger); seed != 0x0000000100000001 {
		t.Fatalf("pcg32 seed changed to %#x", seed)
	}
}

func TestCollectSeedFallsBackToJitter(t *testing.T) {
	cfg := config{iioDevice: "no-such-device", iioChannel: 0}
	if _, src := collectSeed(cfg, zap.NewNop()); src != "jitter" {
		t.Fatalf("seed source = %q, want jitter", src)
	}
}

func TestGeneratorOptions(t *testing.T) {
	cfg, err := parse(t, "-color", "white", "-level", "-6", "-block", "64")
	if err != nil {
		t.Fatal(err)
	}

	s, err := stream.New(cfg.proc.BufferCount, cfg.proc.BlockSize)
	if err != nil {
		t.Fatal(err)
	}
	sampler := rng.NewSampler(rng.NewXorshift32(1), cfg.draws)

	gen, err := noise.New(s, cfg.generatorOptions(sampler, zap.NewNop(), nil)...)
	if err != nil {
		t.Fatal(err)
	}
	if got := gen.Params().Gain; math.Abs(got-0.501187) > 1e-6 {
		t.Fatalf("gain = %v, want -6 dB", got)
	}
}

func TestRunHeadless(t *testing.T) {
	cfg, err := parse(t, "-headless", "-seed", "7", "-block", "64", "-rate", "8000")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := run(ctx, cfg, zap.NewNop()); err != nil {
		t.Fatalf("run = %v", err)
	}
}

type failingSink struct {
	setupErr, connectErr error
}

func (f *failingSink) Setup(output.DeviceConfig, output.Format) error { return f.setupErr }
func (f *failingSink) Connect(*stream.Streamer) error               { return f.connectErr }
func (f *failingSink) Enable(context.Context) error                 { return nil }
func (f *failingSink) Close() error                                 { return nil }

func TestSetupSinkErrors(t *testing.T) {
	cfg, err := parse(t, "-headless", "-block", "64")
	if err != nil {
		t.Fatal(err)
	}
	s, err := stream.New(cfg.proc.BufferCount, cfg.proc.BlockSize)
	if err != nil {
		t.Fatal(err)
	}

	err = setupSink(&failingSink{setupErr: errors.New("no card")}, cfg, s)
	if !errors.Is(err, output.ErrDeviceUnavailable) {
		t.Fatalf("setup failure = %v, want ErrDeviceUnavailable", err)
	}

	err = setupSink(&failingSink{connectErr: output.ErrConnect}, cfg, s)
	if !errors.Is(err, output.ErrConnect) {
		t.Fatalf("connect failure = %v, want ErrConnect", err)
	}

	err = setupSink(output.NewClockSink(nil, nil), cfg, s)
	if err != nil {
		t.Fatalf("clock sink setup = %v", err)
	}

	mismatched, err := stream.New(2, 32)
	if err != nil {
		t.Fatal(err)
	}
	err = setupSink(output.NewClockSink(nil, nil), cfg, mismatched)
	if !errors.Is(err, output.ErrConnect) {
		t.Fatalf("capacity mismatch = %v, want ErrConnect", err)
	}
}
