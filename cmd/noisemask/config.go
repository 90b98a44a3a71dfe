package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/entropy"
	"github.com/cwbudde/algo-noise/dsp/rng"
	"github.com/cwbudde/algo-noise/dsp/shaper"
	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/output"
)

type config struct {
	proc   core.ProcessorConfig
	device output.DeviceConfig
	sink   output.Kind
	pcmOut string

	color     shaper.Color
	repr      shaper.Representation
	algorithm rng.Algorithm
	seed      uint64
	seq       uint64
	draws     int

	lowPassHz  float64
	highPassHz float64
	levelDB    float64
	shift      uint
	fadeIn     time.Duration

	iioDevice  string
	iioChannel int

	metricsAddr string
	debug       bool
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config

	def := core.DefaultProcessorConfig()
	dev := output.DefaultDeviceConfig()

	color := fs.String("color", "brown", "noise color: white, brown (red), pink, silence")
	repr := fs.String("repr", "float", "filter arithmetic: float or fixed")
	algo := fs.String("rng", "xorshift32", "random source: xorshift32 or pcg32")
	sinkName := fs.String("sink", string(output.KindDevice), "output sink: device or clock")
	headless := fs.Bool("headless", false, "drain with the clock sink instead of the audio device")
	rate := fs.Float64("rate", def.SampleRate, "sample rate in Hz")
	block := fs.Int("block", def.BlockSize, "samples per buffer")
	buffers := fs.Int("buffers", def.BufferCount, "buffers cycling between generator and sink (2-8)")

	fs.Uint64Var(&cfg.seed, "seed", 0, "fixed seed; 0 collects one from the entropy channel")
	fs.Uint64Var(&cfg.seq, "seq", 0, "pcg32 stream selector")
	fs.IntVar(&cfg.draws, "draws", rng.DefaultNormalDraws, "uniform draws per normal sample")
	fs.Float64Var(&cfg.lowPassHz, "lowpass", 0, "low-pass cutoff in Hz; 0 keeps the preset")
	fs.Float64Var(&cfg.highPassHz, "highpass", 0, "high-pass cutoff in Hz; 0 keeps the preset")
	fs.Float64Var(&cfg.levelDB, "level", math.NaN(), "output gain in dB; unset keeps the preset")
	fs.UintVar(&cfg.shift, "shift", 0, "integrator input shift; 0 keeps the preset")
	fs.DurationVar(&cfg.fadeIn, "fade", 0, "fade-in duration")
	fs.StringVar(&cfg.pcmOut, "pcm-out", "", "clock sink: copy raw S16LE PCM to this file, - for stdout")
	fs.StringVar(&cfg.iioDevice, "iio-device", "iio:device0", "IIO device providing the entropy ADC")
	fs.IntVar(&cfg.iioChannel, "iio-channel", 2, "ADC channel for entropy; negative uses clock jitter")
	fs.IntVar(&dev.DataPin, "data-pin", dev.DataPin, "device data line")
	fs.IntVar(&dev.ClockPinBase, "clock-pin", dev.ClockPinBase, "device clock line base")
	fs.IntVar(&dev.DMAChannel, "dma", dev.DMAChannel, "device transfer channel")
	fs.IntVar(&dev.StateMachine, "sm", dev.StateMachine, "device state machine index")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&cfg.debug, "debug", false, "development logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.color, err = shaper.ParseColor(*color); err != nil {
		return cfg, err
	}
	if cfg.repr, err = shaper.ParseRepresentation(*repr); err != nil {
		return cfg, err
	}

	var ok bool
	if cfg.algorithm, ok = rng.ParseAlgorithm(*algo); !ok {
		return cfg, fmt.Errorf("unknown rng %q", *algo)
	}

	if cfg.sink, err = output.ParseKind(*sinkName); err != nil {
		return cfg, err
	}
	if *headless {
		cfg.sink = output.KindClock
	}

	cfg.proc, err = core.NewProcessorConfig(
		core.WithSampleRate(*rate),
		core.WithBlockSize(*block),
		core.WithBufferCount(*buffers),
	)
	if err != nil {
		return cfg, err
	}
	if cfg.proc.SampleRate != math.Trunc(cfg.proc.SampleRate) {
		return cfg, fmt.Errorf("sample rate must be a whole number of Hz: %f", cfg.proc.SampleRate)
	}
	if cfg.draws < rng.MinNormalDraws || cfg.draws > rng.MaxNormalDraws {
		return cfg, fmt.Errorf("draws must be in [%d, %d]: %d", rng.MinNormalDraws, rng.MaxNormalDraws, cfg.draws)
	}
	if cfg.fadeIn < 0 {
		return cfg, fmt.Errorf("fade must be >= 0: %v", cfg.fadeIn)
	}

	cfg.device = dev
	return cfg, nil
}

// fadeInSamples converts the fade duration to samples at the stream rate.
func (cfg config) fadeInSamples() int {
	return int(math.Round(cfg.fadeIn.Seconds() * cfg.proc.SampleRate))
}

func (cfg config) generatorOptions(sampler *rng.Sampler, logger *zap.Logger, rec noise.Recorder) []noise.Option {
	opts := []noise.Option{
		noise.WithSampleRate(cfg.proc.SampleRate),
		noise.WithRepresentation(cfg.repr),
		noise.WithFadeIn(cfg.fadeInSamples()),
		noise.WithColor(cfg.color),
		noise.WithCutoffs(cfg.lowPassHz, cfg.highPassHz),
		noise.WithSampler(sampler),
		noise.WithLogger(logger),
		noise.WithMetrics(rec),
	}
	if cfg.shift > 0 {
		opts = append(opts, noise.WithIntegratorShift(cfg.shift))
	}
	if !math.IsNaN(cfg.levelDB) {
		opts = append(opts, noise.WithGain(core.DBToLinear(cfg.levelDB)))
	}
	return opts
}

// resolveSeed returns the seed to use and a description of where it came
// from. A zero seed for xorshift32 would lock the generator at zero, so it
// is replaced by a clock reading.
func resolveSeed(cfg config, logger *zap.Logger) (uint64, string) {
	seed, source := cfg.seed, "flag"
	if seed == 0 {
		seed, source = collectSeed(cfg, logger)
	}

	if cfg.algorithm == rng.AlgorithmXorshift32 && uint32(seed^seed>>32) == 0 {
		logger.Warn("seed folds to zero for xorshift32, using clock instead")
		seed, source = entropy.MonotonicClock()|1, "clock"
	}
	return seed, source
}

func collectSeed(cfg config, logger *zap.Logger) (uint64, string) {
	var ch entropy.Channel = entropy.JitterChannel{}
	source := "jitter"

	if cfg.iioChannel >= 0 {
		iio, err := entropy.OpenIIO("", cfg.iioDevice, cfg.iioChannel)
		if err != nil {
			logger.Warn("entropy ADC unavailable, using clock jitter", zap.Error(err))
		} else {
			ch, source = iio, iio.Path()
		}
	}

	return entropy.Seed(entropy.NewCollector(ch), entropy.MonotonicClock), source
}
