package noise

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/rng"
	"github.com/cwbudde/algo-noise/dsp/shaper"
)

// Recorder receives per-block counters, typically *metrics.Metrics.
type Recorder interface {
	Rendered(samples, clipped int, saturations uint64)
}

type config struct {
	params  shaper.Params
	sampler *rng.Sampler
	logger  *zap.Logger
	metrics Recorder
}

func defaultConfig() config {
	return config{
		params: shaper.DefaultParams(shaper.ColorBrown),
		logger: zap.NewNop(),
	}
}

// Option configures a [Generator].
type Option func(*config) error

// WithColor selects the noise preset (default brown). Cutoffs, gain and
// integrator shift reset to the preset defaults unless set by a later option.
func WithColor(c shaper.Color) Option {
	return func(cfg *config) error {
		if !c.Valid() {
			return fmt.Errorf("noise: invalid color: %d", c)
		}

		def := shaper.DefaultParams(c)
		def.Representation = cfg.params.Representation
		def.SampleRate = cfg.params.SampleRate
		def.FadeInSamples = cfg.params.FadeInSamples
		cfg.params = def

		return nil
	}
}

// WithRepresentation selects float or fixed-point stages (default float).
func WithRepresentation(r shaper.Representation) Option {
	return func(cfg *config) error {
		if r != shaper.RepresentationFloat && r != shaper.RepresentationFixed {
			return fmt.Errorf("noise: invalid representation: %d", r)
		}

		cfg.params.Representation = r

		return nil
	}
}

// WithSampleRate sets the rate the filter coefficients are derived for.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("noise: sample rate must be > 0 and finite: %f", sampleRate)
		}

		cfg.params.SampleRate = sampleRate

		return nil
	}
}

// WithCutoffs overrides the preset low-pass and high-pass cutoffs in Hz.
// Zero keeps the preset value.
func WithCutoffs(lowPassHz, highPassHz float64) Option {
	return func(cfg *config) error {
		if lowPassHz < 0 || highPassHz < 0 {
			return fmt.Errorf("noise: cutoffs must be >= 0: %f, %f", lowPassHz, highPassHz)
		}

		if lowPassHz > 0 {
			cfg.params.LowPassHz = lowPassHz
		}
		if highPassHz > 0 {
			cfg.params.HighPassHz = highPassHz
		}

		return nil
	}
}

// WithGain sets the linear output gain applied before the final clip.
func WithGain(gain float64) Option {
	return func(cfg *config) error {
		if gain <= 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("noise: gain must be > 0 and finite: %f", gain)
		}

		cfg.params.Gain = gain

		return nil
	}
}

// WithIntegratorShift sets the right shift applied before integration.
func WithIntegratorShift(shift uint) Option {
	return func(cfg *config) error {
		if shift > shaper.MaxIntegratorShift {
			return fmt.Errorf("noise: integrator shift must be <= %d: %d", shaper.MaxIntegratorShift, shift)
		}

		cfg.params.IntegratorShift = shift

		return nil
	}
}

// WithFadeIn ramps the output up over the first n samples.
func WithFadeIn(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("noise: fade-in length must be >= 0: %d", n)
		}

		cfg.params.FadeInSamples = n

		return nil
	}
}

// WithSampler sets the random sampler. Every color except silence needs one.
func WithSampler(s *rng.Sampler) Option {
	return func(cfg *config) error {
		cfg.sampler = s
		return nil
	}
}

// WithLogger sets the logger. nil disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = zap.NewNop()
		}

		cfg.logger = logger

		return nil
	}
}

// WithMetrics reports rendered blocks to r.
func WithMetrics(r Recorder) Option {
	return func(cfg *config) error {
		cfg.metrics = r
		return nil
	}
}
