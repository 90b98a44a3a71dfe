package noise

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-noise/dsp/shaper"
	"github.com/cwbudde/algo-noise/dsp/stream"
)

// Generator fills streamer buffers with shaped noise.
type Generator struct {
	s        *stream.Streamer
	renderer shaper.Renderer
	cfg      config

	blocks      uint64
	saturations uint64
}

// New builds the shaping chain and returns a Generator producing into s.
func New(s *stream.Streamer, opts ...Option) (*Generator, error) {
	if s == nil {
		return nil, errors.New("noise: nil streamer")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r, err := shaper.Build(cfg.sampler, cfg.params)
	if err != nil {
		return nil, fmt.Errorf("noise: %w", err)
	}

	return &Generator{s: s, renderer: r, cfg: cfg}, nil
}

// Params returns the shaping parameters the generator was built with.
func (g *Generator) Params() shaper.Params {
	return g.cfg.params
}

// Blocks returns how many buffers have been released.
func (g *Generator) Blocks() uint64 {
	return g.blocks
}

// Step fills and releases one buffer. It blocks while every buffer is held
// by the consumer.
func (g *Generator) Step(ctx context.Context) error {
	b, err := g.s.Acquire(ctx)
	if err != nil {
		return err
	}

	clipped := g.renderer.Render(b.Samples())
	b.SetCount(b.Cap())

	if err := g.s.Release(b); err != nil {
		return fmt.Errorf("noise: release block %d: %w", g.blocks, err)
	}
	g.blocks++

	if g.cfg.metrics != nil {
		sat := g.renderer.Saturations()
		g.cfg.metrics.Rendered(b.Cap(), clipped, sat-g.saturations)
		g.saturations = sat
	}
	return nil
}

// Run calls Step until ctx is done or the streamer is closed, which both
// end the loop with a nil error. Ownership violations are returned.
func (g *Generator) Run(ctx context.Context) error {
	g.cfg.logger.Info("generator started",
		zap.Stringer("color", g.cfg.params.Color),
		zap.Stringer("representation", g.cfg.params.Representation),
		zap.Int("block", g.s.Capacity()),
		zap.Int("buffers", g.s.Count()))

	for {
		err := g.Step(ctx)
		if err == nil {
			continue
		}

		if ctx.Err() != nil || errors.Is(err, stream.ErrClosed) {
			g.cfg.logger.Info("generator stopped", zap.Uint64("blocks", g.blocks))
			return nil
		}

		g.cfg.logger.Error("generator failed", zap.Uint64("blocks", g.blocks), zap.Error(err))
		return err
	}
}
