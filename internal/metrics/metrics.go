// Package metrics exposes Prometheus instrumentation for the noise pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "noisemask"

// Metrics holds the pipeline collectors. It satisfies stream.Observer and
// the sink underrun reporter.
type Metrics struct {
	BuffersReleased  prometheus.Counter
	BuffersReturned  prometheus.Counter
	Underruns        prometheus.Counter
	SamplesClipped   prometheus.Counter
	StageSaturations prometheus.Counter
	SamplesRendered  prometheus.Counter
	AcquireWait      prometheus.Histogram
}

// New registers the collectors with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		BuffersReleased: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffers_released_total",
			Help:      "Filled buffers handed to the output sink",
		}),
		BuffersReturned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffers_returned_total",
			Help:      "Played buffers handed back to the generator",
		}),
		Underruns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "underruns_total",
			Help:      "Output periods played as silence because no filled buffer was ready",
		}),
		SamplesClipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_clipped_total",
			Help:      "Output samples clamped to the int16 range",
		}),
		StageSaturations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_saturations_total",
			Help:      "Integrator steps clamped to the int16 range",
		}),
		SamplesRendered: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_rendered_total",
			Help:      "Samples produced by the generator",
		}),
		AcquireWait: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "acquire_wait_seconds",
			Help:      "Time the generator waited for a free buffer",
			Buckets:   []float64{0, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// AcquireWaited records how long an acquire blocked.
func (m *Metrics) AcquireWaited(d time.Duration) {
	m.AcquireWait.Observe(d.Seconds())
}

// BufferReleased counts a buffer handed to the consumer.
func (m *Metrics) BufferReleased() { m.BuffersReleased.Inc() }

// BufferReturned counts a buffer handed back to the producer.
func (m *Metrics) BufferReturned() { m.BuffersReturned.Inc() }

// Underrun counts a period the sink filled with silence.
func (m *Metrics) Underrun() { m.Underruns.Inc() }

// Rendered records one generated block.
func (m *Metrics) Rendered(samples, clipped int, saturations uint64) {
	m.SamplesRendered.Add(float64(samples))
	if clipped > 0 {
		m.SamplesClipped.Add(float64(clipped))
	}
	if saturations > 0 {
		m.StageSaturations.Add(float64(saturations))
	}
}
