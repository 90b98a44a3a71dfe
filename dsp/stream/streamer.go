package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-noise/dsp/buffer"
)

var (
	// ErrClosed is returned once the streamer has been closed.
	ErrClosed = errors.New("stream: closed")
	// ErrPartialBuffer is returned when a buffer is released before every slot was filled.
	ErrPartialBuffer = errors.New("stream: partial buffer")
	// ErrNotOwned is returned when a buffer is handed back by a side that does not own it.
	ErrNotOwned = errors.New("stream: buffer not owned by caller")
	// ErrOutOfOrder is returned when buffers are released in a different order than acquired.
	ErrOutOfOrder = errors.New("stream: buffer released out of acquisition order")
)

// Observer receives pipeline events. Implementations must be cheap and
// safe for concurrent use.
type Observer interface {
	AcquireWaited(d time.Duration)
	BufferReleased()
	BufferReturned()
}

// Stats is a snapshot of streamer counters.
type Stats struct {
	Acquired uint64
	Released uint64
	Taken    uint64
	Returned uint64
}

// Option configures a Streamer.
type Option func(*Streamer)

// WithObserver reports events to o.
func WithObserver(o Observer) Option {
	return func(s *Streamer) {
		s.observer = o
	}
}

// Streamer owns the buffer pool and the two hand-off queues.
type Streamer struct {
	pool   *buffer.Pool
	free   chan *buffer.AudioBuffer
	filled chan *buffer.AudioBuffer

	done      chan struct{}
	closeOnce sync.Once

	nextAcquire atomic.Uint64
	nextRelease atomic.Uint64
	taken       atomic.Uint64
	returned    atomic.Uint64

	observer Observer
}

// New allocates count buffers of capacity samples, all initially free.
func New(count, capacity int, opts ...Option) (*Streamer, error) {
	pool, err := buffer.NewPool(count, capacity)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	s := &Streamer{
		pool:   pool,
		free:   make(chan *buffer.AudioBuffer, count),
		filled: make(chan *buffer.AudioBuffer, count),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	for _, b := range pool.Buffers() {
		s.free <- b
	}
	return s, nil
}

// Capacity returns the per-buffer capacity in samples.
func (s *Streamer) Capacity() int { return s.pool.Capacity() }

// Count returns the number of buffers in the pool.
func (s *Streamer) Count() int { return s.pool.Len() }

// Pool returns the underlying pool, mainly for inspection.
func (s *Streamer) Pool() *buffer.Pool { return s.pool }

// Acquire returns the next free buffer, blocking until one is returned by
// the consumer, ctx is done or the streamer is closed.
func (s *Streamer) Acquire(ctx context.Context) (*buffer.AudioBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case <-s.done:
		return nil, ErrClosed
	default:
	}

	select {
	case b := <-s.free:
		return s.claim(b, 0), nil
	default:
	}

	start := time.Now()
	select {
	case b := <-s.free:
		return s.claim(b, time.Since(start)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return nil, ErrClosed
	}
}

// TryAcquire is the non-blocking form of Acquire.
func (s *Streamer) TryAcquire() (*buffer.AudioBuffer, bool) {
	select {
	case b := <-s.free:
		return s.claim(b, 0), true
	default:
		return nil, false
	}
}

func (s *Streamer) claim(b *buffer.AudioBuffer, waited time.Duration) *buffer.AudioBuffer {
	b.Transition(buffer.StateFree, buffer.StateAcquired)
	b.SetCount(0)
	b.SetSeq(s.nextAcquire.Add(1) - 1)

	if s.observer != nil {
		s.observer.AcquireWaited(waited)
	}
	return b
}

// Release hands a completely filled buffer to the consumer. Partial
// buffers, buffers the producer does not hold and buffers released out of
// acquisition order are refused and stay with the producer.
func (s *Streamer) Release(b *buffer.AudioBuffer) error {
	if b == nil || b.State() != buffer.StateAcquired {
		return ErrNotOwned
	}
	if !b.Full() {
		return fmt.Errorf("%w: %d of %d samples", ErrPartialBuffer, b.Count(), b.Cap())
	}
	if b.Seq() != s.nextRelease.Load() {
		return fmt.Errorf("%w: got %d, want %d", ErrOutOfOrder, b.Seq(), s.nextRelease.Load())
	}
	if !b.Transition(buffer.StateAcquired, buffer.StateReleased) {
		return ErrNotOwned
	}

	s.nextRelease.Add(1)
	s.filled <- b

	if s.observer != nil {
		s.observer.BufferReleased()
	}
	return nil
}

// Take returns the oldest released buffer, blocking until one is available,
// ctx is done or the streamer is closed.
func (s *Streamer) Take(ctx context.Context) (*buffer.AudioBuffer, error) {
	select {
	case b := <-s.filled:
		return s.inFlight(b), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return nil, ErrClosed
	}
}

// TryTake is the non-blocking form of Take for real-time callbacks.
func (s *Streamer) TryTake() (*buffer.AudioBuffer, bool) {
	select {
	case b := <-s.filled:
		return s.inFlight(b), true
	default:
		return nil, false
	}
}

func (s *Streamer) inFlight(b *buffer.AudioBuffer) *buffer.AudioBuffer {
	b.Transition(buffer.StateReleased, buffer.StateInFlight)
	s.taken.Add(1)
	return b
}

// Return gives a played buffer back to the free queue.
func (s *Streamer) Return(b *buffer.AudioBuffer) error {
	if b == nil || !b.Transition(buffer.StateInFlight, buffer.StateFree) {
		return ErrNotOwned
	}

	b.SetCount(0)
	s.free <- b
	s.returned.Add(1)

	if s.observer != nil {
		s.observer.BufferReturned()
	}
	return nil
}

// Close wakes every blocked Acquire and Take. It is safe to call more than once.
func (s *Streamer) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Done is closed by Close.
func (s *Streamer) Done() <-chan struct{} {
	return s.done
}

// Stats returns a snapshot of the hand-off counters.
func (s *Streamer) Stats() Stats {
	return Stats{
		Acquired: s.nextAcquire.Load(),
		Released: s.nextRelease.Load(),
		Taken:    s.taken.Load(),
		Returned: s.returned.Load(),
	}
}
