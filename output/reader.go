package output

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/stream"
)

// UnderrunObserver is told about every read that had to be padded with
// silence.
type UnderrunObserver interface {
	Underrun()
}

// Reader is the consumer side of a streamer as an io.Reader of S16LE mono
// PCM. Read never blocks: missing samples are zero-filled and counted as an
// underrun. Once the streamer is closed and drained Read returns io.EOF.
type Reader struct {
	mu  sync.Mutex
	s   *stream.Streamer
	obs UnderrunObserver

	cur *buffer.AudioBuffer
	pos int

	onError func(error)

	underruns      atomic.Uint64
	played         atomic.Uint64
	returnFailures atomic.Uint64
}

// NewReader returns a Reader taking buffers from s. obs may be nil.
func NewReader(s *stream.Streamer, obs UnderrunObserver) *Reader {
	return &Reader{s: s, obs: obs}
}

// Read implements io.Reader. Only whole samples are written.
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p) - len(p)%buffer.BytesPerSample
	if n == 0 {
		return 0, nil
	}

	written := 0
	for written < n {
		if r.cur == nil {
			b, ok := r.s.TryTake()
			if !ok {
				break
			}
			r.cur, r.pos = b, 0
		}

		k := r.cur.PutLE(p[written:n], r.pos)
		r.pos += k
		written += k * buffer.BytesPerSample

		if r.pos >= r.cur.Count() {
			r.giveBack()
		}
	}

	r.played.Add(uint64(written / buffer.BytesPerSample))

	if written == n {
		return n, nil
	}
	if written == 0 && r.closed() {
		return 0, io.EOF
	}

	clear(p[written:n])
	r.underruns.Add(1)
	if r.obs != nil {
		r.obs.Underrun()
	}
	return n, nil
}

// SetErrorHandler registers f to be called when a played buffer cannot be
// handed back. It must be called before the first Read.
func (r *Reader) SetErrorHandler(f func(error)) {
	r.onError = f
}

func (r *Reader) giveBack() {
	if err := r.s.Return(r.cur); err != nil {
		r.returnFailures.Add(1)
		if r.onError != nil {
			r.onError(fmt.Errorf("output: return buffer %d: %w", r.cur.Seq(), err))
		}
	}
	r.cur = nil
}

func (r *Reader) closed() bool {
	select {
	case <-r.s.Done():
		return true
	default:
		return false
	}
}

// Close hands a partially played buffer back to the streamer.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cur == nil {
		return nil
	}
	err := r.s.Return(r.cur)
	r.cur = nil
	return err
}

// Underruns returns how many reads were padded with silence.
func (r *Reader) Underruns() uint64 {
	return r.underruns.Load()
}

// ReturnFailures returns how many played buffers the streamer refused to
// take back.
func (r *Reader) ReturnFailures() uint64 {
	return r.returnFailures.Load()
}

// Played returns how many generated samples have been read.
func (r *Reader) Played() uint64 {
	return r.played.Load()
}
