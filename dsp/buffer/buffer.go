package buffer

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
)

// BytesPerSample is the stride of signed 16-bit mono PCM.
const BytesPerSample = 2

// State is the ownership state of an AudioBuffer.
type State int32

const (
	// StateFree buffers wait in the pool for the producer.
	StateFree State = iota
	// StateAcquired buffers are being filled by the producer.
	StateAcquired
	// StateReleased buffers are filled and queued for the consumer.
	StateReleased
	// StateInFlight buffers are being played by the consumer.
	StateInFlight
)

var stateNames = [...]string{"free", "acquired", "released", "in-flight"}

// String returns the state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// AudioBuffer is a fixed-capacity block of signed 16-bit samples with a
// count of valid samples.
type AudioBuffer struct {
	samples []int16
	count   int
	seq     uint64
	state   atomic.Int32
}

// New returns a free, empty buffer holding capacity samples.
func New(capacity int) *AudioBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &AudioBuffer{samples: make([]int16, capacity)}
}

// Samples returns the full-capacity sample slice.
func (b *AudioBuffer) Samples() []int16 {
	return b.samples
}

// Valid returns the first Count samples.
func (b *AudioBuffer) Valid() []int16 {
	return b.samples[:b.count]
}

// Cap returns the capacity in samples.
func (b *AudioBuffer) Cap() int {
	return len(b.samples)
}

// Count returns the number of valid samples.
func (b *AudioBuffer) Count() int {
	return b.count
}

// SetCount sets the number of valid samples, clamped to [0, Cap].
func (b *AudioBuffer) SetCount(n int) {
	b.count = max(0, min(n, len(b.samples)))
}

// Full reports whether every slot holds a valid sample.
func (b *AudioBuffer) Full() bool {
	return b.count == len(b.samples)
}

// Seq returns the sequence number assigned when the buffer was last acquired.
func (b *AudioBuffer) Seq() uint64 {
	return b.seq
}

// SetSeq records the acquisition sequence number.
func (b *AudioBuffer) SetSeq(seq uint64) {
	b.seq = seq
}

// State returns the current ownership state.
func (b *AudioBuffer) State() State {
	return State(b.state.Load())
}

// Transition moves the buffer from one state to another and reports
// whether it was in the expected state.
func (b *AudioBuffer) Transition(from, to State) bool {
	return b.state.CompareAndSwap(int32(from), int32(to))
}

// PutLE writes valid samples starting at sample index from into dst as
// little-endian bytes. It returns the number of samples written.
func (b *AudioBuffer) PutLE(dst []byte, from int) int {
	if from < 0 || from >= b.count {
		return 0
	}

	n := min(b.count-from, len(dst)/BytesPerSample)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[i*BytesPerSample:], uint16(b.samples[from+i]))
	}
	return n
}
