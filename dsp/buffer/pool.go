package buffer

import "fmt"

// Pool is a fixed set of equally sized buffers allocated once at startup.
type Pool struct {
	buffers  []*AudioBuffer
	capacity int
}

// NewPool allocates count buffers of capacity samples each.
func NewPool(count, capacity int) (*Pool, error) {
	if count <= 0 {
		return nil, fmt.Errorf("buffer: count must be > 0: %d", count)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("buffer: capacity must be > 0: %d", capacity)
	}

	p := &Pool{
		buffers:  make([]*AudioBuffer, count),
		capacity: capacity,
	}
	for i := range p.buffers {
		p.buffers[i] = New(capacity)
	}
	return p, nil
}

// Buffers returns the pool members. The slice must not be modified.
func (p *Pool) Buffers() []*AudioBuffer {
	return p.buffers
}

// Len returns the number of buffers.
func (p *Pool) Len() int {
	return len(p.buffers)
}

// Capacity returns the per-buffer capacity in samples.
func (p *Pool) Capacity() int {
	return p.capacity
}

// CountIn returns how many buffers are currently in state s.
func (p *Pool) CountIn(s State) int {
	n := 0
	for _, b := range p.buffers {
		if b.State() == s {
			n++
		}
	}
	return n
}
