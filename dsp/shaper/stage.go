package shaper

// Sample is the numeric type flowing through a chain.
type Sample interface {
	~int32 | ~float64
}

// Stage is one stateful step of a chain.
type Stage[T Sample] interface {
	ProcessSample(x T) T
	Reset()
}

// Saturator is implemented by stages that clamp internally.
type Saturator interface {
	Saturations() uint64
}

// Chain is an ordered, fixed list of stages.
type Chain[T Sample] struct {
	stages []Stage[T]
}

// NewChain returns a chain running stages in order.
func NewChain[T Sample](stages ...Stage[T]) *Chain[T] {
	return &Chain[T]{stages: stages}
}

// Len returns the number of stages.
func (c *Chain[T]) Len() int { return len(c.stages) }

// ProcessSample runs x through every stage.
func (c *Chain[T]) ProcessSample(x T) T {
	for _, s := range c.stages {
		x = s.ProcessSample(x)
	}
	return x
}

// ProcessBlock runs buf through the chain in place.
func (c *Chain[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = c.ProcessSample(x)
	}
}

// Reset clears every stage.
func (c *Chain[T]) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// Saturations sums the clamp counts of all saturating stages.
func (c *Chain[T]) Saturations() uint64 {
	var n uint64
	for _, s := range c.stages {
		if sat, ok := s.(Saturator); ok {
			n += sat.Saturations()
		}
	}
	return n
}
