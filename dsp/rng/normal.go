package rng

// Default and accepted draw counts for Normal.
const (
	DefaultNormalDraws = 6
	MinNormalDraws     = 1
	MaxNormalDraws     = 16
)

// normalCenter is the largest value a single 16-bit term can take.
const normalCenter = 0xFFFF

// Normal approximates a zero-mean bell curve by summing the low and high
// 16-bit halves of draws independent values, averaging over draws and
// recentering. The result lies in [-0xFFFF, 0xFFFF]. A draws value
// outside [MinNormalDraws, MaxNormalDraws] falls back to DefaultNormalDraws.
func Normal(s Source, draws int) int32 {
	if draws < MinNormalDraws || draws > MaxNormalDraws {
		draws = DefaultNormalDraws
	}

	var sum uint32
	for range draws {
		v := s.Uint32()
		sum += v&0xFFFF + v>>16
	}

	return int32(sum/uint32(draws)) - normalCenter
}

// Sampler couples a Source with a fixed draw count.
type Sampler struct {
	src   Source
	draws int
}

// NewSampler returns a Sampler drawing from src.
func NewSampler(src Source, draws int) *Sampler {
	if draws < MinNormalDraws || draws > MaxNormalDraws {
		draws = DefaultNormalDraws
	}

	return &Sampler{src: src, draws: draws}
}

// Next returns the next approximately-normal value.
func (s *Sampler) Next() int32 {
	return Normal(s.src, s.draws)
}

// Draws returns the configured draw count.
func (s *Sampler) Draws() int {
	return s.draws
}
