package rng

// Source produces uniformly distributed 32-bit values.
type Source interface {
	Uint32() uint32
}

// Algorithm selects a Source implementation.
type Algorithm int

const (
	// AlgorithmXorshift32 selects [Xorshift32].
	AlgorithmXorshift32 Algorithm = iota
	// AlgorithmPCG32 selects [PCG32].
	AlgorithmPCG32
)

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmXorshift32:
		return "xorshift32"
	case AlgorithmPCG32:
		return "pcg32"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a short name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch name {
	case "xorshift32", "xorshift":
		return AlgorithmXorshift32, true
	case "pcg32", "pcg":
		return AlgorithmPCG32, true
	default:
		return 0, false
	}
}

// New returns a Source of the requested algorithm seeded from a 64-bit
// seed. Xorshift32 folds the seed to 32 bits; PCG32 uses it as the initial
// state and seq as the stream selector.
func New(a Algorithm, seed, seq uint64) Source {
	if a == AlgorithmPCG32 {
		return NewPCG32(seed, seq)
	}

	return NewXorshift32(uint32(seed ^ seed>>32))
}

func uint64From(s Source) uint64 {
	hi := uint64(s.Uint32())
	lo := uint64(s.Uint32())

	return hi<<32 | lo
}
