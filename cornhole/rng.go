package cornhole

import "math/rand/v2"

// RandomSource yields uniform floats in [0, 1)
type RandomSource interface {
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG returns the process-wide random source
func DefaultRNG() RandomSource { return globalRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source, used by tests and the -seed flag
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// intn draws uniformly from [0, n); n <= 0 yields 0
func intn(src RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
