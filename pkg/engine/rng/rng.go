// Package rng defines the random source consumed by level generation.
// Any *rand.Rand satisfies Source; tests substitute Sequence or Constant.
package rng

import "math/rand"

// Source produces uniform floats in [0,1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Global returns a Source backed by the process-wide math/rand generator.
func Global() Source {
	return globalSource{}
}

// Seeded returns a Source with its own generator seeded with seed.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Chance draws once and returns true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Range returns a value in [lo, hi] inclusive. Bounds are swapped if reversed.
func Range(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + Intn(src, hi-lo+1)
}

// Sign returns -1 or +1 with equal probability.
func Sign(src Source) int {
	if src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Sequence replays a fixed list of values, cycling when exhausted.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence. An empty list behaves like Constant(0).
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws returns how many values have been consumed
func (s *Sequence) Draws() int {
	return s.next
}

// Constant always returns the same value.
type Constant float64

// Float64 returns c
func (c Constant) Float64() float64 { return float64(c) }
