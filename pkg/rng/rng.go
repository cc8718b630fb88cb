// Package rng provides the seeded random source that drives all
// generative choices in ripples.
package rng

import (
	"errors"
	"hash/fnv"
	"math/rand"
	"strconv"
)

// ErrInvalidDistribution is returned when a weighted choice is asked to
// draw from a degenerate weight set (negative weights, or all zero).
var ErrInvalidDistribution = errors.New("invalid weight distribution")

// Source owns every bit of entropy used during one generation run.
// All pipeline components draw from the same Source, so the call order
// across components is part of the determinism contract: the same seed
// with the same engine version always produces the same song.
type Source struct {
	seed string
	rand *rand.Rand
}

// New creates a Source from an arbitrary seed string. Decimal integer
// seeds are used directly; anything else is hashed to a fixed-width
// value first, so "42" and "my song" are both valid seeds.
func New(seed string) *Source {
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(NormalizeSeed(seed))),
	}
}

// NormalizeSeed maps a seed string to the 64-bit value used to
// initialize the underlying generator.
func NormalizeSeed(seed string) int64 {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// Seed returns the original seed string.
func (s *Source) Seed() string {
	return s.seed
}

// IntRange returns an integer in [lo, hi] inclusive. Panics if lo > hi;
// that is a programming error, not a recoverable condition.
func (s *Source) IntRange(lo, hi int) int {
	if lo > hi {
		panic("rng: IntRange lo > hi")
	}
	return lo + s.rand.Intn(hi-lo+1)
}

// Choice returns one of the given values uniformly.
func Choice[T any](s *Source, values []T) T {
	return values[s.rand.Intn(len(values))]
}

// WeightedChoice returns one of the given values with probability
// proportional to its weight. Weights must be non-negative and must not
// all be zero.
func WeightedChoice[T any](s *Source, values []T, weights []int) (T, error) {
	var zero T
	if len(values) == 0 || len(values) != len(weights) {
		return zero, ErrInvalidDistribution
	}
	total := 0
	for _, w := range weights {
		if w < 0 {
			return zero, ErrInvalidDistribution
		}
		total += w
	}
	if total == 0 {
		return zero, ErrInvalidDistribution
	}
	pick := s.rand.Intn(total)
	for i, w := range weights {
		pick -= w
		if pick < 0 {
			return values[i], nil
		}
	}
	return values[len(values)-1], nil
}

// Bool draws true with probability weightTrue/(weightTrue+weightFalse).
func (s *Source) Bool(weightTrue, weightFalse int) bool {
	v, err := WeightedChoice(s, []bool{true, false}, []int{weightTrue, weightFalse})
	if err != nil {
		panic(err)
	}
	return v
}
