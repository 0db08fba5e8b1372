// Package rng provides the deterministic random stream and the weighted
// category sampler used during scene generation.
package rng

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/pthm-cable/garden/mathx"
)

// DefaultSeed is used whenever no seed is supplied.
const DefaultSeed uint32 = 0x5EED1E55

// Stream is a source of floats in [0, 1).
type Stream interface {
	Next() float64
}

// Source is a Mulberry32 pseudo-random stream.
// Two sources built from the same seed yield identical sequences.
type Source struct {
	state uint32
	seed  uint32
}

// New creates a source from a numeric seed.
func New(seed uint32) *Source {
	return &Source{state: seed, seed: seed}
}

// NewFromString creates a source from a textual seed (see ParseSeed).
func NewFromString(seed string) *Source {
	return New(ParseSeed(seed))
}

// ParseSeed converts a textual seed into a numeric one.
// Empty strings map to DefaultSeed, integers are used directly (truncated to
// 32 bits) and anything else is hashed.
func ParseSeed(seed string) uint32 {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return DefaultSeed
	}
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return uint32(n)
	}
	h := xxhash.Sum64String(seed)
	return uint32(h) ^ uint32(h>>32)
}

// Seed returns the seed this source was created with.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Next returns the next float in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a float in [min, max).
func Range(s Stream, min, max float64) float64 {
	return mathx.MapRange(s.Next(), 0, 1, min, max)
}

// Intn returns an int in [0, n). n must be positive.
func Intn(s Stream, n int) int {
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sign returns -1 or +1, consuming one draw.
func Sign(s Stream) float64 {
	if s.Next()-0.5 < 0 {
		return -1
	}
	return 1
}
