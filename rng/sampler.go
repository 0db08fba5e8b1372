package rng

import (
	"errors"
	"fmt"
	"math"
)

// WeightResolution is the number of lookup slots per unit of weight.
const WeightResolution = 100

// maxSlots bounds the size of the lookup table.
const maxSlots = 1 << 20

var (
	// ErrNoPositiveWeights is returned when no category gets a lookup slot.
	ErrNoPositiveWeights = errors.New("no positive-weight categories")
	// ErrNegativeWeight is returned for negative or NaN weights.
	ErrNegativeWeight = errors.New("weight must be a non-negative number")
	// ErrWeightTooLarge is returned when the lookup table would exceed maxSlots.
	ErrWeightTooLarge = errors.New("weights too large for lookup table")
)

// Weight pairs a category label with its relative weight.
type Weight[T comparable] struct {
	Label  T
	Weight float64
}

// WeightTable is an ordered list of weighted categories.
type WeightTable[T comparable] []Weight[T]

// Sampler draws categories from a flat slot table built from a WeightTable.
type Sampler[T comparable] struct {
	slots  []T
	stream Stream
}

// NewSampler expands table into floor(weight * WeightResolution) slots per
// category. Weights at or below 1/WeightResolution get no slots and can never
// be drawn.
func NewSampler[T comparable](table WeightTable[T], stream Stream) (*Sampler[T], error) {
	var slots []T
	for _, w := range table {
		if w.Weight < 0 || math.IsNaN(w.Weight) {
			return nil, fmt.Errorf("category %v: %w", w.Label, ErrNegativeWeight)
		}
		n := slotCount(w.Weight)
		if n > maxSlots || len(slots)+n > maxSlots {
			return nil, fmt.Errorf("category %v: %w", w.Label, ErrWeightTooLarge)
		}
		for i := 0; i < n; i++ {
			slots = append(slots, w.Label)
		}
	}
	if len(slots) == 0 {
		return nil, ErrNoPositiveWeights
	}
	return &Sampler[T]{slots: slots, stream: stream}, nil
}

func slotCount(weight float64) int {
	scaled := weight * WeightResolution
	if scaled <= 1 {
		return 0
	}
	if scaled > maxSlots {
		return maxSlots + 1
	}
	return int(math.Floor(scaled))
}

// Sample draws one category.
func (s *Sampler[T]) Sample() T {
	n := len(s.slots)
	i := int(math.Floor(s.stream.Next() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return s.slots[i]
}

// SlotCount returns the total number of lookup slots.
func (s *Sampler[T]) SlotCount() int {
	return len(s.slots)
}

// Slots returns how many lookup slots label occupies.
func (s *Sampler[T]) Slots(label T) int {
	n := 0
	for _, l := range s.slots {
		if l == label {
			n++
		}
	}
	return n
}
