package scene

import "github.com/pthm-cable/garden/growth"

// Slot links an entity to its index in Scene.Plants.
type Slot struct {
	Index int
}

// Growth holds the immutable growth timeline of a plant entity.
type Growth struct {
	Schedule growth.Schedule
}

// Animation holds the most recently evaluated state of a plant entity.
type Animation struct {
	State growth.AnimationState
}
