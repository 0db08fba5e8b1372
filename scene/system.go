package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/garden/growth"
)

// GrowthSystem evaluates every plant entity's timeline each frame.
type GrowthSystem struct {
	mapper *ecs.Map3[Slot, Growth, Animation]
	filter *ecs.Filter3[Slot, Growth, Animation]
}

// NewGrowthSystem creates a growth system on w.
func NewGrowthSystem(w *ecs.World) *GrowthSystem {
	return &GrowthSystem{
		mapper: ecs.NewMap3[Slot, Growth, Animation](w),
		filter: ecs.NewFilter3[Slot, Growth, Animation](w),
	}
}

// Spawn creates the entity for plant index i.
func (s *GrowthSystem) Spawn(i int, sched growth.Schedule) ecs.Entity {
	slot := Slot{Index: i}
	g := Growth{Schedule: sched}
	anim := Animation{State: sched.Evaluate(0)}
	return s.mapper.NewEntity(&slot, &g, &anim)
}

// Update evaluates all plants at time t and writes each state into
// out[slot.Index]. out must have one entry per spawned plant.
func (s *GrowthSystem) Update(t float64, out []growth.AnimationState) {
	query := s.filter.Query()
	for query.Next() {
		slot, g, anim := query.Get()
		anim.State = g.Schedule.Evaluate(t)
		out[slot.Index] = anim.State
	}
}
