// Package growth maps elapsed time to the growth progress of a plant.
package growth

import (
	"fmt"

	"github.com/pthm-cable/garden/mathx"
)

// State is the lifecycle stage of a growing instance.
type State uint8

const (
	Pending State = iota // t < delay
	Growing              // delay <= t < delay+duration
	Grown                // t >= delay+duration
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Growing:
		return "growing"
	case Grown:
		return "grown"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Easing shapes how height and scale follow the growth fraction.
type Easing uint8

const (
	Linear   Easing = iota // height = fraction * target
	OutQuart               // height = easeOutQuart(fraction) * target
)

// ParseEasing maps a config name to an Easing.
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "", "linear":
		return Linear, nil
	case "out_quart":
		return OutQuart, nil
	default:
		return Linear, fmt.Errorf("unknown easing %q", name)
	}
}

func (e Easing) apply(f float64) float64 {
	if e == OutQuart {
		return mathx.EaseOutQuart(f)
	}
	return f
}

// AnimationState is the derived per-frame state of one instance.
type AnimationState struct {
	Fraction float64
	Height   float64
	Scale    float64
	State    State
}

// Schedule holds the immutable timing and targets of one instance.
type Schedule struct {
	Delay        float64
	Duration     float64
	TargetHeight float64
	TargetScale  float64
	Easing       Easing
}

// StateAt returns the lifecycle stage at time t.
func (s Schedule) StateAt(t float64) State {
	switch {
	case t < s.Delay:
		return Pending
	case t < s.Delay+s.Duration:
		return Growing
	default:
		return Grown
	}
}

// Evaluate computes the animation state at time t.
func (s Schedule) Evaluate(t float64) AnimationState {
	f := Fraction(t, s.Delay, s.Duration)
	e := s.Easing.apply(f)
	return AnimationState{
		Fraction: f,
		Height:   e * s.TargetHeight,
		Scale:    e * s.TargetScale,
		State:    s.StateAt(t),
	}
}

// Fraction is clamp((t - delay) / duration, 0, 1). A non-positive duration
// jumps straight from 0 to 1 at the delay.
func Fraction(t, delay, duration float64) float64 {
	local := t - delay
	if duration <= 0 {
		if local < 0 {
			return 0
		}
		return 1
	}
	return mathx.Clamp(local/duration, 0, 1)
}

// Evaluate computes the linear animation state for one instance at time t.
func Evaluate(t, delay, duration, targetHeight, targetScale float64) AnimationState {
	return Schedule{
		Delay:        delay,
		Duration:     duration,
		TargetHeight: targetHeight,
		TargetScale:  targetScale,
	}.Evaluate(t)
}
