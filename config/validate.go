package config

import (
	"fmt"
	"math"

	"github.com/pthm-cable/garden/growth"
)

// ConfigurationError reports an unusable configuration value.
// Generation fails with it synchronously; there is nothing to retry.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("config: %s %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func invalid(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floatFields lists every float value in checking order.
func (c *Config) floatFields() []struct {
	name string
	v    float64
} {
	return []struct {
		name string
		v    float64
	}{
		{"grid.cell_size", c.Grid.CellSize},
		{"grid.weights.building", c.Grid.Weights.Building},
		{"grid.weights.flower", c.Grid.Weights.Flower},
		{"grid.weights.empty", c.Grid.Weights.Empty},
		{"plants.height_min", c.Plants.HeightMin},
		{"plants.height_max", c.Plants.HeightMax},
		{"plants.lateral_amplitude", c.Plants.LateralAmplitude},
		{"plants.radius_min", c.Plants.RadiusMin},
		{"plants.radius_max", c.Plants.RadiusMax},
		{"plants.head_scale", c.Plants.HeadScale},
		{"plants.root_depth", c.Plants.RootDepth},
		{"buildings.height_min", c.Buildings.HeightMin},
		{"buildings.height_max", c.Buildings.HeightMax},
		{"buildings.footprint_min", c.Buildings.FootprintMin},
		{"buildings.footprint_max", c.Buildings.FootprintMax},
		{"animation.delay_max", c.Animation.DelayMax},
		{"animation.duration", c.Animation.Duration},
		{"animation.sway_amplitude", c.Animation.SwayAmplitude},
	}
}

// Validate returns the first invalid value found, or nil. A valid config has
// its Derived values refreshed, so hand-edited configs need no extra step.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

func (c *Config) validate() error {
	for _, f := range c.floatFields() {
		if !finite(f.v) {
			return invalid(f.name, "must be finite")
		}
	}

	g := c.Grid
	if g.MapSize <= 0 {
		return invalid("grid.map_size", "must be positive")
	}
	if !(g.CellSize > 0) {
		return invalid("grid.cell_size", "must be positive")
	}
	weights := []struct {
		name string
		w    float64
	}{
		{"grid.weights.building", g.Weights.Building},
		{"grid.weights.flower", g.Weights.Flower},
		{"grid.weights.empty", g.Weights.Empty},
	}
	for _, w := range weights {
		if w.w < 0 {
			return invalid(w.name, "must be non-negative")
		}
	}
	if g.Weights.Building+g.Weights.Flower+g.Weights.Empty <= 0 {
		return invalid("grid.weights", "must not all be zero")
	}

	p := c.Plants
	if !(p.HeightMax > 0) {
		return invalid("plants.height_max", "must be positive")
	}
	if p.HeightMin < 0 || p.HeightMin > p.HeightMax {
		return invalid("plants.height_min", "must be in [0, height_max]")
	}
	if p.LateralAmplitude < 0 {
		return invalid("plants.lateral_amplitude", "must be non-negative")
	}
	if p.RadiusMin < 0 || p.RadiusMin > p.RadiusMax {
		return invalid("plants.radius_min", "must be in [0, radius_max]")
	}
	if p.HeadScale < 0 {
		return invalid("plants.head_scale", "must be non-negative")
	}
	if p.RootDepth < 0 {
		return invalid("plants.root_depth", "must be non-negative")
	}
	if p.Attachments < 0 {
		return invalid("plants.attachments", "must be non-negative")
	}

	b := c.Buildings
	if b.HeightMin < 0 || b.HeightMin > b.HeightMax {
		return invalid("buildings.height_min", "must be in [0, height_max]")
	}
	if b.FootprintMin < 0 || b.FootprintMin > b.FootprintMax {
		return invalid("buildings.footprint_min", "must be in [0, footprint_max]")
	}

	a := c.Animation
	if a.DelayMax < 0 {
		return invalid("animation.delay_max", "must be non-negative")
	}
	if !(a.Duration > 0) {
		return invalid("animation.duration", "must be positive")
	}
	if _, err := growth.ParseEasing(a.Easing); err != nil {
		return &ConfigurationError{Field: "animation.easing", Reason: "is not recognised", Err: err}
	}
	return nil
}
