// Package scene composes the grid, palette, plant curves and growth timeline
// into a scene description a renderer can draw.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/pthm-cable/garden/curve"
	"github.com/pthm-cable/garden/grid"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/palette"
)

// Material is the closed set of pre-authored visual programs a renderer picks from.
type Material uint8

const (
	MaterialStem     Material = iota // swaying stem, see SwayOffset
	MaterialHead                     // flower head
	MaterialRoot                     // static root
	MaterialBuilding                 // building block
)

// String returns the material name.
func (m Material) String() string {
	switch m {
	case MaterialStem:
		return "stem"
	case MaterialHead:
		return "head"
	case MaterialRoot:
		return "root"
	case MaterialBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Sways reports whether the material displaces vertices over time.
func (m Material) Sways() bool { return m == MaterialStem }

// Look binds a material to a palette slot.
type Look struct {
	Material Material
	Color    palette.Slot
}

// PlantInstance is everything a renderer needs to draw one flower.
type PlantInstance struct {
	ID          uuid.UUID
	Cell        grid.Cell
	Stem        curve.GrowthCurve
	Root        *curve.GrowthCurve // nil when roots are disabled
	FlowerType  int                // 1..3
	Delay       float64
	TargetScale float64 // fully grown flower head scale

	// HeadOrientation rotates +Y onto the stem's terminal tangent.
	HeadOrientation mgl64.Quat

	// Leaves are arc-length spaced attachment points along the stem.
	Leaves []mgl64.Vec3

	StemLook Look
	HeadLook Look
	RootLook Look
}

// BuildingInstance is a box standing on a building cell.
type BuildingInstance struct {
	Cell       grid.Cell
	Position   mgl64.Vec3
	Height     float64
	FootprintX float64
	FootprintZ float64
	Look       Look
}

// Scene is an immutable scene description. Renderers may read it but must not
// modify it.
type Scene struct {
	Seed      uint32
	CellSize  float64
	Grid      *grid.Grid
	Palette   palette.Palette
	Plants    []PlantInstance
	Buildings []BuildingInstance

	Duration float64
	Easing   growth.Easing
}

// Schedule returns the growth timeline of plant i.
func (s *Scene) Schedule(i int) growth.Schedule {
	p := &s.Plants[i]
	return growth.Schedule{
		Delay:        p.Delay,
		Duration:     s.Duration,
		TargetHeight: p.Stem.TargetHeight,
		TargetScale:  p.TargetScale,
		Easing:       s.Easing,
	}
}

// Color returns the hex color for look l.
func (s *Scene) Color(l Look) string {
	return s.Palette.At(l.Color).Hex
}
