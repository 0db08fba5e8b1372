package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/curve"
	"github.com/pthm-cable/garden/grid"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/palette"
	"github.com/pthm-cable/garden/rng"
)

// plantNamespace scopes the name-based UUIDs given to plant instances.
var plantNamespace = uuid.MustParse("6f1c8d2e-4b7a-5e3f-9a10-2c4d6e8f0a1b")

// Generator owns a scene and advances its growth animation.
// It is not safe for concurrent use.
type Generator struct {
	cfg    *config.Config
	scene  *Scene
	world  *ecs.World
	growth *GrowthSystem
	states []growth.AnimationState
}

// New validates cfg and generates the initial scene.
func New(cfg *config.Config) (*Generator, error) {
	g := &Generator{}
	if err := g.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Reconfigure discards the current scene and generates a new one from cfg.
// On error the previous scene is left untouched.
func (g *Generator) Reconfigure(cfg *config.Config) error {
	sc, err := Generate(cfg)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	sys := NewGrowthSystem(world)
	for i := range sc.Plants {
		sys.Spawn(i, sc.Schedule(i))
	}

	g.cfg = cfg
	g.scene = sc
	g.world = world
	g.growth = sys
	g.states = make([]growth.AnimationState, len(sc.Plants))
	return nil
}

// Scene returns the current scene description.
func (g *Generator) Scene() *Scene { return g.scene }

// Config returns the configuration the current scene was built from.
func (g *Generator) Config() *config.Config { return g.cfg }

// Update evaluates every plant at time t. The returned slice is indexed like
// Scene().Plants and is overwritten by the next call.
func (g *Generator) Update(t float64) []growth.AnimationState {
	g.growth.Update(t, g.states)
	return g.states
}

// Uniforms returns the shared material inputs for time t.
func (g *Generator) Uniforms(t float64) Uniforms {
	return Uniforms{Time: t, SwayAmplitude: g.cfg.Animation.SwayAmplitude}
}

// Generate builds a scene from cfg. It is the only place randomness is
// consumed; identical configs always produce identical scenes.
func Generate(cfg *config.Config) (*Scene, error) {
	// Validate also refreshes cfg.Derived.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Derived.Seed
	src := rng.New(seed)

	sampler, err := rng.NewSampler(weightTable(cfg.Grid.Weights), src)
	if err != nil {
		return nil, &config.ConfigurationError{Field: "grid.weights", Reason: "cannot be sampled", Err: err}
	}
	grd, err := grid.Build(cfg.Grid.MapSize, sampler)
	if err != nil {
		return nil, &config.ConfigurationError{Field: "grid.map_size", Reason: "is invalid", Err: err}
	}
	pal := palette.Generate(src)

	sc := &Scene{
		Seed:     seed,
		CellSize: cfg.Grid.CellSize,
		Grid:     grd,
		Palette:  pal,
		Duration: cfg.Animation.Duration,
		Easing:   cfg.Derived.Easing,
	}

	// One pass in grid order; each cell consumes its draws before the next.
	for _, cell := range grd.Cells() {
		switch cell.State {
		case grid.Flower:
			sc.Plants = append(sc.Plants, newPlant(cfg, seed, cell, src))
		case grid.Building:
			sc.Buildings = append(sc.Buildings, newBuilding(cfg, cell, src))
		}
	}

	slog.Debug("scene generated",
		"seed", seed,
		"cells", grd.Len(),
		"plants", len(sc.Plants),
		"buildings", len(sc.Buildings),
	)
	return sc, nil
}

func weightTable(w config.WeightsConfig) rng.WeightTable[grid.Category] {
	return rng.WeightTable[grid.Category]{
		{Label: grid.Building, Weight: w.Building},
		{Label: grid.Flower, Weight: w.Flower},
		{Label: grid.Empty, Weight: w.Empty},
	}
}

// newPlant draws radius, flower type, height, lateral amplitude and delay, in
// that order, then builds the stem and the optional root.
func newPlant(cfg *config.Config, seed uint32, cell grid.Cell, src rng.Stream) PlantInstance {
	pc := cfg.Plants
	radius := rng.Range(src, pc.RadiusMin, pc.RadiusMax)
	flowerType := 1 + rng.Intn(src, 3)
	height := rng.Range(src, pc.HeightMin, pc.HeightMax)
	lateral := src.Next() * pc.LateralAmplitude
	delay := src.Next() * cfg.Animation.DelayMax

	x := float64(cell.X) * cfg.Grid.CellSize
	z := float64(cell.Z) * cfg.Grid.CellSize
	stem := curve.Build(x, z, height, lateral, radius, src, curve.Up)

	p := PlantInstance{
		ID:              plantID(seed, cell),
		Cell:            cell,
		Stem:            stem,
		FlowerType:      flowerType,
		Delay:           delay,
		TargetScale:     radius * pc.HeadScale,
		HeadOrientation: stem.Orientation(),
		Leaves:          stem.Attachments(pc.Attachments),
		StemLook:        Look{Material: MaterialStem, Color: palette.Stem},
		HeadLook:        Look{Material: MaterialHead, Color: palette.Slot(flowerType)},
		RootLook:        Look{Material: MaterialRoot, Color: palette.Root},
	}
	if pc.Roots {
		root := curve.Build(x, z, height*pc.RootDepth, lateral, radius, src, curve.Down)
		p.Root = &root
	}
	return p
}

// newBuilding draws height and the two footprint scales.
func newBuilding(cfg *config.Config, cell grid.Cell, src rng.Stream) BuildingInstance {
	bc := cfg.Buildings
	height := rng.Range(src, bc.HeightMin, bc.HeightMax)
	fx := rng.Range(src, bc.FootprintMin, bc.FootprintMax)
	fz := rng.Range(src, bc.FootprintMin, bc.FootprintMax)

	cs := cfg.Grid.CellSize
	return BuildingInstance{
		Cell:       cell,
		Position:   mgl64.Vec3{float64(cell.X) * cs, height / 2, float64(cell.Z) * cs},
		Height:     height,
		FootprintX: fx * cs,
		FootprintZ: fz * cs,
		Look:       Look{Material: MaterialBuilding, Color: palette.Building},
	}
}

// plantID is stable for a given seed and cell.
func plantID(seed uint32, cell grid.Cell) uuid.UUID {
	return uuid.NewSHA1(plantNamespace, fmt.Appendf(nil, "%d/%d/%d", seed, cell.X, cell.Z))
}
