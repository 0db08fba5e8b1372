package scene

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/grid"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/palette"
	"github.com/pthm-cable/garden/rng"
)

func testConfig(seed string) *config.Config {
	cfg := config.Default().WithSeed(seed)
	cfg.Grid.MapSize = 8
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []string{"", "1", "42", "meadow", "ünïcode"} {
		a, err := Generate(testConfig(seed))
		if err != nil {
			t.Fatalf("Generate(%q): %v", seed, err)
		}
		b, err := Generate(testConfig(seed))
		if err != nil {
			t.Fatalf("Generate(%q): %v", seed, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("seed %q produced different scenes", seed)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(testConfig("1"))
	b, _ := Generate(testConfig("2"))
	if a.Palette == b.Palette && reflect.DeepEqual(a.Grid, b.Grid) {
		t.Error("different seeds produced identical grid and palette")
	}
}

func TestGenerateAllBuildings(t *testing.T) {
	cfg := testConfig("a")
	cfg.Grid.MapSize = 2
	cfg.Grid.Weights = config.WeightsConfig{Building: 1}

	sc, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, c := range sc.Grid.Cells() {
		if c.State != grid.Building {
			t.Errorf("cell (%d,%d) = %v, want building", c.X, c.Z, c.State)
		}
	}
	if len(sc.Buildings) != 4 || len(sc.Plants) != 0 {
		t.Errorf("got %d buildings and %d plants, want 4 and 0", len(sc.Buildings), len(sc.Plants))
	}
	for _, b := range sc.Buildings {
		if b.Height < cfg.Buildings.HeightMin || b.Height >= cfg.Buildings.HeightMax {
			t.Errorf("building height %v out of range", b.Height)
		}
		if b.Position.Y() != b.Height/2 {
			t.Errorf("building not resting on the ground: %v", b.Position)
		}
	}
}

func TestGenerateOnePlantPerFlowerCell(t *testing.T) {
	sc, err := Generate(testConfig("flowers"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, want := len(sc.Plants), sc.Grid.Count(grid.Flower); got != want {
		t.Fatalf("plants = %d, want %d", got, want)
	}
	if got, want := len(sc.Buildings), sc.Grid.Count(grid.Building); got != want {
		t.Fatalf("buildings = %d, want %d", got, want)
	}

	cfg := testConfig("flowers")
	ids := make(map[string]bool)
	for i, p := range sc.Plants {
		if p.Cell.State != grid.Flower {
			t.Errorf("plant %d sits on a %v cell", i, p.Cell.State)
		}
		if p.FlowerType < 1 || p.FlowerType > 3 {
			t.Errorf("plant %d flower type %d", i, p.FlowerType)
		}
		if p.Delay < 0 || p.Delay >= cfg.Animation.DelayMax {
			t.Errorf("plant %d delay %v out of range", i, p.Delay)
		}
		h := p.Stem.TargetHeight
		if h < cfg.Plants.HeightMin || h >= cfg.Plants.HeightMax {
			t.Errorf("plant %d height %v out of range", i, h)
		}
		if p.Root == nil {
			t.Fatalf("plant %d missing root", i)
		}
		if p.Root.Tip().Y() != -h*cfg.Plants.RootDepth {
			t.Errorf("plant %d root tip %v, want depth %v", i, p.Root.Tip(), h*cfg.Plants.RootDepth)
		}
		if len(p.Leaves) != cfg.Plants.Attachments {
			t.Errorf("plant %d has %d leaves, want %d", i, len(p.Leaves), cfg.Plants.Attachments)
		}
		if p.HeadLook.Color != palette.Slot(p.FlowerType) {
			t.Errorf("plant %d head color slot %d, want %d", i, p.HeadLook.Color, p.FlowerType)
		}
		if math.Abs(p.TargetScale-p.Stem.Radius*cfg.Plants.HeadScale) > 1e-12 {
			t.Errorf("plant %d target scale %v", i, p.TargetScale)
		}
		if ids[p.ID.String()] {
			t.Errorf("duplicate plant id %s", p.ID)
		}
		ids[p.ID.String()] = true
	}
}

func TestGenerateWithoutRoots(t *testing.T) {
	cfg := testConfig("bare")
	cfg.Plants.Roots = false
	sc, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, p := range sc.Plants {
		if p.Root != nil {
			t.Errorf("plant %d has a root", i)
		}
	}
}

func TestGenerateStraightStems(t *testing.T) {
	cfg := testConfig("straight")
	cfg.Plants.LateralAmplitude = 0
	sc, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, p := range sc.Plants {
		base := p.Stem.Base()
		for _, pt := range p.Stem.Points {
			if pt.X() != base.X() || pt.Z() != base.Z() {
				t.Errorf("plant %d control point %v off the vertical through %v", i, pt, base)
			}
		}
	}
}

func TestGeneratePaletteMatchesStream(t *testing.T) {
	// The palette is drawn right after the grid, so replaying the stream with
	// the same number of grid draws must reproduce it.
	cfg := testConfig("palette")
	sc, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	src := rng.New(rng.ParseSeed("palette"))
	for i := 0; i < sc.Grid.Len(); i++ {
		src.Next()
	}
	if got := palette.Generate(src); got != sc.Palette {
		t.Errorf("palette = %v, want %v", sc.Palette, got)
	}
}

func TestGenerateConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *config.Config)
	}{
		{"zero map size", func(c *config.Config) { c.Grid.MapSize = 0 }},
		{"all weights zero", func(c *config.Config) { c.Grid.Weights = config.WeightsConfig{} }},
		{"weights below resolution", func(c *config.Config) {
			c.Grid.Weights = config.WeightsConfig{Building: 0.005, Flower: 0.005}
		}},
		{"zero duration", func(c *config.Config) { c.Animation.Duration = 0 }},
		{"nan plant height", func(c *config.Config) { c.Plants.HeightMin = math.NaN() }},
		{"nan building height", func(c *config.Config) { c.Buildings.HeightMax = math.NaN() }},
		{"infinite radius", func(c *config.Config) { c.Plants.RadiusMax = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("err")
			tt.edit(cfg)
			_, err := Generate(cfg)
			var cerr *config.ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("Generate() = %v, want ConfigurationError", err)
			}
		})
	}

	cfg := testConfig("err")
	cfg.Grid.Weights = config.WeightsConfig{Flower: 0.005}
	_, err := Generate(cfg)
	if !errors.Is(err, rng.ErrNoPositiveWeights) {
		t.Errorf("Generate() = %v, want wrapped ErrNoPositiveWeights", err)
	}
}

func TestGenerateUsesEditedSeedAndEasing(t *testing.T) {
	cfg := testConfig("first")
	cfg.Seed = "second"
	cfg.Animation.Easing = "out_quart"
	sc, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if sc.Seed != rng.ParseSeed("second") {
		t.Errorf("Seed = %d, want %d", sc.Seed, rng.ParseSeed("second"))
	}
	if sc.Easing != growth.OutQuart {
		t.Errorf("Easing = %v, want OutQuart", sc.Easing)
	}
	want, _ := Generate(testConfig("second"))
	if !reflect.DeepEqual(sc.Grid, want.Grid) || sc.Palette != want.Palette {
		t.Error("edited seed did not drive generation")
	}
}

func TestUpdateMatchesSchedules(t *testing.T) {
	g, err := New(testConfig("update"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sc := g.Scene()
	if len(sc.Plants) == 0 {
		t.Fatal("expected some plants")
	}

	for _, tm := range []float64{0, 0.5, 1, 2.5, 4, 7.9, 100} {
		states := g.Update(tm)
		if len(states) != len(sc.Plants) {
			t.Fatalf("Update returned %d states, want %d", len(states), len(sc.Plants))
		}
		for i, st := range states {
			want := sc.Schedule(i).Evaluate(tm)
			if st != want {
				t.Errorf("t=%v plant %d state %+v, want %+v", tm, i, st, want)
			}
		}
	}

	final := g.Update(1e6)
	for i, st := range final {
		if st.State != growth.Grown || st.Fraction != 1 {
			t.Errorf("plant %d not grown at the end: %+v", i, st)
		}
		if st.Height != sc.Plants[i].Stem.TargetHeight {
			t.Errorf("plant %d height %v, want %v", i, st.Height, sc.Plants[i].Stem.TargetHeight)
		}
	}
}

func TestUpdateReusesStates(t *testing.T) {
	g, err := New(testConfig("reuse"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := g.Update(1)
	b := g.Update(2)
	if len(a) > 0 && &a[0] != &b[0] {
		t.Error("Update allocated a new state slice")
	}
	plants := len(g.Scene().Plants)
	g.Update(3)
	if len(g.Scene().Plants) != plants {
		t.Error("Update changed the plant list")
	}
}

func TestUpdateDoesNotConsumeRandomness(t *testing.T) {
	g, err := New(testConfig("frames"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before, _ := Generate(testConfig("frames"))
	for i := 0; i < 120; i++ {
		g.Update(float64(i) / 60)
	}
	if !reflect.DeepEqual(g.Scene(), before) {
		t.Error("scene changed while animating")
	}
}

func TestReconfigure(t *testing.T) {
	g, err := New(testConfig("one"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := g.Scene()

	next := testConfig("two")
	next.Grid.MapSize = 5
	if err := g.Reconfigure(next); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if g.Scene() == first {
		t.Error("Reconfigure kept the old scene")
	}
	if g.Scene().Grid.Len() != 25 {
		t.Errorf("grid has %d cells, want 25", g.Scene().Grid.Len())
	}
	if len(g.Update(1)) != len(g.Scene().Plants) {
		t.Error("state slice not resized after Reconfigure")
	}

	rebuilt, _ := Generate(next)
	if !reflect.DeepEqual(g.Scene(), rebuilt) {
		t.Error("Reconfigure differs from a fresh Generate")
	}
}

func TestReconfigureFailureKeepsScene(t *testing.T) {
	g, err := New(testConfig("keep"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := g.Scene()
	cfgBefore := g.Config()

	bad := testConfig("keep")
	bad.Grid.MapSize = -1
	if err := g.Reconfigure(bad); err == nil {
		t.Fatal("Reconfigure accepted an invalid config")
	}
	if g.Scene() != before || g.Config() != cfgBefore {
		t.Error("failed Reconfigure replaced the scene")
	}
	if len(g.Update(1)) != len(before.Plants) {
		t.Error("state slice changed after failed Reconfigure")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	cfg := testConfig("bad")
	cfg.Animation.Duration = -1
	if _, err := New(cfg); err == nil {
		t.Error("New accepted an invalid config")
	}
}

func TestUniformsAndSway(t *testing.T) {
	g, err := New(testConfig("sway"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	u := g.Uniforms(1.25)
	if u.Time != 1.25 || u.SwayAmplitude != g.Config().Animation.SwayAmplitude {
		t.Errorf("Uniforms = %+v", u)
	}
	if got, want := u.Offset(0.5), math.Sin(1+1.25)*u.SwayAmplitude; got != want {
		t.Errorf("Offset = %v, want %v", got, want)
	}
	for i := 0; i < 100; i++ {
		if v := SwayOffset(float64(i)*0.1, float64(i), 0.5); math.Abs(v) > 0.5 {
			t.Fatalf("sway %v exceeds amplitude", v)
		}
	}
	if !MaterialStem.Sways() || MaterialHead.Sways() {
		t.Error("only stems should sway")
	}
}

func TestSceneColor(t *testing.T) {
	sc, err := Generate(testConfig("color"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	look := Look{Material: MaterialBuilding, Color: palette.Building}
	if sc.Color(look) != sc.Palette[palette.Building].Hex {
		t.Errorf("Color(%v) = %s", look, sc.Color(look))
	}
}
