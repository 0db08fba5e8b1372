package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/scene"
)

func TestComputeDistribution(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{4}, Distribution{Mean: 4, Min: 4, P10: 4, P50: 4, P90: 4, Max: 4}},
		{
			"one to ten",
			[]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			Distribution{Mean: 5.5, Std: math.Sqrt(55.0 / 6.0), Min: 1, P10: 1, P50: 5, P90: 9, Max: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistribution(tt.values)
			pairs := []struct {
				field     string
				got, want float64
			}{
				{"mean", got.Mean, tt.want.Mean},
				{"std", got.Std, tt.want.Std},
				{"min", got.Min, tt.want.Min},
				{"p10", got.P10, tt.want.P10},
				{"p50", got.P50, tt.want.P50},
				{"p90", got.P90, tt.want.P90},
				{"max", got.Max, tt.want.Max},
			}
			for _, p := range pairs {
				if math.Abs(p.got-p.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", p.field, p.got, p.want)
				}
			}
		})
	}
}

func TestComputeDistributionDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeDistribution(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestComputeSceneStats(t *testing.T) {
	cfg := config.Default().WithSeed("stats")
	cfg.Grid.MapSize = 10
	sc, err := scene.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	s := ComputeSceneStats(sc)
	if s.Cells != 100 {
		t.Errorf("Cells = %d, want 100", s.Cells)
	}
	if s.Buildings+s.Flowers+s.Empty != s.Cells {
		t.Errorf("category counts %d+%d+%d do not sum to %d", s.Buildings, s.Flowers, s.Empty, s.Cells)
	}
	if s.Flowers != len(sc.Plants) || s.Roots != len(sc.Plants) {
		t.Errorf("Flowers = %d, Roots = %d, want %d", s.Flowers, s.Roots, len(sc.Plants))
	}
	if s.PlantHeight.Min < cfg.Plants.HeightMin || s.PlantHeight.Max >= cfg.Plants.HeightMax {
		t.Errorf("plant heights %+v outside config range", s.PlantHeight)
	}
	if s.GrownAt != s.PlantDelay.Max+cfg.Animation.Duration {
		t.Errorf("GrownAt = %v", s.GrownAt)
	}
}

func TestComputeFrameStats(t *testing.T) {
	states := []growth.AnimationState{
		growth.Evaluate(0, 1, 2, 5, 1),
		growth.Evaluate(2, 1, 2, 5, 1),
		growth.Evaluate(5, 1, 2, 5, 1),
		growth.Evaluate(5, 1, 2, 5, 1),
	}
	fs := ComputeFrameStats(states)
	if fs.Pending != 1 || fs.Growing != 1 || fs.Grown != 2 {
		t.Errorf("counts = %+v", fs)
	}
	if math.Abs(fs.MeanFraction-0.625) > 1e-12 {
		t.Errorf("MeanFraction = %v, want 0.625", fs.MeanFraction)
	}
	if got := ComputeFrameStats(nil); got != (FrameStats{}) {
		t.Errorf("empty frame stats = %+v", got)
	}
}
