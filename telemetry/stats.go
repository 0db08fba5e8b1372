package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/garden/grid"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/scene"
)

// Distribution summarises a set of samples.
type Distribution struct {
	Mean float64
	Std  float64
	Min  float64
	P10  float64
	P50  float64
	P90  float64
	Max  float64
}

// ComputeDistribution returns mean, std and empirical percentiles of values.
// Returns the zero value if values is empty.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Min: sorted[0],
		Max: sorted[n-1],
		P10: stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50: stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90: stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	} else {
		d.Mean = sorted[0]
	}
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (d Distribution) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean", d.Mean),
		slog.Float64("std", d.Std),
		slog.Float64("min", d.Min),
		slog.Float64("p10", d.P10),
		slog.Float64("p50", d.P50),
		slog.Float64("p90", d.P90),
		slog.Float64("max", d.Max),
	)
}

// SceneStats holds aggregate statistics of a generated scene.
type SceneStats struct {
	Cells     int
	Buildings int
	Flowers   int
	Empty     int
	Roots     int

	PlantHeight    Distribution
	PlantDelay     Distribution
	BuildingHeight Distribution

	// GrownAt is the time at which every plant has finished growing.
	GrownAt float64
}

// ComputeSceneStats aggregates a scene.
func ComputeSceneStats(sc *scene.Scene) SceneStats {
	s := SceneStats{
		Cells:     sc.Grid.Len(),
		Buildings: sc.Grid.Count(grid.Building),
		Flowers:   sc.Grid.Count(grid.Flower),
		Empty:     sc.Grid.Count(grid.Empty),
	}

	heights := make([]float64, len(sc.Plants))
	delays := make([]float64, len(sc.Plants))
	for i, p := range sc.Plants {
		heights[i] = p.Stem.TargetHeight
		delays[i] = p.Delay
		if p.Root != nil {
			s.Roots++
		}
	}
	s.PlantHeight = ComputeDistribution(heights)
	s.PlantDelay = ComputeDistribution(delays)
	if len(sc.Plants) > 0 {
		s.GrownAt = s.PlantDelay.Max + sc.Duration
	}

	bh := make([]float64, len(sc.Buildings))
	for i, b := range sc.Buildings {
		bh[i] = b.Height
	}
	s.BuildingHeight = ComputeDistribution(bh)
	return s
}

// LogStats logs the scene statistics.
func (s SceneStats) LogStats() {
	slog.Info("scene",
		"cells", s.Cells,
		"buildings", s.Buildings,
		"flowers", s.Flowers,
		"empty", s.Empty,
		"roots", s.Roots,
		"plant_height", s.PlantHeight,
		"plant_delay", s.PlantDelay,
		"building_height", s.BuildingHeight,
		"grown_at", s.GrownAt,
	)
}

// FrameStats counts plants per growth state in one frame.
type FrameStats struct {
	Pending      int
	Growing      int
	Grown        int
	MeanFraction float64
}

// ComputeFrameStats aggregates the states returned by one Update call.
func ComputeFrameStats(states []growth.AnimationState) FrameStats {
	var fs FrameStats
	if len(states) == 0 {
		return fs
	}
	fractions := make([]float64, len(states))
	for i, st := range states {
		switch st.State {
		case growth.Pending:
			fs.Pending++
		case growth.Growing:
			fs.Growing++
		case growth.Grown:
			fs.Grown++
		}
		fractions[i] = st.Fraction
	}
	fs.MeanFraction = stat.Mean(fractions, nil)
	return fs
}

// LogValue implements slog.LogValuer for structured logging.
func (fs FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pending", fs.Pending),
		slog.Int("growing", fs.Growing),
		slog.Int("grown", fs.Grown),
		slog.Float64("mean_fraction", fs.MeanFraction),
	)
}
