package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/scene"
	"github.com/pthm-cable/garden/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml or config.toml (empty = use defaults)")
	seed := flag.String("seed", "", "Scene seed (overrides config; empty = keep config seed)")
	outputDir := flag.String("output-dir", "", "Directory for CSV exports and config snapshot")
	frames := flag.Int("frames", 0, "Animation frames to evaluate (0 = use config)")
	fps := flag.Float64("fps", 0, "Frames per second of the animation clock (0 = use config)")
	logEvery := flag.Int("log-every", 60, "Log growth progress every N frames (0 = never)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *seed != "" {
		cfg = cfg.WithSeed(*seed)
	}

	frameCount := cfg.Export.Frames
	if *frames > 0 {
		frameCount = *frames
	}
	frameRate := cfg.Export.FPS
	if *fps > 0 {
		frameRate = *fps
	}
	if frameRate <= 0 {
		frameRate = 60
	}

	perf := telemetry.NewPerfCollector(int(frameRate))

	var gen *scene.Generator
	err := perf.TimeGenerate(func() (err error) {
		gen, err = scene.New(cfg)
		return err
	})
	if err != nil {
		slog.Error("failed to generate scene", "error", err)
		os.Exit(1)
	}
	sc := gen.Scene()
	slog.Info("scene generated",
		"seed", sc.Seed,
		"map_size", cfg.Grid.MapSize,
		"palette", sc.Palette.Hexes(),
		"generate_us", perf.Stats().Generate.Microseconds(),
	)
	telemetry.ComputeSceneStats(sc).LogStats()

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}
	if err := out.WriteScene(sc); err != nil {
		slog.Error("failed to write scene", "error", err)
		os.Exit(1)
	}

	for frame := 0; frame < frameCount; frame++ {
		t := float64(frame) / frameRate

		perf.BeginFrame()
		stop := perf.Measure(telemetry.PhaseUpdate)
		states := gen.Update(t)
		stop()

		stop = perf.Measure(telemetry.PhaseExport)
		err := out.WriteFrame(frame, t, states)
		stop()
		if err != nil {
			slog.Error("failed to write frame", "frame", frame, "error", err)
			os.Exit(1)
		}
		perf.EndFrame()

		if *logEvery > 0 && frame%*logEvery == 0 {
			slog.Info("frame",
				"frame", frame,
				"time", t,
				"growth", telemetry.ComputeFrameStats(states),
				"perf", perf.Stats(),
			)
		}
	}

	if frameCount > 0 {
		last := float64(frameCount-1) / frameRate
		slog.Info("animation finished",
			"frames", frameCount,
			"time", last,
			"growth", telemetry.ComputeFrameStats(gen.Update(last)),
			"perf", perf.Stats(),
		)
	}
	if dir := out.Dir(); dir != "" {
		slog.Info("output written", "dir", dir)
	}
}
