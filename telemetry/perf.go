package telemetry

import (
	"log/slog"
	"time"
)

// Phase is a timed section of one animation frame.
type Phase uint8

const (
	PhaseUpdate Phase = iota // growth evaluation
	PhaseExport              // CSV frame rows
	numPhases
)

// String returns the phase name used in log attributes.
func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseExport:
		return "export"
	default:
		return "phase"
	}
}

type frameTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times scene generation once and animation frames over a
// rolling window.
type PerfCollector struct {
	now func() time.Time

	generate time.Duration
	frames   int

	window []frameTiming
	next   int
	filled int

	current    frameTiming
	frameStart time.Time
}

// NewPerfCollector creates a collector averaging the last windowSize frames.
// Non-positive sizes default to 60.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{now: time.Now, window: make([]frameTiming, windowSize)}
}

// TimeGenerate runs fn and records how long it took.
func (p *PerfCollector) TimeGenerate(fn func() error) error {
	start := p.now()
	err := fn()
	p.generate = p.now().Sub(start)
	return err
}

// BeginFrame starts timing a frame.
func (p *PerfCollector) BeginFrame() {
	p.current = frameTiming{}
	p.frameStart = p.now()
}

// Measure starts timing phase and returns the function that stops it.
// Repeated measurements of a phase within one frame add up.
func (p *PerfCollector) Measure(phase Phase) (stop func()) {
	start := p.now()
	return func() {
		p.current.phases[phase] += p.now().Sub(start)
	}
}

// EndFrame records the current frame into the window.
func (p *PerfCollector) EndFrame() {
	p.current.total = p.now().Sub(p.frameStart)
	p.window[p.next] = p.current
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
	p.frames++
}

// PerfStats summarises a headless run.
type PerfStats struct {
	Generate time.Duration // one-off scene generation
	Frames   int           // frames recorded since start

	// Window averages over the most recent frames.
	AvgFrame time.Duration
	MaxFrame time.Duration
	PhaseAvg [numPhases]time.Duration

	// UpdateShare is the fraction of frame time spent evaluating growth.
	UpdateShare float64
}

// Stats aggregates the collected timings.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Generate: p.generate, Frames: p.frames}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var phases [numPhases]time.Duration
	for _, f := range p.window[:p.filled] {
		total += f.total
		s.MaxFrame = max(s.MaxFrame, f.total)
		for i, d := range f.phases {
			phases[i] += d
		}
	}
	n := time.Duration(p.filled)
	s.AvgFrame = total / n
	for i := range phases {
		s.PhaseAvg[i] = phases[i] / n
	}
	if total > 0 {
		s.UpdateShare = float64(phases[PhaseUpdate]) / float64(total)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("generate_us", s.Generate.Microseconds()),
		slog.Int("frames", s.Frames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Float64("update_share", s.UpdateShare),
	}
	for i, d := range s.PhaseAvg {
		attrs = append(attrs, slog.Int64(Phase(i).String()+"_us", d.Microseconds()))
	}
	return slog.GroupValue(attrs...)
}
