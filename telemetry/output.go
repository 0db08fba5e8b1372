package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/garden/config"
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/scene"
)

// OutputManager writes a generated scene and its animation frames as CSV.
type OutputManager struct {
	dir       string
	frameFile *os.File

	// Track if headers have been written
	frameHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &OutputManager{dir: dir, frameFile: f}, nil
}

// WriteConfig saves the configuration the scene was generated from as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteScene writes cells.csv, palette.csv, plants.csv and buildings.csv.
func (om *OutputManager) WriteScene(sc *scene.Scene) error {
	if om == nil {
		return nil
	}

	files := []struct {
		name    string
		records any
	}{
		{"cells.csv", CellRecords(sc)},
		{"palette.csv", PaletteRecords(sc.Palette)},
		{"plants.csv", PlantRecords(sc)},
		{"buildings.csv", BuildingRecords(sc)},
	}
	for _, f := range files {
		if err := om.writeTable(f.name, f.records); err != nil {
			return err
		}
	}
	return nil
}

func (om *OutputManager) writeTable(name string, records any) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.MarshalFile(records, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

// WriteFrame appends the animation states of one frame to frames.csv.
func (om *OutputManager) WriteFrame(frame int, t float64, states []growth.AnimationState) error {
	if om == nil || len(states) == 0 {
		return nil
	}

	records := FrameRecords(frame, t, states)

	if !om.frameHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		om.frameHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes frames.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.frameFile == nil {
		return nil
	}
	return om.frameFile.Close()
}
