package telemetry

import (
	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/palette"
	"github.com/pthm-cable/garden/scene"
)

// CellRecord is one row of cells.csv.
type CellRecord struct {
	X     int    `csv:"x"`
	Z     int    `csv:"z"`
	State string `csv:"state"`
}

// PaletteRecord is one row of palette.csv.
type PaletteRecord struct {
	Slot       int     `csv:"slot"`
	Hue        float64 `csv:"hue"`
	Saturation float64 `csv:"saturation"`
	Lightness  float64 `csv:"lightness"`
	Hex        string  `csv:"hex"`
}

// PlantRecord is one row of plants.csv.
type PlantRecord struct {
	ID           string  `csv:"id"`
	X            int     `csv:"x"`
	Z            int     `csv:"z"`
	FlowerType   int     `csv:"flower_type"`
	Radius       float64 `csv:"radius"`
	TargetHeight float64 `csv:"target_height"`
	TargetScale  float64 `csv:"target_scale"`
	Delay        float64 `csv:"delay"`
	TipX         float64 `csv:"tip_x"`
	TipY         float64 `csv:"tip_y"`
	TipZ         float64 `csv:"tip_z"`
	RootDepth    float64 `csv:"root_depth"` // 0 when the plant has no root
	StemColor    string  `csv:"stem_color"`
	HeadColor    string  `csv:"head_color"`
}

// BuildingRecord is one row of buildings.csv.
type BuildingRecord struct {
	X          int     `csv:"x"`
	Z          int     `csv:"z"`
	Height     float64 `csv:"height"`
	FootprintX float64 `csv:"footprint_x"`
	FootprintZ float64 `csv:"footprint_z"`
	Color      string  `csv:"color"`
}

// FrameRecord is one row of frames.csv: one plant at one frame.
type FrameRecord struct {
	Frame    int     `csv:"frame"`
	Time     float64 `csv:"time"`
	Plant    int     `csv:"plant"`
	State    string  `csv:"state"`
	Fraction float64 `csv:"fraction"`
	Height   float64 `csv:"height"`
	Scale    float64 `csv:"scale"`
}

// CellRecords flattens the scene grid.
func CellRecords(sc *scene.Scene) []CellRecord {
	cells := sc.Grid.Cells()
	out := make([]CellRecord, len(cells))
	for i, c := range cells {
		out[i] = CellRecord{X: c.X, Z: c.Z, State: c.State.String()}
	}
	return out
}

// PaletteRecords flattens the scene palette.
func PaletteRecords(p palette.Palette) []PaletteRecord {
	out := make([]PaletteRecord, len(p))
	for i, c := range p {
		out[i] = PaletteRecord{
			Slot:       i,
			Hue:        c.HSL.H,
			Saturation: c.HSL.S,
			Lightness:  c.HSL.L,
			Hex:        c.Hex,
		}
	}
	return out
}

// PlantRecords flattens the plant instances.
func PlantRecords(sc *scene.Scene) []PlantRecord {
	out := make([]PlantRecord, len(sc.Plants))
	for i, p := range sc.Plants {
		tip := p.Stem.Tip()
		r := PlantRecord{
			ID:           p.ID.String(),
			X:            p.Cell.X,
			Z:            p.Cell.Z,
			FlowerType:   p.FlowerType,
			Radius:       p.Stem.Radius,
			TargetHeight: p.Stem.TargetHeight,
			TargetScale:  p.TargetScale,
			Delay:        p.Delay,
			TipX:         tip.X(),
			TipY:         tip.Y(),
			TipZ:         tip.Z(),
			StemColor:    sc.Color(p.StemLook),
			HeadColor:    sc.Color(p.HeadLook),
		}
		if p.Root != nil {
			r.RootDepth = p.Root.TargetHeight
		}
		out[i] = r
	}
	return out
}

// BuildingRecords flattens the building instances.
func BuildingRecords(sc *scene.Scene) []BuildingRecord {
	out := make([]BuildingRecord, len(sc.Buildings))
	for i, b := range sc.Buildings {
		out[i] = BuildingRecord{
			X:          b.Cell.X,
			Z:          b.Cell.Z,
			Height:     b.Height,
			FootprintX: b.FootprintX,
			FootprintZ: b.FootprintZ,
			Color:      sc.Color(b.Look),
		}
	}
	return out
}

// FrameRecords flattens the animation states of one frame.
func FrameRecords(frame int, t float64, states []growth.AnimationState) []FrameRecord {
	out := make([]FrameRecord, len(states))
	for i, st := range states {
		out[i] = FrameRecord{
			Frame:    frame,
			Time:     t,
			Plant:    i,
			State:    st.State.String(),
			Fraction: st.Fraction,
			Height:   st.Height,
			Scale:    st.Scale,
		}
	}
	return out
}
