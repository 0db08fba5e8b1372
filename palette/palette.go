// Package palette derives a six-color scheme from one random base hue.
package palette

import (
	"math"

	"github.com/pthm-cable/garden/mathx"
	"github.com/pthm-cable/garden/rng"
)

// Size is the number of entries in a palette.
const Size = 6

// Slot names a palette entry.
type Slot int

// Palette slots. Stem holds the base hue; the rest are accents.
const (
	Stem Slot = iota
	Petal
	Center
	Bouton
	Root
	Building
)

const (
	hueWrap   = 359 // hues are wrapped mod 359
	hueJitter = 40  // accent jitter span in degrees (±20)
	satMin    = 60
	satSpan   = 40
	lightMin  = 45
	lightSpan = 45
	boutonSat = 100
)

// AccentOffsets are the hue rotations applied to the base hue for slots 1..5.
var AccentOffsets = [Size - 1]float64{90, 144, 180, 216, 270}

// Color is a palette entry.
type Color struct {
	HSL HSL
	Hex string
}

// Palette is an immutable set of six colors.
type Palette [Size]Color

// At returns the color in slot s.
func (p Palette) At(s Slot) Color {
	return p[s]
}

// Hexes returns the six hex strings in slot order.
func (p Palette) Hexes() []string {
	out := make([]string, Size)
	for i, c := range p {
		out[i] = c.Hex
	}
	return out
}

// Generate draws a palette from the stream. Draws happen in a fixed order:
// the base hue, the five accent hues, then saturation and lightness for each
// slot in turn. The Bouton slot has a fixed saturation and skips its
// saturation draw.
func Generate(s rng.Stream) Palette {
	var hues [Size]float64
	hues[0] = math.Mod(mathx.RoundHalfUp(s.Next()*hueWrap), hueWrap)
	for i, off := range AccentOffsets {
		jitter := (s.Next() - 0.5) * hueJitter
		hues[i+1] = math.Mod(mathx.RoundHalfUp(hues[0]+off+jitter), hueWrap)
	}

	var p Palette
	for i, h := range hues {
		sat := float64(boutonSat)
		if Slot(i) != Bouton {
			sat = s.Next()*satSpan + satMin
		}
		light := s.Next()*lightSpan + lightMin
		c := HSL{H: h, S: sat, L: light}
		p[i] = Color{HSL: c, Hex: c.Hex()}
	}
	return p
}
