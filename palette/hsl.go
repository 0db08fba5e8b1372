package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pthm-cable/garden/mathx"
)

// HSL is a color with hue in degrees [0, 360) and saturation/lightness in percent.
type HSL struct {
	H, S, L float64
}

// RGB converts to 8-bit channels using the standard piecewise transform.
func (c HSL) RGB() (r, g, b uint8) {
	s := c.S / 100
	l := c.L / 100
	h := c.H

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var rf, gf, bf float64
	switch {
	case h >= 0 && h < 60:
		rf, gf, bf = chroma, x, 0
	case h >= 60 && h < 120:
		rf, gf, bf = x, chroma, 0
	case h >= 120 && h < 180:
		rf, gf, bf = 0, chroma, x
	case h >= 180 && h < 240:
		rf, gf, bf = 0, x, chroma
	case h >= 240 && h < 300:
		rf, gf, bf = x, 0, chroma
	case h >= 300 && h < 360:
		rf, gf, bf = chroma, 0, x
	}

	return channel(rf + m), channel(gf + m), channel(bf + m)
}

func channel(v float64) uint8 {
	return uint8(mathx.Clamp(mathx.RoundHalfUp(v*255), 0, 255))
}

// RGBA converts to an opaque color.RGBA.
func (c HSL) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the color as "#rrggbb".
func (c HSL) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
