package scene

import "math"

// Uniforms are the per-frame inputs shared by every material program.
type Uniforms struct {
	Time          float64
	SwayAmplitude float64
}

// SwayOffset is the sideways displacement applied by the stem program to a
// vertex at height y.
func SwayOffset(y, t, amplitude float64) float64 {
	return math.Sin(y*2+t) * amplitude
}

// Offset evaluates SwayOffset with these uniforms.
func (u Uniforms) Offset(y float64) float64 {
	return SwayOffset(y, u.Time, u.SwayAmplitude)
}
