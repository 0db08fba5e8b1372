package curve

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/interp"
)

// arcSamples is the resolution used to measure curve length.
const arcSamples = 64

// Length approximates the arc length of the curve.
func (c GrowthCurve) Length() float64 {
	_, lengths := c.arcTable()
	return lengths[len(lengths)-1]
}

// arcTable returns curve parameters and the cumulative length at each.
func (c GrowthCurve) arcTable() (ts, lengths []float64) {
	ts = make([]float64, arcSamples+1)
	lengths = make([]float64, arcSamples+1)
	prev := c.Point(0)
	for i := 1; i <= arcSamples; i++ {
		ts[i] = float64(i) / arcSamples
		p := c.Point(ts[i])
		lengths[i] = lengths[i-1] + p.Sub(prev).Len()
		prev = p
	}
	return ts, lengths
}

// Attachments returns n points spaced evenly by arc length along the curve,
// from base to tip. Leaves and buds are placed on these. Curves with no
// measurable length fall back to even spacing in the curve parameter.
func (c GrowthCurve) Attachments(n int) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []mgl64.Vec3{c.Point(0)}
	}

	ts, lengths := c.arcTable()
	total := lengths[len(lengths)-1]

	var pl interp.PiecewiseLinear
	if total <= 0 || pl.Fit(lengths, ts) != nil {
		return c.Sample(n)
	}

	out := make([]mgl64.Vec3, n)
	for i := range out {
		d := total * float64(i) / float64(n-1)
		out[i] = c.Point(pl.Predict(d))
	}
	return out
}
