// Package curve builds the stem and root growth curves for plants.
//
// A curve is five control points: the base on the ground plane and four points
// at 25/50/75/100% of the target height, each pushed sideways by a bounded
// random amount. The points are joined by a centripetal Catmull-Rom spline.
package curve

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/garden/mathx"
	"github.com/pthm-cable/garden/rng"
)

// NumPoints is the number of control points on every curve.
const NumPoints = 5

// Direction is the vertical growth direction of a curve.
type Direction int

const (
	Up   Direction = 1  // stems
	Down Direction = -1 // roots
)

// heightSteps are the fractions of the target height used for points 1..4.
var heightSteps = [NumPoints - 1]float64{0.25, 0.5, 0.75, 1.0}

// canonicalUp is the orientation of an ornament before it is aligned to a curve.
var canonicalUp = mgl64.Vec3{0, 1, 0}

// GrowthCurve is an immutable set of control points plus the parameters used to build them.
type GrowthCurve struct {
	Points       [NumPoints]mgl64.Vec3
	Radius       float64
	TargetHeight float64
	Direction    Direction
}

// Build creates a growth curve rooted at (baseX, 0, baseZ).
//
// It draws two sign flags, then an x and a z offset for each of the four upper
// points, consuming ten values from s in that order.
func Build(baseX, baseZ, targetHeight, lateralAmplitude, radius float64, s rng.Stream, dir Direction) GrowthCurve {
	signX := rng.Sign(s)
	signZ := rng.Sign(s)

	c := GrowthCurve{
		Radius:       radius,
		TargetHeight: targetHeight,
		Direction:    dir,
	}
	c.Points[0] = mgl64.Vec3{baseX, 0, baseZ}
	for i, step := range heightSteps {
		x := baseX + s.Next()*signX*lateralAmplitude
		z := baseZ + s.Next()*signZ*lateralAmplitude
		c.Points[i+1] = mgl64.Vec3{x, targetHeight * step * float64(dir), z}
	}
	return c
}

// Base returns the first control point.
func (c GrowthCurve) Base() mgl64.Vec3 { return c.Points[0] }

// Tip returns the last control point.
func (c GrowthCurve) Tip() mgl64.Vec3 { return c.Points[NumPoints-1] }

// SampleCount is the number of points renderers should sample along the
// curve: round(targetHeight * 1.5), and never fewer than two.
func (c GrowthCurve) SampleCount() int {
	n := int(mathx.RoundHalfUp(math.Abs(c.TargetHeight) * 1.5))
	if n < 2 {
		n = 2
	}
	return n
}

// Point evaluates the spline at t in [0, 1].
func (c GrowthCurve) Point(t float64) mgl64.Vec3 {
	return catmullRom(c.Points[:], mathx.Clamp(t, 0, 1))
}

// Sample returns n points evenly spaced in the curve parameter, including both ends.
func (c GrowthCurve) Sample(n int) []mgl64.Vec3 {
	if n < 2 {
		n = 2
	}
	out := make([]mgl64.Vec3, n)
	for i := range out {
		out[i] = c.Point(float64(i) / float64(n-1))
	}
	return out
}

// Tangent is the unit direction from the second-to-last to the last sampled
// point. Degenerate curves report the growth direction.
func (c GrowthCurve) Tangent() mgl64.Vec3 {
	pts := c.Sample(c.SampleCount())
	d := pts[len(pts)-1].Sub(pts[len(pts)-2])
	if d.Len() < 1e-9 {
		return canonicalUp.Mul(float64(c.Direction))
	}
	return d.Normalize()
}

// Orientation rotates the canonical up vector onto the terminal tangent.
// Renderers apply it to ornaments such as flower heads.
func (c GrowthCurve) Orientation() mgl64.Quat {
	t := c.Tangent()
	if t.Dot(canonicalUp) > 1-1e-12 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(canonicalUp, t)
}

// catmullRom evaluates an open centripetal Catmull-Rom spline through pts.
// The segment ends are extrapolated by reflecting the neighbouring point.
func catmullRom(pts []mgl64.Vec3, t float64) mgl64.Vec3 {
	l := len(pts)
	p := float64(l-1) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	if seg >= l-1 {
		seg = l - 2
		w = 1
	}

	var p0, p3 mgl64.Vec3
	if seg > 0 {
		p0 = pts[seg-1]
	} else {
		p0 = pts[0].Mul(2).Sub(pts[1])
	}
	p1 := pts[seg]
	p2 := pts[seg+1]
	if seg+2 < l {
		p3 = pts[seg+2]
	} else {
		p3 = pts[l-1].Mul(2).Sub(pts[l-2])
	}

	dt0 := math.Pow(distSq(p0, p1), 0.25)
	dt1 := math.Pow(distSq(p1, p2), 0.25)
	dt2 := math.Pow(distSq(p2, p3), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		out[i] = nonuniformCubic(p0[i], p1[i], p2[i], p3[i], dt0, dt1, dt2, w)
	}
	return out
}

// nonuniformCubic evaluates the Hermite segment between x1 and x2 with
// tangents derived from knot spacings dt0, dt1, dt2.
func nonuniformCubic(x0, x1, x2, x3, dt0, dt1, dt2, t float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*t + c2*t*t + c3*t*t*t
}

func distSq(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
