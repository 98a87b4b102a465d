package shape

import (
	"math"

	"github.com/aclements/chartcore/path"
)

// ArcConfig parameterizes an annular wedge. Angles are
// radians measured clockwise from the 12-o'clock position, matching
// the convention used by PieLayout.
type ArcConfig struct {
	InnerRadius float64
	OuterRadius float64
	StartAngle float64
	EndAngle float64
	PadAngle float64
	CornerRadius float64
	CenterX float64
	CenterY float64
}

func polar(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

// Arc emits the wedge path: two circular arcs joined by two radial
// segments. When CornerRadius>0 the corners are not rounded: the
// capped corner radius only shortens the sweep at both ends (see
// filletedArc), and the wedge keeps straight radial edges.
func Arc(c ArcConfig) path.Path {
	start, end := c.StartAngle+c.PadAngle/2, c.EndAngle-c.PadAngle/2
	if end < start {
		mid := (c.StartAngle + c.EndAngle) / 2
		start, end = mid, mid
	}
	if c.CornerRadius > 0 {
		return filletedArc(c, start, end)
	}
	return plainArc(c, start, end)
}

func plainArc(c ArcConfig, start, end float64) path.Path {
	var p path.Path
	ox, oy := polar(c.CenterX, c.CenterY, c.OuterRadius, start)
	p = p.MoveTo(ox, oy)
	p = arcSweep(p, c.CenterX, c.CenterY, c.OuterRadius, start, end)
	if c.InnerRadius > 0 {
		ix, iy := polar(c.CenterX, c.CenterY, c.InnerRadius, end)
		p = p.LineTo(ix, iy)
		p = arcSweep(p, c.CenterX, c.CenterY, c.InnerRadius, end, start)
	} else {
		p = p.LineTo(c.CenterX, c.CenterY)
	}
	p = p.CloseOp()
	return p
}

// arcSweep approximates a circular arc from a0 to a1 with cubic
// Bezier segments in chunks of at most 90 degrees.
func arcSweep(p path.Path, cx, cy, r, a0, a1 float64) path.Path {
	if r == 0 {
		return p
	}
	const maxStep = math.Pi / 2
	span := a1 - a0
	steps := int(math.Ceil(math.Abs(span) / maxStep))
	if steps == 0 {
		return p
	}
	step := span / float64(steps)
	for i := 0; i < steps; i++ {
		a, b := a0+float64(i)*step, a0+float64(i+1)*step
		p = cubicArcSegment(p, cx, cy, r, a, b)
	}
	return p
}

// cubicArcSegment emits one cubic Bezier approximating the circular
// arc from a to b (|b-a| <= pi/2), assuming the path's current point
// is already at the arc's start.
func cubicArcSegment(p path.Path, cx, cy, r, a, b float64) path.Path {
	theta := (b - a) / 2
	k := 4.0 / 3.0 * math.Tan(theta/2)
	x0, y0 := polar(cx, cy, r, a)
	x3, y3 := polar(cx, cy, r, b)
	// Tangent directions at the endpoints (derivative of polar()).
	t0x, t0y := math.Cos(a), math.Sin(a)
	t1x, t1y := math.Cos(b), math.Sin(b)
	c1x, c1y := x0+k*r*t0x, y0+k*r*t0y
	c2x, c2y := x3-k*r*t1x, y3-k*r*t1y
	return p.CubicTo(c1x, c1y, c2x, c2y, x3, y3)
}

// filletedArc caps CornerRadius at half the wedge's radial thickness
// and at OuterRadius*sin(sweep/4), shortens the sweep at each end by
// that radius's angle at the outer radius, and draws a plain wedge.
// It emits no fillet arcs.
func filletedArc(c ArcConfig, start, end float64) path.Path {
	cr := c.CornerRadius
	// The fillet cannot exceed half the wedge's radial or angular
	// extent; approximate the angular cap via the outer radius.
	radialSpan := (c.OuterRadius - c.InnerRadius) / 2
	if cr > radialSpan {
		cr = radialSpan
	}
	angularCap := c.OuterRadius * math.Sin((end-start)/4)
	if angularCap > 0 && cr > angularCap {
		cr = angularCap
	}
	if cr <= 0 {
		return plainArc(c, start, end)
	}
	// Inset the sweep angles by the capped radius's angular size at
	// the outer radius and draw the wedge with sharp corners.
	dTheta := cr / c.OuterRadius
	return plainArc(c, start+dTheta, end-dTheta)
}
