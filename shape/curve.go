// Package shape implements the geometry generators:
// line, area, arc, and pie path emission, stacked-series layout, and
// hierarchical edge bundling.
package shape

import (
	"math"

	"github.com/aclements/chartcore/path"
)

// Curve selects the interpolation family a line or area generator
// draws between points.
type Curve int

const (
	CurveLinear Curve = iota
	CurveStepBefore
	CurveStepAfter
	CurveStepMiddle
	CurveCardinal
	CurveNatural
	CurveMonotone
	CurveBasis
	CurveBasisClosed
)

type point struct{ X, Y float64 }

// curveSegments appends path segments tracing pts (already split at
// gaps by the caller) using the given curve. The first segment is
// always a MoveTo to pts[0].
func curveSegments(p path.Path, pts []point, c Curve, tension float64) path.Path {
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 1 {
		return p
	}
	switch c {
	case CurveLinear:
		for _, pt := range pts[1:] {
			p = p.LineTo(pt.X, pt.Y)
		}
	case CurveStepBefore:
		for i := 1; i < len(pts); i++ {
			p = p.LineTo(pts[i-1].X, pts[i].Y)
			p = p.LineTo(pts[i].X, pts[i].Y)
		}
	case CurveStepAfter:
		for i := 1; i < len(pts); i++ {
			p = p.LineTo(pts[i].X, pts[i-1].Y)
			p = p.LineTo(pts[i].X, pts[i].Y)
		}
	case CurveStepMiddle:
		for i := 1; i < len(pts); i++ {
			mx := (pts[i-1].X + pts[i].X) / 2
			p = p.LineTo(mx, pts[i-1].Y)
			p = p.LineTo(mx, pts[i].Y)
			p = p.LineTo(pts[i].X, pts[i].Y)
		}
	case CurveCardinal:
		p = cardinal(p, pts, tension, false)
	case CurveNatural:
		p = naturalCubic(p, pts)
	case CurveMonotone:
		p = monotoneCubic(p, pts)
	case CurveBasis:
		p = basis(p, pts, false)
	case CurveBasisClosed:
		p = basis(p, pts, true)
	default:
		for _, pt := range pts[1:] {
			p = p.LineTo(pt.X, pt.Y)
		}
	}
	return p
}

// cardinal emits a Catmull-Rom spline with the given tension in
// [0,1] (0 = Catmull-Rom, 1 = straight lines), converted to cubic
// Bezier control points per segment.
func cardinal(p path.Path, pts []point, tension float64, closed bool) path.Path {
	n := len(pts)
	k := (1 - tension) / 6
	get := func(i int) point {
		if closed {
			return pts[((i%n)+n)%n]
		}
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := get(i-1), get(i), get(i+1), get(i+2)
		c1 := point{p1.X + (p2.X-p0.X)*k, p1.Y + (p2.Y-p0.Y)*k}
		c2 := point{p2.X - (p3.X-p1.X)*k, p2.Y - (p3.Y-p1.Y)*k}
		p = p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
	return p
}

// naturalCubic fits a natural cubic spline (zero second derivative at
// the endpoints) to pts, parameterized by index, and emits it as a
// sequence of cubic Beziers.
func naturalCubic(p path.Path, pts []point) path.Path {
	n := len(pts)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	cx := naturalSplineCoeffs(xs)
	cy := naturalSplineCoeffs(ys)
	for i := 0; i < n-1; i++ {
		// Convert the i'th polynomial segment a+bt+ct^2+dt^3 into
		// Bezier control points: P1 = a+b/3, P2 = a+2b/3+c/3.
		x1 := cx.a[i] + cx.b[i]/3
		x2 := cx.a[i] + 2*cx.b[i]/3 + cx.c[i]/3
		y1 := cy.a[i] + cy.b[i]/3
		y2 := cy.a[i] + 2*cy.b[i]/3 + cy.c[i]/3
		p = p.CubicTo(x1, y1, x2, y2, pts[i+1].X, pts[i+1].Y)
	}
	return p
}

// splineCoeffs holds per-segment natural-cubic-spline coefficients
// a+b*t+c*t^2+d*t^3 for t in [0,1] local to each segment.
type splineCoeffs struct{ a, b, c, d []float64 }

func (s splineCoeffs) sample(seg int, t float64) float64 {
	a, b, c, d := s.a[seg], s.b[seg], s.c[seg], s.d[seg]
	return a + b*t + c*t*t + d*t*t*t
}

// naturalSplineCoeffs solves the standard tridiagonal system for a
// natural cubic spline through v, treated as uniformly spaced in the
// parameter.
func naturalSplineCoeffs(v []float64) splineCoeffs {
	n := len(v)
	if n < 2 {
		return splineCoeffs{a: []float64{0}, b: []float64{0}, c: []float64{0}, d: []float64{0}}
	}
	// Second-derivative system, h=1 uniform spacing.
	m := n - 1
	alpha := make([]float64, n)
	for i := 1; i < m; i++ {
		alpha[i] = 3 * (v[i+1] - 2*v[i] + v[i-1])
	}
	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	for i := 1; i < m; i++ {
		l[i] = 4 - mu[i-1]
		mu[i] = 1 / l[i]
		z[i] = (alpha[i] - z[i-1]) / l[i]
	}
	l[m] = 1
	c := make([]float64, n)
	b := make([]float64, n)
	d := make([]float64, n)
	for i := m - 1; i >= 0; i-- {
		c[i] = z[i] - mu[i]*c[i+1]
	}
	for i := 0; i < m; i++ {
		b[i] = v[i+1] - v[i] - (c[i+1]+2*c[i])/3
		d[i] = (c[i+1] - c[i]) / 3
	}
	return splineCoeffs{a: v[:m], b: b[:m], c: c[:m], d: d[:m]}
}

// monotoneCubic fits a Fritsch-Carlson monotone piecewise cubic
// Hermite spline, avoiding overshoot between points (d3's
// curveMonotoneX).
func monotoneCubic(p path.Path, pts []point) path.Path {
	n := len(pts)
	if n == 2 {
		return p.LineTo(pts[1].X, pts[1].Y)
	}
	dx := make([]float64, n-1)
	m := make([]float64, n-1) // secant slopes
	for i := 0; i < n-1; i++ {
		dx[i] = pts[i+1].X - pts[i].X
		if dx[i] == 0 {
			m[i] = 0
		} else {
			m[i] = (pts[i+1].Y - pts[i].Y) / dx[i]
		}
	}
	tang := make([]float64, n)
	tang[0] = m[0]
	tang[n-1] = m[n-2]
	for i := 1; i < n-1; i++ {
		if m[i-1]*m[i] <= 0 {
			tang[i] = 0
		} else {
			tang[i] = (m[i-1] + m[i]) / 2
		}
	}
	for i := 0; i < n-1; i++ {
		if m[i] == 0 {
			tang[i] = 0
			tang[i+1] = 0
			continue
		}
		a := tang[i] / m[i]
		b := tang[i+1] / m[i]
		s := a*a + b*b
		if s > 9 {
			scale := 3 / math.Sqrt(s)
			tang[i] = scale * a * m[i]
			tang[i+1] = scale * b * m[i]
		}
	}
	for i := 0; i < n-1; i++ {
		h := dx[i]
		c1x := pts[i].X + h/3
		c1y := pts[i].Y + tang[i]*h/3
		c2x := pts[i+1].X - h/3
		c2y := pts[i+1].Y - tang[i+1]*h/3
		p = p.CubicTo(c1x, c1y, c2x, c2y, pts[i+1].X, pts[i+1].Y)
	}
	return p
}

// basis draws a uniform cubic B-spline through pts as its control
// polygon (the curve does not pass through interior points, only
// approximates them), closing the loop when closed is true.
func basis(p path.Path, pts []point, closed bool) path.Path {
	n := len(pts)
	get := func(i int) point {
		if closed {
			return pts[((i%n)+n)%n]
		}
		if i < 0 {
			return pts[0]
		}
		if i >= n {
			return pts[n-1]
		}
		return pts[i]
	}
	for i := 0; i < n; i++ {
		p0, p1, p2, p3 := get(i-1), get(i), get(i+1), get(i+2)
		// Basis-spline-to-Bezier control point conversion.
		c1 := point{(2*p0.X + p1.X) / 3, (2*p0.Y + p1.Y) / 3}
		c2 := point{(p0.X + 2*p1.X) / 3, (p0.Y + 2*p1.Y) / 3}
		end := point{(p0.X + 4*p1.X + p2.X) / 6, (p0.Y + 4*p1.Y + p2.Y) / 6}
		_ = p3
		p = p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	if closed {
		p = p.CloseOp()
	} else {
		p = p.LineTo(pts[n-1].X, pts[n-1].Y)
	}
	return p
}
