// Package interaction implements zoom transforms and brush
// selections. No event handling lives here, only the
// geometric/state-machine contract a caller's event loop drives.
package interaction

import "math"

// Transform is a uniform scale factor K and translation (X,Y),
// the state a zoom behavior accumulates and a scale rescales against.
type Transform struct {
	K, X, Y float64
}

// Identity is the no-op transform.
var Identity = Transform{K: 1}

// Compose returns a∘b: (a∘b).k = a.k*b.k; (a∘b).t = a.t + a.k*b.t.
func Compose(a, b Transform) Transform {
	return Transform{
		K: a.K * b.K,
		X: a.X + a.K*b.X,
		Y: a.Y + a.K*b.Y,
	}
}

// Apply maps a point from the untransformed coordinate space into the
// transformed (zoomed/panned) space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.K*x + t.X, t.K*y + t.Y
}

// Invert maps a point from the transformed space back to the
// untransformed space.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return (x - t.X) / t.K, (y - t.Y) / t.K
}

// Rescale returns the domain endpoints (d0,d1) that would appear on a
// scale mapping [d0,d1] linearly onto [r0,r1], after this transform
// has been applied to that range: the inverse composition a scale
// uses to re-derive its domain after a zoom.
func (t Transform) Rescale(d0, d1, r0, r1 float64) (float64, float64) {
	if d1 == d0 {
		return d0, d1
	}
	toDomain := func(r float64) float64 {
		frac := (r - r0) / (r1 - r0)
		return d0 + frac*(d1-d0)
	}
	inv0x, _ := t.Invert(r0, 0)
	inv1x, _ := t.Invert(r1, 0)
	return toDomain(inv0x), toDomain(inv1x)
}

// ScaleExtent clamps k to [min,max].
type ScaleExtent struct{ Min, Max float64 }

func (e ScaleExtent) clamp(k float64) float64 {
	if e.Min > 0 && k < e.Min {
		k = e.Min
	}
	if e.Max > 0 && k > e.Max {
		k = e.Max
	}
	return k
}

// TranslateExtent is a rectangle the content must continue to cover.
type TranslateExtent struct{ X0, Y0, X1, Y1 float64 }

// Behavior owns zoom configuration and produces clamped next
// transforms from input events. Interaction methods are
// pure: given a current transform and an event, return the next
// transform.
type Behavior struct {
	ScaleExtent     ScaleExtent
	TranslateExtent *TranslateExtent
	EnableX         bool
	EnableY         bool
	WheelDelta      float64 // multiplier applied per wheel tick
}

// NewBehavior returns a Behavior with sensible defaults: both axes
// enabled, scale extent [0.25,8] (d3's defaults), wheel_delta 1.1 per
// tick (a gentle exponential zoom step).
func NewBehavior() *Behavior {
	return &Behavior{
		ScaleExtent: ScaleExtent{Min: 0.25, Max: 8},
		EnableX: true,
		EnableY: true,
		WheelDelta: 1.1,
	}
}

// Wheel returns the next transform after a wheel event of the given
// sign (positive = zoom in) at point (px,py), which stays fixed under
// the zoom.
func (b *Behavior) Wheel(cur Transform, px, py float64, ticks float64) Transform {
	factor := math.Pow(b.wheelDelta(), ticks)
	newK := b.ScaleExtent.clamp(cur.K * factor)
	actualFactor := newK / cur.K
	next := Transform{
		K: newK,
		X: px - (px-cur.X)*actualFactor,
		Y: py - (py-cur.Y)*actualFactor,
	}
	return b.clampTranslate(next)
}

func (b *Behavior) wheelDelta() float64 {
	if b.WheelDelta <= 0 {
		return 1.1
	}
	return b.WheelDelta
}

// Pan returns the next transform after a drag of (dx,dy) in screen
// pixels.
func (b *Behavior) Pan(cur Transform, dx, dy float64) Transform {
	next := cur
	if b.EnableX {
		next.X += dx
	}
	if b.EnableY {
		next.Y += dy
	}
	return b.clampTranslate(next)
}

func (b *Behavior) clampTranslate(t Transform) Transform {
	if b.TranslateExtent == nil {
		return t
	}
	e := *b.TranslateExtent
	minX := -(e.X1*t.K - (e.X1 - e.X0))
	maxX := -e.X0 * t.K
	if t.X < minX {
		t.X = minX
	}
	if t.X > maxX {
		t.X = maxX
	}
	minY := -(e.Y1*t.K - (e.Y1 - e.Y0))
	maxY := -e.Y0 * t.K
	if t.Y < minY {
		t.Y = minY
	}
	if t.Y > maxY {
		t.Y = maxY
	}
	return t
}
