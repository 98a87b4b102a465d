package data

import (
	"math"
	"sort"
)

// Transform is one stage of a DataPipeline. Apply returns a new
// sequence without mutating input.
type Transform interface {
	Apply(points []DataPoint) []DataPoint
}

// Pipeline is an ordered sequence of Transforms applied in
// registration order.
type Pipeline struct {
	stages []Transform
}

// NewPipeline returns an empty Pipeline.
func NewPipeline() *Pipeline { return &Pipeline{} }

// Add appends a stage and returns the Pipeline for chaining.
func (p *Pipeline) Add(t Transform) *Pipeline {
	p.stages = append(p.stages, t)
	return p
}

// Apply runs every stage in order, never mutating the input slice.
func (p *Pipeline) Apply(points []DataPoint) []DataPoint {
	cur := append([]DataPoint(nil), points...)
	for _, stage := range p.stages {
		cur = stage.Apply(cur)
	}
	return cur
}

// Filter keeps points for which Predicate returns true.
type Filter struct{ Predicate func(DataPoint) bool }

func (f Filter) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		if f.Predicate(p) {
			out = append(out, p)
		}
	}
	return out
}

// Map transforms every point through Fn.
type Map struct{ Fn func(DataPoint) DataPoint }

func (m Map) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		out[i] = m.Fn(p)
	}
	return out
}

// Window keeps the last N points.
type Window struct{ N int }

func (w Window) Apply(points []DataPoint) []DataPoint {
	if w.N <= 0 || len(points) <= w.N {
		return points
	}
	return append([]DataPoint(nil), points[len(points)-w.N:]...)
}

// Skip drops the first N points.
type Skip struct{ N int }

func (s Skip) Apply(points []DataPoint) []DataPoint {
	if s.N <= 0 {
		return points
	}
	if s.N >= len(points) {
		return nil
	}
	return append([]DataPoint(nil), points[s.N:]...)
}

// Take keeps only the first N points.
type Take struct{ N int }

func (t Take) Apply(points []DataPoint) []DataPoint {
	if t.N >= len(points) {
		return points
	}
	if t.N <= 0 {
		return nil
	}
	return append([]DataPoint(nil), points[:t.N]...)
}

// Sample keeps every Nth point.
type Sample struct{ N int }

func (s Sample) Apply(points []DataPoint) []DataPoint {
	if s.N <= 1 {
		return points
	}
	out := make([]DataPoint, 0, len(points)/s.N+1)
	for i := 0; i < len(points); i += s.N {
		out = append(out, points[i])
	}
	return out
}

// MovingAverage replaces each point's Y with the mean of the trailing
// W points (including itself).
type MovingAverage struct{ W int }

func (m MovingAverage) Apply(points []DataPoint) []DataPoint {
	if m.W <= 1 {
		return points
	}
	out := make([]DataPoint, len(points))
	var sum float64
	for i, p := range points {
		sum += p.Y
		if i >= m.W {
			sum -= points[i-m.W].Y
		}
		n := m.W
		if i+1 < n {
			n = i + 1
		}
		out[i] = p
		out[i].Y = sum / float64(n)
	}
	return out
}

// ClampY clamps Y into [Min, Max].
type ClampY struct{ Min, Max float64 }

func (c ClampY) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		p.Y = math.Max(c.Min, math.Min(c.Max, p.Y))
		out[i] = p
	}
	return out
}

// ScaleY multiplies Y by Factor.
type ScaleY struct{ Factor float64 }

func (s ScaleY) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		p.Y *= s.Factor
		out[i] = p
	}
	return out
}

// OffsetY adds Delta to Y.
type OffsetY struct{ Delta float64 }

func (o OffsetY) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		p.Y += o.Delta
		out[i] = p
	}
	return out
}

// NormalizeY linearly rescales Y to [0,1]; when every Y is equal, all
// outputs are 0.5.
type NormalizeY struct{}

func (NormalizeY) Apply(points []DataPoint) []DataPoint {
	if len(points) == 0 {
		return points
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	out := make([]DataPoint, len(points))
	if lo == hi {
		for i, p := range points {
			p.Y = 0.5
			out[i] = p
		}
		return out
	}
	for i, p := range points {
		p.Y = (p.Y - lo) / (hi - lo)
		out[i] = p
	}
	return out
}

// RemoveInvalid drops points whose Y is not finite.
type RemoveInvalid struct{}

func (RemoveInvalid) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, 0, len(points))
	for _, p := range points {
		if isFinite(p.Y) {
			out = append(out, p)
		}
	}
	return out
}

// SortByX sorts ascending by X, falling back to index for points
// without an explicit X.
type SortByX struct{}

func (SortByX) Apply(points []DataPoint) []DataPoint {
	out := append([]DataPoint(nil), points...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].XOr(i) < out[j].XOr(j)
	})
	return out
}

// SortByY sorts ascending by Y.
type SortByY struct{}

func (SortByY) Apply(points []DataPoint) []DataPoint {
	out := append([]DataPoint(nil), points...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y < out[j].Y })
	return out
}

// Reverse reverses point order.
type Reverse struct{}

func (Reverse) Apply(points []DataPoint) []DataPoint {
	out := make([]DataPoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// Dedupe drops consecutive points whose Y differs by less than
// Epsilon; a zero Epsilon means exact equality.
type Dedupe struct{ Epsilon float64 }

func (d Dedupe) Apply(points []DataPoint) []DataPoint {
	if len(points) == 0 {
		return points
	}
	out := make([]DataPoint, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		prev := out[len(out)-1]
		if math.Abs(p.Y-prev.Y) > d.Epsilon {
			out = append(out, p)
		}
	}
	return out
}
