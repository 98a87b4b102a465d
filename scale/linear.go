package scale

import (
	"math"

	"github.com/aclements/chartcore/numeric"
)

// Linear is a reversible affine mapping between a continuous domain
// and a continuous range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
	Clamp  bool
	Nice   bool
}

// NewLinear returns a Linear scale over the given domain and range.
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	s := &Linear{D0: d0, D1: d1, R0: r0, R1: r1}
	return s
}

// WithClamp enables input clamping before interpolation.
func (s *Linear) WithClamp(clamp bool) *Linear {
	s.Clamp = clamp
	return s
}

// WithNice rounds the domain outward to nice bounds in place.
func (s *Linear) WithNice() *Linear {
	s.D0, s.D1 = numeric.NiceBounds(s.D0, s.D1)
	return s
}

func (s *Linear) normalize(v float64) float64 {
	if s.D1 == s.D0 {
		return 0
	}
	t := (v - s.D0) / (s.D1 - s.D0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return t
}

// Scale maps a domain value to a range value.
func (s *Linear) Scale(v float64) float64 {
	return s.R0 + s.normalize(v)*(s.R1-s.R0)
}

// Invert maps a range value back to a domain value.
func (s *Linear) Invert(p float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	t := (p - s.R0) / (s.R1 - s.R0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return s.D0 + t*(s.D1-s.D0)
}

// Bandwidth is always 0 for a continuous scale.
func (s *Linear) Bandwidth() float64 { return 0 }

// Clone returns an independent copy.
func (s *Linear) Clone() *Linear {
	c := *s
	return &c
}

// Ticks generates evenly spaced tick marks across the domain. The
// step is either opts.StepSize or a nice step derived from the
// domain span and opts.Count. Empty output when the resulting step is
// <= 0.
func (s *Linear) Ticks(opts TickOptions) []Tick {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	step := opts.StepSize
	if step == 0 {
		step = numeric.NiceStep(hi-lo, opts.count())
	}
	if step <= 0 {
		return nil
	}

	var ticks []Tick
	start := math.Ceil(lo/step) * step
	limit := hi + step*1e-4
	for v := start; v <= limit; v += step {
		ticks = append(ticks, Tick{Value: v, Label: numeric.FormatNumber(v), Position: s.Scale(v)})
	}

	if opts.IncludeBounds {
		ticks = includeBounds(ticks, lo, hi, s.Scale)
	}
	return capTicks(ticks, opts.MaxCount)
}

// includeBounds prepends/appends lo/hi as ticks when they aren't
// already present within epsilon of an existing tick value.
func includeBounds(ticks []Tick, lo, hi float64, scaleFn func(float64) float64) []Tick {
	hasLo, hasHi := false, false
	for _, t := range ticks {
		if nearlyEqual(t.Value, lo) {
			hasLo = true
		}
		if nearlyEqual(t.Value, hi) {
			hasHi = true
		}
	}
	out := ticks
	if !hasLo {
		out = append([]Tick{{Value: lo, Label: numeric.FormatNumber(lo), Position: scaleFn(lo)}}, out...)
	}
	if !hasHi {
		out = append(out, Tick{Value: hi, Label: numeric.FormatNumber(hi), Position: scaleFn(hi)})
	}
	return out
}
