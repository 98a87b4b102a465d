package scale

import (
	"math"

	"github.com/aclements/chartcore/numeric"
)

// Symlog is a symmetric logarithmic scale: sign(x)*ln(1+|x|/C);
// defined at and around zero, unlike Log.
type Symlog struct {
	D0, D1 float64
	R0, R1 float64
	Constant float64
	Clamp bool
}

// NewSymlog returns a Symlog scale. Constant <= 0 defaults to 1.
func NewSymlog(d0, d1, r0, r1, constant float64) *Symlog {
	if constant <= 0 {
		constant = 1
	}
	return &Symlog{D0: d0, D1: d1, R0: r0, R1: r1, Constant: constant}
}

func (s *Symlog) transform(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	return sign * math.Log(1+math.Abs(x)/s.Constant)
}

func (s *Symlog) untransform(y float64) float64 {
	sign := 1.0
	if y < 0 {
		sign = -1
	}
	return sign * s.Constant * (math.Exp(math.Abs(y)) - 1)
}

func (s *Symlog) normalize(v float64) float64 {
	d0, d1 := s.transform(s.D0), s.transform(s.D1)
	if d1 == d0 {
		return 0
	}
	t := (s.transform(v) - d0) / (d1 - d0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return t
}

// Scale maps a domain value to a range value.
func (s *Symlog) Scale(v float64) float64 {
	return s.R0 + s.normalize(v)*(s.R1-s.R0)
}

// Invert maps a range value back to a domain value.
func (s *Symlog) Invert(p float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	t := (p - s.R0) / (s.R1 - s.R0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	d0, d1 := s.transform(s.D0), s.transform(s.D1)
	return s.untransform(d0 + t*(d1-d0))
}

// Bandwidth is always 0.
func (s *Symlog) Bandwidth() float64 { return 0 }

// Clone returns an independent copy.
func (s *Symlog) Clone() *Symlog {
	c := *s
	return &c
}

// WithNice makes the domain symmetric around zero (when it crosses
// zero) and rounds both endpoints outward to a nice magnitude.
func (s *Symlog) WithNice() *Symlog {
	if s.D0 < 0 && s.D1 > 0 {
		m := math.Max(math.Abs(s.D0), math.Abs(s.D1))
		_, niceMax := numeric.NiceBounds(0, m)
		s.D0, s.D1 = -niceMax, niceMax
		return s
	}
	s.D0, s.D1 = numeric.NiceBounds(s.D0, s.D1)
	return s
}

// Ticks generates ticks by nice-stepping in the transformed space and
// mapping back to the domain, so spacing looks even near zero and
// compresses at the extremes exactly like the scale itself.
func (s *Symlog) Ticks(opts TickOptions) []Tick {
	t0, t1 := s.transform(s.D0), s.transform(s.D1)
	lin := &Linear{D0: t0, D1: t1, R0: s.R0, R1: s.R1}
	raw := lin.Ticks(opts)
	ticks := make([]Tick, len(raw))
	for i, rt := range raw {
		v := s.untransform(rt.Value)
		ticks[i] = Tick{Value: v, Label: numeric.FormatNumber(v), Position: s.Scale(v)}
	}
	return ticks
}
