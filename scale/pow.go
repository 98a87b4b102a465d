package scale

import (
	"math"

	"github.com/aclements/chartcore/numeric"
)

// Pow is a power scale: scale(v) = sign(v)*|v|^Exponent, which
// preserves sign and is defined on all reals. Exponent=0.5 is the
// common case for area encoding.
type Pow struct {
	D0, D1 float64
	R0, R1 float64
	Exponent float64
	Clamp bool
}

// NewPow returns a Pow scale. Exponent <= 0 defaults to 1 (identity,
// equivalent to Linear).
func NewPow(d0, d1, r0, r1, exponent float64) *Pow {
	if exponent <= 0 {
		exponent = 1
	}
	return &Pow{D0: d0, D1: d1, R0: r0, R1: r1, Exponent: exponent}
}

func signedPow(v, exponent float64) float64 {
	if v < 0 {
		return -math.Pow(-v, exponent)
	}
	return math.Pow(v, exponent)
}

func signedRoot(v, exponent float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1/exponent)
	}
	return math.Pow(v, 1/exponent)
}

func (s *Pow) normalize(v float64) float64 {
	d0, d1 := signedPow(s.D0, s.Exponent), signedPow(s.D1, s.Exponent)
	if d1 == d0 {
		return 0
	}
	t := (signedPow(v, s.Exponent) - d0) / (d1 - d0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return t
}

// Scale maps a domain value to a range value.
func (s *Pow) Scale(v float64) float64 {
	return s.R0 + s.normalize(v)*(s.R1-s.R0)
}

// Invert maps a range value back to a domain value.
func (s *Pow) Invert(p float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	t := (p - s.R0) / (s.R1 - s.R0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	d0, d1 := signedPow(s.D0, s.Exponent), signedPow(s.D1, s.Exponent)
	return signedRoot(d0+t*(d1-d0), s.Exponent)
}

// Bandwidth is always 0.
func (s *Pow) Bandwidth() float64 { return 0 }

// Clone returns an independent copy.
func (s *Pow) Clone() *Pow {
	c := *s
	return &c
}

// Ticks delegates to the same nice-step algorithm as Linear, applied
// in the untransformed domain, since tick placement should look
// linear to the reader regardless of the encoding exponent.
func (s *Pow) Ticks(opts TickOptions) []Tick {
	lin := &Linear{D0: s.D0, D1: s.D1, R0: s.R0, R1: s.R1, Clamp: s.Clamp}
	raw := lin.Ticks(opts)
	for i := range raw {
		raw[i].Position = s.Scale(raw[i].Value)
	}
	return raw
}
