package scale

import (
	"math"

	"github.com/aclements/chartcore/numeric"
)

// Log is a logarithmic scale. Domain must be strictly positive;
// non-positive inputs are clamped to a small epsilon rather than
// rejected, consistent with a "pure functions never fail" policy
// (composite validation, not this scale, is responsible for
// surfacing InvalidDomain when it matters to a caller).
type Log struct {
	D0, D1 float64
	R0, R1 float64
	Base float64
	Clamp bool
}

const logDomainFloor = 1e-12

// NewLog returns a Log scale with the given base (must be > 1; values
// <= 1 are treated as base 10).
func NewLog(d0, d1, r0, r1, base float64) *Log {
	if base <= 1 {
		base = 10
	}
	return &Log{D0: clampPositive(d0), D1: clampPositive(d1), R0: r0, R1: r1, Base: base}
}

func clampPositive(v float64) float64 {
	if v <= 0 {
		return logDomainFloor
	}
	return v
}

func (s *Log) logBase(x float64) float64 {
	return math.Log(clampPositive(x)) / math.Log(s.Base)
}

func (s *Log) powBase(e float64) float64 {
	return math.Pow(s.Base, e)
}

func (s *Log) normalize(v float64) float64 {
	lo, hi := s.logBase(s.D0), s.logBase(s.D1)
	if hi == lo {
		return 0
	}
	t := (s.logBase(v) - lo) / (hi - lo)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return t
}

// Scale maps a positive domain value to a range value.
func (s *Log) Scale(v float64) float64 {
	return s.R0 + s.normalize(v)*(s.R1-s.R0)
}

// Invert maps a range value back to a domain value.
func (s *Log) Invert(p float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	t := (p - s.R0) / (s.R1 - s.R0)
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	lo, hi := s.logBase(s.D0), s.logBase(s.D1)
	return s.powBase(lo + t*(hi-lo))
}

// Bandwidth is always 0.
func (s *Log) Bandwidth() float64 { return 0 }

// Clone returns an independent copy.
func (s *Log) Clone() *Log {
	c := *s
	return &c
}

// WithNice rounds the domain endpoints outward to the nearest
// enclosing powers of Base.
func (s *Log) WithNice() *Log {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	s.D0 = s.powBase(math.Floor(s.logBase(lo)))
	s.D1 = s.powBase(math.Ceil(s.logBase(hi)))
	return s
}

// Ticks enumerates integer exponents of Base covering the domain. If
// that yields fewer than opts.MinCount ticks and the exponent span is
// under 3 decades, ticks at 2x and 5x each decade are interleaved
// ( preserved source behavior for a one-decade domain).
func (s *Log) Ticks(opts TickOptions) []Tick {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo <= 0 || hi <= 0 {
		return nil
	}

	eLo := math.Floor(s.logBase(lo))
	eHi := math.Ceil(s.logBase(hi))

	var values []float64
	for e := eLo; e <= eHi; e++ {
		v := s.powBase(e)
		if v >= lo*(1-1e-9) && v <= hi*(1+1e-9) {
			values = append(values, v)
		}
	}

	minCount := opts.MinCount
	if minCount <= 0 {
		minCount = opts.count()
	}
	if len(values) < minCount && (eHi-eLo) < 3 {
		values = nil
		for e := eLo; e <= eHi; e++ {
			base := s.powBase(e)
			for _, mult := range []float64{1, 2, 5} {
				v := base * mult
				if v >= lo*(1-1e-9) && v <= hi*(1+1e-9) {
					values = append(values, v)
				}
			}
		}
	}

	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Label: numeric.FormatNumber(v), Position: s.Scale(v)}
	}
	return capTicks(ticks, opts.MaxCount)
}
