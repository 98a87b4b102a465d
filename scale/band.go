package scale

import "math"

// Band maps a discrete domain onto evenly sized, optionally padded
// bands of a continuous range.
type Band struct {
	Domain []string
	R0, R1 float64

	PaddingInner float64 // [0,1]
	PaddingOuter float64 // [0,1]
	Align        float64 // [0,1]
	Round        bool

	step, bandwidth, start float64
	index map[string]int
}

// NewBand returns a Band scale. Align defaults to 0.5 when left zero.
func NewBand(domain []string, r0, r1 float64) *Band {
	b := &Band{Domain: append([]string(nil), domain...), R0: r0, R1: r1, Align: 0.5}
	b.recompute()
	return b
}

// WithPadding sets both inner and outer padding to the same value.
func (b *Band) WithPadding(p float64) *Band {
	b.PaddingInner, b.PaddingOuter = p, p
	b.recompute()
	return b
}

// WithPaddingInner sets the inner (between-band) padding fraction.
func (b *Band) WithPaddingInner(p float64) *Band {
	b.PaddingInner = p
	b.recompute()
	return b
}

// WithPaddingOuter sets the outer (edge) padding fraction.
func (b *Band) WithPaddingOuter(p float64) *Band {
	b.PaddingOuter = p
	b.recompute()
	return b
}

// WithRound enables integer rounding of step and bandwidth.
func (b *Band) WithRound(round bool) *Band {
	b.Round = round
	b.recompute()
	return b
}

// recompute must run any time Domain, R0, R1, or padding changes; it
// is the band scale's only cached state.
func (b *Band) recompute() {
	n := float64(len(b.Domain))
	width := b.R1 - b.R0
	if width < 0 {
		width = -width
	}
	if n-b.PaddingInner+2*b.PaddingOuter <= 0 {
		b.step, b.bandwidth = 0, 0
	} else {
		b.step = width / (n - b.PaddingInner + 2*b.PaddingOuter)
		b.bandwidth = b.step * (1 - b.PaddingInner)
		if b.Round {
			b.step = math.Floor(b.step)
			b.bandwidth = math.Floor(b.bandwidth)
		}
	}
	r0 := math.Min(b.R0, b.R1)
	b.start = r0 + b.PaddingOuter*b.step*b.Align*2

	b.index = make(map[string]int, len(b.Domain))
	for i, v := range b.Domain {
		b.index[v] = i
	}
}

// Step returns the center-to-center distance between bands.
func (b *Band) Step() float64 { return b.step }

// Bandwidth returns the width of a single band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// ScaleIndex maps a domain index to the pixel start of its band.
func (b *Band) ScaleIndex(i int) float64 {
	return b.start + float64(i)*b.step
}

// Scale maps a domain value to the pixel start of its band, or NaN if
// the value isn't in the domain.
func (b *Band) Scale(v string) float64 {
	i, ok := b.index[v]
	if !ok {
		return math.NaN()
	}
	return b.ScaleIndex(i)
}

// Invert returns the index of the band containing pixel p, clamped to
// [0, len(Domain)-1].
func (b *Band) Invert(p float64) int {
	if b.step == 0 {
		return 0
	}
	i := int(math.Floor((p - b.start) / b.step))
	if i < 0 {
		i = 0
	}
	if i >= len(b.Domain) {
		i = len(b.Domain) - 1
	}
	return i
}

// Clone returns an independent copy.
func (b *Band) Clone() *Band {
	c := *b
	c.Domain = append([]string(nil), b.Domain...)
	c.recompute()
	return &c
}

// Ticks returns one tick per domain value, centered in its band.
func (b *Band) Ticks(opts TickOptions) []Tick {
	ticks := make([]Tick, len(b.Domain))
	for i, v := range b.Domain {
		ticks[i] = Tick{Value: float64(i), Label: v, Position: b.ScaleIndex(i) + b.bandwidth/2}
	}
	return ticks
}

// Point is a Band scale with zero bandwidth by construction: step =
// range / (n - 1 + 2*padding); a single point is centered; inversion
// snaps to the nearest point.
type Point struct {
	Domain  []string
	R0, R1  float64
	Padding float64
	Round   bool

	step, start float64
	index       map[string]int
}

// NewPoint returns a Point scale.
func NewPoint(domain []string, r0, r1 float64) *Point {
	p := &Point{Domain: append([]string(nil), domain...), R0: r0, R1: r1}
	p.recompute()
	return p
}

// WithPadding sets the edge padding fraction (in step units).
func (p *Point) WithPadding(padding float64) *Point {
	p.Padding = padding
	p.recompute()
	return p
}

func (p *Point) recompute() {
	n := len(p.Domain)
	width := p.R1 - p.R0
	if width < 0 {
		width = -width
	}
	denom := float64(n-1) + 2*p.Padding
	if n <= 1 || denom <= 0 {
		p.step = 0
	} else {
		p.step = width / denom
		if p.Round {
			p.step = math.Floor(p.step)
		}
	}
	r0 := math.Min(p.R0, p.R1)
	if n == 1 {
		p.start = (p.R0 + p.R1) / 2
	} else {
		p.start = r0 + p.Padding*p.step
	}
	p.index = make(map[string]int, n)
	for i, v := range p.Domain {
		p.index[v] = i
	}
}

// Bandwidth is always 0 for a Point scale.
func (p *Point) Bandwidth() float64 { return 0 }

// Step returns the center-to-center distance between points.
func (p *Point) Step() float64 { return p.step }

// ScaleIndex maps a domain index to a pixel position.
func (p *Point) ScaleIndex(i int) float64 {
	if len(p.Domain) == 1 {
		return p.start
	}
	return p.start + float64(i)*p.step
}

// Scale maps a domain value to a pixel position, or NaN if absent.
func (p *Point) Scale(v string) float64 {
	i, ok := p.index[v]
	if !ok {
		return math.NaN()
	}
	return p.ScaleIndex(i)
}

// Invert snaps pixel position to the nearest point's index.
func (p *Point) Invert(pixel float64) int {
	if len(p.Domain) == 0 {
		return -1
	}
	if p.step == 0 {
		return 0
	}
	i := int(math.Round((pixel - p.start) / p.step))
	if i < 0 {
		i = 0
	}
	if i >= len(p.Domain) {
		i = len(p.Domain) - 1
	}
	return i
}

// Clone returns an independent copy.
func (p *Point) Clone() *Point {
	c := *p
	c.Domain = append([]string(nil), p.Domain...)
	c.recompute()
	return &c
}

// Ticks returns one tick per domain value at its point position.
func (p *Point) Ticks(opts TickOptions) []Tick {
	ticks := make([]Tick, len(p.Domain))
	for i, v := range p.Domain {
		ticks[i] = Tick{Value: float64(i), Label: v, Position: p.ScaleIndex(i)}
	}
	return ticks
}
