package scale

import "math"

// Category is an early band-like scale variant kept distinct from
// Band rather than unified with it. Unlike Band, Category has a
// single Padding applied only at the outer edges and an Offset flag:
// when true, labels are centered within bands (like Band); when
// false, labels sit on band starts.
type Category struct {
	Domain []string
	R0, R1 float64
	Padding float64
	Offset bool

	step float64
	start float64
	index map[string]int
}

// NewCategory returns a Category scale with Offset true (centered
// labels) by default.
func NewCategory(domain []string, r0, r1 float64) *Category {
	c := &Category{Domain: append([]string(nil), domain...), R0: r0, R1: r1, Offset: true}
	c.recompute()
	return c
}

// WithPadding sets the outer padding fraction (in step units, applied
// to both edges).
func (c *Category) WithPadding(p float64) *Category {
	c.Padding = p
	c.recompute()
	return c
}

// WithOffset toggles whether labels center within their band.
func (c *Category) WithOffset(offset bool) *Category {
	c.Offset = offset
	return c
}

func (c *Category) recompute() {
	n := float64(len(c.Domain))
	width := c.R1 - c.R0
	if width < 0 {
		width = -width
	}
	if n+2*c.Padding <= 0 {
		c.step = 0
	} else {
		c.step = width / (n + 2*c.Padding)
	}
	r0 := math.Min(c.R0, c.R1)
	c.start = r0 + c.Padding*c.step

	c.index = make(map[string]int, len(c.Domain))
	for i, v := range c.Domain {
		c.index[v] = i
	}
}

// Step returns the center-to-center distance between categories.
func (c *Category) Step() float64 { return c.step }

// Bandwidth returns the width of one category's band (step, since
// Category has no inner padding).
func (c *Category) Bandwidth() float64 { return c.step }

// ScaleIndex maps an index to a pixel position: the band start, or
// the band center when Offset is set.
func (c *Category) ScaleIndex(i int) float64 {
	pos := c.start + float64(i)*c.step
	if c.Offset {
		pos += c.step / 2
	}
	return pos
}

// Scale maps a domain value to a pixel position, or NaN if absent.
func (c *Category) Scale(v string) float64 {
	i, ok := c.index[v]
	if !ok {
		return math.NaN()
	}
	return c.ScaleIndex(i)
}

// Invert returns the index of the category containing pixel p.
func (c *Category) Invert(p float64) int {
	if c.step == 0 {
		return 0
	}
	i := int(math.Floor((p - c.start) / c.step))
	if i < 0 {
		i = 0
	}
	if i >= len(c.Domain) {
		i = len(c.Domain) - 1
	}
	return i
}

// Clone returns an independent copy.
func (c *Category) Clone() *Category {
	cp := *c
	cp.Domain = append([]string(nil), c.Domain...)
	cp.recompute()
	return &cp
}

// Ticks returns one tick per domain value.
func (c *Category) Ticks(opts TickOptions) []Tick {
	ticks := make([]Tick, len(c.Domain))
	for i, v := range c.Domain {
		ticks[i] = Tick{Value: float64(i), Label: v, Position: c.ScaleIndex(i)}
	}
	return ticks
}
