package scale

import "github.com/aclements/chartcore/numeric"

// Sequential holds a continuous domain plus a user-supplied
// interpolator t in [0,1] -> T.10. Inversion is
// undefined because the interpolator is opaque; Invert returns NaN as
// the documented sentinel.
type Sequential[T any] struct {
	D0, D1 float64
	Interpolator func(t float64) T
	Clamp bool
}

// NewSequential returns a Sequential scale over [d0,d1] using interp.
func NewSequential[T any](d0, d1 float64, interp func(float64) T) *Sequential[T] {
	return &Sequential[T]{D0: d0, D1: d1, Interpolator: interp, Clamp: true}
}

// Map returns Interpolator(normalize(v)).
func (s *Sequential[T]) Map(v float64) T {
	t := 0.0
	if s.D1 != s.D0 {
		t = (v - s.D0) / (s.D1 - s.D0)
	}
	if s.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return s.Interpolator(t)
}

// Invert always returns NaN: the interpolator is opaque, so inversion
// is undefined.
func (s *Sequential[T]) Invert(float64) float64 {
	return nan()
}

func nan() float64 {
	var z float64
	return z / z
}

// Diverging composes two back-to-back Sequential scales around a
// midpoint.
type Diverging[T any] struct {
	D0, Mid, D1 float64
	Interpolator func(t float64) T
	Clamp bool
}

// NewDiverging returns a Diverging scale. Interpolator is sampled at
// t=0 for D0, t=0.5 for Mid, and t=1 for D1.
func NewDiverging[T any](d0, mid, d1 float64, interp func(float64) T) *Diverging[T] {
	return &Diverging[T]{D0: d0, Mid: mid, D1: d1, Interpolator: interp, Clamp: true}
}

// Map returns Interpolator(t) where t=0.5 at Mid and is linearly
// scaled on each side out to 0 at D0 and 1 at D1.
func (d *Diverging[T]) Map(v float64) T {
	var t float64
	switch {
	case v < d.Mid:
		if d.Mid == d.D0 {
			t = 0.5
		} else {
			t = 0.5 * (v - d.D0) / (d.Mid - d.D0)
		}
	default:
		if d.D1 == d.Mid {
			t = 0.5
		} else {
			t = 0.5 + 0.5*(v-d.Mid)/(d.D1-d.Mid)
		}
	}
	if d.Clamp {
		t = numeric.Clamp(t, 0, 1)
	}
	return d.Interpolator(t)
}

// Categorical maps discrete values to a fixed palette, indexed modulo
// the palette's length.
type Categorical[T any] struct {
	Palette []T
	index map[string]int
	order []string
}

// NewCategorical returns a Categorical scale over the given palette.
func NewCategorical[T any](palette []T) *Categorical[T] {
	return &Categorical[T]{Palette: palette, index: make(map[string]int)}
}

// Map returns the palette entry assigned to key, assigning the next
// palette slot (mod len(Palette)) the first time key is seen.
func (c *Categorical[T]) Map(key string) T {
	if i, ok := c.index[key]; ok {
		return c.Palette[i%len(c.Palette)]
	}
	i := len(c.order)
	c.index[key] = i
	c.order = append(c.order, key)
	return c.Palette[i%len(c.Palette)]
}
