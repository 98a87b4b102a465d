package color

import "math"

// HSL is hue in degrees [0,360), saturation and lightness in [0,1].
type HSL struct {
	H, S, L, A float64
}

// ToHSL converts RGBA to HSL.
func (c RGBA) ToHSL() HSL {
	r, g, b := c.R, c.G, c.B
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2
	if max == min {
		return HSL{0, 0, l, c.A}
	}
	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return HSL{h, s, l, c.A}
}

// ToRGBA converts HSL back to RGBA.
func (c HSL) ToRGBA() RGBA {
	if c.S == 0 {
		return RGBA{c.L, c.L, c.L, c.A}
	}
	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	h := math.Mod(c.H, 360) / 360
	if h < 0 {
		h += 1
	}
	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return RGBA{r, g, b, c.A}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
