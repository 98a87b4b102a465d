package color

import "math"

// HCL is CIE L*a*b* expressed in polar form: C = sqrt(a^2+b^2),
// H = atan2(b,a) in degrees.
type HCL struct{ H, C, L, A float64 }

// ToHCL converts RGBA to HCL via Lab.
func (c RGBA) ToHCL() HCL {
	lab := c.ToLab()
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	chroma := math.Hypot(lab.A, lab.B)
	return HCL{H: h, C: chroma, L: lab.L, A: c.A}
}

// ToRGBA converts HCL back to RGBA via Lab.
func (c HCL) ToRGBA() RGBA {
	rad := c.H * math.Pi / 180
	lab := Lab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad), Alpha: c.A}
	return lab.ToRGBA()
}
