package color

import "math"

// HueArc controls which direction a hue-based interpolator travels.
type HueArc int

const (
	ShortestHue HueArc = iota
	LongestHue
)

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerpHue(a, b, t float64, arc HueArc) float64 {
	d := math.Mod(b-a, 360)
	switch arc {
	case ShortestHue:
		if d > 180 {
			d -= 360
		} else if d < -180 {
			d += 360
		}
	case LongestHue:
		if d > 0 && d < 180 {
			d -= 360
		} else if d < 0 && d > -180 {
			d += 360
		}
	}
	h := a + d*t
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// InterpolateRGB linearly interpolates R, G, B, A directly in sRGB
// space (the cheap, slightly perceptually-uneven default).
func InterpolateRGB(a, b RGBA) func(float64) RGBA {
	return func(t float64) RGBA {
		return RGBA{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), lerp(a.A, b.A, t)}
	}
}

// InterpolateRGBGamma interpolates in linear light (gamma-corrected)
// space, then converts back to sRGB: visually smoother for large
// lightness jumps than InterpolateRGB.
func InterpolateRGBGamma(a, b RGBA) func(float64) RGBA {
	ra, ga, ba := srgbToLinear(a.R), srgbToLinear(a.G), srgbToLinear(a.B)
	rb, gb, bb := srgbToLinear(b.R), srgbToLinear(b.G), srgbToLinear(b.B)
	return func(t float64) RGBA {
		return RGBA{
			linearToSRGB(lerp(ra, rb, t)),
			linearToSRGB(lerp(ga, gb, t)),
			linearToSRGB(lerp(ba, bb, t)),
			lerp(a.A, b.A, t),
		}
	}
}

// InterpolateHSL interpolates via HSL, taking either the shortest or
// longest way around the hue circle.
func InterpolateHSL(a, b RGBA, arc HueArc) func(float64) RGBA {
	ha, hb := a.ToHSL(), b.ToHSL()
	return func(t float64) RGBA {
		return HSL{
			H: lerpHue(ha.H, hb.H, t, arc),
			S: lerp(ha.S, hb.S, t),
			L: lerp(ha.L, hb.L, t),
			A: lerp(ha.A, hb.A, t),
		}.ToRGBA()
	}
}

// InterpolateLab interpolates in CIE L*a*b* space.
func InterpolateLab(a, b RGBA) func(float64) RGBA {
	la, lb := a.ToLab(), b.ToLab()
	return func(t float64) RGBA {
		return Lab{
			L:     lerp(la.L, lb.L, t),
			A:     lerp(la.A, lb.A, t),
			B:     lerp(la.B, lb.B, t),
			Alpha: lerp(la.Alpha, lb.Alpha, t),
		}.ToRGBA()
	}
}

// InterpolateHCL interpolates in HCL (polar Lab), taking either the
// shortest or longest way around the hue circle.
func InterpolateHCL(a, b RGBA, arc HueArc) func(float64) RGBA {
	ha, hb := a.ToHCL(), b.ToHCL()
	return func(t float64) RGBA {
		return HCL{
			H: lerpHue(ha.H, hb.H, t, arc),
			C: lerp(ha.C, hb.C, t),
			L: lerp(ha.L, hb.L, t),
			A: lerp(ha.A, hb.A, t),
		}.ToRGBA()
	}
}

// InterpolateCubehelix interpolates between two colors by fitting
// cubehelix start/rotation parameters that pass through both
// endpoints' hues, falling back to RGB gamma interpolation for
// lightness.
func InterpolateCubehelix(a, b RGBA, hue float64, gamma float64) func(float64) RGBA {
	ha, hb := a.ToHSL(), b.ToHSL()
	start := ha.H / 360 * 3
	rotations := (hb.H - ha.H) / 360
	lightA, lightB := ha.L, hb.L
	if gamma == 0 {
		gamma = 1
	}
	return func(t float64) RGBA {
		h := Cubehelix{Start: start, Rotations: rotations, Hue: hue, Gamma: gamma}
		c := h.At(t)
		// Blend toward the endpoints' actual lightness so the
		// interpolation still lands exactly on a and b at t=0,1.
		target := lerp(lightA, lightB, t)
		hsl := c.ToHSL()
		hsl.L = target
		hsl.A = lerp(a.A, b.A, t)
		return hsl.ToRGBA()
	}
}

// InterpolateBasis builds a Catmull-Rom spline that passes through
// each of the given anchor colors (>=2), interpolated in RGB space.
// Components are clamped to [0,1], since the spline can overshoot.
func InterpolateBasis(anchors []RGBA) func(float64) RGBA {
	if len(anchors) == 0 {
		return func(float64) RGBA { return RGBA{} }
	}
	if len(anchors) == 1 {
		return func(float64) RGBA { return anchors[0] }
	}
	return func(t float64) RGBA {
		t = clamp01(t)
		n := len(anchors) - 1
		pos := t * float64(n)
		i := int(math.Floor(pos))
		if i >= n {
			i = n - 1
		}
		local := pos - float64(i)
		p0 := anchors[maxInt(i-1, 0)]
		p1 := anchors[i]
		p2 := anchors[i+1]
		p3 := anchors[minInt(i+2, len(anchors)-1)]
		return RGBA{
			R: clamp01(basisComponent(p0.R, p1.R, p2.R, p3.R, local)),
			G: clamp01(basisComponent(p0.G, p1.G, p2.G, p3.G, local)),
			B: clamp01(basisComponent(p0.B, p1.B, p2.B, p3.B, local)),
			A: clamp01(basisComponent(p0.A, p1.A, p2.A, p3.A, local)),
		}
	}
}

// basisComponent evaluates a single Catmull-Rom segment.
func basisComponent(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// InterpolateDiscrete returns a step function that returns colors[i]
// for t in [i/n, (i+1)/n).
func InterpolateDiscrete(colors []RGBA) func(float64) RGBA {
	n := len(colors)
	return func(t float64) RGBA {
		if n == 0 {
			return RGBA{}
		}
		i := int(clamp01(t) * float64(n))
		if i >= n {
			i = n - 1
		}
		return colors[i]
	}
}

// InterpolatePiecewise chains multiple interpolators end to end,
// each covering an equal fraction of [0,1].
func InterpolatePiecewise(interps []func(float64) RGBA) func(float64) RGBA {
	n := len(interps)
	return func(t float64) RGBA {
		if n == 0 {
			return RGBA{}
		}
		t = clamp01(t)
		seg := 1.0 / float64(n)
		i := int(t / seg)
		if i >= n {
			i = n - 1
		}
		local := (t - float64(i)*seg) / seg
		return interps[i](local)
	}
}
