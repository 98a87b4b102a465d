package color

import "math"

// BlendMode selects a Porter-Duff compositing operator.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
)

// Composite blends src over dst using the given mode's per-channel
// blend function, then applies standard Porter-Duff "over" alpha
// compositing.
func Composite(src, dst RGBA, mode BlendMode) RGBA {
	blend := blendFn(mode)
	mixed := RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: src.A,
	}
	return over(mixed, dst)
}

// over composites src over dst using the Porter-Duff "over" operator
// on non-premultiplied colors.
func over(src, dst RGBA) RGBA {
	outA := src.A + dst.A*(1-src.A)
	if outA == 0 {
		return RGBA{0, 0, 0, 0}
	}
	mix := func(s, d float64) float64 {
		return (s*src.A + d*dst.A*(1-src.A)) / outA
	}
	return RGBA{mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B), outA}
}

func blendFn(mode BlendMode) func(s, d float64) float64 {
	switch mode {
	case BlendMultiply:
		return func(s, d float64) float64 { return s * d }
	case BlendScreen:
		return func(s, d float64) float64 { return s + d - s*d }
	case BlendOverlay:
		return func(s, d float64) float64 {
			if d <= 0.5 {
				return 2 * s * d
			}
			return 1 - 2*(1-s)*(1-d)
		}
	case BlendDarken:
		return math.Min
	case BlendLighten:
		return math.Max
	default:
		return func(s, d float64) float64 { return s }
	}
}

// RelativeLuminance computes the WCAG relative luminance of a color.
func (c RGBA) RelativeLuminance() float64 {
	lin := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// a value in [1, 21].
func ContrastRatio(a, b RGBA) float64 {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
