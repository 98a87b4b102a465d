// Package color implements the color spaces and interpolators:
// RGBA as the canonical transport form, conversions to
// HSL/Lab/HCL/cubehelix, interpolators between colors, color-scale
// families built on package scale, and Porter-Duff blending plus WCAG
// contrast.
//
// RGBA is four floats in [0,1], matching go-gg's use of the standard
// image/color.Color interface as its color transport type
// (gg/mark.go). chartcore implements image/color.Color on RGBA so it
// composes with that ecosystem convention without requiring a caller
// to convert first.
package color

import (
	stdcolor "image/color"
	"math"
)

// RGBA is the canonical transport color: four floats in [0,1],
// non-premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque RGBA.
func RGB(r, g, b float64) RGBA { return RGBA{r, g, b, 1} }

// Compile-time check that RGBA implements image/color.Color.
var _ stdcolor.Color = RGBA{}

// RGBA implements image/color.Color, returning premultiplied
// 16-bit-per-channel values as the interface requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a32 := clamp01(c.A) * 0xffff
	r = uint32(clamp01(c.R) * a32)
	g = uint32(clamp01(c.G) * a32)
	b = uint32(clamp01(c.B) * a32)
	a = uint32(a32)
	return
}

// FromStdColor converts any image/color.Color to RGBA.
func FromStdColor(c stdcolor.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{0, 0, 0, 0}
	}
	// Undo premultiplication.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 0xffff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamped returns c with every channel clamped to [0,1].
func (c RGBA) Clamped() RGBA {
	return RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Hex returns the "#rrggbb" or "#rrggbbaa" form (the latter only when
// A < 1).
func (c RGBA) Hex() string {
	c = c.Clamped()
	r, g, b := byte(math.Round(c.R*255)), byte(math.Round(c.G*255)), byte(math.Round(c.B*255))
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, 9)
	buf = append(buf, '#')
	for _, v := range []byte{r, g, b} {
		buf = append(buf, hexDigits[v>>4], hexDigits[v&0xf])
	}
	if c.A < 1 {
		a := byte(math.Round(c.A * 255))
		buf = append(buf, hexDigits[a>>4], hexDigits[a&0xf])
	}
	return string(buf)
}

// ParseHex parses a "#rgb", "#rrggbb", or "#rrggbbaa" string.
func ParseHex(s string) (RGBA, bool) {
	if len(s) == 0 || s[0] != '#' {
		return RGBA{}, false
	}
	s = s[1:]
	hexVal := func(c byte) (int, bool) {
		switch {
			case c >= '0' && c <= '9':
			return int(c - '0'), true
			case c >= 'a' && c <= 'f':
			return int(c-'a') + 10, true
			case c >= 'A' && c <= 'F':
			return int(c-'A') + 10, true
		}
		return 0, false
	}
	expand := func(s string) string {
		out := make([]byte, 0, len(s)*2)
		for i := 0; i < len(s); i++ {
			out = append(out, s[i], s[i])
		}
		return string(out)
	}
	switch len(s) {
	case 3:
		s = expand(s)
	case 4:
		s = expand(s)
	case 6, 8:
		// already full-width
	default:
		return RGBA{}, false
	}
	byte2 := func(i int) (float64, bool) {
		hi, ok1 := hexVal(s[i])
		lo, ok2 := hexVal(s[i+1])
		if !ok1 || !ok2 {
			return 0, false
		}
		return float64(hi*16+lo) / 255, true
	}
	r, ok := byte2(0)
	if !ok {
		return RGBA{}, false
	}
	g, ok := byte2(2)
	if !ok {
		return RGBA{}, false
	}
	b, ok := byte2(4)
	if !ok {
		return RGBA{}, false
	}
	a := 1.0
	if len(s) == 8 {
		a, ok = byte2(6)
		if !ok {
			return RGBA{}, false
		}
	}
	return RGBA{r, g, b, a}, true
}
