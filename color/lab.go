package color

import "math"

// D65 reference white in CIE XYZ, used throughout Lab/HCL conversion.
const (
	refX = 0.95047
	refY = 1.0
	refZ = 1.08883
)

// XYZ is the CIE 1931 XYZ color space.
type XYZ struct{ X, Y, Z float64 }

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// ToXYZ converts RGBA (sRGB, gamma-corrected) to CIE XYZ using the
// D65 illuminant.
func (c RGBA) ToXYZ() XYZ {
	r, g, b := srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)
	return XYZ{
		X: r*0.4124564 + g*0.3575761 + b*0.1804375,
		Y: r*0.2126729 + g*0.7151522 + b*0.0721750,
		Z: r*0.0193339 + g*0.1191920 + b*0.9503041,
	}
}

// ToRGBA converts CIE XYZ back to sRGB RGBA (alpha 1).
func (c XYZ) ToRGBA() RGBA {
	x, y, z := c.X, c.Y, c.Z
	r := x*3.2404548360 + y*-1.5371388501 + z*-0.4985315469
	g := x*-0.9692663899 + y*1.8760109288 + z*0.0415560823
	b := x*0.0556434196 + y*-0.2040258543 + z*1.0572251625
	return RGBA{linearToSRGB(r), linearToSRGB(g), linearToSRGB(b), 1}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29)
}

// Lab is the CIE L*a*b* color space (D65 illuminant).
type Lab struct{ L, A, B, Alpha float64 }

// ToLab converts RGBA to CIE L*a*b*.
func (c RGBA) ToLab() Lab {
	xyz := c.ToXYZ()
	fx, fy, fz := labF(xyz.X/refX), labF(xyz.Y/refY), labF(xyz.Z/refZ)
	return Lab{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.A,
	}
}

// ToRGBA converts CIE L*a*b* back to RGBA.
func (c Lab) ToRGBA() RGBA {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	xyz := XYZ{X: refX * labFInv(fx), Y: refY * labFInv(fy), Z: refZ * labFInv(fz)}
	rgb := xyz.ToRGBA()
	rgb.A = c.Alpha
	return rgb
}
