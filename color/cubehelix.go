package color

import "math"

// Cubehelix implements Dave Green's cubehelix color scheme,
// parameterized by (Start, Rotations, Hue, Gamma). Lightness has no
// parameter: it always runs from black at t=0 to white at t=1.
type Cubehelix struct {
	Start     float64 // starting hue in thirds of a turn (At uses Start/3 turns), typically 0-3
	Rotations float64 // number of R->G->B rotations over the range
	Hue       float64 // saturation of the color deviation, typically 0-1
	Gamma     float64 // gamma correction for intensity, typically 1
}

// DefaultCubehelix matches Green's original parameterization.
var DefaultCubehelix = Cubehelix{Start: 0.5, Rotations: -1.5, Hue: 1, Gamma: 1}

// At returns the color at fraction t in [0,1] along the helix.
func (h Cubehelix) At(t float64) RGBA {
	gamma := h.Gamma
	if gamma == 0 {
		gamma = 1
	}
	angle := 2 * math.Pi * (h.Start/3 + h.Rotations*t)
	fract := math.Pow(t, gamma)
	amp := h.Hue * fract * (1 - fract) / 2

	cosA, sinA := math.Cos(angle), math.Sin(angle)
	r := fract + amp*(-0.14861*cosA+1.78277*sinA)
	g := fract + amp*(-0.29227*cosA-0.90649*sinA)
	b := fract + amp*(1.97294 * cosA)
	return RGBA{clamp01(r), clamp01(g), clamp01(b), 1}
}

// Interpolator returns a t->RGBA function sampling this helix.
func (h Cubehelix) Interpolator() func(float64) RGBA {
	return h.At
}
