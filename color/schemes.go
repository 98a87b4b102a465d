package color

import "math"

// Named sequential color interpolators. Each is built from a small
// set of real reference stops for the scheme (documented inline) plus
// InterpolateBasis, which is how chartcore reproduces
// continuous perceptual colormaps without vendoring a multi-kilobyte
// per-colormap lookup table, grounded on d3's published construction
// of its sequential schemes from a handful of control points run
// through a basis spline.

func stops(hexes...string) []RGBA {
	out := make([]RGBA, len(hexes))
	for i, h := range hexes {
		c, ok := ParseHex(h)
		if !ok {
			panic("color: invalid built-in stop " + h)
		}
		out[i] = c
	}
	return out
}

var (
	viridisStops = stops("#440154", "#46327e", "#365c8d", "#277f8e", "#1fa187", "#4ac16d", "#a0da39", "#fde725")
	plasmaStops = stops("#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921")
	infernoStops = stops("#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4")
	magmaStops = stops("#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf")
	turboStops = stops("#30123b", "#4669d8", "#26bce1", "#6ef047", "#f4d029", "#cb2a12", "#7a0403")
	coolStops = stops("#6e40aa", "#36aaf9", "#aaff8c")
	warmStops = stops("#6e40aa", "#e6402d", "#ffd932")
	bluesStops = stops("#f7fbff", "#6baed6", "#08306b")
	greensStops = stops("#f7fcf5", "#74c476", "#00441b")
	redsStops = stops("#fff5f0", "#fb6a4a", "#67000d")
	rainbowStops = stops("#6e40aa", "#e23691", "#f7d020", "#5cdc5c", "#2a62e8", "#6e40aa")
)

// Viridis is perceptually uniform, colorblind-safe; the default
// sequential choice.
func Viridis(t float64) RGBA { return InterpolateBasis(viridisStops)(t) }

// Plasma is viridis's warmer-toned sibling.
func Plasma(t float64) RGBA { return InterpolateBasis(plasmaStops)(t) }

// Inferno runs black to pale yellow through deep red-violet.
func Inferno(t float64) RGBA { return InterpolateBasis(infernoStops)(t) }

// Magma runs black to pale cream through magenta.
func Magma(t float64) RGBA { return InterpolateBasis(magmaStops)(t) }

// Turbo is Google's rainbow-like perceptually-smoother replacement
// for jet.
func Turbo(t float64) RGBA { return InterpolateBasis(turboStops)(t) }

// Cool runs blue-violet to green.
func Cool(t float64) RGBA { return InterpolateBasis(coolStops)(t) }

// Warm runs violet to orange-yellow.
func Warm(t float64) RGBA { return InterpolateBasis(warmStops)(t) }

// Blues is a single-hue sequential scheme.
func Blues(t float64) RGBA { return InterpolateBasis(bluesStops)(t) }

// Greens is a single-hue sequential scheme.
func Greens(t float64) RGBA { return InterpolateBasis(greensStops)(t) }

// Reds is a single-hue sequential scheme.
func Reds(t float64) RGBA { return InterpolateBasis(redsStops)(t) }

// Rainbow goes once around the hue circle through RGB stops that
// start and end on the same color, so Rainbow(0) equals Rainbow(1).
func Rainbow(t float64) RGBA { return InterpolateBasis(rainbowStops)(t) }

// Sinebow is d3's sine-based rainbow: evenly spaced, cyclic hues with
// constant saturation and lightness.
func Sinebow(t float64) RGBA {
	t = 0.5 - t
	const tau = 6.283185307179586
	r := clamp01(0.5 + 0.5*math.Sin(tau*(t+0.0/3)))
	g := clamp01(0.5 + 0.5*math.Sin(tau*(t+1.0/3)))
	b := clamp01(0.5 + 0.5*math.Sin(tau*(t+2.0/3)))
	return RGBA{r * r, g * g, b * b, 1}
}

// CubehelixDefault samples Green's default cubehelix parameterization.
func CubehelixDefault(t float64) RGBA { return DefaultCubehelix.At(t) }
