package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexRoundTrip(t *testing.T) {
	c, ok := ParseHex("#ff8800")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0x88/255.0, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)
	assert.Equal(t, "#ff8800", c.Hex())

	_, ok = ParseHex("not-a-color")
	assert.False(t, ok)
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff0000", "#336699", "#abcdef"} {
		c, _ := ParseHex(hex)
		back := c.ToHSL().ToRGBA()
		assert.InDelta(t, c.R, back.R, 1e-6, hex)
		assert.InDelta(t, c.G, back.G, 1e-6, hex)
		assert.InDelta(t, c.B, back.B, 1e-6, hex)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff0000", "#336699", "#abcdef"} {
		c, _ := ParseHex(hex)
		back := c.ToLab().ToRGBA()
		assert.InDelta(t, c.R, back.R, 1e-6, hex)
		assert.InDelta(t, c.G, back.G, 1e-6, hex)
		assert.InDelta(t, c.B, back.B, 1e-6, hex)
	}
}

func TestHCLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#ff0000", "#336699", "#abcdef"} {
		c, _ := ParseHex(hex)
		back := c.ToHCL().ToRGBA()
		assert.InDelta(t, c.R, back.R, 1e-6, hex)
		assert.InDelta(t, c.G, back.G, 1e-6, hex)
		assert.InDelta(t, c.B, back.B, 1e-6, hex)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a, _ := ParseHex("#000000")
	b, _ := ParseHex("#ffffff")
	for _, interp := range []func(float64) RGBA{
		InterpolateRGB(a, b),
		InterpolateRGBGamma(a, b),
		InterpolateHSL(a, b, ShortestHue),
		InterpolateLab(a, b),
		InterpolateHCL(a, b, ShortestHue),
	} {
		start := interp(0)
		end := interp(1)
		assert.InDelta(t, a.R, start.R, 1e-6)
		assert.InDelta(t, a.G, start.G, 1e-6)
		assert.InDelta(t, a.B, start.B, 1e-6)
		assert.InDelta(t, b.R, end.R, 1e-6)
		assert.InDelta(t, b.G, end.G, 1e-6)
		assert.InDelta(t, b.B, end.B, 1e-6)
	}
}

func TestInterpolateHueShortestVsLongest(t *testing.T) {
	a := HSL{H: 10, S: 1, L: 0.5, A: 1}.ToRGBA()
	b := HSL{H: 350, S: 1, L: 0.5, A: 1}.ToRGBA()
	short := InterpolateHSL(a, b, ShortestHue)(0.5)
	long := InterpolateHSL(a, b, LongestHue)(0.5)
	assert.NotEqual(t, short, long)
}

func TestInterpolateBasisPassesThroughAnchors(t *testing.T) {
	anchors := stops("#ff0000", "#00ff00", "#0000ff")
	f := InterpolateBasis(anchors)
	start := f(0)
	end := f(1)
	assert.InDelta(t, anchors[0].R, start.R, 1e-6)
	assert.InDelta(t, anchors[len(anchors)-1].B, end.B, 1e-6)
}

func TestInterpolateDiscrete(t *testing.T) {
	palette := stops("#ff0000", "#00ff00", "#0000ff")
	f := InterpolateDiscrete(palette)
	assert.Equal(t, palette[0], f(0))
	assert.Equal(t, palette[1], f(0.4))
	assert.Equal(t, palette[2], f(0.99))
}

func TestInterpolatePiecewise(t *testing.T) {
	a, _ := ParseHex("#000000")
	m, _ := ParseHex("#808080")
	b, _ := ParseHex("#ffffff")
	f := InterpolatePiecewise([]func(float64) RGBA{InterpolateRGB(a, m), InterpolateRGB(m, b)})
	start := f(0)
	mid := f(0.5)
	end := f(1)
	assert.InDelta(t, a.R, start.R, 1e-6)
	assert.InDelta(t, m.R, mid.R, 1e-2)
	assert.InDelta(t, b.R, end.R, 1e-6)
}

func TestNamedSchemesProduceValidColors(t *testing.T) {
	schemes := []func(float64) RGBA{
		Viridis, Plasma, Inferno, Magma, Turbo, Cool, Warm,
		Blues, Greens, Reds, Rainbow, Sinebow, CubehelixDefault,
	}
	for _, f := range schemes {
		for _, t0 := range []float64{0, 0.25, 0.5, 0.75, 1} {
			c := f(t0)
			assert.GreaterOrEqual(t, c.R, 0.0)
			assert.LessOrEqual(t, c.R, 1.0)
			assert.GreaterOrEqual(t, c.G, 0.0)
			assert.LessOrEqual(t, c.G, 1.0)
			assert.GreaterOrEqual(t, c.B, 0.0)
			assert.LessOrEqual(t, c.B, 1.0)
		}
	}
}

func TestSequentialScale(t *testing.T) {
	s := NewSequentialScale(0, 100, Viridis)
	assert.Equal(t, Viridis(0), s.Map(0))
	assert.Equal(t, Viridis(1), s.Map(100))
	assert.Equal(t, Viridis(1), s.Map(1000)) // clamped
}

func TestDivergingScale(t *testing.T) {
	s := NewDivergingScale(-10, 0, 10, func(t float64) RGBA {
		return InterpolateRGB(RGB(1, 0, 0), RGB(0, 0, 1))(t)
	})
	mid := s.Map(0)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
}

func TestCategoricalScale(t *testing.T) {
	s := NewCategoricalScale(Category10)
	first := s.Map("alpha")
	second := s.Map("beta")
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, s.Map("alpha"))
}

func TestBlendModes(t *testing.T) {
	red := RGB(1, 0, 0)
	blue := RGB(0, 0, 1)
	opaque := RGBA{blue.R, blue.G, blue.B, 1}
	result := Composite(RGBA{red.R, red.G, red.B, 1}, opaque, BlendMultiply)
	assert.InDelta(t, 0, result.R, 1e-9)
	assert.InDelta(t, 0, result.G, 1e-9)
	assert.InDelta(t, 0, result.B, 1e-9)
}

func TestOverCompositingWithTransparency(t *testing.T) {
	src := RGBA{1, 0, 0, 0.5}
	dst := RGBA{0, 0, 1, 1}
	out := over(src, dst)
	assert.InDelta(t, 1, out.A, 1e-9)
	assert.InDelta(t, 0.5, out.R, 1e-6)
	assert.InDelta(t, 0.5, out.B, 1e-6)
}

func TestContrastRatioBlackWhite(t *testing.T) {
	black, _ := ParseHex("#000000")
	white, _ := ParseHex("#ffffff")
	ratio := ContrastRatio(black, white)
	assert.InDelta(t, 21, ratio, 0.01)
	assert.InDelta(t, ratio, ContrastRatio(white, black), 1e-9)
}
