package color

import "github.com/aclements/chartcore/scale"

// SequentialScale maps a continuous domain through a named or custom
// color interpolator.11 ("Sequential color: SequentialScale
// parameterized by a color interpolator").
type SequentialScale struct {
	*scale.Sequential[RGBA]
}

// NewSequentialScale builds a SequentialScale over [d0,d1] using interp.
func NewSequentialScale(d0, d1 float64, interp func(float64) RGBA) *SequentialScale {
	return &SequentialScale{scale.NewSequential(d0, d1, interp)}
}

// DivergingScale maps a continuous domain through two back-to-back
// interpolator halves around a midpoint.
type DivergingScale struct {
	*scale.Diverging[RGBA]
}

// NewDivergingScale builds a DivergingScale over [d0,mid,d1].
func NewDivergingScale(d0, mid, d1 float64, interp func(float64) RGBA) *DivergingScale {
	return &DivergingScale{scale.NewDiverging(d0, mid, d1, interp)}
}

// CategoricalScale assigns stable colors to string keys from a fixed
// palette, cycling when more keys are seen than the palette holds.
type CategoricalScale struct {
	*scale.Categorical[RGBA]
}

// NewCategoricalScale builds a CategoricalScale over the given palette.
func NewCategoricalScale(palette []RGBA) *CategoricalScale {
	return &CategoricalScale{scale.NewCategorical(palette)}
}

// Category10 is d3's 10-color categorical palette, a common default
// for small numbers of series.
var Category10 = []RGBA{
	mustHex("#1f77b4"), mustHex("#ff7f0e"), mustHex("#2ca02c"), mustHex("#d62728"),
	mustHex("#9467bd"), mustHex("#8c564b"), mustHex("#e377c2"), mustHex("#7f7f7f"),
	mustHex("#bcbd22"), mustHex("#17becf"),
}

func mustHex(h string) RGBA {
	c, ok := ParseHex(h)
	if !ok {
		panic("color: invalid built-in hex " + h)
	}
	return c
}
