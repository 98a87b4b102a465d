package shape

import (
	"github.com/aclements/chartcore/data"
	"github.com/aclements/chartcore/path"
)

// AreaGenerator emits a closed region bounded above by Y1 and below by
// Y0 (the baseline). Like LineGenerator, Defined splits
// the area into independent subpaths at gaps.
type AreaGenerator struct {
	X func(p data.DataPoint, i int) float64
	Y0 func(p data.DataPoint, i int) float64
	Y1 func(p data.DataPoint, i int) float64
	Defined func(p data.DataPoint, i int) bool
	Curve Curve
	Tension float64
}

// NewAreaGenerator returns an AreaGenerator with a zero baseline.
func NewAreaGenerator() *AreaGenerator {
	return &AreaGenerator{
		X: func(p data.DataPoint, i int) float64 { return p.XOr(i) },
		Y0: func(p data.DataPoint, i int) float64 { return 0 },
		Y1: func(p data.DataPoint, i int) float64 { return p.Y },
		Defined: func(p data.DataPoint, i int) bool { return p.Valid() },
		Curve: CurveLinear,
	}
}

// Generate builds the closed area path: ascends along Y1, then
// returns along Y0 in reverse, closing each run.
func (g *AreaGenerator) Generate(points []data.DataPoint) path.Path {
	var p path.Path
	var top, bottom []point
	flush := func() {
		if len(top) == 0 {
			return
		}
		p = curveSegments(p, top, g.Curve, g.Tension)
		reversed := make([]point, len(bottom))
		for i, b := range bottom {
			reversed[len(bottom)-1-i] = b
		}
		// Continue the subpath along the reversed baseline without
		// a new MoveTo, then close.
		sub := curveSegments(path.Path{}, reversed, g.Curve, g.Tension)
		for _, seg := range sub[1:] { // drop sub's own MoveTo
			p = append(p, seg)
		}
		p = p.CloseOp()
		top, bottom = nil, nil
	}
	for i, pt := range points {
		if g.Defined != nil && !g.Defined(pt, i) {
			flush()
			continue
		}
		x := g.X(pt, i)
		top = append(top, point{x, g.Y1(pt, i)})
		bottom = append(bottom, point{x, g.Y0(pt, i)})
	}
	flush()
	return p
}
