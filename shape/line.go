package shape

import (
	"github.com/aclements/chartcore/data"
	"github.com/aclements/chartcore/path"
)

// LineGenerator emits a Path tracing a sequence of DataPoints through
// X/Y accessors. A Defined predicate may split the path
// at gaps: each maximal run of defined points is drawn as its own
// subpath.
type LineGenerator struct {
	X func(p data.DataPoint, i int) float64
	Y func(p data.DataPoint, i int) float64
	Defined func(p data.DataPoint, i int) bool
	Curve Curve
	Tension float64 // used by CurveCardinal, in [0,1]
}

// NewLineGenerator returns a LineGenerator with XOr-by-index X, raw Y,
// linear curve, and gap splitting at points that are not Valid.
func NewLineGenerator() *LineGenerator {
	return &LineGenerator{
		X: func(p data.DataPoint, i int) float64 { return p.XOr(i) },
		Y: func(p data.DataPoint, i int) float64 { return p.Y },
		Defined: func(p data.DataPoint, i int) bool { return p.Valid() },
		Curve: CurveLinear,
	}
}

// Generate builds the path, splitting at runs where Defined is false.
func (g *LineGenerator) Generate(points []data.DataPoint) path.Path {
	var p path.Path
	var run []point
	flush := func() {
		if len(run) > 0 {
			p = curveSegments(p, run, g.Curve, g.Tension)
			run = nil
		}
	}
	for i, pt := range points {
		if g.Defined != nil && !g.Defined(pt, i) {
			flush()
			continue
		}
		run = append(run, point{g.X(pt, i), g.Y(pt, i)})
	}
	flush()
	return p
}
