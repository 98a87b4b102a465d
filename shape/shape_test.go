package shape

import (
	"math"
	"testing"

	"github.com/aclements/chartcore/data"
	"github.com/aclements/chartcore/path"
	"github.com/stretchr/testify/assert"
)

func mkPoints(ys ...float64) []data.DataPoint {
	out := make([]data.DataPoint, len(ys))
	for i, y := range ys {
		out[i] = data.DataPoint{Y: y}
	}
	return out
}

func TestLineGeneratorLinear(t *testing.T) {
	g := NewLineGenerator()
	p := g.Generate(mkPoints(1, 2, 3))
	assert.Equal(t, path.MoveTo, p[0].Op)
	assert.Equal(t, path.LineTo, p[1].Op)
	assert.Equal(t, path.LineTo, p[2].Op)
	assert.Equal(t, point{1, 2}, point{p[1].End.X, p[1].End.Y})
}

func TestLineGeneratorSplitsAtGaps(t *testing.T) {
	g := NewLineGenerator()
	points := mkPoints(1, 2, 3)
	points[1] = data.DataPoint{Y: math.NaN()}
	p := g.Generate(points)
	moveTos := 0
	for _, seg := range p {
		if seg.Op == path.MoveTo {
			moveTos++
		}
	}
	assert.Equal(t, 2, moveTos)
}

func TestLineGeneratorMonotoneNoOvershoot(t *testing.T) {
	g := NewLineGenerator()
	g.Curve = CurveMonotone
	p := g.Generate(mkPoints(0, 0, 10, 10))
	assert.NotEmpty(t, p)
	for _, seg := range p {
		if seg.Op != path.CubicTo {
			continue
		}
		for _, y := range []float64{seg.Control1.Y, seg.Control2.Y} {
			assert.GreaterOrEqual(t, y, 0.0)
			assert.LessOrEqual(t, y, 10.0)
		}
	}
}

func TestAreaGeneratorClosesPath(t *testing.T) {
	g := NewAreaGenerator()
	p := g.Generate(mkPoints(1, 2, 3))
	last := p[len(p)-1]
	assert.Equal(t, path.Close, last.Op)
}

func TestArcBasicWedge(t *testing.T) {
	p := Arc(ArcConfig{InnerRadius: 0, OuterRadius: 100, StartAngle: 0, EndAngle: math.Pi / 2})
	assert.NotEmpty(t, p)
	assert.Equal(t, path.MoveTo, p[0].Op)
	assert.Equal(t, path.Close, p[len(p)-1].Op)
}

func TestArcWithCornerRadius(t *testing.T) {
	p := Arc(ArcConfig{InnerRadius: 20, OuterRadius: 100, StartAngle: 0, EndAngle: math.Pi, CornerRadius: 5})
	assert.NotEmpty(t, p)
}

func TestPieLayoutProportionalSweep(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	total := 10.0
	span := math.Pi * 2
	slices := PieLayout(values, PieConfig{StartAngle: 0, EndAngle: span})
	var sweepSum float64
	for i, s := range slices {
		want := values[i] / total * span
		got := s.EndAngle - s.StartAngle
		assert.InDelta(t, want, got, 1e-9)
		sweepSum += got
	}
	assert.InDelta(t, span, sweepSum, 1e-9)
}

func TestPieLayoutWithPadding(t *testing.T) {
	values := []float64{1, 1, 1}
	pad := 0.05
	span := math.Pi * 2
	slices := PieLayout(values, PieConfig{StartAngle: 0, EndAngle: span, PadAngle: pad})
	var sweepSum float64
	for _, s := range slices {
		sweepSum += s.EndAngle - s.StartAngle
	}
	assert.InDelta(t, span-float64(len(values))*pad, sweepSum, 1e-9)
}

func TestStackLayoutNoneTilesWithoutGap(t *testing.T) {
	series := []StackInput{
		{Key: "a", Values: []float64{1, 2, 3}},
		{Key: "b", Values: []float64{4, 5, 6}},
		{Key: "c", Values: []float64{7, 8, 9}},
	}
	out := StackLayout(series, StackOrderNone, StackOffsetNone)
	for i := 0; i < 3; i++ {
		for k := 0; k < len(out)-1; k++ {
			assert.InDelta(t, out[k].Points[i].Y1, out[k+1].Points[i].Y0, 1e-9)
		}
		colSum := series[0].Values[i] + series[1].Values[i] + series[2].Values[i]
		assert.InDelta(t, colSum, out[len(out)-1].Points[i].Y1, 1e-9)
	}
}

func TestStackLayoutExpandSkewedInput(t *testing.T) {
	series := []StackInput{
		{Key: "a", Values: []float64{1, 2, 3}},
		{Key: "b", Values: []float64{1, 2, 3}},
		{Key: "c", Values: []float64{8, 16, 24}},
	}
	out := StackLayout(series, StackOrderNone, StackOffsetExpand)
	for i := 0; i < 3; i++ {
		var maxY1, minY0 float64
		minY0 = math.Inf(1)
		maxY1 = math.Inf(-1)
		for _, s := range out {
			if s.Points[i].Y0 < minY0 {
				minY0 = s.Points[i].Y0
			}
			if s.Points[i].Y1 > maxY1 {
				maxY1 = s.Points[i].Y1
			}
		}
		assert.InDelta(t, 1.0, maxY1-minY0, 1e-9)
		last := out[2].Points[i]
		assert.InDelta(t, 0.8, last.Y1-last.Y0, 1e-9)
	}
}

func TestStackLayoutWigglePreservesHeightsAndRankWeights(t *testing.T) {
	series := []StackInput{
		{Key: "a", Values: []float64{3, 1, 4}},
		{Key: "b", Values: []float64{1, 5, 9}},
	}
	out := StackLayout(series, StackOrderNone, StackOffsetWiggle)

	// Wiggle only translates each column; per-series segment heights
	// must match the raw input values exactly.
	for i, v := range series[0].Values {
		assert.InDelta(t, v, out[0].Points[i].Y1-out[0].Points[i].Y0, 1e-9)
	}
	for i, v := range series[1].Values {
		assert.InDelta(t, v, out[1].Points[i].Y1-out[1].Points[i].Y0, 1e-9)
	}

	// Column 0: rank weights are 2 (series a, stacked first) and 1
	// (series b), heights 3 and 1: offset = -(2*3+1*1)/(3*2) = -7/6.
	assert.InDelta(t, -7.0/6, out[0].Points[0].Y0, 1e-9)
	assert.InDelta(t, 3-7.0/6, out[0].Points[0].Y1, 1e-9)
}

func TestBundleEdgesStraightWhenBetaZero(t *testing.T) {
	e := NewEdge(0, 0, 10, 10, []float64{5}, []float64{0})
	paths := BundleEdges([]Edge{e}, 0)
	assert.NotEmpty(t, paths[0])
	start := paths[0][0]
	assert.Equal(t, path.MoveTo, start.Op)
	assert.InDelta(t, 0, start.End.X, 1e-9)
	assert.InDelta(t, 0, start.End.Y, 1e-9)
	for _, seg := range paths[0] {
		assert.InDelta(t, seg.End.X, seg.End.Y, 1e-9)
	}
	last := paths[0][len(paths[0])-1]
	assert.InDelta(t, 10, last.End.X, 1e-9)
	assert.InDelta(t, 10, last.End.Y, 1e-9)
}
