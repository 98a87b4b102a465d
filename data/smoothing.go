package data

import (
	"math"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// DensityEstimate builds a probability (or cumulative) density curve
// from a set of samples via kernel density estimation, returning N
// points spanning [min(xs)-trim*bandwidth, max(xs)+trim*bandwidth]. A
// zero bandwidth selects stats.BandwidthScott's default estimator.
func DensityEstimate(xs, weights []float64, n int, trim, bandwidth float64, cumulative bool) []DataPoint {
	if n <= 0 {
		n = 200
	}
	kde := stats.KDE{Sample: stats.Sample{Xs: xs, Weights: weights}}
	lo, hi := kde.Sample.Bounds()
	if math.IsNaN(lo) {
		return nil
	}
	if bandwidth == 0 {
		bandwidth = stats.BandwidthScott(kde.Sample)
	}
	kde.Bandwidth = bandwidth
	lo, hi = lo-trim*bandwidth, hi+trim*bandwidth
	samples := vec.Linspace(lo, hi, n)
	curve := vec.Map(kde.PDF, samples)
	if cumulative {
		curve = vec.Map(kde.CDF, samples)
	}
	out := make([]DataPoint, n)
	for i := range samples {
		x := samples[i]
		out[i] = DataPoint{X: &x, Y: curve[i]}
	}
	return out
}

// LOESSSmooth fits a locally-weighted polynomial regression to points
// and resamples it at n evenly spaced points across the domain,
// widened by widen (1.1 widens 10%, 5% each side). degree<=0 defaults
// to 2, span<=0 defaults to 0.5.
func LOESSSmooth(points []DataPoint, degree int, span float64, n int, widen float64) []DataPoint {
	if degree <= 0 {
		degree = 2
	}
	if span <= 0 {
		span = 0.5
	}
	xs, ys := xyColumns(points)
	if len(xs) == 0 {
		return nil
	}
	eval := evalDomain(xs, n, widen)
	smooth := fit.LOESS(xs, ys, degree, span)
	curve := vec.Map(smooth, eval)
	out := make([]DataPoint, len(eval))
	for i := range eval {
		x := eval[i]
		out[i] = DataPoint{X: &x, Y: curve[i]}
	}
	return out
}

// PolynomialTrend fits a least-squares polynomial of the given degree
// to points and resamples it at n points (n<=0 and degree<=1 defaults
// to 2 points, enough for a line).
func PolynomialTrend(points []DataPoint, degree, n int, widen float64) []DataPoint {
	if degree <= 0 {
		degree = 1
	}
	if n <= 0 {
		if degree == 1 {
			n = 2
		} else {
			n = 200
		}
	}
	xs, ys := xyColumns(points)
	if len(xs) == 0 {
		return nil
	}
	eval := evalDomain(xs, n, widen)
	reg := fit.PolynomialRegression(xs, ys, nil, degree)
	curve := vec.Map(reg.F, eval)
	out := make([]DataPoint, len(eval))
	for i := range eval {
		x := eval[i]
		out[i] = DataPoint{X: &x, Y: curve[i]}
	}
	return out
}

// LOESSTransform is a Pipeline stage that replaces its input with a
// LOESSSmooth curve fitted through it.
type LOESSTransform struct {
	Degree int
	Span   float64
	N      int
	Widen  float64
}

func (t LOESSTransform) Apply(points []DataPoint) []DataPoint {
	return LOESSSmooth(points, t.Degree, t.Span, t.N, t.Widen)
}

// TrendTransform is a Pipeline stage that replaces its input with a
// PolynomialTrend fit through it.
type TrendTransform struct {
	Degree int
	N      int
	Widen  float64
}

func (t TrendTransform) Apply(points []DataPoint) []DataPoint {
	return PolynomialTrend(points, t.Degree, t.N, t.Widen)
}

func xyColumns(points []DataPoint) (xs, ys []float64) {
	for i, p := range points {
		if !p.Valid() {
			continue
		}
		xs = append(xs, p.XOr(i))
		ys = append(ys, p.Y)
	}
	return xs, ys
}

func evalDomain(xs []float64, n int, widen float64) []float64 {
	if widen <= 0 {
		widen = 1.1
	}
	lo, hi := stats.Bounds(xs)
	span := hi - lo
	lo, hi = lo-span*(widen-1)/2, hi+span*(widen-1)/2
	return vec.Linspace(lo, hi, n)
}
