package scale

import (
	"math"
	"sort"
)

// Quantize, Quantile, and Threshold (.9) all map a
// continuous domain to a discrete sequence of output values via
// binary search over an internal threshold vector. They're generic
// over the output type since the range is an arbitrary caller-chosen
// set of values (colors, labels, bucket identifiers).

// Quantize divides a continuous domain into n equal-width buckets,
// where n is the length of Range.
type Quantize[T any] struct {
	D0, D1 float64
	Range []T
	thresholds []float64
}

// NewQuantize returns a Quantize scale with thresholds at
// d0 + i*(d1-d0)/n for i=1..n-1.
func NewQuantize[T any](d0, d1 float64, output []T) *Quantize[T] {
	q := &Quantize[T]{D0: d0, D1: d1, Range: output}
	q.recompute()
	return q
}

func (q *Quantize[T]) recompute() {
	n := len(q.Range)
	q.thresholds = nil
	for i := 1; i < n; i++ {
		q.thresholds = append(q.thresholds, q.D0+float64(i)*(q.D1-q.D0)/float64(n))
	}
}

// Map returns the bucket output value for v.
func (q *Quantize[T]) Map(v float64) T {
	return q.Range[bucketIndex(q.thresholds, v)]
}

// InvertExtent returns the [lo, hi) domain interval that maps to the
// i-th range value.
func (q *Quantize[T]) InvertExtent(i int) (lo, hi float64) {
	return extentFor(q.thresholds, i)
}

// Quantile divides a sampled domain into equal-count buckets using
// interpolated p-quantiles of a sorted sample.
type Quantile[T any] struct {
	Data []float64
	Range []T
	sorted []float64
	thresholds []float64
}

// NewQuantile returns a Quantile scale. data need not be pre-sorted.
func NewQuantile[T any](data []float64, output []T) *Quantile[T] {
	q := &Quantile[T]{Data: data, Range: output}
	q.recompute()
	return q
}

func (q *Quantile[T]) recompute() {
	q.sorted = append([]float64(nil), q.Data...)
	sort.Float64s(q.sorted)
	n := len(q.Range)
	q.thresholds = nil
	for i := 1; i < n; i++ {
		q.thresholds = append(q.thresholds, quantileOf(q.sorted, float64(i)/float64(n)))
	}
}

// quantileOf returns the linearly interpolated p-quantile (p in
// [0,1]) of a sorted sample.
func quantileOf(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Map returns the bucket output value for v.
func (q *Quantile[T]) Map(v float64) T {
	return q.Range[bucketIndex(q.thresholds, v)]
}

// InvertExtent returns the [lo, hi) domain interval that maps to the
// i-th range value.
func (q *Quantile[T]) InvertExtent(i int) (lo, hi float64) {
	return extentFor(q.thresholds, i)
}

// Threshold maps a domain to len(Thresholds)+1 buckets using an
// explicit, caller-supplied threshold vector.
type Threshold[T any] struct {
	Thresholds []float64
	Range []T
}

// NewThreshold returns a Threshold scale. thresholds must be sorted
// ascending; len(output) must equal len(thresholds)+1.
func NewThreshold[T any](thresholds []float64, output []T) *Threshold[T] {
	return &Threshold[T]{Thresholds: thresholds, Range: output}
}

// Map returns the bucket output value for v.
func (t *Threshold[T]) Map(v float64) T {
	return t.Range[bucketIndex(t.Thresholds, v)]
}

// InvertExtent returns (-Inf, t0), (t(i-1), ti),..., (t(n-1), +Inf)
// for the i-th range value.
func (t *Threshold[T]) InvertExtent(i int) (lo, hi float64) {
	return extentFor(t.Thresholds, i)
}

// bucketIndex performs the binary search shared by Quantize, Quantile,
// and Threshold: the number of thresholds <= v.
func bucketIndex(thresholds []float64, v float64) int {
	return sort.Search(len(thresholds), func(i int) bool { return thresholds[i] > v })
}

func extentFor(thresholds []float64, i int) (lo, hi float64) {
	lo = math.Inf(-1)
	hi = math.Inf(1)
	if i > 0 && i-1 < len(thresholds) {
		lo = thresholds[i-1]
	}
	if i < len(thresholds) {
		hi = thresholds[i]
	}
	return lo, hi
}
