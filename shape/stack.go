package shape

import "sort"

// StackPoint is one entry of a StackedSeries.Points.
type StackPoint struct{ Y0, Y1 float64 }

// StackedSeries is one series' output from StackLayout.
type StackedSeries struct {
	Key           string
	OriginalIndex int
	Points        []StackPoint
}

// StackOrder selects the order series are stacked bottom to top.
type StackOrder int

const (
	StackOrderNone StackOrder = iota
	StackOrderAscending
	StackOrderDescending
	StackOrderInsideOut
	StackOrderReverse
)

// StackOffset selects how the stacked baseline is shifted after
// ordering.
type StackOffset int

const (
	StackOffsetNone StackOffset = iota
	StackOffsetExpand
	StackOffsetDiverging
	StackOffsetSilhouette
	StackOffsetWiggle
)

// StackInput is one series' raw values, indexed in parallel across
// series (series[k].Values[i] is column i's contribution from series k).
type StackInput struct {
	Key    string
	Values []float64
}

// StackLayout stacks series atop one another column by column,
// applying the requested order and offset.
func StackLayout(series []StackInput, order StackOrder, offset StackOffset) []StackedSeries {
	n := len(series)
	if n == 0 {
		return nil
	}
	cols := len(series[0].Values)

	perm := stackOrder(series, order)

	out := make([]StackedSeries, n)
	for k, idx := range perm {
		out[k] = StackedSeries{
			Key:           series[idx].Key,
			OriginalIndex: idx,
			Points:        make([]StackPoint, cols),
		}
	}

	// Build raw (unoffset) stack: y0 of the first series in stacking
	// order is 0, each subsequent series starts where the last ended.
	for i := 0; i < cols; i++ {
		running := 0.0
		for k, idx := range perm {
			v := series[idx].Values[i]
			out[k].Points[i] = StackPoint{Y0: running, Y1: running + v}
			running += v
		}
	}

	applyOffset(out, perm, offset, cols)
	return out
}

func stackOrder(series []StackInput, order StackOrder) []int {
	n := len(series)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sum := func(i int) float64 {
		var s float64
		for _, v := range series[i].Values {
			s += v
		}
		return s
	}
	switch order {
	case StackOrderAscending:
		sort.SliceStable(perm, func(a, b int) bool { return sum(perm[a]) < sum(perm[b]) })
	case StackOrderDescending:
		sort.SliceStable(perm, func(a, b int) bool { return sum(perm[a]) > sum(perm[b]) })
	case StackOrderReverse:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			perm[i], perm[j] = perm[j], perm[i]
		}
	case StackOrderInsideOut:
		// Largest series in the middle, tapering outward: series are
		// ranked by total sum alone (where each peaks is not
		// considered) and dealt alternately to the two sides.
		sums := make([]float64, n)
		for i := range sums {
			sums[i] = sum(i)
		}
		byPeak := make([]int, n)
		for i := range byPeak {
			byPeak[i] = i
		}
		sort.SliceStable(byPeak, func(a, b int) bool { return sums[byPeak[a]] > sums[byPeak[b]] })
		left := make([]int, 0, n)
		right := make([]int, 0, n)
		for i, idx := range byPeak {
			if i%2 == 0 {
				left = append(left, idx)
			} else {
				right = append(right, idx)
			}
		}
		for i, j := 0, len(left)-1; i < j; i, j = i+1, j-1 {
			left[i], left[j] = left[j], left[i]
		}
		perm = append(left, right...)
	}
	return perm
}

// applyOffset shifts every column's Y0/Y1 in place according to
// offset, after the raw stack has been built in out.
func applyOffset(out []StackedSeries, perm []int, offset StackOffset, cols int) {
	n := len(out)
	if n == 0 {
		return
	}
	switch offset {
	case StackOffsetNone:
		return
	case StackOffsetExpand:
		for i := 0; i < cols; i++ {
			total := out[n-1].Points[i].Y1
			if total == 0 {
				continue
			}
			for k := range out {
				out[k].Points[i].Y0 /= total
				out[k].Points[i].Y1 /= total
			}
		}
	case StackOffsetDiverging:
		for i := 0; i < cols; i++ {
			total := out[n-1].Points[i].Y1
			shift := -total / 2
			for k := range out {
				out[k].Points[i].Y0 += shift
				out[k].Points[i].Y1 += shift
			}
		}
	case StackOffsetSilhouette:
		for i := 0; i < cols; i++ {
			total := out[n-1].Points[i].Y1
			shift := -total / 2
			for k := range out {
				out[k].Points[i].Y0 += shift
				out[k].Points[i].Y1 += shift
			}
		}
	case StackOffsetWiggle:
		applyWiggle(out, perm, cols)
	}
}

// applyWiggle implements a simplified, rank-weighted streamgraph
// formula: for each column i independently, offset[i] =
// -sum_j(weight_j*height_j) / (2*sum_j(weight_j)), where height_j is
// series j's stacked segment height at i and weight_j = n-j ranks
// series earlier in the stack order more heavily, rather than the
// full Byron-Wattenberg derivation.
func applyWiggle(out []StackedSeries, perm []int, cols int) {
	n := len(perm)
	if cols == 0 || n == 0 {
		return
	}
	for i := 0; i < cols; i++ {
		var sum, totalWeight, total float64
		for j := range out {
			height := out[j].Points[i].Y1 - out[j].Points[i].Y0
			weight := float64(n - j)
			sum += weight * height
			totalWeight += weight
			total += height
		}
		offset := 0.0
		if totalWeight > 0 && total > 0 {
			offset = -sum / (totalWeight * 2)
		}
		for k := range out {
			out[k].Points[i].Y0 += offset
			out[k].Points[i].Y1 += offset
		}
	}
}
