package shape

import "sort"

// PieSort selects how PieLayout orders slices before sweeping angles.
type PieSort int

const (
	PieSortNone PieSort = iota
	PieSortAscending
	PieSortDescending
	PieSortByValue // alias of Ascending/Descending by magnitude; kept distinct
)

// PieSlice is one output of PieLayout.
type PieSlice struct {
	StartAngle float64
	EndAngle float64
	PadAngle float64
	Value float64
	Index int // index into the original values slice
}

// PieConfig parameterizes PieLayout.
type PieConfig struct {
	StartAngle float64
	EndAngle float64
	PadAngle float64
	Sort PieSort
}

// PieLayout distributes values proportionally over [StartAngle,
// EndAngle], reserving PadAngle between adjacent slices.
func PieLayout(values []float64, cfg PieConfig) []PieSlice {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	switch cfg.Sort {
	case PieSortAscending, PieSortByValue:
		sort.SliceStable(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	case PieSortDescending:
		sort.SliceStable(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })
	}

	var total float64
	for _, v := range values {
		total += v
	}
	span := cfg.EndAngle - cfg.StartAngle
	n := len(values)
	padTotal := cfg.PadAngle * float64(n)
	usable := span - padTotal

	out := make([]PieSlice, n)
	angle := cfg.StartAngle
	for _, idx := range order {
		var sweep float64
		if total > 0 {
			sweep = values[idx] / total * usable
		}
		out[idx] = PieSlice{
			StartAngle: angle,
			EndAngle: angle + sweep,
			PadAngle: cfg.PadAngle,
			Value: values[idx],
			Index: idx,
		}
		angle += sweep + cfg.PadAngle
	}
	return out
}
