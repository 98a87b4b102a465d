package data

import (
	"math"

	"github.com/aclements/chartcore"
	"github.com/aclements/chartcore/cherr"
)

// ChartData is an ordered set of category labels plus an ordered set
// of Datasets.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Validate enforces that when labels are non-empty, every non-empty
// dataset's point count equals labels length.
func (c ChartData) Validate() error {
	if len(c.Labels) == 0 {
		return nil
	}
	for i, ds := range c.Datasets {
		if len(ds.Points) == 0 {
			continue
		}
		if len(ds.Points) != len(c.Labels) {
			err := cherr.New(cherr.InvalidData,
				"dataset %d (%q) has %d points, want %d to match labels",
				i, ds.Label, len(ds.Points), len(c.Labels))
			chartcore.Warn.Print(err)
			return err
		}
	}
	return nil
}

// ExtentY returns the union Y range over all non-hidden datasets.
func (c ChartData) ExtentY() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, ds := range c.Datasets {
		if ds.Hidden {
			continue
		}
		dlo, dhi, dok := ds.ExtentY()
		if !dok {
			continue
		}
		ok = true
		if dlo < lo {
			lo = dlo
		}
		if dhi > hi {
			hi = dhi
		}
	}
	return
}

// ExtentX returns the union X range over all non-hidden datasets that
// carry explicit X values.
func (c ChartData) ExtentX() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, ds := range c.Datasets {
		if ds.Hidden {
			continue
		}
		dlo, dhi, dok := ds.ExtentX()
		if !dok {
			continue
		}
		ok = true
		if dlo < lo {
			lo = dlo
		}
		if dhi > hi {
			hi = dhi
		}
	}
	return
}
