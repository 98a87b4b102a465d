package data

import "math"

// Dataset is a labeled ordered sequence of DataPoints plus the
// visual-intent attributes a renderer needs.
type Dataset struct {
	Label string `json:"label"`
	Points []DataPoint `json:"points"`
	BackgroundColor string `json:"background_color,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	BorderWidth float64 `json:"border_width,omitempty"`
	FillUnderLine bool `json:"fill_under_line,omitempty"`
	Tension float64 `json:"tension,omitempty"` // [0,1]
	PointRadius float64 `json:"point_radius,omitempty"`
	PointStyle PointStyle `json:"point_style,omitempty"`
	BarPercent float64 `json:"bar_percent,omitempty"` // [0,1]
	BarCornerRadius float64 `json:"bar_corner_radius,omitempty"`
	Hidden bool `json:"hidden,omitempty"`
}

// ExtentY returns the min/max Y across valid points. ok is false when
// there are no valid points.
func (d Dataset) ExtentY() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range d.Points {
		if !p.Valid() {
			continue
		}
		ok = true
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
		if p.YMin != nil && *p.YMin < lo {
			lo = *p.YMin
		}
	}
	return
}

// ExtentX returns the min/max X across valid points that carry an
// explicit X; index-positioned points are excluded.
func (d Dataset) ExtentX() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range d.Points {
		if p.X == nil || !p.Valid() {
			continue
		}
		ok = true
		if *p.X < lo {
			lo = *p.X
		}
		if *p.X > hi {
			hi = *p.X
		}
	}
	return
}
