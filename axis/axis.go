// Package axis positions tick marks, grid lines, and labels given a
// scale and an orientation. It never draws anything: it
// only emits numeric positions and anchors for an external renderer.
package axis

import (
	"github.com/aclements/chartcore/numeric"
	"github.com/aclements/chartcore/scale"
)

// Orientation is the side of the chart an axis sits on.
type Orientation int

const (
	Bottom Orientation = iota
	Top
	Left
	Right
)

// TextAnchor mirrors the SVG/canvas text-anchor vocabulary.
type TextAnchor int

const (
	Start TextAnchor = iota
	Middle
	End
)

// Config configures axis layout.
type Config struct {
	TickSizeInner float64
	TickPadding float64
	LabelOffset float64
	GridLength float64 // 0 disables grid line emission
	// MinorTicks adds an unlabeled tick halfway between each pair
	// of consecutive major ticks on a continuous scale.
	MinorTicks bool
	// LabelFormat, when non-nil, overrides the tick's own label.
	// When nil, the tick's own label is used if non-empty
	// (important for discrete scales), the numeric formatter
	// otherwise.
	LabelFormat func(value float64) string
}

// PositionedTick is one tick's full geometric description.
type PositionedTick struct {
	Value float64
	Label string
	TickStart Point
	TickEnd Point
	LabelPos Point
	GridEnd *Point
	TextAnchor TextAnchor
}

// Point is a plain 2D coordinate.
type Point struct{ X, Y float64 }

// Layout is the output of laying out an axis: every tick's geometry
// plus the axis's own orientation and domain endpoints in pixel
// space.
type Layout struct {
	Orientation Orientation
	Ticks []PositionedTick
	// DomainStart and DomainEnd are the pixel positions of the first
	// and last ticks (both zero when there are no ticks). They equal
	// the scale's range endpoints only when ticks fall on them.
	DomainStart, DomainEnd float64
}

func isHorizontal(o Orientation) bool { return o == Bottom || o == Top }

func defaultAnchor(o Orientation) TextAnchor {
	switch o {
	case Left:
		return End
	case Right:
		return Start
	default:
		return Middle
	}
}

// direction returns the sign multiplier that moves "away from the
// plot" for the given orientation: +1 for Bottom/Right, -1 for
// Top/Left.
func direction(o Orientation) float64 {
	switch o {
	case Bottom, Right:
		return 1
	default:
		return -1
	}
}

// Build lays out an axis from a scale's ticks. axisPos is the
// cross-axis coordinate where the axis sits (the Y coordinate for a
// horizontal axis, the X coordinate for a vertical one).
func Build(s scale.Ticker, orientation Orientation, axisPos float64, opts scale.TickOptions, cfg Config) Layout {
	ticks := s.Ticks(opts)
	bandOffset := s.Bandwidth() / 2

	out := Layout{Orientation: orientation}
	anchor := defaultAnchor(orientation)
	dir := direction(orientation)

	for _, tk := range ticks {
		// Discrete scales already report band-centre positions.
		pos := tk.Position
		label := tk.Label
		if cfg.LabelFormat != nil {
			label = cfg.LabelFormat(tk.Value)
		} else if label == "" {
			label = numeric.FormatNumber(tk.Value)
		}
		out.Ticks = append(out.Ticks, buildTick(pos, tk.Value, label, orientation, axisPos, dir, anchor, cfg))
	}

	if cfg.MinorTicks && bandOffset == 0 {
		out.Ticks = append(out.Ticks, minorTicks(ticks, orientation, axisPos, dir, anchor, cfg)...)
	}

	if len(ticks) > 0 {
		out.DomainStart = ticks[0].Position
		out.DomainEnd = ticks[len(ticks)-1].Position
	}
	return out
}

func buildTick(pos, value float64, label string, orientation Orientation, axisPos, dir float64, anchor TextAnchor, cfg Config) PositionedTick {
	pt := PositionedTick{Value: value, Label: label, TextAnchor: anchor}
	if isHorizontal(orientation) {
		pt.TickStart = Point{pos, axisPos}
		pt.TickEnd = Point{pos, axisPos + dir*cfg.TickSizeInner}
		pt.LabelPos = Point{pos, axisPos + dir*(cfg.TickPadding+cfg.LabelOffset)}
		if cfg.GridLength != 0 {
			ge := Point{pos, axisPos - dir*cfg.GridLength}
			pt.GridEnd = &ge
		}
	} else {
		pt.TickStart = Point{axisPos, pos}
		pt.TickEnd = Point{axisPos + dir*cfg.TickSizeInner, pos}
		pt.LabelPos = Point{axisPos + dir*(cfg.TickPadding+cfg.LabelOffset), pos}
		if cfg.GridLength != 0 {
			ge := Point{axisPos - dir*cfg.GridLength, pos}
			pt.GridEnd = &ge
		}
	}
	return pt
}

// minorTicks emits one unlabeled tick halfway between each pair of
// consecutive majors.
func minorTicks(major []scale.Tick, orientation Orientation, axisPos, dir float64, anchor TextAnchor, cfg Config) []PositionedTick {
	var out []PositionedTick
	for i := 0; i+1 < len(major); i++ {
		mid := (major[i].Position + major[i+1].Position) / 2
		midVal := (major[i].Value + major[i+1].Value) / 2
		t := buildTick(mid, midVal, "", orientation, axisPos, dir, anchor, cfg)
		// Minor ticks are conventionally shorter.
		scaleHalf(&t, orientation, axisPos, dir, cfg.TickSizeInner/2)
		out = append(out, t)
	}
	return out
}

func scaleHalf(t *PositionedTick, orientation Orientation, axisPos, dir, size float64) {
	if isHorizontal(orientation) {
		t.TickEnd.Y = axisPos + dir*size
	} else {
		t.TickEnd.X = axisPos + dir*size
	}
}
