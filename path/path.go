// Package path defines the shared PathSegment vocabulary emitted by
// shape, geo, and interaction generators: a drawing-surface-agnostic
// sequence of moves, lines, curves, and closes.
package path

// SegmentOp names a PathSegment's operation.
type SegmentOp int

const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Point is a plane coordinate.
type Point struct{ X, Y float64 }

// Segment is one step of a path. Control/End fields are populated
// according to Op: MoveTo/LineTo use End only, QuadTo uses Control1
// and End, CubicTo uses Control1, Control2, and End, Close uses none.
type Segment struct {
	Op SegmentOp
	End Point
	Control1, Control2 Point
}

// Path is an ordered sequence of segments // "Path = ordered sequence of PathSegment".
type Path []Segment

// MoveTo appends a move segment.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, Segment{Op: MoveTo, End: Point{x, y}})
}

// LineTo appends a line segment.
func (p Path) LineTo(x, y float64) Path {
	return append(p, Segment{Op: LineTo, End: Point{x, y}})
}

// QuadTo appends a quadratic Bezier segment.
func (p Path) QuadTo(cx, cy, x, y float64) Path {
	return append(p, Segment{Op: QuadTo, Control1: Point{cx, cy}, End: Point{x, y}})
}

// CubicTo appends a cubic Bezier segment.
func (p Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, Segment{Op: CubicTo, Control1: Point{c1x, c1y}, Control2: Point{c2x, c2y}, End: Point{x, y}})
}

// CloseOp appends a close segment, connecting back to the last MoveTo.
func (p Path) CloseOp() Path {
	return append(p, Segment{Op: Close})
}
