// Package annotation provides pure-data positioned overlays —
// reference lines and point/text annotations. Like the rest of
// chartcore, these are geometry, not drawing: a renderer still
// decides how to paint them.
package annotation

import "github.com/aclements/chartcore/axis"

// ReferenceLine is a single horizontal or vertical line positioned
// against an axis, e.g. a threshold or target value overlay.
type ReferenceLine struct {
	Orientation axis.Orientation
	Value       float64
	Label       string
	// Position is the already-scaled pixel coordinate along the
	// axis the line crosses, filled in by the caller after scaling
	// Value.
	Position float64
}

// Anchor is where an Annotation's text sits relative to its point.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorCenter
)

// Annotation is a single labeled point overlay.
type Annotation struct {
	X, Y   float64
	Text   string
	Anchor Anchor
}
