package interaction

import "math"

// BrushState names a state in the brush state machine.
type BrushState int

const (
	BrushIdle BrushState = iota
	BrushSelecting
	BrushMoving
	BrushResizing
)

// Handle names which resize handle is active, valid only when State
// is BrushResizing.
type Handle int

const (
	HandleNone Handle = iota
	HandleN
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

// Selection is BrushSelection, always kept normalized
// (X0<=X1, Y0<=Y1).
type Selection struct{ X0, Y0, X1, Y1 float64 }

func (s Selection) normalized() Selection {
	if s.X0 > s.X1 {
		s.X0, s.X1 = s.X1, s.X0
	}
	if s.Y0 > s.Y1 {
		s.Y0, s.Y1 = s.Y1, s.Y0
	}
	return s
}

// Extent constrains the Selection to a rectangle, when set.
type Extent struct{ X0, Y0, X1, Y1 float64 }

// Brush drives the Idle -> Selecting -> {Moving|Resizing} -> Idle
// state machine via HandleStart/HandleMove/HandleEnd calls.
type Brush struct {
	State      BrushState
	Handle     Handle
	Selection  Selection
	Extent     *Extent
	HandleSize float64

	startX, startY           float64
	dragOriginX, dragOriginY float64
	dragOriginSel            Selection
}

// NewBrush returns a Brush with an 8-pixel handle hit-test radius.
func NewBrush() *Brush { return &Brush{HandleSize: 8} }

// HandleStart begins interaction at (x,y): if inside an existing
// selection's resize-handle zone, enters Resizing; if inside the
// selection body, enters Moving; otherwise starts a new selection.
func (b *Brush) HandleStart(x, y float64) {
	if b.State == BrushIdle && b.hasSelection() {
		if h := b.hitHandle(x, y); h != HandleNone {
			b.State = BrushResizing
			b.Handle = h
			b.dragOriginSel = b.Selection
			b.dragOriginX, b.dragOriginY = x, y
			return
		}
		if b.inside(x, y) {
			b.State = BrushMoving
			b.dragOriginSel = b.Selection
			b.dragOriginX, b.dragOriginY = x, y
			return
		}
	}
	b.State = BrushSelecting
	b.startX, b.startY = x, y
	b.Selection = Selection{X0: x, Y0: y, X1: x, Y1: y}
}

// HandleMove updates the selection according to the current state.
func (b *Brush) HandleMove(x, y float64) {
	switch b.State {
	case BrushSelecting:
		b.Selection = b.clamp(Selection{X0: b.startX, Y0: b.startY, X1: x, Y1: y}.normalized())
	case BrushMoving:
		dx, dy := x-b.dragOriginX, y-b.dragOriginY
		moved := Selection{
			X0: b.dragOriginSel.X0 + dx, Y0: b.dragOriginSel.Y0 + dy,
			X1: b.dragOriginSel.X1 + dx, Y1: b.dragOriginSel.Y1 + dy,
		}
		b.Selection = b.clampMove(moved)
	case BrushResizing:
		dx, dy := x-b.dragOriginX, y-b.dragOriginY
		b.Selection = b.clamp(b.resize(b.dragOriginSel, b.Handle, dx, dy).normalized())
	}
}

// HandleEnd returns to Idle, keeping the current Selection.
func (b *Brush) HandleEnd() {
	b.State = BrushIdle
	b.Handle = HandleNone
}

func (b *Brush) hasSelection() bool {
	return b.Selection.X1 > b.Selection.X0 || b.Selection.Y1 > b.Selection.Y0
}

func (b *Brush) inside(x, y float64) bool {
	s := b.Selection
	return x >= s.X0 && x <= s.X1 && y >= s.Y0 && y <= s.Y1
}

func (b *Brush) hitHandle(x, y float64) Handle {
	s := b.Selection
	hs := b.HandleSize
	near := func(a, v float64) bool { return math.Abs(a-v) <= hs }
	onLeft, onRight := near(x, s.X0), near(x, s.X1)
	onTop, onBottom := near(y, s.Y0), near(y, s.Y1)
	withinX := x >= s.X0-hs && x <= s.X1+hs
	withinY := y >= s.Y0-hs && y <= s.Y1+hs
	switch {
	case onLeft && onTop && withinX && withinY:
		return HandleNW
	case onRight && onTop && withinX && withinY:
		return HandleNE
	case onLeft && onBottom && withinX && withinY:
		return HandleSW
	case onRight && onBottom && withinX && withinY:
		return HandleSE
	case onTop && withinX:
		return HandleN
	case onBottom && withinX:
		return HandleS
	case onLeft && withinY:
		return HandleW
	case onRight && withinY:
		return HandleE
	default:
		return HandleNone
	}
}

func (b *Brush) resize(orig Selection, h Handle, dx, dy float64) Selection {
	s := orig
	switch h {
	case HandleN:
		s.Y0 += dy
	case HandleS:
		s.Y1 += dy
	case HandleE:
		s.X1 += dx
	case HandleW:
		s.X0 += dx
	case HandleNE:
		s.Y0 += dy
		s.X1 += dx
	case HandleNW:
		s.Y0 += dy
		s.X0 += dx
	case HandleSE:
		s.Y1 += dy
		s.X1 += dx
	case HandleSW:
		s.Y1 += dy
		s.X0 += dx
	}
	return s
}

func (b *Brush) clamp(s Selection) Selection {
	if b.Extent == nil {
		return s
	}
	e := *b.Extent
	s.X0, s.X1 = clampRange(s.X0, e.X0, e.X1), clampRange(s.X1, e.X0, e.X1)
	s.Y0, s.Y1 = clampRange(s.Y0, e.Y0, e.Y1), clampRange(s.Y1, e.Y0, e.Y1)
	return s
}

// clampMove clamps a whole-selection translation so the rectangle
// stays within Extent without resizing it.
func (b *Brush) clampMove(s Selection) Selection {
	if b.Extent == nil {
		return s
	}
	e := *b.Extent
	w, h := s.X1-s.X0, s.Y1-s.Y0
	if s.X0 < e.X0 {
		s.X0, s.X1 = e.X0, e.X0+w
	}
	if s.X1 > e.X1 {
		s.X1, s.X0 = e.X1, e.X1-w
	}
	if s.Y0 < e.Y0 {
		s.Y0, s.Y1 = e.Y0, e.Y0+h
	}
	if s.Y1 > e.Y1 {
		s.Y1, s.Y0 = e.Y1, e.Y1-h
	}
	return s
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TooltipAnchor selects which side of the anchor point a placed
// tooltip prefers.
type TooltipAnchor int

const (
	TooltipAuto TooltipAnchor = iota
	TooltipAbove
	TooltipBelow
)

// PlaceTooltip returns the top-left corner for a tooltip of size
// (w,h) anchored near (x,y) within a containing viewport (viewW,
// viewH), flipping above/below and clamping horizontally to stay
// fully on screen. Pure geometry, no rendering dependency: the
// widget rendering itself is left to the caller.
func PlaceTooltip(x, y, w, h, viewW, viewH float64, anchor TooltipAnchor, margin float64) (px, py float64) {
	px = x - w/2
	if px < margin {
		px = margin
	}
	if px+w > viewW-margin {
		px = viewW - margin - w
	}

	above := y - h - margin
	below := y + margin
	switch anchor {
	case TooltipAbove:
		py = above
	case TooltipBelow:
		py = below
	default:
		if above >= 0 {
			py = above
		} else {
			py = below
		}
	}
	if py+h > viewH-margin {
		py = viewH - margin - h
	}
	if py < margin {
		py = margin
	}
	return px, py
}
